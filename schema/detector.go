/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import (
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// DetectionConfig provides configuration for dialect detection.
type DetectionConfig struct {
	// DefaultDialect is used when the file does not declare a $schema.
	DefaultDialect Dialect
}

// DetectDialect detects the dialect of a token source file.
// Priority order:
// 1. $schema field in file root
// 2. Config default dialect
// 3. Duck typing ($value anywhere means DTCG)
// 4. Default to legacy
func DetectDialect(content []byte, config *DetectionConfig) (Dialect, error) {
	if looksLikeJSON(content) {
		// Strip comments and trailing commas; the result is valid YAML
		content = jsonc.ToJSON(content)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return Unknown, fmt.Errorf("invalid YAML/JSON: %w", err)
	}

	// 1. Check for explicit $schema field
	if schemaURL, ok := data["$schema"].(string); ok {
		if dialect, err := FromURL(schemaURL); err == nil {
			return dialect, nil
		}
	}

	// 2. Check config default
	if config != nil && config.DefaultDialect != Unknown {
		return config.DefaultDialect, nil
	}

	// 3. Duck typing
	if hasFeature(data, "$value") {
		return DTCG, nil
	}

	// 4. Default to the legacy exporter format
	return Legacy, nil
}

// hasFeature checks if a field name exists anywhere in the structure.
func hasFeature(data map[string]any, featureName string) bool {
	if _, exists := data[featureName]; exists {
		return true
	}
	for _, value := range data {
		switch v := value.(type) {
		case map[string]any:
			if hasFeature(v, featureName) {
				return true
			}
		case []any:
			if hasFeatureInSlice(v, featureName) {
				return true
			}
		}
	}
	return false
}

// hasFeatureInSlice recursively checks for a feature in slice elements.
func hasFeatureInSlice(arr []any, featureName string) bool {
	for _, elem := range arr {
		switch v := elem.(type) {
		case map[string]any:
			if hasFeature(v, featureName) {
				return true
			}
		case []any:
			if hasFeatureInSlice(v, featureName) {
				return true
			}
		}
	}
	return false
}

// looksLikeJSON reports whether the first non-space byte opens a JSON object.
func looksLikeJSON(content []byte) bool {
	for _, b := range content {
		switch b {
		case ' ', '\t', '\n', '\r', 0xEF, 0xBB, 0xBF:
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}
