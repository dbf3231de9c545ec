/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks token sources, emitter input and build configuration.
package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenforge/schema"
)

// ValidationError represents a validation failure.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path is the token or config path of the problematic element.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
	// Err is the sentinel this error matches with errors.Is.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Unwrap returns the sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidateConsistency checks that source content does not mix dialects.
// Returns errors for:
// - DTCG "$value"/"$type" keys in a legacy file
// - Legacy "value"/"type" tokens in a DTCG file
func ValidateConsistency(content []byte, dialect schema.Dialect) []ValidationError {
	return ValidateConsistencyWithPath(content, dialect, "")
}

// ValidateConsistencyWithPath validates content and includes file path in errors.
func ValidateConsistencyWithPath(content []byte, dialect schema.Dialect, filePath string) []ValidationError {
	if looksLikeJSON(content) {
		content = jsonc.ToJSON(content)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return []ValidationError{{
			FilePath: filePath,
			Message:  fmt.Sprintf("failed to parse content: %v", err),
		}}
	}

	switch dialect {
	case schema.Legacy:
		return validateLegacy(data, filePath, nil)
	case schema.DTCG:
		return validateDTCG(data, filePath, nil)
	default:
		return nil
	}
}

// validateLegacy checks for DTCG keys that a legacy parser would ignore.
func validateLegacy(data map[string]any, filePath string, path []string) []ValidationError {
	var errors []ValidationError

	for _, key := range slices.Sorted(maps.Keys(data)) {
		currentPath := append(path[:len(path):len(path)], key)

		if key == "$value" || key == "$type" {
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Path:       strings.Join(path, "."),
				Message:    key + " is not valid in a legacy token file",
				Suggestion: "add a DTCG $schema to the file or set dialect: dtcg",
				Err:        schema.ErrMixedDialect,
			})
			continue
		}

		if child, ok := data[key].(map[string]any); ok {
			errors = append(errors, validateLegacy(child, filePath, currentPath)...)
		}
	}

	return errors
}

// validateDTCG checks for legacy tokens that a DTCG parser would treat as groups.
func validateDTCG(data map[string]any, filePath string, path []string) []ValidationError {
	var errors []ValidationError

	_, hasValue := data["value"]
	_, hasType := data["type"]
	_, hasDollarValue := data["$value"]
	if hasValue && hasType && !hasDollarValue {
		return []ValidationError{{
			FilePath:   filePath,
			Path:       strings.Join(path, "."),
			Message:    "legacy value/type token in a DTCG file",
			Suggestion: "rename the fields to $value and $type",
			Err:        schema.ErrMixedDialect,
		}}
	}

	for _, key := range slices.Sorted(maps.Keys(data)) {
		if strings.HasPrefix(key, "$") {
			continue
		}
		if child, ok := data[key].(map[string]any); ok {
			currentPath := append(path[:len(path):len(path)], key)
			errors = append(errors, validateDTCG(child, filePath, currentPath)...)
		}
	}

	return errors
}

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
