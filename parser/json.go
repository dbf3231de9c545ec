/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenforge/fs"
	"bennypowers.dev/tokenforge/parser/common"
	"bennypowers.dev/tokenforge/schema"
	"bennypowers.dev/tokenforge/token"
)

// JSONParser parses JSON (with comments) or YAML token files.
// Both are decoded into a yaml.Node tree so tokens keep their document order.
type JSONParser struct{}

// NewJSONParser creates a new token parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses JSON or YAML token data and returns tokens.
func (p *JSONParser) Parse(data []byte, opts Options) ([]*token.Token, error) {
	dialect := opts.Dialect
	if dialect == schema.Unknown {
		detected, err := schema.DetectDialect(data, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to detect dialect: %w", err)
		}
		dialect = detected
	}

	if isLikelyJSON(data) {
		// Comments and trailing commas are stripped; plain JSON is valid YAML
		data = jsonc.ToJSON(data)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse tokens: %w", err)
	}

	result := []*token.Token{}
	if len(root.Content) == 0 {
		return result, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("token source root must be an object")
	}

	w := &walker{
		dialect: dialect,
		keys:    dialect.Keys(),
		opts:    opts,
	}
	if err := w.extract(doc, nil, "", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ParseFile parses a token file and returns tokens.
func (p *JSONParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) ([]*token.Token, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	tokens, err := p.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}

	for _, t := range tokens {
		t.FilePath = path
	}

	return tokens, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

type walker struct {
	dialect schema.Dialect
	keys    schema.Keys
	opts    Options
}

// extract walks a group mapping in document order.
// inheritedType is passed down from parent groups for $type inheritance.
func (w *walker) extract(node *yaml.Node, path []string, inheritedType string, result *[]*token.Token) error {
	currentType := inheritedType
	if w.dialect == schema.DTCG {
		if typeNode := field(node, w.keys.Type); typeNode != nil && typeNode.Kind == yaml.ScalarNode {
			currentType = typeNode.Value
		}
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := resolveAlias(node.Content[i+1])
		key := keyNode.Value

		if strings.HasPrefix(key, "$") || valueNode.Kind != yaml.MappingNode {
			continue
		}

		currentPath := make([]string, len(path)+1)
		copy(currentPath, path)
		currentPath[len(path)] = key

		if w.isToken(valueNode) {
			t, err := w.createToken(keyNode, valueNode, currentPath, currentType)
			if err != nil {
				return err
			}
			*result = append(*result, t)
			continue
		}

		if err := w.extract(valueNode, currentPath, currentType, result); err != nil {
			return err
		}
	}
	return nil
}

// isToken reports whether a mapping is a token rather than a group.
// A legacy group may contain a child named "value", so legacy tokens must
// also declare a type or hold a non-object value.
func (w *walker) isToken(node *yaml.Node) bool {
	valueNode := field(node, w.keys.Value)
	if valueNode == nil {
		return false
	}
	if w.dialect == schema.DTCG {
		return true
	}
	if typeNode := field(node, w.keys.Type); typeNode != nil && typeNode.Kind == yaml.ScalarNode {
		return true
	}
	return resolveAlias(valueNode).Kind != yaml.MappingNode
}

func (w *walker) createToken(keyNode, node *yaml.Node, path []string, inheritedType string) (*token.Token, error) {
	value, err := decode(field(node, w.keys.Value))
	if err != nil {
		return nil, fmt.Errorf("%s: invalid value: %w", strings.Join(path, "."), err)
	}

	t := &token.Token{
		Name:     strings.Join(path, "/"),
		Path:     path,
		Value:    value,
		Original: token.CloneValue(value),
		Type:     inheritedType,
	}

	if n := field(node, w.keys.Type); n != nil && n.Kind == yaml.ScalarNode {
		t.Type = n.Value
	}
	if n := field(node, w.keys.Description); n != nil && n.Kind == yaml.ScalarNode {
		t.Description = n.Value
	}
	if n := field(node, "unit"); n != nil && n.Kind == yaml.ScalarNode {
		t.Unit = n.Value
	}
	if n := field(node, "attributes"); n != nil && n.Kind == yaml.MappingNode {
		if err := n.Decode(&t.Attributes); err != nil {
			return nil, fmt.Errorf("%s: invalid attributes: %w", t.DotPath(), err)
		}
	}
	if n := field(node, w.keys.Extensions); n != nil {
		ext, err := decode(n)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid extensions: %w", t.DotPath(), err)
		}
		if m, ok := ext.(map[string]any); ok {
			t.Extensions = m
		}
	}

	w.normalizeValue(t)

	if !w.opts.SkipPositions {
		// yaml.v3 is 1-based, we use 0-based
		if keyNode.Line > 0 && keyNode.Line-1 <= math.MaxUint32 {
			t.Line = uint32(keyNode.Line - 1)
		}
		if keyNode.Column > 0 && keyNode.Column-1 <= math.MaxUint32 {
			t.Character = uint32(keyNode.Column - 1)
		}
	}

	return t, nil
}

// normalizeValue flattens structured DTCG values into the literal forms the
// transforms understand. Values that cannot be normalized are left as declared.
func (w *walker) normalizeValue(t *token.Token) {
	obj, ok := t.Value.(map[string]any)
	if !ok {
		return
	}

	switch t.Type {
	case token.TypeColor:
		if css, err := common.NormalizeColor(obj); err == nil {
			t.Value = css
		}
	case token.TypeDimension:
		// 2025.10 dimensions: {"value": 16, "unit": "px"}
		unit, hasUnit := obj["unit"].(string)
		magnitude, isNumber := token.NumericValue(obj["value"])
		if !hasUnit || !isNumber {
			return
		}
		switch unit {
		case "px":
			t.Value = magnitude
			t.Unit = token.UnitPixel
		case "%":
			t.Value = magnitude
			t.Unit = token.UnitPercent
		default:
			t.Value = token.ValueString(magnitude) + unit
		}
	}
}

// field returns the value node for key in a mapping node.
func field(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return resolveAlias(node.Content[i+1])
		}
	}
	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// decode converts a node into plain Go values with string-keyed maps.
func decode(node *yaml.Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	return normalizeMap(v), nil
}

// normalizeMap recursively converts map[any]any to map[string]any.
// YAML with numeric keys (like "10:") creates map[any]any,
// which must be normalized for our string-keyed processing.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}
