/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema provides token source dialect handling.
package schema

import "fmt"

// Dialect identifies the key conventions of a token source file.
type Dialect int

const (
	// Unknown represents an undetected or unrecognized dialect.
	Unknown Dialect = iota

	// Legacy is the unprefixed format written by Figma exporters and
	// Style Dictionary: "value", "type", "unit", "extensions".
	Legacy

	// DTCG is the Design Tokens Community Group format: "$value", "$type", "$extensions".
	DTCG
)

// DTCG schema URLs recognized in a file's $schema field.
const (
	DraftSchemaURL   = "https://www.designtokens.org/schemas/draft.json"
	V2025SchemaURL   = "https://www.designtokens.org/schemas/2025.10.json"
	legacyFieldValue = "value"
)

// String returns the string representation of the dialect.
func (d Dialect) String() string {
	switch d {
	case Legacy:
		return "legacy"
	case DTCG:
		return "dtcg"
	default:
		return "unknown"
	}
}

// Keys returns the field names a token object uses in this dialect.
func (d Dialect) Keys() Keys {
	if d == DTCG {
		return Keys{
			Value:       "$value",
			Type:        "$type",
			Description: "$description",
			Extensions:  "$extensions",
		}
	}
	return Keys{
		Value:       legacyFieldValue,
		Type:        "type",
		Description: "description",
		Extensions:  "extensions",
	}
}

// Keys holds the field names of a token object.
type Keys struct {
	Value       string
	Type        string
	Description string
	Extensions  string
}

// FromURL returns the dialect for a JSON Schema URL.
func FromURL(url string) (Dialect, error) {
	switch url {
	case DraftSchemaURL, V2025SchemaURL:
		return DTCG, nil
	default:
		return Unknown, fmt.Errorf("%w: unrecognized schema URL %s", ErrUnknownDialect, url)
	}
}

// FromString returns the dialect from a string representation.
func FromString(s string) (Dialect, error) {
	switch s {
	case "legacy", "figma", "style-dictionary":
		return Legacy, nil
	case "dtcg", "draft", "v2025.10", "v2025_10", "2025.10":
		return DTCG, nil
	default:
		return Unknown, fmt.Errorf("%w: %s", ErrUnknownDialect, s)
	}
}
