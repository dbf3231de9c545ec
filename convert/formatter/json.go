/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Indent is the indentation unit of JSON output.
const Indent = "  "

// JSONValue encodes v as indented JSON for embedding at the given nesting depth.
// HTML characters are not escaped.
func JSONValue(v any, depth int) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(strings.Repeat(Indent, depth), Indent)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// JSONKey encodes s as a JSON string.
func JSONKey(s string) string {
	out, _ := JSONValue(s, 0)
	return out
}
