/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "regexp"

// curlyBracePattern matches {token.path} references.
var curlyBracePattern = regexp.MustCompile(`\{([^{}]+)\}`)

// ParseCurlyBraceRef extracts the token path from a value that is exactly
// one curly brace reference, e.g. "{color.base.red}".
// Returns the path and true if valid, empty string and false otherwise.
func ParseCurlyBraceRef(value string) (string, bool) {
	matches := curlyBracePattern.FindStringSubmatchIndex(value)
	if matches == nil || matches[0] != 0 || matches[1] != len(value) {
		return "", false
	}
	return value[matches[2]:matches[3]], true
}

// IsCurlyBraceRef returns true if the value contains a curly brace reference.
func IsCurlyBraceRef(value string) bool {
	return curlyBracePattern.MatchString(value)
}

// ExtractAllRefs extracts all curly brace references from a string.
func ExtractAllRefs(value string) []string {
	matches := curlyBracePattern.FindAllStringSubmatch(value, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) >= 2 {
			refs = append(refs, m[1])
		}
	}
	return refs
}

// ReplaceRefs replaces every curly brace reference in value with the result of fn.
func ReplaceRefs(value string, fn func(path string) string) string {
	return curlyBracePattern.ReplaceAllStringFunc(value, func(match string) string {
		return fn(match[1 : len(match)-1])
	})
}
