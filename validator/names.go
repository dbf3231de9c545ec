/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"fmt"

	"bennypowers.dev/tokenforge/schema"
	"bennypowers.dev/tokenforge/token"
)

// CheckNames reports tokens whose resolved names are empty or collide
// within one output. Collisions are reported once per later token.
func CheckNames(tokens []*token.Token) []ValidationError {
	var errors []ValidationError
	seen := make(map[string]*token.Token, len(tokens))

	for _, tok := range tokens {
		if tok.Name == "" {
			errors = append(errors, ValidationError{
				FilePath:   tok.FilePath,
				Path:       tok.DotPath(),
				Message:    "token resolved to an empty name",
				Suggestion: "check that the path has segments other than its category",
				Err:        schema.ErrNameCollision,
			})
			continue
		}

		first, ok := seen[tok.Name]
		if !ok {
			seen[tok.Name] = tok
			continue
		}
		errors = append(errors, ValidationError{
			FilePath:   tok.FilePath,
			Path:       tok.DotPath(),
			Message:    fmt.Sprintf("name %q is already used by %s", tok.Name, first.DotPath()),
			Suggestion: "rename one of the tokens or split them into separate files with a filter",
			Err:        schema.ErrNameCollision,
		})
	}

	return errors
}
