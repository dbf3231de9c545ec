/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"errors"
	"fmt"

	"bennypowers.dev/tokenforge/schema"
	"bennypowers.dev/tokenforge/token"
)

// ResolveReferences replaces {path.to.token} references in token values.
//
// A value that is exactly one reference takes a copy of the target's value
// and inherits its type and unit when the token declares none. References
// embedded in longer strings are interpolated with the target's textual form.
// Original keeps the value as declared.
func ResolveReferences(tokens []*token.Token) error {
	graph := BuildDependencyGraph(tokens)

	sortedKeys, err := graph.TopologicalSort()
	if err != nil {
		return err
	}

	tokenByKey := make(map[string]*token.Token, len(tokens))
	for _, tok := range tokens {
		tokenByKey[Key(tok)] = tok
	}

	var errs []error
	for _, key := range sortedKeys {
		tok := tokenByKey[key]
		if tok == nil {
			continue
		}
		if err := resolveToken(tok, tokenByKey); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func resolveToken(tok *token.Token, tokenByKey map[string]*token.Token) error {
	if s, ok := tok.Value.(string); ok {
		if ref, whole := token.ParseCurlyBraceRef(s); whole {
			target := tokenByKey[ref]
			if target == nil {
				return unresolved(tok, ref)
			}
			tok.Value = token.CloneValue(target.Value)
			if tok.Type == "" {
				tok.Type = target.Type
			}
			if tok.Unit == "" {
				tok.Unit = target.Unit
			}
			return nil
		}
	}

	resolved, err := interpolate(tok, tok.Value, tokenByKey)
	if err != nil {
		return err
	}
	tok.Value = resolved
	return nil
}

// interpolate resolves references inside strings of a (possibly composite) value.
func interpolate(tok *token.Token, value any, tokenByKey map[string]*token.Token) (any, error) {
	switch v := value.(type) {
	case string:
		if !token.IsCurlyBraceRef(v) {
			return v, nil
		}
		if ref, whole := token.ParseCurlyBraceRef(v); whole {
			target := tokenByKey[ref]
			if target == nil {
				return nil, unresolved(tok, ref)
			}
			return token.CloneValue(target.Value), nil
		}
		var missing error
		out := token.ReplaceRefs(v, func(ref string) string {
			target := tokenByKey[ref]
			if target == nil {
				if missing == nil {
					missing = unresolved(tok, ref)
				}
				return "{" + ref + "}"
			}
			return token.ValueString(target.Value)
		})
		if missing != nil {
			return nil, missing
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			r, err := interpolate(tok, item, tokenByKey)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			r, err := interpolate(tok, item, tokenByKey)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}
		return out, nil
	default:
		return value, nil
	}
}

func unresolved(tok *token.Token, ref string) error {
	return fmt.Errorf("%s: %w: {%s}", Key(tok), schema.ErrUnresolvedReference, ref)
}
