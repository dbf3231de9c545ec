/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import "errors"

// Sentinel errors for loading and building tokens.
var (
	// ErrUnknownDialect indicates an unrecognized source dialect.
	ErrUnknownDialect = errors.New("unknown token dialect")

	// ErrMixedDialect indicates a source file mixes legacy and DTCG token fields.
	ErrMixedDialect = errors.New("mixed token dialects")

	// ErrCircularReference indicates a circular reference was detected.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrUnresolvedReference indicates a reference could not be resolved.
	ErrUnresolvedReference = errors.New("unresolved token reference")

	// ErrNameCollision indicates two tokens resolved to the same output name,
	// or a token resolved to an empty name.
	ErrNameCollision = errors.New("token name collision")

	// ErrUnknownTransform indicates a transform or transform group is not registered.
	ErrUnknownTransform = errors.New("unknown transform")

	// ErrUnknownFilter indicates a filter is not registered.
	ErrUnknownFilter = errors.New("unknown filter")

	// ErrUnknownFormat indicates a format is not registered.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrInvalidConfig indicates the build configuration is malformed.
	ErrInvalidConfig = errors.New("invalid configuration")
)
