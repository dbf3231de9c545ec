/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser provides design token source parsing.
package parser

import (
	"bennypowers.dev/tokenforge/fs"
	"bennypowers.dev/tokenforge/schema"
	"bennypowers.dev/tokenforge/token"
)

// Options configures token parsing.
type Options struct {
	// Dialect overrides auto-detection.
	Dialect schema.Dialect

	// SkipPositions disables line/character tracking.
	SkipPositions bool
}

// Parser parses design token files.
type Parser interface {
	// Parse parses token data and returns tokens in document order.
	Parse(data []byte, opts Options) ([]*token.Token, error)

	// ParseFile parses a token file and returns tokens in document order.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) ([]*token.Token, error)
}
