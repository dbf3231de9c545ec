/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading design tokens.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokenforge/config"
	"bennypowers.dev/tokenforge/fs"
	"bennypowers.dev/tokenforge/internal/logger"
	"bennypowers.dev/tokenforge/parser"
	"bennypowers.dev/tokenforge/resolver"
	"bennypowers.dev/tokenforge/schema"
	"bennypowers.dev/tokenforge/token"
)

// ErrNoSources indicates the source patterns matched no files.
var ErrNoSources = errors.New("no token source files matched")

// Options configures how tokens are loaded.
type Options struct {
	// Root is the directory source patterns are relative to.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Sources are file paths or doublestar globs.
	Sources []string

	// Dialect is used for files without a $schema.
	// Unknown means detect per file.
	Dialect schema.Dialect
}

// Load reads every source file and returns one resolved token set.
//
// The loading process:
//  1. Expands source globs (lexical order per pattern, patterns in order)
//  2. Detects each file's dialect and parses it
//  3. Merges files; a token defined again replaces the earlier one in place
//  4. Resolves references
func Load(ctx context.Context, opts Options) ([]*token.Token, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	paths, err := config.ExpandPatterns(filesystem, root, opts.Sources)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoSources, opts.Sources)
	}

	p := parser.NewJSONParser()
	detection := &schema.DetectionConfig{DefaultDialect: opts.Dialect}

	var tokens []*token.Token
	index := make(map[string]int)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		dialect, err := schema.DetectDialect(content, detection)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("loading %s (%s)", path, dialect)

		parsed, err := p.Parse(content, parser.Options{Dialect: dialect})
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		for _, tok := range parsed {
			tok.FilePath = path
			key := resolver.Key(tok)
			if i, ok := index[key]; ok {
				logger.Warn("%s: %s overrides the definition in %s", path, key, tokens[i].FilePath)
				tokens[i] = tok
				continue
			}
			index[key] = len(tokens)
			tokens = append(tokens, tok)
		}
	}

	if err := resolver.ResolveReferences(tokens); err != nil {
		return nil, fmt.Errorf("failed to resolve references: %w", err)
	}

	return tokens, nil
}
