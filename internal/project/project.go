/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project resolves the project root, configuration and source
// tokens the CLI commands work on.
package project

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"bennypowers.dev/tokenforge/config"
	"bennypowers.dev/tokenforge/fs"
	"bennypowers.dev/tokenforge/load"
	"bennypowers.dev/tokenforge/token"
)

// Project is a loaded build configuration and where it applies.
type Project struct {
	FS     fs.FileSystem
	Root   string
	Config *config.Config
}

// Open loads the project from the --root and --config settings.
// Without a config file the default build configuration is used.
func Open(filesystem fs.FileSystem) (*Project, error) {
	root := viper.GetString("root")
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}

	var cfg *config.Config
	if path := viper.GetString("config"); path != "" {
		cfg, err = config.LoadFile(filesystem, path)
	} else {
		cfg, err = config.LoadOrDefault(filesystem, absRoot)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Project{FS: filesystem, Root: absRoot, Config: cfg}, nil
}

// Tokens loads and resolves the configured sources.
func (p *Project) Tokens(ctx context.Context) ([]*token.Token, error) {
	return load.Load(ctx, load.Options{
		FS:      p.FS,
		Root:    p.Root,
		Sources: p.Config.Source,
		Dialect: p.Config.SourceDialect(),
	})
}
