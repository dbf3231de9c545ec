/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build runs the token pipeline for each configured platform and
// writes the resulting files.
package build

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"bennypowers.dev/tokenforge/config"
	"bennypowers.dev/tokenforge/convert"
	"bennypowers.dev/tokenforge/convert/formatter"
	"bennypowers.dev/tokenforge/filter"
	"bennypowers.dev/tokenforge/fs"
	"bennypowers.dev/tokenforge/internal/logger"
	"bennypowers.dev/tokenforge/schema"
	"bennypowers.dev/tokenforge/token"
	"bennypowers.dev/tokenforge/transform"
	"bennypowers.dev/tokenforge/validator"
)

// Options configures a build.
type Options struct {
	// FS receives the output files. Defaults to the OS filesystem.
	FS fs.FileSystem

	// Root is the directory build paths are relative to.
	Root string

	// Platforms selects platforms by name. Empty means all, in sorted order.
	Platforms []string

	// Jobs limits how many platforms build at once. Zero or less means GOMAXPROCS.
	Jobs int

	// DryRun computes outputs without writing them.
	DryRun bool
}

// Output is one generated file.
type Output struct {
	Platform string
	Path     string
	Content  []byte
	Count    int
}

// PlatformError reports the failures of one platform.
type PlatformError struct {
	Platform string
	Failures int
	Err      error
}

func (e *PlatformError) Error() string {
	if e.Failures > 0 {
		return fmt.Sprintf("platform %s: failed to generate %d output(s): %v", e.Platform, e.Failures, e.Err)
	}
	return fmt.Sprintf("platform %s: %v", e.Platform, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// Build runs every selected platform against tokens, which is never modified.
// Outputs are returned in platform order, then file order. A failing platform
// does not stop the others; its error is joined into the returned error.
func Build(ctx context.Context, tokens []*token.Token, cfg *config.Config, reg *Registry, opts Options) ([]Output, error) {
	names := opts.Platforms
	if len(names) == 0 {
		names = cfg.PlatformNames()
	}
	for _, name := range names {
		if _, ok := cfg.Platforms[name]; !ok {
			return nil, fmt.Errorf("%w: unknown platform %q", schema.ErrInvalidConfig, name)
		}
	}
	if len(names) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine owns its slot
	outputs := make([][]Output, len(names))
	errs := make([]error, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(names)))

	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outputs[i], errs[i] = BuildPlatform(gctx, tokens, name, cfg.Platforms[name], reg, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var result []Output
	for _, out := range outputs {
		result = append(result, out...)
	}
	return result, errors.Join(errs...)
}

// BuildPlatform runs one platform: it clones tokens, applies attribute and
// name transforms, then filters, transforms values, checks names and formats
// each file. A failing file is logged and counted; the other files are still
// written.
func BuildPlatform(ctx context.Context, tokens []*token.Token, name string, p *config.Platform, reg *Registry, opts Options) ([]Output, error) {
	if p == nil {
		return nil, &PlatformError{Platform: name, Err: fmt.Errorf("%w: platform is empty", schema.ErrInvalidConfig)}
	}

	chain, err := reg.Chain(p)
	if err != nil {
		return nil, &PlatformError{Platform: name, Err: err}
	}

	working := token.CloneAll(tokens)
	chain.Attributes(working)
	chain.Rename(working, transform.Options{Prefix: p.Prefix})

	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	var outputs []Output
	var failures int
	var errs []error

	for _, file := range p.Files {
		if err := ctx.Err(); err != nil {
			return outputs, err
		}

		path := outputPath(opts.Root, p.BuildPath, file.Destination)
		out, err := buildFile(working, chain, file, reg)
		if err != nil {
			logger.Error("%s: %v", path, err)
			failures++
			errs = append(errs, fmt.Errorf("%s: %w", file.Destination, err))
			continue
		}
		out.Platform = name
		out.Path = path

		if !opts.DryRun {
			if err := write(filesystem, path, out.Content); err != nil {
				logger.Error("%v", err)
				failures++
				errs = append(errs, err)
				continue
			}
			logger.Debug("wrote %s (%d tokens)", path, out.Count)
		}

		outputs = append(outputs, out)
	}

	if failures > 0 {
		return outputs, &PlatformError{Platform: name, Failures: failures, Err: errors.Join(errs...)}
	}
	return outputs, nil
}

// Select returns the tokens a platform file's formatter receives: the
// platform's attribute and name transforms applied, the file filter applied,
// and value transforms applied to copies of the survivors.
func Select(tokens []*token.Token, p *config.Platform, file config.File, reg *Registry) ([]*token.Token, error) {
	chain, err := reg.Chain(p)
	if err != nil {
		return nil, err
	}
	working := token.CloneAll(tokens)
	chain.Attributes(working)
	chain.Rename(working, transform.Options{Prefix: p.Prefix})
	return selectTokens(working, chain, file, reg)
}

func selectTokens(working []*token.Token, chain transform.Chain, file config.File, reg *Registry) ([]*token.Token, error) {
	f, err := reg.Filter(file.Filter)
	if err != nil {
		return nil, err
	}
	selected := token.CloneAll(filter.Apply(working, f))
	chain.Values(selected)
	return selected, nil
}

func buildFile(working []*token.Token, chain transform.Chain, file config.File, reg *Registry) (Output, error) {
	entry, err := reg.Format(file.Format)
	if err != nil {
		return Output{}, err
	}

	selected, err := selectTokens(working, chain, file, reg)
	if err != nil {
		return Output{}, err
	}

	if problems := validator.CheckNames(selected); len(problems) > 0 {
		errs := make([]error, len(problems))
		for i := range problems {
			errs[i] = &problems[i]
		}
		return Output{}, errors.Join(errs...)
	}

	content, err := entry.Formatter.Format(selected, formatter.Options{Selector: file.Options.Selector})
	if err != nil {
		return Output{}, fmt.Errorf("error formatting: %w", err)
	}

	if file.Options.HeaderEnabled() {
		content = convert.WithHeader(content, file.Options.Header(), entry.Comments)
	}

	// Append newline for proper file formatting (if not already present)
	if len(content) == 0 || content[len(content)-1] != '\n' {
		content = append(content, '\n')
	}

	return Output{Content: content, Count: len(selected)}, nil
}

func outputPath(root, buildPath, destination string) string {
	if filepath.IsAbs(buildPath) {
		return filepath.Join(buildPath, destination)
	}
	return filepath.Join(root, buildPath, destination)
}

func write(filesystem fs.FileSystem, path string, content []byte) error {
	if err := filesystem.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating directory for %s: %w", path, err)
	}
	if err := filesystem.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("error writing to %s: %w", path, err)
	}
	return nil
}
