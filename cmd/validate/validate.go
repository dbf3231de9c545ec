/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokenforge.
package validate

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	buildlib "bennypowers.dev/tokenforge/build"
	"bennypowers.dev/tokenforge/config"
	"bennypowers.dev/tokenforge/fs"
	"bennypowers.dev/tokenforge/internal/project"
	"bennypowers.dev/tokenforge/schema"
	"bennypowers.dev/tokenforge/token"
	"bennypowers.dev/tokenforge/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration and token sources",
	Long: `Validate checks that the configuration names only known transforms, filters
and formats, that source files use one token dialect each, that references
resolve, and that no platform file would receive colliding token names.
Nothing is written.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	quiet := viper.GetBool("quiet")

	p, err := project.Open(fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	problems, err := check(cmd.Context(), p, buildlib.DefaultRegistry(), cmd.OutOrStdout(), quiet)
	if err != nil {
		return err
	}

	for _, problem := range problems {
		fmt.Fprintln(cmd.ErrOrStderr(), problem.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("validation failed with %d problem(s)", len(problems))
	}

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "Configuration and sources valid.")
	}
	return nil
}

// check collects every problem it can find. It returns an error only when
// the sources cannot be read at all.
func check(ctx context.Context, p *project.Project, reg *buildlib.Registry, out io.Writer, quiet bool) ([]validator.ValidationError, error) {
	problems := validator.CheckConfig(p.Config, reg)

	files, err := p.Config.ExpandSources(p.FS, p.Root)
	if err != nil {
		return nil, fmt.Errorf("error expanding sources: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no token source files matched %v", p.Config.Source)
	}

	detection := &schema.DetectionConfig{DefaultDialect: p.Config.SourceDialect()}
	for _, file := range files {
		data, err := p.FS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", file, err)
		}
		dialect, err := schema.DetectDialect(data, detection)
		if err != nil {
			problems = append(problems, validator.ValidationError{FilePath: file, Message: err.Error(), Err: err})
			continue
		}
		if !quiet {
			fmt.Fprintf(out, "Validating %s (%s)...\n", file, dialect)
		}
		problems = append(problems, validator.ValidateConsistencyWithPath(data, dialect, file)...)
	}

	tokens, err := p.Tokens(ctx)
	if err != nil {
		problems = append(problems, validator.ValidationError{Message: err.Error(), Err: err})
		return problems, nil
	}

	for _, name := range p.Config.PlatformNames() {
		platform := p.Config.Platforms[name]
		for _, file := range platform.Files {
			problems = append(problems, checkFile(tokens, name, platform, file, reg)...)
		}
	}

	return problems, nil
}

func checkFile(tokens []*token.Token, name string, platform *config.Platform, file config.File, reg *buildlib.Registry) []validator.ValidationError {
	selected, err := buildlib.Select(tokens, platform, file, reg)
	if err != nil {
		// Reported by CheckConfig
		return nil
	}
	problems := validator.CheckNames(selected)
	for i := range problems {
		problems[i].Message = fmt.Sprintf("%s/%s: %s", name, file.Destination, problems[i].Message)
	}
	return problems
}
