/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for tokenforge.
package build

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	buildlib "bennypowers.dev/tokenforge/build"
	"bennypowers.dev/tokenforge/fs"
	"bennypowers.dev/tokenforge/internal/project"
)

var (
	headingColor = color.New(color.Bold)
	successColor = color.New(color.FgGreen)
	dryRunColor  = color.New(color.FgYellow)
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build",
	Short: "Build every configured platform",
	Long: `Build transforms the configured token sources for each platform and writes
the platform's files under its build path.`,
	Example: `  # Build all platforms
  tokenforge build

  # Build only the css and scss platforms, one at a time
  tokenforge build --platform css --platform scss --jobs 1

  # Show what would be written
  tokenforge build --dry-run`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringSliceP("platform", "p", nil, "Platform to build (repeatable, default all)")
	Cmd.Flags().IntP("jobs", "j", 0, "Platforms to build in parallel (default GOMAXPROCS)")
	Cmd.Flags().Bool("dry-run", false, "Compute outputs without writing files")
}

func run(cmd *cobra.Command, args []string) error {
	platforms, _ := cmd.Flags().GetStringSlice("platform")
	jobs, _ := cmd.Flags().GetInt("jobs")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	p, err := project.Open(fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	tokens, err := p.Tokens(cmd.Context())
	if err != nil {
		return err
	}

	outputs, buildErr := buildlib.Build(cmd.Context(), tokens, p.Config, buildlib.DefaultRegistry(), buildlib.Options{
		FS:        p.FS,
		Root:      p.Root,
		Platforms: platforms,
		Jobs:      jobs,
		DryRun:    dryRun,
	})

	if !viper.GetBool("quiet") {
		printSummary(cmd.OutOrStdout(), p.Root, outputs, dryRun)
	}

	return buildErr
}

// printSummary lists the outputs under a heading per platform.
func printSummary(w io.Writer, root string, outputs []buildlib.Output, dryRun bool) {
	caser := cases.Title(language.English)
	platform := ""
	for _, out := range outputs {
		if out.Platform != platform {
			platform = out.Platform
			headingColor.Fprintln(w, caser.String(platform))
		}

		path := out.Path
		if rel, err := filepath.Rel(root, out.Path); err == nil {
			path = rel
		}

		if dryRun {
			fmt.Fprintf(w, "  %s %s (%d tokens, not written)\n", dryRunColor.Sprint("-"), path, out.Count)
			continue
		}
		fmt.Fprintf(w, "  %s %s (%d tokens)\n", successColor.Sprint("✓"), path, out.Count)
	}
}
