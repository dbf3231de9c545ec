/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokenforge.
package list

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	buildlib "bennypowers.dev/tokenforge/build"
	"bennypowers.dev/tokenforge/fs"
	"bennypowers.dev/tokenforge/internal/project"
	"bennypowers.dev/tokenforge/schema"
	"bennypowers.dev/tokenforge/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List tokens as a platform file receives them",
	Long: `List the source tokens, or with --platform the tokens one platform file
receives after its filter and transforms, in the order the formatter sees them.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("platform", "p", "", "Platform whose file input to list")
	Cmd.Flags().Int("file", 0, "Index of the platform file")
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

func run(cmd *cobra.Command, args []string) error {
	platform, _ := cmd.Flags().GetString("platform")
	fileIndex, _ := cmd.Flags().GetInt("file")
	typeFilter, _ := cmd.Flags().GetString("type")
	format, _ := cmd.Flags().GetString("format")

	p, err := project.Open(fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	tokens, err := p.Tokens(cmd.Context())
	if err != nil {
		return err
	}

	if platform != "" {
		tokens, err = platformInput(tokens, p, platform, fileIndex)
		if err != nil {
			return err
		}
	}

	tokens = filterTokens(tokens, typeFilter)

	switch format {
	case "json":
		return outputJSON(cmd.OutOrStdout(), tokens)
	case "table":
		return outputTable(cmd.OutOrStdout(), tokens)
	default:
		return fmt.Errorf("unknown output format %q: use table or json", format)
	}
}

func platformInput(tokens []*token.Token, p *project.Project, platform string, fileIndex int) ([]*token.Token, error) {
	cfg, ok := p.Config.Platforms[platform]
	if !ok {
		return nil, fmt.Errorf("%w: unknown platform %q (available: %v)", schema.ErrInvalidConfig, platform, p.Config.PlatformNames())
	}
	if fileIndex < 0 || fileIndex >= len(cfg.Files) {
		return nil, fmt.Errorf("%w: platform %q has %d file(s), no index %d", schema.ErrInvalidConfig, platform, len(cfg.Files), fileIndex)
	}
	return buildlib.Select(tokens, cfg, cfg.Files[fileIndex], buildlib.DefaultRegistry())
}

func filterTokens(tokens []*token.Token, typeFilter string) []*token.Token {
	if typeFilter == "" {
		return tokens
	}
	filtered := make([]*token.Token, 0)
	for _, tok := range tokens {
		if tok.Type == typeFilter {
			filtered = append(filtered, tok)
		}
	}
	return filtered
}

func outputTable(w io.Writer, tokens []*token.Token) error {
	for _, tok := range tokens {
		typeStr := tok.Type
		if typeStr == "" {
			typeStr = "-"
		}
		if _, err := fmt.Fprintf(w, "%-40s %-16s %s\n", tok.Name, typeStr, token.ValueString(tok.Value)); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, tokens []*token.Token) error {
	type tokenOutput struct {
		Name        string   `json:"name"`
		Path        []string `json:"path"`
		Value       any      `json:"value"`
		Type        string   `json:"type,omitempty"`
		Description string   `json:"description,omitempty"`
	}

	output := make([]tokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, tokenOutput{
			Name:        tok.Name,
			Path:        tok.Path,
			Value:       tok.Value,
			Type:        tok.Type,
			Description: tok.Description,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
