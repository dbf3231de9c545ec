/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokenforge.
package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenforge/cmd/build"
	"bennypowers.dev/tokenforge/cmd/list"
	"bennypowers.dev/tokenforge/cmd/validate"
	"bennypowers.dev/tokenforge/cmd/version"
	"bennypowers.dev/tokenforge/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tokenforge",
	Short: "Build platform style files from design tokens",
	Long: `tokenforge transforms design tokens exported from Figma (or written by hand)
into CSS custom properties, SCSS and Less variables, JSON and Android resources.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Config file (default .config/tokenforge.{yaml,yml,json} under --root)")
	flags.String("root", ".", "Project root that sources and build paths are relative to")
	flags.BoolP("quiet", "q", false, "Only output errors")
	flags.Bool("verbose", false, "Output debug messages")

	viper.SetEnvPrefix("tokenforge")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if viper.GetBool("quiet") {
		logger.SetOutput(io.Discard)
	}
	logger.SetVerbose(viper.GetBool("verbose"))
	return nil
}
