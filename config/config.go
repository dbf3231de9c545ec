/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides build configuration loading for tokenforge.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenforge/schema"
)

// DefaultHeader is the file header text used when showFileHeader is on.
const DefaultHeader = "Do not edit directly, this file was generated by tokenforge."

// Config represents the build configuration.
type Config struct {
	// Source lists token source files (paths or doublestar globs).
	Source []string `yaml:"source" json:"source"`

	// Dialect forces a source dialect (optional).
	// Valid values: "legacy", "dtcg"
	Dialect string `yaml:"dialect" json:"dialect"`

	// Platforms are the named output targets.
	Platforms map[string]*Platform `yaml:"platforms" json:"platforms"`
}

// Platform is one output target: a transform chain and its files.
type Platform struct {
	// TransformGroup names a registered group of transforms.
	TransformGroup string `yaml:"transformGroup" json:"transformGroup"`

	// Transforms are appended after the group's transforms.
	Transforms []string `yaml:"transforms" json:"transforms"`

	// BuildPath is the output directory, relative to the project root.
	BuildPath string `yaml:"buildPath" json:"buildPath"`

	// Prefix is prepended to every resolved name.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Files are the outputs written for this platform.
	Files []File `yaml:"files" json:"files"`
}

// File is one output file of a platform.
type File struct {
	Destination string      `yaml:"destination" json:"destination"`
	Format      string      `yaml:"format" json:"format"`
	Filter      FilterSpec  `yaml:"filter" json:"filter"`
	Options     FileOptions `yaml:"options" json:"options"`
}

// FileOptions are per-file emitter options.
type FileOptions struct {
	// ShowFileHeader toggles the generated-file comment. Defaults to true.
	ShowFileHeader *bool `yaml:"showFileHeader" json:"showFileHeader"`

	// FileHeader overrides the header text.
	FileHeader string `yaml:"fileHeader" json:"fileHeader"`

	// Selector overrides the CSS rule selector.
	Selector string `yaml:"selector" json:"selector"`
}

// HeaderEnabled reports whether a file header should be written.
func (o FileOptions) HeaderEnabled() bool {
	return o.ShowFileHeader == nil || *o.ShowFileHeader
}

// Header returns the header text for the file.
func (o FileOptions) Header() string {
	if o.FileHeader != "" {
		return o.FileHeader
	}
	return DefaultHeader
}

// FilterSpec selects tokens for a file.
// It can be specified as a registered filter name or as an attribute object.
type FilterSpec struct {
	// Name is a registered filter, e.g. "validToken".
	Name string

	// Attributes match token fields by equality, e.g. {type: color}.
	Attributes map[string]any
}

// IsZero reports whether no filter was configured.
func (f FilterSpec) IsZero() bool {
	return f.Name == "" && len(f.Attributes) == 0
}

// String renders the filter for diagnostics.
func (f FilterSpec) String() string {
	if f.Name != "" {
		return f.Name
	}
	if len(f.Attributes) == 0 {
		return "(none)"
	}
	data, err := json.Marshal(f.Attributes)
	if err != nil {
		return fmt.Sprint(f.Attributes)
	}
	return string(data)
}

// UnmarshalYAML handles both string and object forms for FilterSpec.
func (f *FilterSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Name = node.Value
		return nil
	}
	return node.Decode(&f.Attributes)
}

// UnmarshalJSON handles both string and object forms for FilterSpec.
func (f *FilterSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Name = s
		return nil
	}
	return json.Unmarshal(data, &f.Attributes)
}

// MarshalYAML writes the string form when the filter is named.
func (f FilterSpec) MarshalYAML() (any, error) {
	if f.Name != "" {
		return f.Name, nil
	}
	return f.Attributes, nil
}

// MarshalJSON writes the string form when the filter is named.
func (f FilterSpec) MarshalJSON() ([]byte, error) {
	if f.Name != "" {
		return json.Marshal(f.Name)
	}
	return json.Marshal(f.Attributes)
}

// Default returns the stock build: web stylesheets, flat JSON and Android colors.
func Default() *Config {
	valid := FilterSpec{Name: "validToken"}
	noHeader := false
	return &Config{
		Source: []string{"tokens/*.json"},
		Platforms: map[string]*Platform{
			"scss": {
				TransformGroup: "custom/css",
				BuildPath:      "build/scss/",
				Files: []File{{
					Destination: "_variables.scss",
					Format:      "scss/variables",
					Filter:      valid,
				}},
			},
			"less": {
				TransformGroup: "custom/css",
				BuildPath:      "build/less/",
				Files: []File{{
					Destination: "_variables.less",
					Format:      "less/variables",
					Filter:      valid,
				}},
			},
			"css": {
				TransformGroup: "custom/css",
				BuildPath:      "build/css/",
				Files: []File{{
					Destination: "_variables.css",
					Format:      "css/variables-rgb",
					Filter:      valid,
					Options:     FileOptions{ShowFileHeader: &noHeader},
				}},
			},
			"json-flat": {
				TransformGroup: "js",
				BuildPath:      "build/json/",
				Files: []File{{
					Destination: "styles.json",
					Format:      "json/flat",
					Filter:      valid,
				}},
			},
			"android": {
				TransformGroup: "android",
				BuildPath:      "build/android/",
				Files: []File{{
					Destination: "colors.xml",
					Format:      "android/resources",
					Filter:      FilterSpec{Attributes: map[string]any{"type": "color"}},
				}},
			},
		},
	}
}

// SourceDialect returns the parsed dialect from the Dialect field.
// Returns schema.Unknown if the field is empty or invalid.
func (c *Config) SourceDialect() schema.Dialect {
	if c.Dialect == "" {
		return schema.Unknown
	}
	d, err := schema.FromString(c.Dialect)
	if err != nil {
		return schema.Unknown
	}
	return d
}

// PlatformNames returns the configured platform names in sorted order.
func (c *Config) PlatformNames() []string {
	return slices.Sorted(maps.Keys(c.Platforms))
}

// Validate checks structural requirements.
// Capability checks (known formats, transforms, filters) live in the validator package.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Source) == 0 {
		errs = append(errs, fmt.Errorf("%w: no token sources configured", schema.ErrInvalidConfig))
	}
	if c.Dialect != "" {
		if _, err := schema.FromString(c.Dialect); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", schema.ErrInvalidConfig, err))
		}
	}
	if len(c.Platforms) == 0 {
		errs = append(errs, fmt.Errorf("%w: no platforms configured", schema.ErrInvalidConfig))
	}
	for _, name := range c.PlatformNames() {
		p := c.Platforms[name]
		if p == nil {
			errs = append(errs, fmt.Errorf("%w: platform %q is empty", schema.ErrInvalidConfig, name))
			continue
		}
		if p.TransformGroup == "" && len(p.Transforms) == 0 {
			errs = append(errs, fmt.Errorf("%w: platform %q has no transformGroup or transforms", schema.ErrInvalidConfig, name))
		}
		if len(p.Files) == 0 {
			errs = append(errs, fmt.Errorf("%w: platform %q has no files", schema.ErrInvalidConfig, name))
		}
		for i, f := range p.Files {
			if f.Destination == "" {
				errs = append(errs, fmt.Errorf("%w: platform %q file %d has no destination", schema.ErrInvalidConfig, name, i))
			}
			if f.Format == "" {
				errs = append(errs, fmt.Errorf("%w: platform %q file %d has no format", schema.ErrInvalidConfig, name, i))
			}
		}
	}
	return errors.Join(errs...)
}
