/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package build

import (
	"fmt"
	"maps"
	"slices"

	"bennypowers.dev/tokenforge/config"
	"bennypowers.dev/tokenforge/convert"
	"bennypowers.dev/tokenforge/convert/formatter"
	"bennypowers.dev/tokenforge/filter"
	"bennypowers.dev/tokenforge/schema"
	"bennypowers.dev/tokenforge/transform"
)

// FormatEntry is a registered output format.
type FormatEntry struct {
	Formatter formatter.Formatter
	Comments  formatter.CommentStyle
}

// Registry holds the transforms, transform groups, filters and formats a
// build can refer to by name. Register everything before building; lookups
// are safe for concurrent use once registration is done.
type Registry struct {
	transforms map[string]transform.Transform
	groups     map[string][]string
	filters    map[string]filter.Filter
	formats    map[string]FormatEntry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		transforms: make(map[string]transform.Transform),
		groups:     make(map[string][]string),
		filters:    make(map[string]filter.Filter),
		formats:    make(map[string]FormatEntry),
	}
}

// DefaultRegistry returns a registry with every built-in capability.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, t := range transform.Builtins() {
		r.RegisterTransform(t)
	}
	for name, members := range transform.Groups() {
		r.RegisterTransformGroup(name, members)
	}
	r.RegisterFilter(filter.ValidTokenName, filter.ValidToken)
	for _, key := range convert.ValidFormats() {
		format := convert.Format(key)
		f, err := convert.New(format)
		if err != nil {
			panic(err)
		}
		r.RegisterFormat(key, f, convert.CommentStyleFor(format))
	}
	return r
}

// RegisterTransform adds or replaces a transform under its name.
func (r *Registry) RegisterTransform(t transform.Transform) {
	r.transforms[t.Name] = t
}

// RegisterTransformGroup adds or replaces a named list of transforms.
func (r *Registry) RegisterTransformGroup(name string, transforms []string) {
	r.groups[name] = slices.Clone(transforms)
}

// RegisterFilter adds or replaces a named filter.
func (r *Registry) RegisterFilter(name string, f filter.Filter) {
	r.filters[name] = f
}

// RegisterFormat adds or replaces a named format.
func (r *Registry) RegisterFormat(name string, f formatter.Formatter, comments formatter.CommentStyle) {
	r.formats[name] = FormatEntry{Formatter: f, Comments: comments}
}

// HasTransform reports whether a transform is registered under name.
func (r *Registry) HasTransform(name string) bool {
	_, ok := r.transforms[name]
	return ok
}

// HasTransformGroup reports whether a transform group is registered under name.
func (r *Registry) HasTransformGroup(name string) bool {
	_, ok := r.groups[name]
	return ok
}

// HasFilter reports whether a filter is registered under name.
func (r *Registry) HasFilter(name string) bool {
	_, ok := r.filters[name]
	return ok
}

// HasFormat reports whether a format is registered under name or one of its aliases.
func (r *Registry) HasFormat(name string) bool {
	_, err := r.Format(name)
	return err == nil
}

// Transforms returns the registered transforms sorted by name.
func (r *Registry) Transforms() []transform.Transform {
	result := make([]transform.Transform, 0, len(r.transforms))
	for _, name := range slices.Sorted(maps.Keys(r.transforms)) {
		result = append(result, r.transforms[name])
	}
	return result
}

// TransformGroups returns the registered group names, sorted.
func (r *Registry) TransformGroups() []string {
	return slices.Sorted(maps.Keys(r.groups))
}

// Group returns the transform names of a group.
func (r *Registry) Group(name string) ([]string, bool) {
	members, ok := r.groups[name]
	return slices.Clone(members), ok
}

// Filters returns the registered filter names, sorted.
func (r *Registry) Filters() []string {
	return slices.Sorted(maps.Keys(r.filters))
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	return slices.Sorted(maps.Keys(r.formats))
}

// Chain returns the platform's transform group followed by its extra transforms.
func (r *Registry) Chain(p *config.Platform) (transform.Chain, error) {
	var names []string
	if p.TransformGroup != "" {
		members, ok := r.groups[p.TransformGroup]
		if !ok {
			return nil, fmt.Errorf("%w: transform group %q", schema.ErrUnknownTransform, p.TransformGroup)
		}
		names = append(names, members...)
	}
	names = append(names, p.Transforms...)

	chain := make(transform.Chain, 0, len(names))
	for _, name := range names {
		t, ok := r.transforms[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", schema.ErrUnknownTransform, name)
		}
		chain = append(chain, t)
	}
	return chain, nil
}

// Filter returns the filter a file spec selects.
// A zero spec returns nil, which admits every token.
func (r *Registry) Filter(spec config.FilterSpec) (filter.Filter, error) {
	switch {
	case spec.Name != "":
		f, ok := r.filters[spec.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", schema.ErrUnknownFilter, spec.Name)
		}
		return f, nil
	case len(spec.Attributes) > 0:
		f, err := filter.MatchAttributes(spec.Attributes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", schema.ErrUnknownFilter, err)
		}
		return f, nil
	default:
		return nil, nil
	}
}

// Format returns a registered format by key. Aliases accepted by
// convert.ParseFormat resolve to their canonical key.
func (r *Registry) Format(name string) (FormatEntry, error) {
	if entry, ok := r.formats[name]; ok {
		return entry, nil
	}
	if format, err := convert.ParseFormat(name); err == nil {
		if entry, ok := r.formats[string(format)]; ok {
			return entry, nil
		}
	}
	return FormatEntry{}, fmt.Errorf("%w: %s", schema.ErrUnknownFormat, name)
}
