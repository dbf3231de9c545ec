/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"fmt"

	"bennypowers.dev/tokenforge/config"
	"bennypowers.dev/tokenforge/filter"
	"bennypowers.dev/tokenforge/schema"
)

// Capabilities reports which names a build registry knows.
type Capabilities interface {
	HasTransform(name string) bool
	HasTransformGroup(name string) bool
	HasFilter(name string) bool
	HasFormat(name string) bool
}

// CheckConfig reports config entries that name unknown transforms,
// transform groups, filters or formats. Structural problems are
// reported by config.Config.Validate.
func CheckConfig(cfg *config.Config, caps Capabilities) []ValidationError {
	var errors []ValidationError

	for _, name := range cfg.PlatformNames() {
		p := cfg.Platforms[name]
		if p == nil {
			continue
		}
		path := "platforms." + name

		if p.TransformGroup != "" && !caps.HasTransformGroup(p.TransformGroup) {
			errors = append(errors, ValidationError{
				Path:       path + ".transformGroup",
				Message:    fmt.Sprintf("unknown transform group %q", p.TransformGroup),
				Suggestion: "run 'tokenforge list transforms' to see registered groups",
				Err:        schema.ErrUnknownTransform,
			})
		}

		for i, t := range p.Transforms {
			if !caps.HasTransform(t) {
				errors = append(errors, ValidationError{
					Path:       fmt.Sprintf("%s.transforms[%d]", path, i),
					Message:    fmt.Sprintf("unknown transform %q", t),
					Suggestion: "run 'tokenforge list transforms' to see registered transforms",
					Err:        schema.ErrUnknownTransform,
				})
			}
		}

		for i, f := range p.Files {
			filePath := fmt.Sprintf("%s.files[%d]", path, i)

			if f.Format != "" && !caps.HasFormat(f.Format) {
				errors = append(errors, ValidationError{
					Path:       filePath + ".format",
					Message:    fmt.Sprintf("unknown format %q", f.Format),
					Suggestion: "run 'tokenforge list formats' to see registered formats",
					Err:        schema.ErrUnknownFormat,
				})
			}

			switch {
			case f.Filter.Name != "":
				if !caps.HasFilter(f.Filter.Name) {
					errors = append(errors, ValidationError{
						Path:       filePath + ".filter",
						Message:    fmt.Sprintf("unknown filter %q", f.Filter.Name),
						Suggestion: "use a registered filter name or an attribute object",
						Err:        schema.ErrUnknownFilter,
					})
				}
			case len(f.Filter.Attributes) > 0:
				if _, err := filter.MatchAttributes(f.Filter.Attributes); err != nil {
					errors = append(errors, ValidationError{
						Path:    filePath + ".filter",
						Message: err.Error(),
						Err:     schema.ErrUnknownFilter,
					})
				}
			}
		}
	}

	return errors
}
