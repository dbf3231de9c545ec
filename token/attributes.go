/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "strings"

// CategoryModes marks tokens holding alternate or contextual value sets.
// They are never emitted as standalone values.
const CategoryModes = "modes"

// Attributes holds the category/type/item classification of a token.
type Attributes struct {
	Category string `json:"category,omitempty" yaml:"category"`
	Type     string `json:"type,omitempty" yaml:"type"`
	Item     string `json:"item,omitempty" yaml:"item"`
	Subitem  string `json:"subitem,omitempty" yaml:"subitem"`
	State    string `json:"state,omitempty" yaml:"state"`
}

// IsCategory reports whether the category equals name, ignoring case.
func (a Attributes) IsCategory(name string) bool {
	return a.Category != "" && strings.EqualFold(a.Category, name)
}

// Merge fills empty fields of a from defaults. Fields already set on a win.
func (a Attributes) Merge(defaults Attributes) Attributes {
	if a.Category == "" {
		a.Category = defaults.Category
	}
	if a.Type == "" {
		a.Type = defaults.Type
	}
	if a.Item == "" {
		a.Item = defaults.Item
	}
	if a.Subitem == "" {
		a.Subitem = defaults.Subitem
	}
	if a.State == "" {
		a.State = defaults.State
	}
	return a
}

// Get returns the attribute with the given field name.
func (a Attributes) Get(field string) (string, bool) {
	switch field {
	case "category":
		return a.Category, true
	case "type":
		return a.Type, true
	case "item":
		return a.Item, true
	case "subitem":
		return a.Subitem, true
	case "state":
		return a.State, true
	default:
		return "", false
	}
}
