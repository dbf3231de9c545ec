/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert_test

import (
	"errors"
	"testing"

	"bennypowers.dev/tokenforge/convert"
	"bennypowers.dev/tokenforge/convert/formatter"
	"bennypowers.dev/tokenforge/schema"
	"bennypowers.dev/tokenforge/token"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected convert.Format
		wantErr  bool
	}{
		{"scss/variables", convert.FormatSCSS, false},
		{"scss", convert.FormatSCSS, false},
		{"less/variables", convert.FormatLess, false},
		{"less", convert.FormatLess, false},
		{"css/variables", convert.FormatCSS, false},
		{"css", convert.FormatCSS, false},
		{"css/variables-rgb", convert.FormatCSSRGB, false},
		{"css-rgb", convert.FormatCSSRGB, false},
		{"json/flat", convert.FormatFlatJSON, false},
		{"json", convert.FormatFlatJSON, false},
		{"flat", convert.FormatFlatJSON, false},
		{"json/nested", convert.FormatNestedJSON, false},
		{"nested", convert.FormatNestedJSON, false},
		{"android/resources", convert.FormatAndroid, false},
		{"android", convert.FormatAndroid, false},
		{"XML", convert.FormatAndroid, false},
		{"ios/colors.h", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := convert.ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				} else if !errors.Is(err, schema.ErrUnknownFormat) {
					t.Errorf("expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNew_EveryValidFormat(t *testing.T) {
	tokens := []*token.Token{
		{Name: "brand-primary", Path: []string{"color", "brand", "primary"}, Type: token.TypeColor, Value: "#1a2b3c"},
	}
	for _, key := range convert.ValidFormats() {
		t.Run(key, func(t *testing.T) {
			f, err := convert.New(convert.Format(key))
			if err != nil {
				t.Fatalf("New(%q) error = %v", key, err)
			}
			out, err := f.Format(tokens, formatter.Options{})
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if len(out) == 0 {
				t.Error("expected output")
			}
		})
	}
}

func TestNew_Unknown(t *testing.T) {
	if _, err := convert.New("swift"); !errors.Is(err, schema.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestCommentStyleFor(t *testing.T) {
	tests := []struct {
		format   convert.Format
		expected formatter.CommentStyle
	}{
		{convert.FormatSCSS, formatter.SCSSComments},
		{convert.FormatLess, formatter.SCSSComments},
		{convert.FormatCSS, formatter.CStyleComments},
		{convert.FormatCSSRGB, formatter.CStyleComments},
		{convert.FormatAndroid, formatter.XMLComments},
		{convert.FormatFlatJSON, formatter.NoComments},
	}
	for _, tt := range tests {
		if got := convert.CommentStyleFor(tt.format); got != tt.expected {
			t.Errorf("CommentStyleFor(%q) = %v, expected %v", tt.format, got, tt.expected)
		}
	}
}

func TestWithHeader(t *testing.T) {
	got := convert.WithHeader([]byte("$a: 1;"), "Generated", formatter.SCSSComments)
	if string(got) != "// Generated\n\n$a: 1;" {
		t.Errorf("unexpected SCSS header output %q", got)
	}

	xml := "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<resources>\n</resources>"
	got = convert.WithHeader([]byte(xml), "Generated", formatter.XMLComments)
	expected := "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<!--\n  Generated\n-->\n\n<resources>\n</resources>"
	if string(got) != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}

	got = convert.WithHeader([]byte("{}"), "Generated", formatter.NoComments)
	if string(got) != "{}" {
		t.Errorf("JSON must not get a header, got %q", got)
	}
}
