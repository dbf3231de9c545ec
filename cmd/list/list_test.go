/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"bytes"
	"errors"
	"testing"

	"bennypowers.dev/tokenforge/config"
	"bennypowers.dev/tokenforge/internal/mapfs"
	"bennypowers.dev/tokenforge/internal/project"
	"bennypowers.dev/tokenforge/schema"
	"bennypowers.dev/tokenforge/token"
)

func TestFilterTokens(t *testing.T) {
	tokens := []*token.Token{
		{Name: "color-primary", Type: "color", Path: []string{"color", "primary"}},
		{Name: "color-secondary", Type: "color", Path: []string{"color", "secondary"}},
		{Name: "spacing-small", Type: "dimension", Path: []string{"spacing", "small"}},
	}

	t.Run("no filters", func(t *testing.T) {
		result := filterTokens(tokens, "")
		if len(result) != 3 {
			t.Errorf("expected 3 tokens, got %d", len(result))
		}
	})

	t.Run("filter by type", func(t *testing.T) {
		result := filterTokens(tokens, "color")
		if len(result) != 2 {
			t.Errorf("expected 2 color tokens, got %d", len(result))
		}
		for _, tok := range result {
			if tok.Type != "color" {
				t.Errorf("expected type color, got %s", tok.Type)
			}
		}
	})

	t.Run("no matches", func(t *testing.T) {
		result := filterTokens(tokens, "custom-shadow")
		if len(result) != 0 {
			t.Errorf("expected 0 tokens, got %d", len(result))
		}
	})
}

func TestOutputTable(t *testing.T) {
	tokens := []*token.Token{
		{Name: "brand-primary", Type: "color", Value: "#1a2b3c"},
		{Name: "untyped", Value: 4},
	}
	var buf bytes.Buffer
	if err := outputTable(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	expected := "brand-primary                            color            #1a2b3c\n" +
		"untyped                                  -                4\n"
	if buf.String() != expected {
		t.Errorf("table mismatch\n--- expected ---\n%q\n--- actual ---\n%q", expected, buf.String())
	}
}

func TestOutputJSON(t *testing.T) {
	tokens := []*token.Token{
		{Name: "spacing-small", Path: []string{"size", "spacing", "small"}, Type: "dimension", Value: "4px"},
	}
	var buf bytes.Buffer
	if err := outputJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	expected := `[
  {
    "name": "spacing-small",
    "path": [
      "size",
      "spacing",
      "small"
    ],
    "value": "4px",
    "type": "dimension"
  }
]
`
	if buf.String() != expected {
		t.Errorf("json mismatch\n--- expected ---\n%s\n--- actual ---\n%s", expected, buf.String())
	}
}

func TestPlatformInput(t *testing.T) {
	p := &project.Project{FS: mapfs.New(), Root: "/", Config: config.Default()}
	tokens := []*token.Token{
		{Name: "color/brand/primary", Path: []string{"color", "brand", "primary"}, Type: "color", Value: "rgb(255, 0, 0)"},
		{Name: "size/spacing/small", Path: []string{"size", "spacing", "small"}, Type: "dimension", Value: 4, Unit: token.UnitPixel},
	}

	t.Run("android colors", func(t *testing.T) {
		result, err := platformInput(tokens, p, "android", 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(result) != 1 {
			t.Fatalf("expected 1 token, got %d", len(result))
		}
		if result[0].Name != "brand_primary" || result[0].Value != "#ffff0000" {
			t.Errorf("unexpected token %s = %v", result[0].Name, result[0].Value)
		}
	})

	t.Run("unknown platform", func(t *testing.T) {
		_, err := platformInput(tokens, p, "ios", 0)
		if !errors.Is(err, schema.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("file index out of range", func(t *testing.T) {
		_, err := platformInput(tokens, p, "css", 3)
		if !errors.Is(err, schema.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}
