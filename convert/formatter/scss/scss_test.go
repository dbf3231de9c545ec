/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package scss_test

import (
	"testing"

	"bennypowers.dev/tokenforge/convert/formatter"
	"bennypowers.dev/tokenforge/convert/formatter/scss"
	"bennypowers.dev/tokenforge/token"
)

func TestFormat(t *testing.T) {
	tokens := []*token.Token{
		{Name: "spacing-sm", Value: "4px"},
		{Name: "brand-primary", Value: "#1a2b3c"},
		{Name: "font-weight", Value: 600},
	}

	result, err := scss.New().Format(tokens, formatter.Options{})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	expected := "$spacing-sm: 4px;\n$brand-primary: #1a2b3c;\n$font-weight: 600;"
	if string(result) != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestFormat_Empty(t *testing.T) {
	result, err := scss.New().Format(nil, formatter.Options{})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if len(result) != 0 {
		t.Errorf("expected empty output, got %q", result)
	}
}
