/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package less_test

import (
	"testing"

	"bennypowers.dev/tokenforge/convert/formatter"
	"bennypowers.dev/tokenforge/convert/formatter/less"
	"bennypowers.dev/tokenforge/token"
)

func TestFormat(t *testing.T) {
	tokens := []*token.Token{
		{Name: "brand-primary", Value: "#1a2b3c"},
		{Name: "spacing-sm", Value: "4px"},
	}

	result, err := less.New().Format(tokens, formatter.Options{})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	expected := "@brand-primary: #1a2b3c;\n@spacing-sm: 4px;"
	if string(result) != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}
