/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package nestedjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenforge/convert/formatter"
	"bennypowers.dev/tokenforge/convert/formatter/nestedjson"
	"bennypowers.dev/tokenforge/token"
)

func TestFormat(t *testing.T) {
	tokens := []*token.Token{
		{Path: []string{"color", "brand", "primary"}, Value: "#1a2b3c"},
		{Path: []string{"spacing", "sm"}, Value: "4px"},
		{Path: []string{"color", "brand", "secondary"}, Value: "#ffffff"},
		{Name: "legacy/name", Value: 1},
	}

	result, err := nestedjson.New().Format(tokens, formatter.Options{})
	require.NoError(t, err)

	expected := `{
  "color": {
    "brand": {
      "primary": "#1a2b3c",
      "secondary": "#ffffff"
    }
  },
  "spacing": {
    "sm": "4px"
  },
  "legacy": {
    "name": 1
  }
}`
	assert.Equal(t, expected, string(result))
}

func TestFormat_Conflict(t *testing.T) {
	tokens := []*token.Token{
		{Path: []string{"color", "brand"}, Value: "#000"},
		{Path: []string{"color", "brand", "primary"}, Value: "#fff"},
	}

	_, err := nestedjson.New().Format(tokens, formatter.Options{})
	assert.Error(t, err)

	reversed := []*token.Token{tokens[1], tokens[0]}
	_, err = nestedjson.New().Format(reversed, formatter.Options{})
	assert.Error(t, err)
}

func TestFormat_Empty(t *testing.T) {
	result, err := nestedjson.New().Format(nil, formatter.Options{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(result))
}
