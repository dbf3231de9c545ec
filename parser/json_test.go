/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenforge/parser"
	"bennypowers.dev/tokenforge/schema"
	"bennypowers.dev/tokenforge/testutil"
	"bennypowers.dev/tokenforge/token"
)

func TestJSONParser_Legacy(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/parser/legacy", "/test")

	p := parser.NewJSONParser()
	tokens, err := p.ParseFile(mfs, "/test/tokens.json", parser.Options{})
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	primary := tokens[0]
	assert.Equal(t, []string{"color", "brand", "primary"}, primary.Path)
	assert.Equal(t, "color/brand/primary", primary.Name)
	assert.Equal(t, token.TypeColor, primary.Type)
	assert.Equal(t, "#1a2b3c", primary.Value)
	assert.Equal(t, "Main brand color", primary.Description)
	assert.True(t, primary.IsPrimitive())
	assert.Equal(t, "/test/tokens.json", primary.FilePath)

	small := tokens[1]
	assert.Equal(t, "spacing.small", small.DotPath())
	assert.Equal(t, 4, small.Value)
	assert.Equal(t, token.UnitPixel, small.Unit)

	// a child named "value" with a declared type is a token, not a leaf field
	named := tokens[2]
	assert.Equal(t, "spacing.value", named.DotPath())
	assert.Equal(t, 2, named.Value)

	bg := tokens[3]
	assert.True(t, bg.Attributes.IsCategory(token.CategoryModes))
}

func TestJSONParser_DTCG(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/parser/dtcg", "/test")

	p := parser.NewJSONParser()
	tokens, err := p.ParseFile(mfs, "/test/tokens.json", parser.Options{})
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	red := tokens[0]
	assert.Equal(t, "color.red", red.DotPath())
	assert.Equal(t, token.TypeColor, red.Type, "type is inherited from the group")
	assert.Equal(t, "#ff0000", red.Value)
	assert.Equal(t, "Pure red", red.Description)

	danger := tokens[1]
	assert.Equal(t, "{color.red}", danger.Value)
	assert.Equal(t, "{color.red}", danger.Original)

	md := tokens[2]
	assert.Equal(t, 16.0, md.Value)
	assert.Equal(t, token.UnitPixel, md.Unit)

	lg := tokens[3]
	assert.Equal(t, "2rem", lg.Value)
	assert.Empty(t, lg.Unit)
}

func TestJSONParser_YAMLPreservesOrder(t *testing.T) {
	data := testutil.LoadFixtureFile(t, "fixtures/parser/yaml/tokens.yaml")

	p := parser.NewJSONParser()
	tokens, err := p.Parse(data, parser.Options{})
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	assert.Equal(t, "zeta", tokens[0].Name)
	assert.Equal(t, "alpha", tokens[1].Name)
	assert.Equal(t, 1.5, tokens[1].Value)
}

func TestJSONParser_SkipPositions(t *testing.T) {
	data := testutil.LoadFixtureFile(t, "fixtures/parser/legacy/tokens.json")

	p := parser.NewJSONParser()

	withPositions, err := p.Parse(data, parser.Options{Dialect: schema.Legacy})
	require.NoError(t, err)

	withoutPositions, err := p.Parse(data, parser.Options{Dialect: schema.Legacy, SkipPositions: true})
	require.NoError(t, err)

	require.Equal(t, len(withPositions), len(withoutPositions))

	// "primary" is on line 5 (0-based 4), indented 6 columns
	assert.Equal(t, uint32(4), withPositions[0].Line)
	assert.Equal(t, uint32(6), withPositions[0].Character)

	for _, tok := range withoutPositions {
		assert.Zero(t, tok.Line, tok.Name)
		assert.Zero(t, tok.Character, tok.Name)
	}
}

func TestJSONParser_Empty(t *testing.T) {
	p := parser.NewJSONParser()
	tokens, err := p.Parse([]byte(""), parser.Options{Dialect: schema.Legacy})
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestJSONParser_InvalidRoot(t *testing.T) {
	p := parser.NewJSONParser()
	_, err := p.Parse([]byte("- a\n- b\n"), parser.Options{Dialect: schema.Legacy})
	assert.Error(t, err)
}

func TestJSONParser_MissingFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/parser/legacy", "/test")

	p := parser.NewJSONParser()
	_, err := p.ParseFile(mfs, "/test/missing.json", parser.Options{})
	assert.Error(t, err)
}

func TestJSONParser_LegacyGroupWithValueChild(t *testing.T) {
	data := []byte(`{"size": {"value": {"type": "number", "value": 3}}}`)

	p := parser.NewJSONParser()
	tokens, err := p.Parse(data, parser.Options{Dialect: schema.Legacy})
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, []string{"size", "value"}, tokens[0].Path)
}
