/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	buildlib "bennypowers.dev/tokenforge/build"
	"bennypowers.dev/tokenforge/config"
	"bennypowers.dev/tokenforge/internal/logger"
	"bennypowers.dev/tokenforge/internal/mapfs"
	"bennypowers.dev/tokenforge/internal/project"
	"bennypowers.dev/tokenforge/schema"
)

func TestCheck_Valid(t *testing.T) {
	logger.SetOutput(&bytes.Buffer{})
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	mfs := mapfs.New()
	mfs.AddFile("/project/tokens/colors.json", `{"color": {"brand": {"value": "#fff", "type": "color"}}}`, 0644)
	p := &project.Project{FS: mfs, Root: "/project", Config: config.Default()}

	var out bytes.Buffer
	problems, err := check(t.Context(), p, buildlib.DefaultRegistry(), &out, false)
	require.NoError(t, err)
	assert.Empty(t, problems)
	assert.Contains(t, out.String(), "Validating /project/tokens/colors.json (legacy)...")
}

func TestCheck_Problems(t *testing.T) {
	logger.SetOutput(&bytes.Buffer{})
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	mfs := mapfs.New()
	mfs.AddFile("/project/tokens/a.json", `{
  "color": {"brand": {"value": "#fff", "type": "color"}},
  "font": {"brand": {"value": "Inter", "type": "string", "$type": "string"}}
}`, 0644)

	cfg := config.Default()
	cfg.Platforms["scss"].Files[0].Format = "scss/maps"

	p := &project.Project{FS: mfs, Root: "/project", Config: cfg}
	problems, err := check(t.Context(), p, buildlib.DefaultRegistry(), &bytes.Buffer{}, true)
	require.NoError(t, err)

	var messages []string
	for _, problem := range problems {
		messages = append(messages, problem.Error())
	}
	joined := strings.Join(messages, "\n")

	assert.Contains(t, joined, `platforms.scss.files[0].format: unknown format "scss/maps"`)
	assert.Contains(t, joined, "/project/tokens/a.json: font.brand: $type is not valid in a legacy token file")
	assert.Contains(t, joined, `css/_variables.css: name "brand" is already used by color.brand`)

	var collisions int
	for i := range problems {
		if errors.Is(&problems[i], schema.ErrNameCollision) {
			collisions++
		}
	}
	// every platform but android, whose filter admits colors only
	assert.Equal(t, 4, collisions)
}

func TestCheck_NoSources(t *testing.T) {
	p := &project.Project{FS: mapfs.New(), Root: "/project", Config: config.Default()}
	_, err := check(t.Context(), p, buildlib.DefaultRegistry(), &bytes.Buffer{}, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no token source files matched")
}
