/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/tokenforge/internal/logger"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetVerbose(false)
	})

	logger.Warn("token %s redefined", "color.primary")
	logger.Debug("hidden")
	logger.SetVerbose(true)
	logger.Debug("shown %d", 1)
	logger.Error("boom")

	assert.Equal(t, "warning: token color.primary redefined\nshown 1\nerror: boom\n", buf.String())
}
