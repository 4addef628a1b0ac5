package slogpretty

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestHandler(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	log := slog.New(Options{Level: slog.LevelInfo}.NewHandler(&buf)).With("component", "store")

	log.Debug("hidden")
	log.WithGroup("call").Error("request failed", "op", "FIND_JOBS", "error", errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "ERROR:")
	assert.Contains(t, out, "request failed")
	assert.Contains(t, out, `"component": "store"`)
	assert.Contains(t, out, `"call.op": "FIND_JOBS"`)
	assert.Contains(t, out, `"call.error": "boom"`)
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}
