package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelWarn,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestSetup(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger, err := Setup(&buf, "info", false)
	require.NoError(t, err)

	logger.Debug("hidden")
	slog.Info("cloaked snippet", "identifiers", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=\"cloaked snippet\"")
	assert.Contains(t, out, "identifiers=3")
}

func TestSetup_Verbose(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	_, err := Setup(&buf, "bogus", true)
	require.NoError(t, err, "verbose overrides an invalid level")

	slog.Debug("visible")
	assert.True(t, strings.Contains(buf.String(), "visible"))
}

func TestSetup_InvalidLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger, err := Setup(&buf, "bogus", false)
	assert.Error(t, err)
	require.NotNil(t, logger)

	logger.Info("below warn")
	logger.Warn("at warn")
	assert.NotContains(t, buf.String(), "below warn")
	assert.Contains(t, buf.String(), "at warn")
}
