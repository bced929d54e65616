package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, "level %q", in)
		assert.Equal(t, want, got, "level %q", in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNewWithWriter_JSONCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"

	l, err := NewWithWriter(cfg, slog.LevelDebug, &buf)
	require.NoError(t, err)
	l.Debug("remote call failed", "kind", "RemoteTimeout")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kakao-a11y", rec["component"])
	assert.Equal(t, "RemoteTimeout", rec["kind"])
	assert.Equal(t, "DEBUG", rec["level"])
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(DefaultConfig(), slog.LevelInfo, &buf)
	require.NoError(t, err)
	l.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestNewWithWriter_BadFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "xml"
	_, err := NewWithWriter(cfg, slog.LevelInfo, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mediator.log")
	cfg := DefaultConfig()
	cfg.Output = path

	l, closer, err := New(cfg)
	require.NoError(t, err)
	l.Info("started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")
}
