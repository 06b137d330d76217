package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	test := []struct {
		in      string
		exp     slog.Level
		wantErr bool
	}{
		{"DEBUG", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"Warn", slog.LevelWarn, false},
		{"ERROR", slog.LevelError, false},
		{"TRACE", 0, true},
	}
	for _, tt := range test {
		level, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.exp, level)
	}
}

func TestNew(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(&buf, Config{Level: "info", Format: "json"})
		require.NoError(t, err)
		l.Debug("hidden")
		l.Info("encoded", "bytes", 2)

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "encoded", rec["msg"])
		assert.Equal(t, float64(2), rec["bytes"])
	})
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(&buf, Config{Level: "DEBUG", Format: "text"})
		require.NoError(t, err)
		l.Debug("located", "offset", 54)
		assert.Contains(t, buf.String(), "msg=located")
		assert.Contains(t, buf.String(), "offset=54")
	})
	t.Run("bad format", func(t *testing.T) {
		_, err := New(&bytes.Buffer{}, Config{Format: "xml"})
		assert.Error(t, err)
	})
}
