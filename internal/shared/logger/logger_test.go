package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalkit/portalkit/internal/shared/config"
)

func TestSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		log        func(l *slog.Logger)
		wantSource bool
	}{
		{"debug has no source", func(l *slog.Logger) { l.Debug("decision") }, false},
		{"info has no source", func(l *slog.Logger) { l.Info("decision") }, false},
		{"warn has source", func(l *slog.Logger) { l.Warn("decision") }, true},
		{"error has source", func(l *slog.Logger) { l.Error("decision") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			tt.log(slog.New(NewSourceHandler(base, slog.LevelWarn)))

			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
		})
	}
}

func TestSourceHandler_KeepsAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	l := slog.New(NewSourceHandler(base, slog.LevelError)).With("user_id", 42)

	l.Info("resolved")

	assert.Contains(t, buf.String(), "user_id=42")
	assert.NotContains(t, buf.String(), "source=")
}

func TestSourceHandler_RespectsBaseLevel(t *testing.T) {
	base := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})
	h := NewSourceHandler(base, slog.LevelError)

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestInit_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	err := Init(&config.LoggerConfig{Level: "info", Format: "json", OutputPath: path}, false)
	require.NoError(t, err)

	NewLogger().With("component", "test").Infow("subscribed", "plan", "pro")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"plan":"pro"`)
	assert.Contains(t, string(data), `"component":"test"`)
}

func TestNewNop_DiscardsEverything(t *testing.T) {
	l := NewNop().With("component", "quiet")
	assert.NotPanics(t, func() { l.Errorw("ignored", "err", "x") })
}
