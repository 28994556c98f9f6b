package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/genreqs/internal/adapters/logger"
)

func newTestHandler(t *testing.T, level slog.Level) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level})
	return h, buf
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		msg   string
		want  string
	}{
		{
			name:  "info is plain",
			level: slog.LevelInfo,
			msg:   "information message",
			want:  "information message\n",
		},
		{
			name:  "warn gets an icon",
			level: slog.LevelWarn,
			msg:   "warning message",
			want:  "! warning message\n",
		},
		{
			name:  "error gets an icon",
			level: slog.LevelError,
			msg:   "error message",
			want:  "✗ error message\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newTestHandler(t, slog.LevelDebug)
			slog.New(h).Log(t.Context(), tt.level, tt.msg)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_FiltersBelowLevel(t *testing.T) {
	h, buf := newTestHandler(t, slog.LevelInfo)
	slog.New(h).Debug("debug message")

	assert.Empty(t, buf.String())
}

func TestPrettyHandler_Attrs(t *testing.T) {
	h, buf := newTestHandler(t, slog.LevelInfo)
	slog.New(h).Info("requirements generated", "count", 2, "path", "requirements.txt")

	assert.Equal(t, "requirements generated count=2 path=requirements.txt\n", buf.String())
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	h, buf := newTestHandler(t, slog.LevelInfo)
	slog.New(h).With("env", "demo").Info("resolved")

	assert.Equal(t, "resolved env=demo\n", buf.String())
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	h, buf := newTestHandler(t, slog.LevelInfo)
	slog.New(h).WithGroup("stage").Info("resolved", "mode", "export")

	assert.Equal(t, "resolved stage.mode=export\n", buf.String())
}
