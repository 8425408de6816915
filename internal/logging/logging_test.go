package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestMultiHandlerRespectsLevels(t *testing.T) {
	var infoBuf, warnBuf bytes.Buffer
	h := multiHandler{
		slog.NewTextHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}
	logger := slog.New(h).With("app", "autoshop")

	logger.Info("appointment stored")
	logger.Warn("sms skipped")

	assert.Contains(t, infoBuf.String(), "appointment stored")
	assert.Contains(t, infoBuf.String(), "sms skipped")
	assert.NotContains(t, warnBuf.String(), "appointment stored")
	assert.Contains(t, warnBuf.String(), "app=autoshop")
}

func TestNewLoggerWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")

	logger, closer, err := NewLogger("info", path)
	require.NoError(t, err)
	require.NotNil(t, closer)

	logger.Info("hello", "component", "test")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestMultiHandlerKeepsWritingAfterFailure(t *testing.T) {
	var buf bytes.Buffer
	h := multiHandler{
		slog.NewJSONHandler(failingWriter{}, nil),
		slog.NewTextHandler(&buf, nil),
	}

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "spare request stored", 0))

	assert.ErrorContains(t, err, "disk full")
	assert.Contains(t, buf.String(), "spare request stored")
}
