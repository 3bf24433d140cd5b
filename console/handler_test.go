//go:build !wasm

package console

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type line struct {
	method string
	text   string
}

func capture(level slog.Level) (*slog.Logger, *[]line) {
	var lines []line
	h := newHandler(func(method, text string) {
		lines = append(lines, line{method, text})
	}, &slog.HandlerOptions{Level: level})
	return slog.New(h), &lines
}

func TestHandler_MethodPerLevel(t *testing.T) {
	logger, lines := capture(slog.LevelDebug)

	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")

	require.Equal(t, []line{
		{"debug", "d"},
		{"log", "i"},
		{"warn", "w"},
		{"error", "e"},
	}, *lines)
}

func TestHandler_FiltersBelowLevel(t *testing.T) {
	logger, lines := capture(slog.LevelWarn)

	logger.Info("dropped")
	logger.Warn("kept")

	require.Len(t, *lines, 1)
	require.Equal(t, "kept", (*lines)[0].text)
}

func TestHandler_AttrsAndGroups(t *testing.T) {
	logger, lines := capture(slog.LevelInfo)

	logger.With("component", "site").WithGroup("nav").Info("page", "id", "overview")

	require.Equal(t, "page component=site nav.id=overview", (*lines)[0].text)
}

func TestNewHandler_NativeIsText(t *testing.T) {
	h := NewHandler(&slog.HandlerOptions{Level: slog.LevelWarn})

	require.IsType(t, &slog.TextHandler{}, h)
	require.False(t, New(slog.LevelWarn).Enabled(t.Context(), slog.LevelInfo))
	require.False(t, h.Enabled(t.Context(), slog.LevelInfo))
}
