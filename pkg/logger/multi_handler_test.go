package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestMultiHandler_FanOut(t *testing.T) {
	t.Parallel()

	var info, errOnly bytes.Buffer
	h := newMultiHandler(
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errOnly, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h).With(slog.String("component", "test"))

	log.Info("info record")
	require.Contains(t, info.String(), "info record")
	require.Contains(t, info.String(), `"component":"test"`)
	require.Zero(t, errOnly.Len())

	log.Error("error record")
	require.Contains(t, errOnly.String(), "error record")
}

func TestMultiHandler_ContinuesAfterFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := newMultiHandler(
		failingHandler{Handler: slog.NewJSONHandler(&bytes.Buffer{}, nil)},
		slog.NewJSONHandler(&buf, nil),
	)

	rec := slog.NewRecord(time.Time{}, slog.LevelInfo, "still delivered", 0)
	err := h.Handle(context.Background(), rec)

	require.Error(t, err)
	require.Contains(t, buf.String(), "still delivered")
}

func TestMultiHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := newMultiHandler(
		slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	require.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	require.True(t, h.Enabled(context.Background(), slog.LevelError))
}
