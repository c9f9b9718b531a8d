package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, slog.LevelInfo, false)
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
}

func TestHandlerWritesMessageAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, slog.LevelDebug, false)

	record := slog.NewRecord(time.Now(), slog.LevelDebug, "spawning stage", 0)
	record.AddAttrs(slog.String("cmd", "grep"))

	require.NoError(t, h.Handle(context.Background(), record))
	out := buf.String()
	assert.Contains(t, out, "spawning stage")
	assert.Contains(t, out, "cmd=grep")
}
