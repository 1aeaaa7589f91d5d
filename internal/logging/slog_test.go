package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogLogger_WritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	ctx := context.Background()

	l.Info(ctx, "entry added", "id", 7)
	out := buf.String()
	assert.Contains(t, out, "entry added")
	assert.Contains(t, out, "id=7")
}

func TestSlogLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	child := l.With("user", "alice")
	child.Warn(context.Background(), "lock state unknown")

	out := buf.String()
	assert.Contains(t, out, "user=alice")
	assert.Contains(t, out, "lock state unknown")
}
