package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", true, true},
		{"INFO", false, true},
		{"error", false, false},
		{"bogus", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(&buf, tc.level)

			l.Debug("dbg")
			l.Info("inf")

			out := buf.String()
			assert.Equal(t, tc.debugSeen, strings.Contains(out, "msg=dbg"))
			assert.Equal(t, tc.infoSeen, strings.Contains(out, "msg=inf"))
		})
	}
}

func TestComponent_AddsAttribute(t *testing.T) {
	var buf bytes.Buffer
	l := Component(New(&buf, "info"), "friends")

	l.Info("hello", "k", "v")

	assert.Contains(t, buf.String(), "component=friends")
	assert.Contains(t, buf.String(), "k=v")
}

func TestStdLogger_WritesThroughHandler(t *testing.T) {
	var buf bytes.Buffer
	std := StdLogger(New(&buf, "info"), slog.LevelError)

	std.Print("tls handshake error")

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "tls handshake error")
}
