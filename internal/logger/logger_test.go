package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{in: "debug", want: slog.LevelDebug, ok: true},
		{in: "INFO", want: slog.LevelInfo, ok: true},
		{in: "", want: slog.LevelInfo, ok: true},
		{in: "warn", want: slog.LevelWarn, ok: true},
		{in: "warning", want: slog.LevelWarn, ok: true},
		{in: " error ", want: slog.LevelError, ok: true},
		{in: "nope", want: slog.LevelInfo, ok: false},
	}

	for _, tc := range cases {
		got, ok := parseLevel(tc.in)
		assert.Equal(t, tc.ok, ok, "parseLevel(%q) ok", tc.in)
		assert.Equal(t, tc.want, got, "parseLevel(%q) level", tc.in)
	}
}

func TestInitWriterFormatsLevel(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	InitWriter(&buf, "warn")

	slog.Info("hidden")
	slog.Warn("wallet file write failed", "record", "keystore")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "record=keystore")
}
