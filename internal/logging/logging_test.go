package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"nonsense", log.WarnLevel},
		{"", log.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Level = log.WarnLevel
	logger := New(&buf, opts)

	logger.Debug("hidden message")
	if buf.Len() != 0 {
		t.Errorf("debug message logged at warn level: %q", buf.String())
	}

	logger.Warn("visible message")
	if !strings.Contains(buf.String(), "visible message") {
		t.Errorf("warn message missing: %q", buf.String())
	}
}

func TestNewUsesPrefix(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Level = log.InfoLevel
	logger := New(&buf, opts)

	logger.Info("hello")
	if !strings.Contains(buf.String(), "taskgo") {
		t.Errorf("prefix missing from output: %q", buf.String())
	}
}
