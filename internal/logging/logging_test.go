package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// captureLogOutput captures log output for testing by temporarily
// redirecting the logger to write to a buffer
func captureLogOutput(f func()) string {
	var buf bytes.Buffer

	oldLogger := defaultLogger
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	defaultLogger = slog.New(handler)

	f()

	defaultLogger = oldLogger
	return buf.String()
}

func TestInitLogger(t *testing.T) {
	// Should not panic for any combination
	levels := []Level{LevelDebug, LevelInfo, LevelWarn, LevelError}
	formats := []Format{FormatJSON, FormatText}
	for _, level := range levels {
		for _, format := range formats {
			InitLogger(level, format)
			if GetLogger() == nil {
				t.Errorf("logger is nil after InitLogger(%v, %v)", level, format)
			}
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelWarn},
		{"", LevelWarn},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.name); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if got := ParseFormat("json"); got != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, want FormatJSON", got)
	}
	if got := ParseFormat("text"); got != FormatText {
		t.Errorf("ParseFormat(text) = %v, want FormatText", got)
	}
	if got := ParseFormat("bogus"); got != FormatText {
		t.Errorf("ParseFormat(bogus) = %v, want FormatText", got)
	}
}

func TestLogHelpers(t *testing.T) {
	output := captureLogOutput(func() {
		Debug("debug message", "key", "value")
		Info("info message", "segments", 6)
		Warn("warn message")
		Error("error message", "error", "boom")
	})

	for _, want := range []string{"debug message", "info message", "warn message", "error message"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if !strings.Contains(output, `"segments":6`) {
		t.Errorf("structured attribute missing:\n%s", output)
	}
}
