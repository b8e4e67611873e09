package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
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

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.name); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
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
	out := captureLogOutput(func() {
		Debug("debug message", "key", "value")
		Info("info message")
		Warn("warn message")
		Error("error message")
	})

	for _, want := range []string{"debug message", "info message", "warn message", "error message"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, `"key":"value"`) {
		t.Errorf("log output missing structured attribute:\n%s", out)
	}
}

func TestRunIDContext(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-123")

	if got := GetRunID(ctx); got != "run-123" {
		t.Errorf("GetRunID() = %q, want %q", got, "run-123")
	}
	if got := GetRunID(context.Background()); got != "" {
		t.Errorf("GetRunID(empty context) = %q, want %q", got, "")
	}

	out := captureLogOutput(func() {
		InfoContext(ctx, "pipeline started")
	})
	if !strings.Contains(out, `"run_id":"run-123"`) {
		t.Errorf("context log output missing run_id:\n%s", out)
	}
}

func TestStageComplete(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-456")

	out := captureLogOutput(func() {
		StageComplete(ctx, "parse", 5*time.Millisecond, "records", 10)
	})

	for _, want := range []string{"stage_complete", `"stage":"parse"`, `"records":10`, `"run_id":"run-456"`} {
		if !strings.Contains(out, want) {
			t.Errorf("stage log output missing %q:\n%s", want, out)
		}
	}
}

func TestGetLogger(t *testing.T) {
	if GetLogger() == nil {
		t.Error("GetLogger() returned nil")
	}
}
