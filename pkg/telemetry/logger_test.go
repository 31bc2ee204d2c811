package telemetry_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/envcrypt/envcrypt/pkg/telemetry"
)

func TestLoggerTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.NewLogger(
		telemetry.WithOutput(&buf),
		telemetry.WithLevel(telemetry.LevelDebug),
		telemetry.WithFormat(telemetry.FormatText),
	)

	logger.Info("sealed artifact", telemetry.Fields{"suite": "AES-256-GCM"})

	out := buf.String()
	if !strings.Contains(out, "sealed artifact") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "suite=AES-256-GCM") {
		t.Errorf("output missing field: %q", out)
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.NewLogger(
		telemetry.WithOutput(&buf),
		telemetry.WithFormat(telemetry.FormatJSON),
	)

	logger.Info("opened artifact", nil)

	if !strings.Contains(buf.String(), `"msg":"opened artifact"`) {
		t.Errorf("JSON output missing message: %q", buf.String())
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.NewLogger(
		telemetry.WithOutput(&buf),
		telemetry.WithLevel(telemetry.LevelWarn),
	)

	logger.Debug("should not appear")
	logger.Info("should not appear either")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Errorf("level filtering failed: %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("warn-level message missing: %q", out)
	}
}

func TestLoggerWithFieldsInheritance(t *testing.T) {
	var buf bytes.Buffer
	base := telemetry.NewLogger(
		telemetry.WithOutput(&buf),
		telemetry.WithFields(telemetry.Fields{"component": "container"}),
	)
	child := base.With(telemetry.Fields{"op": "seal"})

	child.Info("done")

	out := buf.String()
	if !strings.Contains(out, "component=container") || !strings.Contains(out, "op=seal") {
		t.Errorf("inherited fields missing: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want telemetry.Level
	}{
		{"debug", telemetry.LevelDebug},
		{"INFO", telemetry.LevelInfo},
		{"warning", telemetry.LevelWarn},
		{"ERROR", telemetry.LevelError},
		{"silent", telemetry.LevelSilent},
		{"garbage", telemetry.LevelInfo},
	}

	for _, tt := range tests {
		if got := telemetry.ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNullLoggerDiscardsOutput(t *testing.T) {
	// NullLogger has no writer override, but LevelSilent must suppress
	// every call regardless of destination.
	logger := telemetry.NullLogger()
	logger.Error("this must not panic or block")
}
