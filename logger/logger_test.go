package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelInfo, &buf)

	// Debug should not appear when level is Info
	log.Debug("debug message")
	if buf.Len() > 0 {
		t.Error("Debug message should not appear when level is Info")
	}

	log.Info("info message")
	if !strings.Contains(buf.String(), "INFO") {
		t.Error("Info message should appear")
	}

	buf.Reset()
	log.SetLevel(LevelError)
	log.Warn("warn message")
	if buf.Len() > 0 {
		t.Error("Warn message should not appear when level is Error")
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelInfo, &buf)

	log.WithField("scope", "typescript").Info("loaded")

	out := buf.String()
	if !strings.Contains(out, "scope=typescript") {
		t.Errorf("output = %q, want scope field", out)
	}
}

func TestLoggerMasksSensitiveFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelInfo, &buf)

	log.WithField("token", "ghp_abcdefghijklmnop").Info("authenticated")

	out := buf.String()
	if strings.Contains(out, "ghp_abcdefghijklmnop") {
		t.Errorf("output = %q, token value should be masked", out)
	}
	if !strings.Contains(out, "token=ghp_***mnop") {
		t.Errorf("output = %q, want masked token", out)
	}

	buf.Reset()
	log.WithField("password", "hunter2").Info("login")
	if !strings.Contains(buf.String(), "password=***MASKED***") {
		t.Errorf("output = %q, short secrets should be fully masked", buf.String())
	}

	buf.Reset()
	log.WithField("scope", "typescript").Info("loaded")
	if !strings.Contains(buf.String(), "scope=typescript") {
		t.Errorf("output = %q, non-sensitive fields must pass through", buf.String())
	}
}

func TestLoggerPrefix(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelInfo, &buf).WithPrefix("guide")

	log.Info("parsed document")

	if !strings.Contains(buf.String(), "[guide]") {
		t.Errorf("output = %q, want [guide] prefix", buf.String())
	}
}

func TestLoggerFormatArgs(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelInfo, &buf)

	log.Info("loaded %d rules", 42)

	if !strings.Contains(buf.String(), "loaded 42 rules") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	if LevelWarn.String() != "WARN" {
		t.Errorf("LevelWarn.String() = %q", LevelWarn.String())
	}
	if Level(42).String() != "UNKNOWN" {
		t.Errorf("Level(42).String() = %q", Level(42).String())
	}
}
