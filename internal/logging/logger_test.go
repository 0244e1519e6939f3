package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// captureOutput is a test helper that routes both loggers into buffers for
// the duration of fn and returns the combined trimmed output.
func captureOutput(level string, fn func()) string {
	var out, errOut bytes.Buffer

	origStdout := stdoutLogger
	origStderr := stderrLogger

	stdoutLogger = log.NewWithOptions(&out, log.Options{
		ReportTimestamp: false,
	})
	stderrLogger = log.NewWithOptions(&errOut, log.Options{
		ReportTimestamp: false,
	})
	SetLevel(level)

	fn()

	stdoutLogger = origStdout
	stderrLogger = origStderr

	return strings.TrimSpace(out.String() + errOut.String())
}

// TestLogLevels tests that logging functions emit their messages
func TestLogLevels(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func()
		expected string
	}{
		{
			name: "Info level",
			logFunc: func() {
				Info("test info message")
			},
			expected: "test info message",
		},
		{
			name: "Warn level",
			logFunc: func() {
				Warn("test warn message")
			},
			expected: "test warn message",
		},
		{
			name: "Error level",
			logFunc: func() {
				Error("test error message")
			},
			expected: "test error message",
		},
		{
			name: "Debug level",
			logFunc: func() {
				Debug("test debug message")
			},
			expected: "test debug message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureOutput("DEBUG", tt.logFunc)

			if !strings.Contains(output, tt.expected) {
				t.Errorf("Expected output to contain '%s', got '%s'", tt.expected, output)
			}
		})
	}
}

// TestSetLevelFiltering tests that log level filtering suppresses lower levels
func TestSetLevelFiltering(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		logFunc    func()
		wantOutput bool
	}{
		{
			name:  "debug suppressed at INFO",
			level: "INFO",
			logFunc: func() {
				Debug("hidden debug")
			},
			wantOutput: false,
		},
		{
			name:  "info visible at INFO",
			level: "INFO",
			logFunc: func() {
				Info("visible info")
			},
			wantOutput: true,
		},
		{
			name:  "info suppressed at ERROR",
			level: "ERROR",
			logFunc: func() {
				Info("hidden info")
			},
			wantOutput: false,
		},
		{
			name:  "error visible at ERROR",
			level: "ERROR",
			logFunc: func() {
				Error("visible error")
			},
			wantOutput: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureOutput(tt.level, tt.logFunc)

			if tt.wantOutput && output == "" {
				t.Errorf("Expected output, got none")
			}
			if !tt.wantOutput && output != "" {
				t.Errorf("Expected no output, got '%s'", output)
			}
		})
	}
}

// TestValidLogLevels tests the canonical level set
func TestValidLogLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"DEBUG", true},
		{"INFO", true},
		{"WARN", true},
		{"ERROR", true},
		{"info", false},
		{"TRACE", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidLogLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidLogLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}

			err := ValidateLogLevel(tt.level)
			if tt.valid && err != nil {
				t.Errorf("ValidateLogLevel(%q) returned unexpected error: %v", tt.level, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("ValidateLogLevel(%q) expected error, got nil", tt.level)
			}
		})
	}
}

// TestLevelWriter tests that subprocess output lines are split and prefixed
func TestLevelWriter(t *testing.T) {
	output := captureOutput("DEBUG", func() {
		w := NewLevelWriter("INFO", "build")
		_, err := w.Write([]byte("first line\n\nsecond line\n"))
		if err != nil {
			t.Fatalf("Write returned error: %v", err)
		}
	})

	if !strings.Contains(output, "build: first line") {
		t.Errorf("Expected prefixed first line, got '%s'", output)
	}
	if !strings.Contains(output, "build: second line") {
		t.Errorf("Expected prefixed second line, got '%s'", output)
	}
}
