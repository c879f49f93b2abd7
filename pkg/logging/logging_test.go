package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			Setup(Options{Verbosity: tt.verbosity, Console: &bytes.Buffer{}, File: true})

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("Setup(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "skillhook", "skillhook.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestSetupWithoutFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)

	var buf bytes.Buffer
	Setup(Options{Verbosity: 0, Console: &buf})

	if _, err := os.Stat(filepath.Join(tempDir, "skillhook")); !os.IsNotExist(err) {
		t.Errorf("state directory should not be created when file logging is off")
	}

	logger := GetLogger("test")
	logger.Info().Msg("hidden at warn level")
	if buf.Len() != 0 {
		t.Errorf("info message leaked at warn level: %q", buf.String())
	}

	logger.Warn().Msg("visible warning")
	if !strings.Contains(buf.String(), "visible warning") {
		t.Errorf("warning not written to console: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "component=test") {
		t.Errorf("component field missing: %q", buf.String())
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")

	got := getLogFilePath()
	want := filepath.Join("/custom/state", "skillhook", "skillhook.log")
	if got != want {
		t.Errorf("getLogFilePath() = %s, want %s", got, want)
	}
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	Setup(Options{Verbosity: 2, Console: &buf})

	done := LogOperationStart(GetLogger("op"), "evaluate")
	done()

	out := buf.String()
	if !strings.Contains(out, "Operation started") || !strings.Contains(out, "Operation completed") {
		t.Errorf("expected start and completion lines, got %q", out)
	}
}
