package common

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("LogLevel.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppLogger_SetLevel(t *testing.T) {
	logger := &AppLogger{
		level: LevelInfo,
	}

	logger.SetLevel(LevelDebug)
	if logger.level != LevelDebug {
		t.Errorf("SetLevel did not update level, got %v, want %v", logger.level, LevelDebug)
	}
}

func TestAppLogger_LogFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := &AppLogger{
		level:  LevelWarn,
		output: &buf,
	}
	logger.logger = log.New(&buf, "", 0)

	// Debug and Info should be filtered
	logger.Debug("debug message")
	logger.Info("info message")

	if buf.Len() > 0 {
		t.Error("Debug/Info messages should be filtered when level is Warn")
	}

	// Warn and Error should pass
	logger.Warn("warn message")
	if !strings.Contains(buf.String(), "WARN") {
		t.Error("Warn message should be logged")
	}

	buf.Reset()
	logger.Error("error message")
	if !strings.Contains(buf.String(), "ERROR") {
		t.Error("Error message should be logged")
	}
}

func TestAppLogger_LogFormatting(t *testing.T) {
	var buf bytes.Buffer

	logger := &AppLogger{
		level:  LevelDebug,
		output: &buf,
	}
	logger.logger = log.New(&buf, "", 0)

	logger.Info("applying profile %s", "Work")

	output := buf.String()

	if !strings.Contains(output, time.Now().Format("2006/01/02")) {
		t.Error("Log should contain date in YYYY/MM/DD format")
	}

	if !strings.Contains(output, "[INFO]") {
		t.Error("Log should contain level indicator")
	}

	if !strings.Contains(output, "applying profile Work") {
		t.Error("Log should contain formatted message")
	}
}

func TestAppLogger_Rotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, LogFileName)

	// Grow the file past the rotation threshold
	large := strings.Repeat("x", 64*1024)
	if err := os.WriteFile(logFile, []byte(large), 0600); err != nil {
		t.Fatal(err)
	}

	logger := &AppLogger{
		level:      LevelInfo,
		maxSize:    32 * 1024,
		maxBackups: 2,
	}

	logger.rotateIfNeeded(logFile)

	if FileExists(logFile) {
		t.Error("Original log file should be renamed away after rotation")
	}

	matches, _ := filepath.Glob(filepath.Join(tempDir, LogFileName+".*"))
	if len(matches) != 1 {
		t.Errorf("Expected 1 rotated file, got %d", len(matches))
	}
}

func TestAppLogger_PruneBackups(t *testing.T) {
	tempDir := t.TempDir()

	// Five timestamped backups, oldest first
	for i := 0; i < 5; i++ {
		name := filepath.Join(tempDir, LogFileName+".20240101-00000"+string(rune('0'+i)))
		if err := os.WriteFile(name, []byte("old"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	logger := &AppLogger{maxBackups: 2}
	logger.pruneBackups(tempDir)

	matches, _ := filepath.Glob(filepath.Join(tempDir, LogFileName+".*"))
	if len(matches) != 2 {
		t.Errorf("Expected 2 surviving backups, got %d", len(matches))
	}
	for _, m := range matches {
		if !strings.HasSuffix(m, "3") && !strings.HasSuffix(m, "4") {
			t.Errorf("Prune should keep newest backups, kept %s", m)
		}
	}
}
