package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewLoggerQuiet(t *testing.T) {
	logger, err := NewLogger(false)
	if err != nil {
		t.Fatalf("NewLogger(false) returned error: %v", err)
	}
	if logger == nil {
		t.Fatal("NewLogger(false) returned nil logger")
	}

	// Nop logger must be safe to use
	logger.Info("ignored")
}

func TestNewLoggerVerboseWritesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	logger, err := NewLogger(true)
	if err != nil {
		t.Fatalf("NewLogger(true) returned error: %v", err)
	}

	logger.Info("hello from test")
	_ = logger.Sync()

	logPath := filepath.Join(home, ".advisor", "advisor.log")
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty after writing")
	}
}
