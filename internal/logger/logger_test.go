package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestInit(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "config", "logs")

	err := Init(Config{
		Debug:  false,
		LogDir: logDir,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}
	if Logger == nil {
		t.Error("Logger is nil after initialization")
	}

	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}

func TestInitSessionID(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Config{Output: &buf}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if _, err := uuid.Parse(SessionID); err != nil {
		t.Fatalf("SessionID %q is not a uuid: %v", SessionID, err)
	}

	Warn("habit lookup failed", "id", 42)
	out := buf.String()
	if !strings.Contains(out, "habit lookup failed") {
		t.Errorf("log output missing message: %q", out)
	}
	if !strings.Contains(out, SessionID) {
		t.Errorf("log output missing session id: %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Config{Output: &buf}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Debug("hidden debug")
	Info("hidden info")
	if buf.Len() != 0 {
		t.Errorf("expected debug/info to be filtered at warn level, got %q", buf.String())
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// These should not panic when Logger is nil
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}
