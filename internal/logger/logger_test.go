package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileOutput(t *testing.T) {
	tmpDir := t.TempDir()
	logFile := filepath.Join(tmpDir, "bake.log")

	if err := Init("debug", logFile, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Info("bake started")
	Debug("debug detail")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "bake started") {
		t.Error("info message missing from log file")
	}
	if !strings.Contains(content, "debug detail") {
		t.Error("debug message missing from log file at debug level")
	}
}

func TestLevelFiltering(t *testing.T) {
	tmpDir := t.TempDir()
	logFile := filepath.Join(tmpDir, "bake.log")

	if err := Init("warn", logFile, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Info("should be filtered")
	Warn("should appear")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(data)

	if strings.Contains(content, "should be filtered") {
		t.Error("info message leaked through warn level")
	}
	if !strings.Contains(content, "should appear") {
		t.Error("warn message missing")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug": "debug",
		"warn":  "warn",
		"error": "error",
		"info":  "info",
		"bogus": "info",
		"":      "info",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
