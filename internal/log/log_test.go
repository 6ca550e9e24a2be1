package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// restore resets the global logger after a test.
func restore(t *testing.T) {
	t.Helper()
	level := logrus.GetLevel()
	out := logrus.StandardLogger().Out
	formatter := logrus.StandardLogger().Formatter
	t.Cleanup(func() {
		logrus.SetLevel(level)
		logrus.SetOutput(out)
		logrus.SetFormatter(formatter)
	})
}

func TestLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      logrus.Level
	}{
		{-1, logrus.WarnLevel},
		{0, logrus.WarnLevel},
		{1, logrus.InfoLevel},
		{2, logrus.DebugLevel},
		{5, logrus.DebugLevel},
	}
	for _, tt := range tests {
		if got := Level(tt.verbosity); got != tt.want {
			t.Errorf("Level(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestSetup_Writer(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	closer, err := Setup(Options{Verbosity: 1, Output: &buf})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer closer.Close()

	Module("watch").Debug("hidden")
	Module("watch").Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written at info level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "module=watch") {
		t.Errorf("info entry missing or untagged: %q", out)
	}
}

func TestSetup_File(t *testing.T) {
	restore(t)

	path := filepath.Join(t.TempDir(), "dtg.log")
	closer, err := Setup(Options{File: path})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	Module("cli").Warn("reload failed")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	matches, err := filepath.Glob(path + ".*")
	if err != nil || len(matches) != 1 {
		t.Fatalf("rotated files = %v (err %v), want one", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "reload failed") {
		t.Errorf("log file content = %q", data)
	}
}
