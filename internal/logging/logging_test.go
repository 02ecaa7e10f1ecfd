package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWritesConsoleAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var console bytes.Buffer

	logger, err := New(Options{Dir: dir, Console: &console})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info().Int("windows", 81).Msg("segment summarized")

	if !strings.Contains(console.String(), "segment summarized") {
		t.Errorf("console output = %q", console.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"windows":81`) {
		t.Errorf("log file = %q", data)
	}
}

func TestNewLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if _, err := New(Options{Dir: t.TempDir(), Console: &bytes.Buffer{}, Verbose: true}); err != nil {
		t.Fatal(err)
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("GlobalLevel() = %v, want debug", zerolog.GlobalLevel())
	}

	if _, err := New(Options{Dir: t.TempDir(), Console: &bytes.Buffer{}}); err != nil {
		t.Fatal(err)
	}
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("GlobalLevel() = %v, want info", zerolog.GlobalLevel())
	}
}

func TestNewRejectsFileAsDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(Options{Dir: path, Console: &bytes.Buffer{}}); err == nil {
		t.Error("New() error = nil, want error for file path")
	}
}
