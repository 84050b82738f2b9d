package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dmalakhov/flapterm/internal/config"
	"github.com/dmalakhov/flapterm/internal/core"
	"github.com/dmalakhov/flapterm/internal/flappy"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	game := flappy.NewSeeded(config.Default(), 1)
	rcfg := core.DefaultConfig()
	return NewModel(game, nil, rcfg, nil)
}

func TestScreenshotWritesUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := newTestModel(t)
	m.saveScreenshot()

	dir := filepath.Join(home, ".flapterm", "screenshots")
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading screenshot directory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, found %d", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("reading screenshot: %v", err)
	}
	if len(data) == 0 {
		t.Error("screenshot file is empty")
	}
}

func TestViewRendersWithoutStore(t *testing.T) {
	m := newTestModel(t)
	if out := m.View(); out == "" {
		t.Error("View returned an empty frame")
	}
}
