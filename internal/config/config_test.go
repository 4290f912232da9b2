package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tmclane/pixie/internal/config"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load of a missing file returned an error: %v", err)
	}
	if cfg.OutputFormat != "text" {
		t.Errorf("OutputFormat = %q, want %q", cfg.OutputFormat, "text")
	}
	if len(cfg.NativeGroups) != 0 {
		t.Errorf("NativeGroups = %v, want empty", cfg.NativeGroups)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixie.yaml")
	doc := "maxStackDepth: 1000\nnativeGroups:\n  - arithmetic\n  - io\noutputFormat: json\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxStackDepth != 1000 {
		t.Errorf("MaxStackDepth = %d, want 1000", cfg.MaxStackDepth)
	}
	if cfg.OutputFormat != "json" {
		t.Errorf("OutputFormat = %q, want %q", cfg.OutputFormat, "json")
	}
	if len(cfg.NativeGroups) != 2 || cfg.NativeGroups[0] != "arithmetic" || cfg.NativeGroups[1] != "io" {
		t.Errorf("NativeGroups = %v, want [arithmetic io]", cfg.NativeGroups)
	}
}

func TestLoadUnreadableFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	if _, err := config.Load(dir); err == nil {
		t.Errorf("Load of a directory returned no error")
	}
}

func TestIncludesGroupWithEmptyListIncludesEverything(t *testing.T) {
	cfg := config.Default()
	if !cfg.IncludesGroup("arithmetic") {
		t.Errorf("IncludesGroup with empty NativeGroups should include everything")
	}
}

func TestIncludesGroupFiltersToListedGroups(t *testing.T) {
	cfg := &config.Config{NativeGroups: []string{"arithmetic", "comparison"}}
	if !cfg.IncludesGroup("arithmetic") {
		t.Errorf("IncludesGroup(%q) = false, want true", "arithmetic")
	}
	if cfg.IncludesGroup("io") {
		t.Errorf("IncludesGroup(%q) = true, want false", "io")
	}
}
