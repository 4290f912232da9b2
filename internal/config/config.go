// Package config loads the optional pixie.yaml file that customizes a
// run of the interpreter core: which native function groups to expose
// and a soft recursion-depth guard for diagnostics. This is the
// Go-idiomatic analogue of the teacher's CLI-flags/Options interface
// (internal/interp/options.go) promoted to a small versionable file,
// per SPEC_FULL.md §4.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the decoded shape of pixie.yaml.
type Config struct {
	// MaxStackDepth is a soft guard on continuation-stack depth used only
	// for diagnostics (spec.md's core itself has no stack-depth limit —
	// the whole point of the CPS design is that depth is bounded only by
	// host memory, not host call-stack frames). Zero means unlimited.
	MaxStackDepth int `yaml:"maxStackDepth"`

	// NativeGroups selects which internal/interp/builtins categories to
	// register. An empty list means "all of them" — the default.
	NativeGroups []string `yaml:"nativeGroups"`

	// OutputFormat is "text" (default) or "json". "json" makes cmd/pixie
	// eval render a terminal Exception as a JSON object, as --json does;
	// a non-exception result is printed the same way under either format.
	OutputFormat string `yaml:"outputFormat"`
}

// Default returns the zero-configuration Config: no stack-depth guard,
// every native group registered, text output.
func Default() *Config {
	return &Config{OutputFormat: "text"}
}

// Load reads and decodes a pixie.yaml file at path. A missing file is
// not an error — Load returns Default() instead, since pixie.yaml is
// entirely optional (spec.md's core works with zero configuration).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "text"
	}
	return cfg, nil
}

// IncludesGroup reports whether category should be registered under
// this configuration.
func (c *Config) IncludesGroup(category string) bool {
	if len(c.NativeGroups) == 0 {
		return true
	}
	for _, g := range c.NativeGroups {
		if g == category {
			return true
		}
	}
	return false
}
