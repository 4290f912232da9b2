// Package runner wires an Interpreter together from its parts, keeping
// internal/interp itself free of internal/config's import — the same
// separation of "assembly" from "core" the teacher's runner.go draws
// between internal/interp and internal/interp/evaluator.
package runner

import (
	"io"

	"github.com/tmclane/pixie/internal/config"
	"github.com/tmclane/pixie/internal/interp"
	"github.com/tmclane/pixie/internal/interp/builtins"
)

// New creates an Interpreter with the default native function set.
func New(output io.Writer) *interp.Interpreter {
	return NewWithOptions(output, config.Default())
}

// NewWithOptions wires an Interpreter from a loaded Config, filtering
// the native registry down to cfg's nativeGroups (empty means "all").
func NewWithOptions(output io.Writer, cfg *config.Config) *interp.Interpreter {
	if cfg == nil {
		cfg = config.Default()
	}
	registry := builtins.NewFilteredRegistry(output, func(category builtins.Category) bool {
		return cfg.IncludesGroup(string(category))
	})
	in := interp.NewWithRegistry(output, registry)
	in.MaxStackDepth = cfg.MaxStackDepth
	return in
}
