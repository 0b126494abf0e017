// Package engine runs the external analysis engine.
package engine

import (
	"context"

	"github.com/bdwood3/jslinter/internal/lint"
)

// Engine lints one source text.
type Engine interface {
	Lint(ctx context.Context, source string, opts lint.Options, globals lint.Globals) (*lint.Result, error)
}

// Func adapts a plain function to Engine.
type Func func(ctx context.Context, source string, opts lint.Options, globals lint.Globals) (*lint.Result, error)

// Lint calls f.
func (f Func) Lint(ctx context.Context, source string, opts lint.Options, globals lint.Globals) (*lint.Result, error) {
	return f(ctx, source, opts, globals)
}
