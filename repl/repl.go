// Package repl runs the legalizing passes over one unit of source text, the
// way an interactive host that evaluates one script at a time needs them.
package repl

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/t14raptor/replify/generator"
	"github.com/t14raptor/replify/parser"
	"github.com/t14raptor/replify/transform/imports"
	"github.com/t14raptor/replify/transform/toplevelawait"
)

// ErrIllegalReturn is returned when a unit returns at the top level and
// also awaits there. The code is left unwrapped.
var ErrIllegalReturn = errors.New("illegal return at top level")

// Config selects the passes to run.
type Config struct {
	// Imports rewrites static import declarations into awaited loads.
	Imports bool
	// TopLevelAwait wraps units that await at the top level.
	TopLevelAwait bool
	// Loader names the function called to load a module. Empty means the
	// native import().
	Loader string
}

// DefaultConfig returns a configuration with both passes enabled.
func DefaultConfig() Config {
	return Config{
		Imports:       true,
		TopLevelAwait: true,
	}
}

type Option func(*Legalizer)

// WithLogger sets the logger pass decisions are reported to.
func WithLogger(l *zap.Logger) Option {
	return func(lz *Legalizer) {
		lz.logger = l
	}
}

// Legalizer rewrites source units for evaluation by a script host.
// Safe for concurrent use.
type Legalizer struct {
	config Config
	logger *zap.Logger
}

// New creates a Legalizer with the given configuration.
func New(cfg Config, opts ...Option) *Legalizer {
	lz := &Legalizer{config: cfg}
	for _, opt := range opts {
		opt(lz)
	}
	if lz.logger == nil {
		lz.logger = Logger()
	}
	return lz
}

// Config returns the configuration.
func (lz *Legalizer) Config() Config {
	return lz.config
}

// Result is one legalized unit.
type Result struct {
	Code    string
	Imports int
	Outcome toplevelawait.Outcome
}

// Legalize parses src, rewrites its imports and then its top-level awaits,
// and prints the result. Imports go first since the loads they become
// are awaited.
//
// When the unit returns at the top level, Legalize returns the code
// without wrapping together with ErrIllegalReturn.
func (lz *Legalizer) Legalize(src string) (Result, error) {
	program, err := parser.ParseFile(src)
	if err != nil {
		return Result{}, fmt.Errorf("parse: %w", err)
	}

	var res Result
	if lz.config.Imports {
		var opts []imports.Option
		if lz.config.Loader != "" {
			opts = append(opts, imports.WithLoader(lz.config.Loader))
		}
		res.Imports = imports.Transform(program, opts...)
		lz.logger.Debug("imports rewritten",
			zap.Int("imports", res.Imports),
			zap.String("loader", lz.config.Loader))
	}

	if lz.config.TopLevelAwait {
		res.Outcome = toplevelawait.Transform(program)
		lz.logger.Debug("top-level await",
			zap.String("outcome", res.Outcome.String()))
	}

	res.Code = generator.Generate(program)
	if res.Outcome == toplevelawait.Declined {
		lz.logger.Warn("unit returns at the top level, left unwrapped")
		return res, ErrIllegalReturn
	}
	return res, nil
}
