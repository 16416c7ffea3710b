// Package meta orchestrates pattern compilation and strategy selection.
//
// The meta engine coordinates the pipeline stages — parser, literal
// extractor, NFA compiler — and picks the cheapest backend that decides
// acceptance for the pattern: exact literal comparison, Aho-Corasick-assisted
// set membership, or general NFA simulation. It owns the compiled artifacts
// and provides a concurrency-safe IsMatch.
package meta

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates an invalid engine configuration.
var ErrInvalidConfig = errors.New("invalid engine configuration")

// Config controls meta engine behavior.
type Config struct {
	// EnableLiteralOpt enables literal extraction and the literal bypass
	// strategies. When false, every pattern runs on the NFA.
	// Default: true
	EnableLiteralOpt bool

	// MaxLiterals caps how many alternatives literal extraction may expand
	// to before giving up and falling back to the NFA. Larger values let
	// bigger alternations take the literal-set path at the cost of
	// compile-time enumeration.
	// Default: 64
	MaxLiterals int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		EnableLiteralOpt: true,
		MaxLiterals:      64,
	}
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if c.MaxLiterals <= 0 {
		return fmt.Errorf("%w: MaxLiterals must be positive, got %d",
			ErrInvalidConfig, c.MaxLiterals)
	}
	return nil
}
