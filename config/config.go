// Package config holds the engine-wide tunables that would otherwise be
// scattered package-level defaults: the predicate extractor's
// Cartesian-product over-approximation threshold, the scalar-encoding
// variant, and the reachability expander's default step/time budget.
// Values are built through a Builder rather than exported as package
// vars, and a mismatched combination of settings is caught by Validate
// before it reaches the engine.
package config

import (
	"fmt"
	"time"

	boolenc "github.com/luxfi/symcore/enc/bool"
)

// Config holds one complete set of engine tunables.
type Config struct {
	// CartesianThreshold bounds the product-set size the predicate
	// extractor will materialize before over-approximating, when
	// OverApprox is enabled.
	CartesianThreshold int

	// OverApprox enables the predicate extractor's over-approximation
	// path once CartesianThreshold is exceeded. With it disabled the
	// extractor builds the full product set regardless of size.
	OverApprox bool

	// ScalarVariant selects the scalar bit-tree encoding algorithm.
	ScalarVariant boolenc.Variant

	// ReachStep bounds the number of onion rings a single reachability
	// expansion call computes; negative means no step bound.
	ReachStep int

	// ReachBudget bounds the wall-clock time a single reachability
	// expansion call may run; zero means no time bound, and a negative
	// value is rejected by Validate.
	ReachBudget time.Duration
}

// Builder provides a fluent interface for constructing a Config.
type Builder struct {
	cfg *Config
	err error
}

// NewBuilder returns a Builder seeded with the default configuration:
// 600,000-entry Cartesian threshold with over-approximation on,
// higher-to-lower balanced scalar encoding, and an unbounded reachability
// expansion.
func NewBuilder() *Builder {
	return &Builder{
		cfg: &Config{
			CartesianThreshold: 600000,
			OverApprox:         true,
			ScalarVariant:      boolenc.HigherToLowerBalanced,
			ReachStep:          -1,
			ReachBudget:        0,
		},
	}
}

// WithCartesianThreshold sets the over-approximation threshold.
func (b *Builder) WithCartesianThreshold(threshold int) *Builder {
	if b.err != nil {
		return b
	}
	if threshold < 1 {
		b.err = fmt.Errorf("cartesian threshold must be at least 1, got %d", threshold)
		return b
	}
	b.cfg.CartesianThreshold = threshold
	return b
}

// WithOverApprox enables or disables over-approximation.
func (b *Builder) WithOverApprox(enabled bool) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.OverApprox = enabled
	return b
}

// WithScalarVariant sets the scalar-encoding variant.
func (b *Builder) WithScalarVariant(variant boolenc.Variant) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.ScalarVariant = variant
	return b
}

// WithReachBudget sets the reachability expander's default step and time
// bounds. A negative step means no step bound; a zero budget means no time
// bound, and a negative budget makes Build fail.
func (b *Builder) WithReachBudget(step int, budget time.Duration) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.ReachStep = step
	b.cfg.ReachBudget = budget
	return b
}

// Build validates the accumulated configuration and returns it.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := NewValidator().Validate(b.cfg); err != nil {
		return nil, err
	}
	return b.cfg, nil
}
