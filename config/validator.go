package config

import (
	"fmt"

	boolenc "github.com/luxfi/symcore/enc/bool"
	"github.com/luxfi/symcore/utils/wrappers"
)

// Validator checks a Config for internally inconsistent tunables.
type Validator struct{}

// NewValidator returns a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate aggregates every violated constraint into a single error,
// rather than stopping at the first one.
func (v *Validator) Validate(cfg *Config) error {
	var errs wrappers.Errs

	if cfg.CartesianThreshold < 1 {
		errs.Add(fmt.Errorf("cartesian threshold must be at least 1, got %d", cfg.CartesianThreshold))
	}

	switch cfg.ScalarVariant {
	case boolenc.HigherToLowerBalanced, boolenc.LowerToHigherBalanced, boolenc.HigherToLowerIncremental:
	default:
		errs.Add(fmt.Errorf("unknown scalar encoding variant %d", int(cfg.ScalarVariant)))
	}

	if cfg.ReachBudget < 0 {
		errs.Add(fmt.Errorf("reach budget must be >= 0 (0 means unbounded), got %s", cfg.ReachBudget))
	}

	return errs.Err()
}
