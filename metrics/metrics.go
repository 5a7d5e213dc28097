// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/symcore/utils/wrappers"
)

// Engine bundles the handful of metrics the symbolic engine instruments:
// forward-image steps taken during reachability, the current onion-ring
// depth, and SAT solve latency. Every field is nil-safe (Observe/Inc/Set on
// a nil Averager/Counter/Gauge is a no-op via StartTimer and the zero
// values below), so an Engine built with nil registerer is a usable no-op.
type Engine struct {
	ForwardImageSteps Counter
	OnionRingDepth    Gauge
	SATSolveSeconds   Averager
}

// NewEngine registers the symbolic engine's metrics against reg. Errors
// registering any individual metric are collected rather than aborting
// construction, mirroring the teacher's NewAveragerWithErrs tolerance for
// partial registration failure (e.g. a duplicate registration against a
// shared registry).
func NewEngine(reg prometheus.Registerer) (*Engine, error) {
	if reg == nil {
		return &Engine{ForwardImageSteps: NewCounter(), OnionRingDepth: NewGauge()}, nil
	}

	var errs wrappers.Errs
	sat := NewAveragerWithErrs("symcore_sat_solve_seconds", "time spent per SAT solve call", reg, &errs)
	return &Engine{
		ForwardImageSteps: NewCounter(),
		OnionRingDepth:    NewGauge(),
		SATSolveSeconds:   sat,
	}, errs.Err()
}
