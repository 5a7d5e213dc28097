// Package diag carries the explicit diagnostics collaborator called for by
// spec.md's design note on the original engine's use of a global line
// number and global stderr stream during predicate extraction: every
// component that can emit a semantic warning (empty init, deadlock found,
// totality failure, ...) takes a Diagnostics value instead of writing to a
// package-level logger.
package diag

import "github.com/luxfi/log"

// Diagnostics receives the warnings and errors the engine emits on the
// "Recover: emit warning, return normally" path (spec.md §7).
type Diagnostics interface {
	// Warn reports a semantic warning that does not abort the call.
	Warn(msg string, kv ...any)
	// Error reports a contract or invariant violation, for callers that
	// want to log before returning the corresponding fatal error.
	Error(msg string, kv ...any)
}

type logDiagnostics struct {
	logger log.Logger
}

// New wraps a luxfi/log.Logger as a Diagnostics collaborator.
func New(logger log.Logger) Diagnostics {
	if logger == nil {
		return NoOp()
	}
	return &logDiagnostics{logger: logger}
}

func (d *logDiagnostics) Warn(msg string, kv ...any) {
	d.logger.Warn(msg, kv...)
}

func (d *logDiagnostics) Error(msg string, kv ...any) {
	d.logger.Error(msg, kv...)
}

type noop struct{}

// NoOp returns a Diagnostics that discards everything, grounded on the
// teacher's log.NoLog — used by tests and by callers that have not wired a
// logger.
func NoOp() Diagnostics { return noop{} }

func (noop) Warn(string, ...any)  {}
func (noop) Error(string, ...any) {}
