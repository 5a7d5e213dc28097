// Package sat declares the SAT solver abstraction: a group-based CNF
// solver built atop an opaque Backend collaborator (the actual DPLL/CDCL
// engine is out of scope, mirroring package bdd's treatment of the BDD
// engine).
package sat

import (
	"time"

	"github.com/luxfi/symcore/diag"
	"github.com/luxfi/symcore/metrics"
	"github.com/luxfi/symcore/symerr"
)

// Outcome is the result of a solve call.
type Outcome int

const (
	Unknown Outcome = iota
	SAT
	UNSAT
	InternalError
)

func (o Outcome) String() string {
	switch o {
	case SAT:
		return "SAT"
	case UNSAT:
		return "UNSAT"
	case InternalError:
		return "InternalError"
	default:
		return "Unknown"
	}
}

// Literal is a signed DIMACS-style CNF literal: variable id = abs(lit),
// negative means negated.
type Literal int

// Clause is a disjunction of literals.
type Clause []Literal

// constantLiteral is the sentinel marking a CNF problem that reduces to a
// boolean constant rather than a real formula: Clauses is empty for true,
// or a single empty clause for false, matching the original encoding so
// set_polarity's constant special-case translates directly.
const constantLiteral = Literal(1<<31 - 1)

// CNF is a conjunctive-normal-form problem: a formula literal (naming the
// top-level Tseitin variable) plus its defining clauses. A CNF whose
// FormulaLiteral is the constant sentinel represents a boolean constant;
// IsConstant/ConstantValue interpret it.
type CNF struct {
	FormulaLiteral Literal
	Clauses        []Clause
}

// NewCNF builds a CNF problem over a Tseitin variable and its clauses.
func NewCNF(formula Literal, clauses []Clause) CNF {
	return CNF{FormulaLiteral: formula, Clauses: clauses}
}

// ConstantCNF builds the constant-true or constant-false CNF problem.
func ConstantCNF(value bool) CNF {
	if value {
		return CNF{FormulaLiteral: constantLiteral}
	}
	return CNF{FormulaLiteral: constantLiteral, Clauses: []Clause{{}}}
}

// IsConstant reports whether c represents a boolean constant rather than
// a real formula.
func (c CNF) IsConstant() bool {
	return c.FormulaLiteral == constantLiteral
}

// ConstantValue returns c's constant value. It panics if !c.IsConstant().
func (c CNF) ConstantValue() bool {
	if !c.IsConstant() {
		panic(symerr.NewContract("sat.CNF.ConstantValue", "CNF is not a constant"))
	}
	return len(c.Clauses) == 0
}

// Group identifies a set of clauses that can be enabled/disabled as a
// unit. The permanent group (id 0) can never be destroyed.
type Group int

const Permanent Group = 0

// Solver is a group-based CNF solver atop a Backend. It is exclusively
// owned by its caller (spec.md §5: "the SAT solver instance is
// exclusively owned"), so no internal locking.
type Solver struct {
	name    string
	backend Backend
	vars    *varMap

	existingGroups  []Group
	nextGroup       Group
	groupSwitch     map[Group]Literal
	unsatGroups     map[Group]bool

	model         []Literal
	modelValid    bool
	conflicts     []Literal
	conflictValid bool

	interpolation bool
	lastSolveTime time.Duration

	diagnostics diag.Diagnostics
	eng         *metrics.Engine
}

// New builds a Solver over backend, with a fresh permanent group. A nil
// diagnostics collaborator defaults to diag.NoOp().
func New(name string, backend Backend, diagnostics diag.Diagnostics, eng *metrics.Engine) *Solver {
	if diagnostics == nil {
		diagnostics = diag.NoOp()
	}
	s := &Solver{
		name:           name,
		backend:        backend,
		vars:           newVarMap(),
		existingGroups: []Group{Permanent},
		nextGroup:      Permanent + 1,
		groupSwitch:    make(map[Group]Literal),
		unsatGroups:    make(map[Group]bool),
		diagnostics:    diagnostics,
		eng:            eng,
	}
	return s
}

// Name returns the solver's name.
func (s *Solver) Name() string { return s.name }

// LastSolvingTime returns the wall-clock duration of the most recent
// solve call.
func (s *Solver) LastSolvingTime() time.Duration { return s.lastSolveTime }

// PermanentGroup returns the always-present permanent group.
func (s *Solver) PermanentGroup() Group { return s.existingGroups[0] }
