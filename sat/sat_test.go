package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/luxfi/symcore/diag"
)

func newTestSolver() *Solver {
	return New("test", NewBruteForceBackend(), diag.NoOp(), nil)
}

func unitClause(lit Literal) CNF {
	return NewCNF(lit, []Clause{{lit}})
}

func TestSolverPermanentGroupSatisfiable(t *testing.T) {
	s := newTestSolver()
	require.NoError(t, s.Add(NewCNF(1, []Clause{{1, 2}}), s.PermanentGroup()))

	outcome, err := s.SolveAllGroups()
	require.NoError(t, err)
	assert.Equal(t, SAT, outcome)

	model, err := s.GetModel()
	require.NoError(t, err)
	assert.True(t, satisfiesCNFModel(model, Clause{1, 2}))
}

func TestSolverUnsatisfiableClauseSet(t *testing.T) {
	s := newTestSolver()
	require.NoError(t, s.Add(NewCNF(1, []Clause{{1}}), s.PermanentGroup()))
	require.NoError(t, s.Add(NewCNF(1, []Clause{{-1}}), s.PermanentGroup()))

	outcome, err := s.SolveAllGroups()
	require.NoError(t, err)
	assert.Equal(t, UNSAT, outcome)

	_, err = s.GetModel()
	assert.Error(t, err)
}

func TestDestroyGroupVacuouslySatisfiesItsClauses(t *testing.T) {
	s := newTestSolver()
	require.NoError(t, s.Add(NewCNF(1, []Clause{{1}}), s.PermanentGroup()))

	g := s.NewGroup()
	require.NoError(t, s.Add(NewCNF(1, []Clause{{-1}}), g))

	outcome, err := s.SolveAllGroups()
	require.NoError(t, err)
	assert.Equal(t, UNSAT, outcome, "group g's clause contradicts the permanent one")

	require.NoError(t, s.DestroyGroup(g))
	outcome, err = s.SolveAllGroups()
	require.NoError(t, err)
	assert.Equal(t, SAT, outcome, "destroyed group's clauses must be vacuously satisfied")
}

func TestDestroyPermanentGroupIsContractViolation(t *testing.T) {
	s := newTestSolver()
	err := s.DestroyGroup(s.PermanentGroup())
	assert.Error(t, err)
}

func TestMakePermanentKeepsClausesAfterSwitchDiscarded(t *testing.T) {
	s := newTestSolver()
	g := s.NewGroup()
	require.NoError(t, s.Add(NewCNF(1, []Clause{{1}}), g))
	require.NoError(t, s.MakePermanent(g))

	require.NoError(t, s.Add(NewCNF(2, []Clause{{-1}}), s.PermanentGroup()))
	outcome, err := s.SolveAllGroups()
	require.NoError(t, err)
	assert.Equal(t, UNSAT, outcome, "made-permanent clause must still hold")
}

func TestSolveGroupsSelectsOnlyRequestedGroups(t *testing.T) {
	s := newTestSolver()
	require.NoError(t, s.Add(NewCNF(1, []Clause{{1}}), s.PermanentGroup()))

	gA := s.NewGroup()
	require.NoError(t, s.Add(NewCNF(2, []Clause{{-1}}), gA))
	gB := s.NewGroup()
	require.NoError(t, s.Add(NewCNF(2, []Clause{{1}}), gB))

	outcome, err := s.SolveGroups([]Group{gB})
	require.NoError(t, err)
	assert.Equal(t, SAT, outcome, "only gB is active and it agrees with the permanent clause")

	outcome, err = s.SolveGroups([]Group{gA})
	require.NoError(t, err)
	assert.Equal(t, UNSAT, outcome, "gA contradicts the permanent clause")
}

func TestSolveWithoutGroupsExcludesGivenGroups(t *testing.T) {
	s := newTestSolver()
	require.NoError(t, s.Add(NewCNF(1, []Clause{{1}}), s.PermanentGroup()))

	gA := s.NewGroup()
	require.NoError(t, s.Add(NewCNF(2, []Clause{{-1}}), gA))
	gB := s.NewGroup()
	require.NoError(t, s.Add(NewCNF(2, []Clause{{1}}), gB))

	outcome, err := s.SolveWithoutGroups([]Group{gA})
	require.NoError(t, err)
	assert.Equal(t, SAT, outcome)
}

func TestSetPolarityConstantFalseMarksGroupUnsat(t *testing.T) {
	s := newTestSolver()
	g := s.NewGroup()
	require.NoError(t, s.SetPolarity(ConstantCNF(false), 1, g))

	outcome, err := s.SolveGroups([]Group{g})
	require.NoError(t, err)
	assert.Equal(t, UNSAT, outcome)
}

func TestSetPolarityConstantTrueIsNoOp(t *testing.T) {
	s := newTestSolver()
	g := s.NewGroup()
	require.NoError(t, s.SetPolarity(ConstantCNF(true), 1, g))

	outcome, err := s.SolveGroups([]Group{g})
	require.NoError(t, err)
	assert.Equal(t, SAT, outcome)
}

func TestSetPolarityRejectsBadPolarity(t *testing.T) {
	s := newTestSolver()
	err := s.SetPolarity(unitClause(1), 0, s.PermanentGroup())
	assert.Error(t, err)
}

func TestSolveAllGroupsAssumeCapturesConflicts(t *testing.T) {
	s := newTestSolver()
	require.NoError(t, s.Add(NewCNF(1, []Clause{{1}}), s.PermanentGroup()))

	outcome, err := s.SolveAllGroupsAssume([]Literal{-1})
	require.NoError(t, err)
	assert.Equal(t, UNSAT, outcome)
}

func TestGetConflictsUnsupportedWithoutConflictCapableBackend(t *testing.T) {
	s := newTestSolver()
	_, err := s.GetConflicts()
	assert.Error(t, err)
}

func TestModelDigestPacksModelLiterals(t *testing.T) {
	s := newTestSolver()
	require.NoError(t, s.Add(NewCNF(1, []Clause{{1, 2}}), s.PermanentGroup()))

	outcome, err := s.SolveAllGroups()
	require.NoError(t, err)
	require.Equal(t, SAT, outcome)

	digest, err := s.ModelDigest()
	require.NoError(t, err)
	assert.Len(t, digest, 4*2)
}

func TestInterpolationUnsupportedWithoutInterpolatingBackend(t *testing.T) {
	s := newTestSolver()
	_, err := s.NewItpGroup()
	assert.Error(t, err)
	_, err = s.CurrItpGroup()
	assert.Error(t, err)
	_, err = s.ExtractInterpolant(nil)
	assert.Error(t, err)
}

func TestMockBackendSatisfiesExpectations(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockBackend(ctrl)

	mock.EXPECT().AddClause(gomock.Any()).Times(1)
	mock.EXPECT().Solve(gomock.Any()).Return(SAT, nil)
	mock.EXPECT().Model().Return([]Literal{1})

	s := New("mocked", mock, diag.NoOp(), nil)
	require.NoError(t, s.Add(NewCNF(1, []Clause{{1}}), s.PermanentGroup()))

	outcome, err := s.SolveAllGroups()
	require.NoError(t, err)
	assert.Equal(t, SAT, outcome)

	model, err := s.GetModel()
	require.NoError(t, err)
	assert.Equal(t, []Literal{1}, model)
}

func TestMockBackendConflictsExpectation(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockBackend(ctrl)

	mock.EXPECT().Solve(gomock.Any()).Return(UNSAT, nil)
	mock.EXPECT().Conflicts(gomock.Any()).Return([]Literal{-1})

	s := New("mocked", mock, diag.NoOp(), nil)
	outcome, err := s.SolveAllGroupsAssume([]Literal{1})
	require.NoError(t, err)
	assert.Equal(t, UNSAT, outcome)

	conflicts, err := s.GetConflicts()
	require.NoError(t, err)
	assert.Equal(t, []Literal{-1}, conflicts)
}

func satisfiesCNFModel(model []Literal, clause Clause) bool {
	set := make(map[Literal]bool, len(model))
	for _, lit := range model {
		set[lit] = true
	}
	for _, lit := range clause {
		if set[lit] {
			return true
		}
	}
	return false
}
