// Hand-written mock of github.com/luxfi/symcore/sat (interfaces: Backend,
// ConflictCapable), in the shape MockGen generates.

package sat

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockBackend is a mock of the Backend interface, additionally
// implementing ConflictCapable so tests can exercise GetConflicts.
type MockBackend struct {
	ctrl     *gomock.Controller
	recorder *MockBackendMockRecorder
}

// MockBackendMockRecorder is the mock recorder for MockBackend.
type MockBackendMockRecorder struct {
	mock *MockBackend
}

// NewMockBackend creates a new mock instance.
func NewMockBackend(ctrl *gomock.Controller) *MockBackend {
	mock := &MockBackend{ctrl: ctrl}
	mock.recorder = &MockBackendMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBackend) EXPECT() *MockBackendMockRecorder {
	return m.recorder
}

func (m *MockBackend) AddClause(lits []Literal) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AddClause", lits)
}

func (mr *MockBackendMockRecorder) AddClause(lits any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddClause", reflect.TypeOf((*MockBackend)(nil).AddClause), lits)
}

func (m *MockBackend) Solve(assumptions []Literal) (Outcome, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Solve", assumptions)
	ret0, _ := ret[0].(Outcome)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockBackendMockRecorder) Solve(assumptions any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Solve", reflect.TypeOf((*MockBackend)(nil).Solve), assumptions)
}

func (m *MockBackend) Model() []Literal {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Model")
	ret0, _ := ret[0].([]Literal)
	return ret0
}

func (mr *MockBackendMockRecorder) Model() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Model", reflect.TypeOf((*MockBackend)(nil).Model))
}

func (m *MockBackend) Conflicts(assumptions []Literal) []Literal {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Conflicts", assumptions)
	ret0, _ := ret[0].([]Literal)
	return ret0
}

func (mr *MockBackendMockRecorder) Conflicts(assumptions any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Conflicts", reflect.TypeOf((*MockBackend)(nil).Conflicts), assumptions)
}

var (
	_ Backend         = (*MockBackend)(nil)
	_ ConflictCapable = (*MockBackend)(nil)
)
