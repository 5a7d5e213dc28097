// Hand-written mock of github.com/luxfi/symcore/bdd (interfaces: Manager),
// in the shape MockGen generates.

package bdd

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockManager is a mock of the Manager interface.
type MockManager struct {
	ctrl     *gomock.Controller
	recorder *MockManagerMockRecorder
}

// MockManagerMockRecorder is the mock recorder for MockManager.
type MockManagerMockRecorder struct {
	mock *MockManager
}

// NewMockManager creates a new mock instance.
func NewMockManager(ctrl *gomock.Controller) *MockManager {
	mock := &MockManager{ctrl: ctrl}
	mock.recorder = &MockManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockManager) EXPECT() *MockManagerMockRecorder {
	return m.recorder
}

func (m *MockManager) True() BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "True")
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) True() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "True", reflect.TypeOf((*MockManager)(nil).True))
}

func (m *MockManager) False() BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "False")
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) False() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "False", reflect.TypeOf((*MockManager)(nil).False))
}

func (m *MockManager) And(a, b BDD) BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "And", a, b)
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) And(a, b any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "And", reflect.TypeOf((*MockManager)(nil).And), a, b)
}

func (m *MockManager) Or(a, b BDD) BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Or", a, b)
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) Or(a, b any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Or", reflect.TypeOf((*MockManager)(nil).Or), a, b)
}

func (m *MockManager) Not(a BDD) BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Not", a)
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) Not(a any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Not", reflect.TypeOf((*MockManager)(nil).Not), a)
}

func (m *MockManager) Ite(cond, then, els BDD) BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Ite", cond, then, els)
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) Ite(cond, then, els any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Ite", reflect.TypeOf((*MockManager)(nil).Ite), cond, then, els)
}

func (m *MockManager) Exists(a, cube BDD) BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Exists", a, cube)
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) Exists(a, cube any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Exists", reflect.TypeOf((*MockManager)(nil).Exists), a, cube)
}

func (m *MockManager) ForSome(a, cube BDD) BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ForSome", a, cube)
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) ForSome(a, cube any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ForSome", reflect.TypeOf((*MockManager)(nil).ForSome), a, cube)
}

func (m *MockManager) ForAll(a, cube BDD) BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ForAll", a, cube)
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) ForAll(a, cube any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ForAll", reflect.TypeOf((*MockManager)(nil).ForAll), a, cube)
}

func (m *MockManager) AndAbstract(a, b, cube BDD) BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AndAbstract", a, b, cube)
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) AndAbstract(a, b, cube any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AndAbstract", reflect.TypeOf((*MockManager)(nil).AndAbstract), a, b, cube)
}

func (m *MockManager) Entailed(a, b BDD) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Entailed", a, b)
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockManagerMockRecorder) Entailed(a, b any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Entailed", reflect.TypeOf((*MockManager)(nil).Entailed), a, b)
}

func (m *MockManager) IsFalse(a BDD) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsFalse", a)
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockManagerMockRecorder) IsFalse(a any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsFalse", reflect.TypeOf((*MockManager)(nil).IsFalse), a)
}

func (m *MockManager) Ref(a BDD) BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Ref", a)
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) Ref(a any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Ref", reflect.TypeOf((*MockManager)(nil).Ref), a)
}

func (m *MockManager) Deref(a BDD) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Deref", a)
}

func (mr *MockManagerMockRecorder) Deref(a any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Deref", reflect.TypeOf((*MockManager)(nil).Deref), a)
}

func (m *MockManager) StateToNext(a BDD) BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StateToNext", a)
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) StateToNext(a any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StateToNext", reflect.TypeOf((*MockManager)(nil).StateToNext), a)
}

func (m *MockManager) NextToState(a BDD) BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NextToState", a)
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) NextToState(a any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NextToState", reflect.TypeOf((*MockManager)(nil).NextToState), a)
}

func (m *MockManager) StateCube() BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StateCube")
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) StateCube() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StateCube", reflect.TypeOf((*MockManager)(nil).StateCube))
}

func (m *MockManager) InputCube() BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InputCube")
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) InputCube() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InputCube", reflect.TypeOf((*MockManager)(nil).InputCube))
}

func (m *MockManager) FrozenCube() BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FrozenCube")
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) FrozenCube() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FrozenCube", reflect.TypeOf((*MockManager)(nil).FrozenCube))
}

func (m *MockManager) PickOneState(a BDD) (BDD, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PickOneState", a)
	ret0, _ := ret[0].(BDD)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockManagerMockRecorder) PickOneState(a any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PickOneState", reflect.TypeOf((*MockManager)(nil).PickOneState), a)
}

func (m *MockManager) PickOneInput(a BDD) (BDD, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PickOneInput", a)
	ret0, _ := ret[0].(BDD)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockManagerMockRecorder) PickOneInput(a any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PickOneInput", reflect.TypeOf((*MockManager)(nil).PickOneInput), a)
}

func (m *MockManager) PickAllTermsStates(a BDD) ([]BDD, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PickAllTermsStates", a)
	ret0, _ := ret[0].([]BDD)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockManagerMockRecorder) PickAllTermsStates(a any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PickAllTermsStates", reflect.TypeOf((*MockManager)(nil).PickAllTermsStates), a)
}

func (m *MockManager) PickAllTermsInputs(a BDD) ([]BDD, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PickAllTermsInputs", a)
	ret0, _ := ret[0].([]BDD)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockManagerMockRecorder) PickAllTermsInputs(a any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PickAllTermsInputs", reflect.TypeOf((*MockManager)(nil).PickAllTermsInputs), a)
}

func (m *MockManager) StateCount(a BDD) float64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StateCount", a)
	ret0, _ := ret[0].(float64)
	return ret0
}

func (mr *MockManagerMockRecorder) StateCount(a any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StateCount", reflect.TypeOf((*MockManager)(nil).StateCount), a)
}

func (m *MockManager) MaskState() BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MaskState")
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) MaskState() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MaskState", reflect.TypeOf((*MockManager)(nil).MaskState))
}

func (m *MockManager) MaskInput() BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MaskInput")
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) MaskInput() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MaskInput", reflect.TypeOf((*MockManager)(nil).MaskInput))
}

func (m *MockManager) MaskStateFrozen() BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MaskStateFrozen")
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) MaskStateFrozen() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MaskStateFrozen", reflect.TypeOf((*MockManager)(nil).MaskStateFrozen))
}

func (m *MockManager) MaskStateFrozenInput() BDD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MaskStateFrozenInput")
	ret0, _ := ret[0].(BDD)
	return ret0
}

func (mr *MockManagerMockRecorder) MaskStateFrozenInput() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MaskStateFrozenInput", reflect.TypeOf((*MockManager)(nil).MaskStateFrozenInput))
}

var _ Manager = (*MockManager)(nil)
