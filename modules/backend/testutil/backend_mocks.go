package testutil

import (
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/backend"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/manifest"
)

type MockBackendRecorder struct {
	mock *MockBackend
}

type MockBackend struct {
	ctrl     *gomock.Controller
	recorder *MockBackendRecorder
}

var _ backend.Backend = &MockBackend{}

func NewMockBackend(ctrl *gomock.Controller) *MockBackend {
	mock := &MockBackend{ctrl: ctrl}
	mock.recorder = &MockBackendRecorder{mock: mock}
	return mock
}

func (m *MockBackend) EXPECT() *MockBackendRecorder {
	return m.recorder
}

func (m *MockBackend) NumPublicInputs(bytecode string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NumPublicInputs", bytecode)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockBackendRecorder) NumPublicInputs(bytecode any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NumPublicInputs", reflect.TypeOf((*MockBackend)(nil).NumPublicInputs), bytecode)
}

func (m *MockBackend) VerificationKey(mf *manifest.Manifest, srsPath string, opts backend.Options) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerificationKey", mf, srsPath, opts)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockBackendRecorder) VerificationKey(mf, srsPath, opts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerificationKey", reflect.TypeOf((*MockBackend)(nil).VerificationKey), mf, srsPath, opts)
}

func (m *MockBackend) Prove(mf *manifest.Manifest, srsPath string, inputs []string, vk []byte, opts backend.Options) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Prove", mf, srsPath, inputs, vk, opts)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockBackendRecorder) Prove(mf, srsPath, inputs, vk, opts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Prove", reflect.TypeOf((*MockBackend)(nil).Prove), mf, srsPath, inputs, vk, opts)
}

func (m *MockBackend) Verify(mf *manifest.Manifest, proof []byte, vk []byte, opts backend.Options) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Verify", mf, proof, vk, opts)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockBackendRecorder) Verify(mf, proof, vk, opts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockBackend)(nil).Verify), mf, proof, vk, opts)
}
