// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package nimbus is a generated GoMock package.
package nimbus

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockTracer is a mock of Tracer interface.
type MockTracer struct {
	ctrl     *gomock.Controller
	recorder *MockTracerMockRecorder
}

// MockTracerMockRecorder is the mock recorder for MockTracer.
type MockTracerMockRecorder struct {
	mock *MockTracer
}

// NewMockTracer creates a new mock instance.
func NewMockTracer(ctrl *gomock.Controller) *MockTracer {
	mock := &MockTracer{ctrl: ctrl}
	mock.recorder = &MockTracerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTracer) EXPECT() *MockTracerMockRecorder {
	return m.recorder
}

// TracePrecompileCall mocks base method.
func (m *MockTracer) TracePrecompileCall(frame *Frame, gasRequirement Gas, output Data) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "TracePrecompileCall", frame, gasRequirement, output)
}

// TracePrecompileCall indicates an expected call of TracePrecompileCall.
func (mr *MockTracerMockRecorder) TracePrecompileCall(frame, gasRequirement, output any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TracePrecompileCall", reflect.TypeOf((*MockTracer)(nil).TracePrecompileCall), frame, gasRequirement, output)
}
