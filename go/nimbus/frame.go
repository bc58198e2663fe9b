// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package nimbus

import "fmt"

// FrameState is the life-cycle state of a message call frame.
type FrameState int

const (
	StateNotStarted FrameState = iota
	StateCodeExecuting
	StateCompletedSuccess
	StateRevert
	StateExceptionalHalt
)

func (s FrameState) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateCodeExecuting:
		return "CodeExecuting"
	case StateCompletedSuccess:
		return "CompletedSuccess"
	case StateRevert:
		return "Revert"
	case StateExceptionalHalt:
		return "ExceptionalHalt"
	default:
		return fmt.Sprintf("FrameState(%d)", s)
	}
}

// IsTerminal reports whether no further transition is allowed from s.
func (s FrameState) IsTerminal() bool {
	return s == StateCompletedSuccess || s == StateRevert || s == StateExceptionalHalt
}

// HaltReason qualifies an exceptional halt. NoHaltReason is used for the
// generic case of a native service producing no usable output.
type HaltReason int

const (
	NoHaltReason HaltReason = iota
	InsufficientGas
	IllegalStateChange
)

func (r HaltReason) String() string {
	switch r {
	case NoHaltReason:
		return "none"
	case InsufficientGas:
		return "insufficient gas"
	case IllegalStateChange:
		return "illegal state change"
	default:
		return fmt.Sprintf("HaltReason(%d)", r)
	}
}

// CallParameters summarizes the inputs of a message call as provided by the
// interpreter when creating a Frame.
type CallParameters struct {
	Sender    Address
	Recipient Address
	Value     Value
	Input     Data
	Gas       Gas
	Depth     int
	Static    bool
}

// Frame is the mutable context of a single in-flight message call. It is
// owned by the interpreter for the duration of the call and lent to the
// dispatcher and the precompiled contracts, which must not retain it.
//
// A frame ends in exactly one of three terminal states, each entered through
// a commit-once method: Complete, Revert, or Halt. Invoking any of those on a
// frame that already terminated is a protocol violation and panics.
type Frame struct {
	CallParameters

	gas          Gas
	state        FrameState
	output       Data
	revertReason Data
	haltReason   HaltReason
	records      []ChildRecord
}

// NewFrame creates a frame in the NotStarted state holding the full gas
// allowance of the call.
func NewFrame(params CallParameters) *Frame {
	if params.Gas < 0 {
		panic(fmt.Sprintf("negative gas allowance: %d", params.Gas))
	}
	return &Frame{
		CallParameters: params,
		gas:            params.Gas,
		state:          StateNotStarted,
	}
}

func (f *Frame) Gas() Gas {
	return f.gas
}

func (f *Frame) State() FrameState {
	return f.state
}

// Output is the result of a successful call; nil in any other state.
func (f *Frame) Output() Data {
	return f.output
}

// RevertReason is set if and only if the frame is in the Revert state.
func (f *Frame) RevertReason() Data {
	return f.revertReason
}

// HaltReason is only meaningful if the frame is in the ExceptionalHalt state.
func (f *Frame) HaltReason() HaltReason {
	return f.haltReason
}

// Start marks the frame as executing. Starting a frame twice or after it has
// terminated panics.
func (f *Frame) Start() {
	if f.state != StateNotStarted {
		panic(fmt.Sprintf("cannot start frame in state %v", f.state))
	}
	f.state = StateCodeExecuting
}

// Complete charges gasUsed, stores the output and ends the call successfully.
func (f *Frame) Complete(output Data, gasUsed Gas) {
	f.finish(StateCompletedSuccess, gasUsed)
	f.output = output
}

// Revert charges gasUsed and ends the call with a caller-correctable failure.
func (f *Frame) Revert(reason Data, gasUsed Gas) {
	f.finish(StateRevert, gasUsed)
	f.revertReason = reason
}

// Halt charges gasUsed and ends the call with an execution-fatal failure.
func (f *Frame) Halt(reason HaltReason, gasUsed Gas) {
	f.finish(StateExceptionalHalt, gasUsed)
	f.haltReason = reason
}

func (f *Frame) finish(state FrameState, gasUsed Gas) {
	if f.state.IsTerminal() {
		panic(fmt.Sprintf("frame already terminated in state %v, cannot enter %v", f.state, state))
	}
	if gasUsed < 0 || gasUsed > f.gas {
		panic(fmt.Sprintf("invalid gas charge %d, remaining %d", gasUsed, f.gas))
	}
	f.gas -= gasUsed
	f.state = state
}

// AddChildRecord attaches a record of a synthetic operation performed on
// behalf of this call. Records are kept regardless of the call outcome.
func (f *Frame) AddChildRecord(record ChildRecord) {
	f.records = append(f.records, record)
}

func (f *Frame) ChildRecords() []ChildRecord {
	return f.records
}
