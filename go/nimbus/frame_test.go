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

import (
	"bytes"
	"errors"
	"testing"
)

func TestFrame_NewFrameIsNotStarted(t *testing.T) {
	frame := NewFrame(CallParameters{Gas: 100})
	if want, got := StateNotStarted, frame.State(); want != got {
		t.Errorf("unexpected state, wanted %v, got %v", want, got)
	}
	if want, got := Gas(100), frame.Gas(); want != got {
		t.Errorf("unexpected gas, wanted %v, got %v", want, got)
	}
	if frame.Output() != nil || frame.RevertReason() != nil {
		t.Errorf("fresh frame must not carry output or revert reason")
	}
}

func TestFrame_TerminalTransitions(t *testing.T) {
	tests := map[string]struct {
		finish     func(*Frame)
		state      FrameState
		gas        Gas
		output     Data
		reason     Data
		haltReason HaltReason
	}{
		"complete": {
			finish: func(f *Frame) { f.Complete(Data{1, 2}, 30) },
			state:  StateCompletedSuccess,
			gas:    70,
			output: Data{1, 2},
		},
		"revert": {
			finish: func(f *Frame) { f.Revert(Data("reason"), 0) },
			state:  StateRevert,
			gas:    100,
			reason: Data("reason"),
		},
		"halt-out-of-gas": {
			finish:     func(f *Frame) { f.Halt(InsufficientGas, f.Gas()) },
			state:      StateExceptionalHalt,
			gas:        0,
			haltReason: InsufficientGas,
		},
		"halt-without-reason": {
			finish:     func(f *Frame) { f.Halt(NoHaltReason, 0) },
			state:      StateExceptionalHalt,
			gas:        100,
			haltReason: NoHaltReason,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			frame := NewFrame(CallParameters{Gas: 100})
			frame.Start()
			test.finish(frame)

			if want, got := test.state, frame.State(); want != got {
				t.Errorf("unexpected state, wanted %v, got %v", want, got)
			}
			if !frame.State().IsTerminal() {
				t.Errorf("state %v should be terminal", frame.State())
			}
			if want, got := test.gas, frame.Gas(); want != got {
				t.Errorf("unexpected gas, wanted %v, got %v", want, got)
			}
			if want, got := test.output, frame.Output(); !bytes.Equal(want, got) {
				t.Errorf("unexpected output, wanted %x, got %x", want, got)
			}
			if want, got := test.reason, frame.RevertReason(); !bytes.Equal(want, got) {
				t.Errorf("unexpected revert reason, wanted %s, got %s", want, got)
			}
			if want, got := test.haltReason, frame.HaltReason(); want != got {
				t.Errorf("unexpected halt reason, wanted %v, got %v", want, got)
			}
		})
	}
}

func TestFrame_SecondTerminalTransitionPanics(t *testing.T) {
	frame := NewFrame(CallParameters{Gas: 100})
	frame.Complete(Data{}, 0)

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic, got nil")
		}
	}()
	frame.Revert(Data("too late"), 0)
}

func TestFrame_ChargingMoreThanRemainingGasPanics(t *testing.T) {
	frame := NewFrame(CallParameters{Gas: 10})

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic, got nil")
		}
		if frame.State() != StateNotStarted {
			t.Errorf("failed charge must not change the state, got %v", frame.State())
		}
	}()
	frame.Complete(Data{}, 11)
}

func TestFrame_StartingTwicePanics(t *testing.T) {
	frame := NewFrame(CallParameters{})
	frame.Start()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic, got nil")
		}
	}()
	frame.Start()
}

func TestFrame_ChildRecordsAreKept(t *testing.T) {
	frame := NewFrame(CallParameters{})
	record := NewChildRecord(SyntheticBody{Gas: 1, FunctionParameters: Data{1}})
	record.Status = InvalidTokenNftSerialNumber
	frame.AddChildRecord(record)
	frame.Revert(Data("x"), 0)

	records := frame.ChildRecords()
	if len(records) != 1 {
		t.Fatalf("unexpected number of records, wanted 1, got %d", len(records))
	}
	if want, got := InvalidTokenNftSerialNumber, records[0].Status; want != got {
		t.Errorf("unexpected record status, wanted %v, got %v", want, got)
	}
}

func TestRevertError_MatchesSentinelAndCarriesReason(t *testing.T) {
	err := NewRevert(InvalidTokenNftSerialNumber)
	if !errors.Is(err, ErrExecutionReverted) {
		t.Errorf("revert error should match ErrExecutionReverted")
	}
	revert, ok := IsRevert(err)
	if !ok {
		t.Fatalf("expected revert error to be detected")
	}
	if want, got := "INVALID_TOKEN_NFT_SERIAL_NUMBER", string(revert.Reason()); want != got {
		t.Errorf("unexpected reason, wanted %v, got %v", want, got)
	}
	if _, ok := IsRevert(errors.New("other")); ok {
		t.Errorf("plain error must not be detected as revert")
	}
}
