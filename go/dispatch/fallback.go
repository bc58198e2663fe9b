// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package dispatch

import (
	"github.com/Fantom-foundation/Nimbus/go/nimbus"
	"github.com/Fantom-foundation/Nimbus/go/precompile"
	"github.com/ethereum/go-ethereum/log"
)

//go:generate mockgen -source fallback.go -destination fallback_mock.go -package dispatch

// Fallback processes calls that do not target a native contract.
type Fallback interface {
	// Start runs the call and leaves the frame in a terminal state.
	Start(frame *nimbus.Frame, tracer nimbus.Tracer)
}

// MaxRecursiveDepth is the deepest call nesting level at which code is
// still executed.
const MaxRecursiveDepth = 1024

// InterpreterFallback runs Ethereum's standard precompiled contracts and
// otherwise executes the recipient's code using an interpreter.
type InterpreterFallback struct {
	revision    nimbus.Revision
	interpreter nimbus.Interpreter
	code        nimbus.CodeSource
	logger      log.Logger
}

func NewInterpreterFallback(
	revision nimbus.Revision,
	interpreter nimbus.Interpreter,
	code nimbus.CodeSource,
	logger log.Logger,
) *InterpreterFallback {
	if logger == nil {
		logger = log.Root()
	}
	return &InterpreterFallback{
		revision:    revision,
		interpreter: interpreter,
		code:        code,
		logger:      logger,
	}
}

func (f *InterpreterFallback) Start(frame *nimbus.Frame, tracer nimbus.Tracer) {
	if frame.State() == nimbus.StateNotStarted {
		frame.Start()
	}

	if frame.Depth > MaxRecursiveDepth {
		frame.Halt(nimbus.NoHaltReason, 0)
		return
	}
	if frame.Static && !frame.Value.IsZero() {
		frame.Halt(nimbus.IllegalStateChange, frame.Gas())
		return
	}

	if contract, found := precompile.LookupStandard(f.revision, frame.Recipient); found {
		f.runStandard(contract, frame, tracer)
		return
	}

	code := f.code.GetCode(frame.Recipient)
	if len(code) == 0 {
		frame.Complete(nimbus.Data{}, 0)
		return
	}
	codeHash := f.code.GetCodeHash(frame.Recipient)

	result, err := f.interpreter.Run(nimbus.Parameters{
		Revision:  f.revision,
		Depth:     frame.Depth,
		Static:    frame.Static,
		Gas:       frame.Gas(),
		Recipient: frame.Recipient,
		Sender:    frame.Sender,
		Input:     frame.Input,
		Value:     frame.Value,
		CodeHash:  &codeHash,
		Code:      code,
	})
	if err != nil {
		f.logger.Error("Interpreter failed", "to", frame.Recipient, "err", err)
		frame.Halt(nimbus.NoHaltReason, frame.Gas())
		return
	}

	gasUsed := frame.Gas() - min(max(result.GasLeft, 0), frame.Gas())
	switch {
	case result.Success:
		frame.Complete(result.Output, gasUsed)
	case len(result.Output) > 0 || result.GasLeft > 0:
		frame.Revert(result.Output, gasUsed)
	default:
		frame.Halt(nimbus.NoHaltReason, frame.Gas())
	}
}

func (f *InterpreterFallback) runStandard(contract *precompile.Standard, frame *nimbus.Frame, tracer nimbus.Tracer) {
	required := contract.GasRequirement(frame.Input)
	if frame.Gas() < required {
		if tracer != nil {
			tracer.TracePrecompileCall(frame, required, nil)
		}
		frame.Halt(nimbus.InsufficientGas, frame.Gas())
		return
	}
	output, err := contract.Run(frame.Input)
	if tracer != nil {
		tracer.TracePrecompileCall(frame, required, output)
	}
	if err != nil {
		f.logger.Debug("Precompiled contract failed", "contract", contract.Name(), "err", err)
		frame.Halt(nimbus.NoHaltReason, frame.Gas())
		return
	}
	frame.Complete(output, required)
}
