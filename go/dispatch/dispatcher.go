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

// InvalidTransferReason is the revert reason of calls attempting to send
// value to a native contract.
const InvalidTransferReason = "Transfer of Value to Hedera Precompile"

// Dispatcher intercepts message calls targeting native contracts. Calls to
// any other address are forwarded unchanged to a fallback.
type Dispatcher struct {
	registry *precompile.Registry
	fallback Fallback
	logger   log.Logger
	metrics  *Metrics
}

type Option func(*Dispatcher)

func WithLogger(logger log.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = metrics
	}
}

// NewDispatcher creates a dispatcher serving the contracts of the given
// registry. The fallback handles all calls to other addresses and must not
// be nil.
func NewDispatcher(registry *precompile.Registry, fallback Fallback, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		fallback: fallback,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = log.Root()
	}
	if d.metrics == nil {
		d.metrics = NewMetrics(nil)
	}
	return d
}

// Dispatch processes the call described by the given frame and leaves the
// frame in a terminal state. The tracer may be nil.
func (d *Dispatcher) Dispatch(frame *nimbus.Frame, tracer nimbus.Tracer) {
	contract, found := d.registry.Lookup(frame.Recipient)
	if !found {
		d.metrics.fallback.Inc(1)
		d.fallback.Start(frame, tracer)
		return
	}

	if frame.State() == nimbus.StateNotStarted {
		frame.Start()
	}
	logger := d.logger.With("contract", contract.Name(), "depth", frame.Depth)

	if !frame.Value.IsZero() {
		frame.Revert(nimbus.Data(InvalidTransferReason), 0)
		d.metrics.revert.Inc(1)
		logger.Debug("Rejected value transfer to native contract", "value", frame.Value)
		return
	}

	output, err := contract.Compute(frame.Input, frame)
	required := contract.GasRequirement(frame.Input)
	if tracer != nil {
		tracer.TracePrecompileCall(frame, required, output)
	}

	if frame.Gas() < required {
		logger.Debug("Native call out of gas", "gas", frame.Gas(), "required", required)
		frame.Halt(nimbus.InsufficientGas, frame.Gas())
		d.metrics.outOfGas.Inc(1)
		return
	}

	if revert, isRevert := nimbus.IsRevert(err); isRevert {
		frame.Revert(revert.Reason(), required)
		d.metrics.revert.Inc(1)
		logger.Debug("Native call reverted", "status", revert.Status, "gas", required)
		return
	}

	if err == nil && output != nil {
		frame.Complete(output, required)
		d.metrics.success.Inc(1)
		logger.Debug("Native call completed", "gas", required, "output", len(output))
		return
	}

	// A failure without revert status or a missing output ends the call
	// without consuming any gas.
	frame.Halt(nimbus.NoHaltReason, 0)
	d.metrics.halt.Inc(1)
	logger.Debug("Native call failed", "err", err)
}
