// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package precompile

import (
	"github.com/Fantom-foundation/Nimbus/go/codec"
	"github.com/Fantom-foundation/Nimbus/go/ledger"
	"github.com/Fantom-foundation/Nimbus/go/nimbus"
	"github.com/ethereum/go-ethereum/log"
)

//go:generate mockgen -source contract.go -destination contract_mock.go -package precompile

// Contract is a native service bound to a fixed address. Instead of running
// bytecode, calls to the address are handled by Compute.
type Contract interface {
	// Name identifies the contract in logs and traces.
	Name() string
	// Compute handles a call and produces its output. A revert is signaled
	// by a nimbus.RevertError; any other error or a nil output is treated
	// as a silent failure by the dispatcher. Implementations may append
	// child records to the frame but must not change its state.
	Compute(input nimbus.Data, frame *nimbus.Frame) (nimbus.Data, error)
	// GasRequirement returns the gas charged for a call with the given
	// input. It must be a pure function of the input.
	GasRequirement(input nimbus.Data) nimbus.Gas
}

// Environment bundles the collaborators shared by all native contracts of
// a node.
type Environment struct {
	Ledger   ledger.View
	Codec    codec.Codec
	Gas      GasSchedule
	Revision nimbus.Revision
	Logger   log.Logger
}

func (e Environment) logger() log.Logger {
	if e.Logger == nil {
		return log.Root()
	}
	return e.Logger
}
