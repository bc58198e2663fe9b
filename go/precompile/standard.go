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
	"fmt"
	"math"

	"github.com/Fantom-foundation/Nimbus/go/nimbus"
	"github.com/ethereum/go-ethereum/common"
	geth "github.com/ethereum/go-ethereum/core/vm"
)

// Standard is one of the precompiled contracts defined by Ethereum, as
// implemented by go-ethereum.
type Standard struct {
	address  nimbus.Address
	contract geth.PrecompiledContract
}

// LookupStandard returns the standard precompiled contract located at the
// given address in the given revision, if there is one.
func LookupStandard(revision nimbus.Revision, address nimbus.Address) (*Standard, bool) {
	var precompiles map[common.Address]geth.PrecompiledContract
	switch revision {
	case nimbus.R13_Cancun:
		precompiles = geth.PrecompiledContractsCancun
	case nimbus.R12_Shanghai, nimbus.R11_Paris, nimbus.R10_London, nimbus.R09_Berlin:
		precompiles = geth.PrecompiledContractsBerlin
	default:
		precompiles = geth.PrecompiledContractsIstanbul
	}
	contract, ok := precompiles[common.Address(address)]
	if !ok {
		return nil, false
	}
	return &Standard{address: address, contract: contract}, true
}

func (s *Standard) Name() string {
	return fmt.Sprintf("standard(%v)", s.address)
}

// Run executes the contract without any gas accounting. Errors are only
// reported for invalid inputs.
func (s *Standard) Run(input nimbus.Data) (nimbus.Data, error) {
	return s.contract.Run(input)
}

func (s *Standard) Compute(input nimbus.Data, _ *nimbus.Frame) (nimbus.Data, error) {
	output, err := s.Run(input)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", s.Name(), err)
	}
	if output == nil {
		output = nimbus.Data{}
	}
	return output, nil
}

func (s *Standard) GasRequirement(input nimbus.Data) nimbus.Gas {
	gas := s.contract.RequiredGas(input)
	if gas > math.MaxInt64 {
		return math.MaxInt64
	}
	return nimbus.Gas(gas)
}

func init() {
	MustRegisterFactory("standard", func(env Environment, config any) (Contract, error) {
		var source nimbus.Address
		switch c := config.(type) {
		case nimbus.Address:
			source = c
		case string:
			if err := source.UnmarshalText([]byte(c)); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("standard expects a source address as configuration, got %T", config)
		}
		contract, ok := LookupStandard(env.Revision, source)
		if !ok {
			return nil, fmt.Errorf("no standard precompiled contract at %v in %v", source, env.Revision)
		}
		return contract, nil
	})
}
