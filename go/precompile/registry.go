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
	"bytes"
	"fmt"

	"github.com/Fantom-foundation/Nimbus/go/nimbus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Binding associates a contract with the address it serves.
type Binding struct {
	Address  nimbus.Address
	Contract Contract
}

// Registry is the immutable mapping of addresses to native contracts. It is
// built once at node startup and may be shared by any number of concurrent
// calls.
type Registry struct {
	contracts map[nimbus.Address]Contract
}

// NewRegistry creates a registry from the given bindings. Binding two
// contracts to the same address or binding a nil contract is an error.
func NewRegistry(bindings ...Binding) (*Registry, error) {
	contracts := make(map[nimbus.Address]Contract, len(bindings))
	for _, binding := range bindings {
		if binding.Contract == nil {
			return nil, fmt.Errorf("nil contract bound to %v", binding.Address)
		}
		if existing, found := contracts[binding.Address]; found {
			return nil, fmt.Errorf(
				"address %v bound to both %s and %s",
				binding.Address, existing.Name(), binding.Contract.Name(),
			)
		}
		contracts[binding.Address] = binding.Contract
	}
	return &Registry{contracts: contracts}, nil
}

// Lookup returns the contract bound to the given address, if any.
func (r *Registry) Lookup(address nimbus.Address) (Contract, bool) {
	if r == nil {
		return nil, false
	}
	contract, found := r.contracts[address]
	return contract, found
}

// Addresses lists all bound addresses in ascending order.
func (r *Registry) Addresses() []nimbus.Address {
	if r == nil {
		return nil
	}
	res := maps.Keys(r.contracts)
	slices.SortFunc(res, func(a, b nimbus.Address) int {
		return bytes.Compare(a[:], b[:])
	})
	return res
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.contracts)
}
