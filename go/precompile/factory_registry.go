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
	"strings"
	"sync"

	"golang.org/x/exp/maps"
)

// This file provides a registry of contract factories. Packages providing
// native contracts register a factory under a kind name during their
// initialization, which allows node configurations to refer to contracts by
// name.

// Factory creates a contract for the given environment using a
// kind-specific configuration.
type Factory func(env Environment, config any) (Contract, error)

// NewContract looks up the factory registered for the given kind
// (case-insensitive) and uses it to create a new contract.
func NewContract(kind string, env Environment, config any) (Contract, error) {
	factory := GetFactory(kind)
	if factory == nil {
		return nil, fmt.Errorf("contract kind not found: %s", kind)
	}
	return factory(env, config)
}

// GetFactory performs a lookup for the given kind (case-insensitive). The
// result is nil if no factory was registered under the given name.
func GetFactory(kind string) Factory {
	factoryRegistryLock.Lock()
	defer factoryRegistryLock.Unlock()
	return factoryRegistry[strings.ToLower(kind)]
}

// GetAllRegisteredFactories obtains all registered factories.
func GetAllRegisteredFactories() map[string]Factory {
	factoryRegistryLock.Lock()
	defer factoryRegistryLock.Unlock()
	return maps.Clone(factoryRegistry)
}

// RegisterFactory registers a new contract kind. The name is not
// case-sensitive. Registering a nil factory or a kind that is already
// taken is an error.
func RegisterFactory(kind string, factory Factory) error {
	key := strings.ToLower(kind)
	if factory == nil {
		return fmt.Errorf("invalid initialization: cannot register nil-factory using `%s`", key)
	}
	factoryRegistryLock.Lock()
	defer factoryRegistryLock.Unlock()
	if _, found := factoryRegistry[key]; found {
		return fmt.Errorf("invalid initialization: multiple factories registered for `%s`", key)
	}
	factoryRegistry[key] = factory
	return nil
}

// MustRegisterFactory is like RegisterFactory but panics on failure. It is
// intended for package initialization code.
func MustRegisterFactory(kind string, factory Factory) {
	if err := RegisterFactory(kind, factory); err != nil {
		panic(err)
	}
}

var factoryRegistry = map[string]Factory{}

var factoryRegistryLock sync.Mutex
