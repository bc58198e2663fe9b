// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ledger

import (
	"sync"

	"github.com/Fantom-foundation/Nimbus/go/nimbus"
)

// Memory is an in-memory View used by the driver and in tests. It is safe
// for concurrent use.
type Memory struct {
	lock    sync.RWMutex
	owners  map[NftID]AccountID
	aliases map[AccountID]nimbus.Address
}

func NewMemory() *Memory {
	return &Memory{
		owners:  map[NftID]AccountID{},
		aliases: map[AccountID]nimbus.Address{},
	}
}

// SetOwner creates or transfers the given token instance.
func (m *Memory) SetOwner(nft NftID, owner AccountID) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.owners[nft] = owner
}

// Burn removes a token instance; burning a missing instance is a no-op.
func (m *Memory) Burn(nft NftID) {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.owners, nft)
}

// SetAlias registers the EVM address alias of an account.
func (m *Memory) SetAlias(account AccountID, alias nimbus.Address) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.aliases[account] = alias
}

func (m *Memory) Exists(nft NftID) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	_, found := m.owners[nft]
	return found
}

// OwnerOf returns the zero account for missing instances.
func (m *Memory) OwnerOf(nft NftID) AccountID {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.owners[nft]
}

func (m *Memory) CanonicalAddress(account AccountID) nimbus.Address {
	m.lock.RLock()
	defer m.lock.RUnlock()
	if alias, found := m.aliases[account]; found {
		return alias
	}
	return account.MirrorAddress()
}
