// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package usage

import (
	"fmt"

	"github.com/Fantom-foundation/Nimbus/go/ledger"
)

const (
	// BasicEntityIDSize is the size of a shard, realm and number triple.
	BasicEntityIDSize = 24
	KeySize           = 32
	IntSize           = 4
)

// CryptoCreateBody is the part of an account creation transaction relevant
// for resource usage.
type CryptoCreateBody struct {
	Memo                          string
	Key                           Key               // nil if absent
	ProxyAccount                  *ledger.AccountID // nil if absent
	AutoRenewPeriod               int64 // seconds
	MaxAutomaticTokenAssociations int32
}

// CryptoCreateMeta summarizes the resource usage of an account creation.
// Values are immutable and comparable.
type CryptoCreateMeta struct {
	baseSize                 int64
	lifetime                 int64
	maxAutomaticAssociations int32
}

// NewCryptoCreateMeta derives the usage of the given transaction. The
// transaction is not validated.
func NewCryptoCreateMeta(op CryptoCreateBody) CryptoCreateMeta {
	return CryptoCreateMeta{
		baseSize:                 baseSize(op),
		lifetime:                 op.AutoRenewPeriod,
		maxAutomaticAssociations: op.MaxAutomaticTokenAssociations,
	}
}

// NewCryptoCreateMetaFromValues creates a usage summary from precomputed
// values.
func NewCryptoCreateMetaFromValues(baseSize, lifetime int64, maxAutomaticAssociations int32) CryptoCreateMeta {
	return CryptoCreateMeta{
		baseSize:                 baseSize,
		lifetime:                 lifetime,
		maxAutomaticAssociations: maxAutomaticAssociations,
	}
}

func baseSize(op CryptoCreateBody) int64 {
	size := int64(len(op.Memo))
	if op.Key != nil {
		size += KeyStorageSize(op.Key)
	}
	if op.ProxyAccount != nil {
		size += BasicEntityIDSize
	}
	return size
}

// BaseSize is the number of variable bytes of the transaction.
func (m CryptoCreateMeta) BaseSize() int64 {
	return m.baseSize
}

// Lifetime is the auto renew period in seconds.
func (m CryptoCreateMeta) Lifetime() int64 {
	return m.lifetime
}

func (m CryptoCreateMeta) MaxAutomaticAssociations() int32 {
	return m.maxAutomaticAssociations
}

func (m CryptoCreateMeta) String() string {
	return fmt.Sprintf(
		"CryptoCreateMeta{baseSize=%d, lifetime=%d, maxAutomaticAssociations=%d}",
		m.baseSize, m.lifetime, m.maxAutomaticAssociations,
	)
}
