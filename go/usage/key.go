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

// Key is a ledger signing requirement. It is one of Ed25519Key,
// ECDSASecp256k1Key, ContractKey, DelegatableContractKey, KeyList or
// ThresholdKey.
type Key interface {
	isKey()
}

type Ed25519Key []byte

type ECDSASecp256k1Key []byte

// ContractKey is satisfied by calls originating from the given contract.
type ContractKey struct {
	Shard, Realm, Num int64
}

// DelegatableContractKey is satisfied by the given contract and by
// contracts it delegates to.
type DelegatableContractKey struct {
	Shard, Realm, Num int64
}

// KeyList requires all of its keys to sign.
type KeyList []Key

// ThresholdKey requires at least Threshold of its keys to sign.
type ThresholdKey struct {
	Threshold int32
	Keys      KeyList
}

func (Ed25519Key) isKey()             {}
func (ECDSASecp256k1Key) isKey()      {}
func (ContractKey) isKey()            {}
func (DelegatableContractKey) isKey() {}
func (KeyList) isKey()                {}
func (ThresholdKey) isKey()           {}

// KeyStorageSize is the number of bytes the ledger accounts for storing the
// given key. Every primitive key takes KeySize bytes, every threshold adds
// IntSize bytes. A nil key takes no space.
func KeyStorageSize(key Key) int64 {
	primitives, thresholds := countKeys(key)
	return primitives*KeySize + thresholds*IntSize
}

func countKeys(key Key) (primitives, thresholds int64) {
	switch k := key.(type) {
	case nil:
		return 0, 0
	case KeyList:
		for _, cur := range k {
			p, t := countKeys(cur)
			primitives += p
			thresholds += t
		}
		return primitives, thresholds
	case ThresholdKey:
		primitives, thresholds = countKeys(k.Keys)
		return primitives, thresholds + 1
	default:
		return 1, 0
	}
}
