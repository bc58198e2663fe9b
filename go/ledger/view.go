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

import "github.com/Fantom-foundation/Nimbus/go/nimbus"

//go:generate mockgen -source view.go -destination view_mock.go -package ledger

// View is the read accessor over the ledger's token and account state used
// by native precompiles. All methods are synchronous, in-memory operations.
type View interface {
	// Exists reports whether the given token instance is present.
	Exists(NftID) bool
	// OwnerOf returns the owning account of an existing token instance.
	OwnerOf(NftID) AccountID
	// CanonicalAddress resolves the single authoritative EVM address of an
	// account, which is its alias if it has one.
	CanonicalAddress(AccountID) nimbus.Address
}
