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

import "golang.org/x/crypto/sha3"

// Selector computes the 4-byte function selector of the given canonical
// function signature.
func Selector(signature string) [SelectorSize]byte {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(signature))
	var res [SelectorSize]byte
	copy(res[:], hasher.Sum(nil))
	return res
}
