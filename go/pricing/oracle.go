// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package pricing

import (
	"github.com/Fantom-foundation/Nimbus/go/usage"
	"github.com/holiman/uint256"
)

//go:generate mockgen -source oracle.go -destination oracle_mock.go -package pricing

// Fee is an amount of tinybars.
type Fee = uint256.Int

// Oracle prices the resource usage of account creations. Implementations
// must be deterministic.
type Oracle interface {
	Price(meta usage.CryptoCreateMeta) (Fee, error)
}
