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

import "github.com/Fantom-foundation/Nimbus/go/nimbus"

// GasSchedule defines the price of read-only native calls.
type GasSchedule struct {
	ReadOnlyBase nimbus.Gas `json:"readOnlyBase"`
	PerWord      nimbus.Gas `json:"perWord"`
}

// DefaultGasSchedule charges a flat minimum for every view call.
var DefaultGasSchedule = GasSchedule{
	ReadOnlyBase: 100,
	PerWord:      0,
}

func (s GasSchedule) ReadOnly(input nimbus.Data) nimbus.Gas {
	return s.ReadOnlyBase + s.PerWord*words(input)
}

func words(input nimbus.Data) nimbus.Gas {
	return nimbus.Gas((len(input) + 31) / 32)
}
