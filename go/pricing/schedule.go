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
	"fmt"

	"github.com/Fantom-foundation/Nimbus/go/usage"
	"github.com/holiman/uint256"
)

var (
	ErrFeeOverflow   = fmt.Errorf("fee exceeds 256 bits")
	ErrNegativeUsage = fmt.Errorf("negative resource usage")
)

const secondsPerHour = 3600

// FeeSchedule is a linear Oracle. The fee of an account creation is
//
//	Constant + PerByte*size + PerByteHour*size*hours + PerAssociation*associations
//
// where hours is the lifetime rounded up to full hours.
type FeeSchedule struct {
	Constant       Fee `json:"constant"`
	PerByte        Fee `json:"perByte"`
	PerByteHour    Fee `json:"perByteHour"`
	PerAssociation Fee `json:"perAssociation"`
}

func (s FeeSchedule) Price(meta usage.CryptoCreateMeta) (Fee, error) {
	if meta.BaseSize() < 0 || meta.Lifetime() < 0 || meta.MaxAutomaticAssociations() < 0 {
		return Fee{}, fmt.Errorf("%w: %v", ErrNegativeUsage, meta)
	}
	size := uint256.NewInt(uint64(meta.BaseSize()))
	hours := uint256.NewInt(uint64(hoursOf(meta.Lifetime())))
	associations := uint256.NewInt(uint64(meta.MaxAutomaticAssociations()))

	fee := s.Constant
	for _, factors := range [][]*uint256.Int{
		{&s.PerByte, size},
		{&s.PerByteHour, size, hours},
		{&s.PerAssociation, associations},
	} {
		term, overflow := product(factors...)
		if overflow {
			return Fee{}, fmt.Errorf("%w: %v", ErrFeeOverflow, meta)
		}
		if _, overflow := fee.AddOverflow(&fee, term); overflow {
			return Fee{}, fmt.Errorf("%w: %v", ErrFeeOverflow, meta)
		}
	}
	return fee, nil
}

func product(factors ...*uint256.Int) (*uint256.Int, bool) {
	res := uint256.NewInt(1)
	for _, factor := range factors {
		if _, overflow := res.MulOverflow(res, factor); overflow {
			return nil, true
		}
	}
	return res, false
}

func hoursOf(seconds int64) int64 {
	hours := seconds / secondsPerHour
	if seconds%secondsPerHour != 0 {
		hours++
	}
	return hours
}
