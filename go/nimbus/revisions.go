// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package nimbus

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Revision selects the EVM hard-fork whose standard precompiled contracts
// are served next to the native ones.
type Revision int

const (
	R07_Istanbul Revision = iota
	R09_Berlin
	R10_London
	R11_Paris
	R12_Shanghai
	R13_Cancun
)

var revisionNames = []string{
	R07_Istanbul: "Istanbul",
	R09_Berlin:   "Berlin",
	R10_London:   "London",
	R11_Paris:    "Paris",
	R12_Shanghai: "Shanghai",
	R13_Cancun:   "Cancun",
}

func (r Revision) String() string {
	if r < 0 || int(r) >= len(revisionNames) {
		return fmt.Sprintf("Revision(%d)", int(r))
	}
	return revisionNames[r]
}

func (r Revision) MarshalText() ([]byte, error) {
	if r < 0 || int(r) >= len(revisionNames) {
		return nil, fmt.Errorf("unknown revision %d", int(r))
	}
	return []byte(revisionNames[r]), nil
}

func (r *Revision) UnmarshalText(text []byte) error {
	index := slices.Index(revisionNames, string(text))
	if index < 0 {
		return fmt.Errorf("unknown revision: %s", text)
	}
	*r = Revision(index)
	return nil
}
