// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package codec

import (
	"fmt"

	"github.com/Fantom-foundation/Nimbus/go/nimbus"
)

//go:generate mockgen -source codec.go -destination codec_mock.go -package codec

// ErrDecode is returned for call arguments that do not match the expected
// ABI layout.
var ErrDecode = fmt.Errorf("failed to decode call arguments")

// OwnerOfRequest is the decoded argument list of ownerOf(uint256).
type OwnerOfRequest struct {
	Serial int64
}

// Codec translates between ABI encoded call data and typed requests and
// results. Arguments passed for decoding have the function selector removed.
type Codec interface {
	DecodeOwnerOf(args nimbus.Data) (OwnerOfRequest, error)
	EncodeOwner(owner nimbus.Address) nimbus.Data
}
