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
	"math/big"

	"github.com/Fantom-foundation/Nimbus/go/nimbus"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ABI is a Codec based on the go-ethereum ABI implementation. It is
// stateless and safe for concurrent use.
type ABI struct {
	serial abi.Arguments
	owner  abi.Arguments
}

func NewABI() *ABI {
	return &ABI{
		serial: abi.Arguments{{Name: "tokenId", Type: mustType("uint256")}},
		owner:  abi.Arguments{{Name: "owner", Type: mustType("address")}},
	}
}

func (c *ABI) DecodeOwnerOf(args nimbus.Data) (OwnerOfRequest, error) {
	values, err := c.serial.Unpack(args)
	if err != nil {
		return OwnerOfRequest{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	serial, ok := values[0].(*big.Int)
	if !ok {
		return OwnerOfRequest{}, fmt.Errorf("%w: unexpected argument type %T", ErrDecode, values[0])
	}
	if !serial.IsInt64() {
		return OwnerOfRequest{}, fmt.Errorf("%w: serial number %v out of range", ErrDecode, serial)
	}
	return OwnerOfRequest{Serial: serial.Int64()}, nil
}

func (c *ABI) EncodeOwner(owner nimbus.Address) nimbus.Data {
	encoded, err := c.owner.Pack(common.Address(owner))
	if err != nil {
		// packing a fixed size address can not fail
		panic(fmt.Sprintf("failed to encode owner address: %v", err))
	}
	return encoded
}

func mustType(name string) abi.Type {
	res, err := abi.NewType(name, "", nil)
	if err != nil {
		panic(fmt.Sprintf("invalid ABI type %q: %v", name, err))
	}
	return res
}
