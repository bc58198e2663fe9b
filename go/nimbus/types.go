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
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// Address is the 20-byte EVM address of an account or contract.
type Address [20]byte

// Value is a 256-bit big-endian amount of chain currency.
type Value [32]byte

// Hash is a 32-byte digest, e.g. of contract code.
type Hash [32]byte

// Data is call input or output.
type Data []byte

// Code is EVM byte-code.
type Code []byte

// Gas is an amount of gas. Frames never hold negative amounts.
type Gas int64

func (a Address) String() string {
	return hexutil.Encode(a[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return hexutil.Bytes(a[:]).MarshalText()
}

func (a *Address) UnmarshalText(text []byte) error {
	return hexutil.UnmarshalFixedText("Address", text, a[:])
}

func (h Hash) String() string {
	return hexutil.Encode(h[:])
}

// NewValue assembles a value from up to four 64-bit words, most significant
// word first. Missing leading words are zero.
func NewValue(words ...uint64) Value {
	if len(words) > 4 {
		panic("a value holds at most 4 words")
	}
	var res uint256.Int
	for i, word := range words {
		res[len(words)-1-i] = word
	}
	return res.Bytes32()
}

// ValueFromUint256 converts the given integer; nil is converted to zero.
func ValueFromUint256(value *uint256.Int) Value {
	if value == nil {
		return Value{}
	}
	return value.Bytes32()
}

func (v Value) ToUint256() *uint256.Int {
	return new(uint256.Int).SetBytes32(v[:])
}

func (v Value) IsZero() bool {
	return v == Value{}
}

func (v Value) String() string {
	return v.ToUint256().Dec()
}

func (v Value) MarshalText() ([]byte, error) {
	return hexutil.Bytes(v[:]).MarshalText()
}

func (v *Value) UnmarshalText(text []byte) error {
	return hexutil.UnmarshalFixedText("Value", text, v[:])
}

func (d Data) String() string {
	return hexutil.Encode(d)
}

func (d Data) MarshalText() ([]byte, error) {
	return hexutil.Bytes(d).MarshalText()
}

func (d *Data) UnmarshalText(text []byte) error {
	decoded, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*d = decoded
	return nil
}

// ParseHex decodes 0x-prefixed hex with an even number of digits.
func ParseHex(s string) (Data, error) {
	res, err := hexutil.Decode(s)
	if err != nil {
		return nil, err
	}
	return Data(res), nil
}
