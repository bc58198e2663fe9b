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
	"bytes"
	"errors"
	"testing"

	"github.com/Fantom-foundation/Nimbus/go/nimbus"
)

func word(value ...byte) []byte {
	res := make([]byte, 32)
	copy(res[32-len(value):], value)
	return res
}

func TestABI_ImplementsCodec(t *testing.T) {
	var _ Codec = NewABI()
}

func TestABI_DecodeOwnerOf(t *testing.T) {
	maxInt64 := word(0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
	beyondInt64 := word(0x80, 0, 0, 0, 0, 0, 0, 0)
	tooLarge := bytes.Repeat([]byte{0xff}, 32)

	tests := map[string]struct {
		args   nimbus.Data
		serial int64
		fails  bool
	}{
		"serial seven":       {args: word(7), serial: 7},
		"serial zero":        {args: word(), serial: 0},
		"largest serial":     {args: maxInt64, serial: 1<<63 - 1},
		"trailing bytes":     {args: append(word(3), 0x01, 0x02), serial: 3},
		"empty":              {args: nimbus.Data{}, fails: true},
		"short":              {args: nimbus.Data{0x07}, fails: true},
		"31 bytes":           {args: word(7)[1:], fails: true},
		"serial above int64": {args: beyondInt64, fails: true},
		"max uint256":        {args: tooLarge, fails: true},
	}

	codec := NewABI()
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			request, err := codec.DecodeOwnerOf(test.args)
			if test.fails {
				if !errors.Is(err, ErrDecode) {
					t.Errorf("expected decode error, got %v (request %v)", err, request)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want, got := test.serial, request.Serial; want != got {
				t.Errorf("unexpected serial, wanted %d, got %d", want, got)
			}
		})
	}
}

func TestABI_EncodeOwnerIsLeftPaddedWord(t *testing.T) {
	owner := nimbus.Address{0xCA, 0xFE, 0xBA, 0xBE}
	encoded := NewABI().EncodeOwner(owner)

	if want, got := 32, len(encoded); want != got {
		t.Fatalf("unexpected encoding length, wanted %d, got %d", want, got)
	}
	if !bytes.Equal(encoded[:12], make([]byte, 12)) {
		t.Errorf("expected 12 bytes of zero padding, got %x", encoded[:12])
	}
	if !bytes.Equal(encoded[12:], owner[:]) {
		t.Errorf("unexpected address bytes, wanted %x, got %x", owner[:], encoded[12:])
	}
}
