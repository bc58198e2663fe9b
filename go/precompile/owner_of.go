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

import (
	"fmt"

	"github.com/Fantom-foundation/Nimbus/go/codec"
	"github.com/Fantom-foundation/Nimbus/go/ledger"
	"github.com/Fantom-foundation/Nimbus/go/nimbus"
)

const OwnerOfSignature = "ownerOf(uint256)"

// OwnerOfSelector is 0x6352211e.
var OwnerOfSelector = Selector(OwnerOfSignature)

// OwnerOf resolves the canonical address of the owner of a single token
// instance of the token it is bound to.
type OwnerOf struct {
	token ledger.TokenID
}

func NewOwnerOf(token ledger.TokenID) OwnerOf {
	return OwnerOf{token: token}
}

func (q OwnerOf) Name() string {
	return fmt.Sprintf("ownerOf(%v)", q.token)
}

func (q OwnerOf) Decode(codec codec.Codec, args nimbus.Data) (ledger.NftID, error) {
	request, err := codec.DecodeOwnerOf(args)
	if err != nil {
		return ledger.NftID{}, err
	}
	return q.token.Nft(request.Serial), nil
}

func (q OwnerOf) Result(view ledger.View, codec codec.Codec, nft ledger.NftID) (nimbus.Data, error) {
	if !view.Exists(nft) {
		return nil, nimbus.NewRevert(nimbus.InvalidTokenNftSerialNumber)
	}
	owner := view.OwnerOf(nft)
	return codec.EncodeOwner(view.CanonicalAddress(owner)), nil
}

// NewOwnerOfContract creates the native contract answering ownerOf calls
// for the given token.
func NewOwnerOfContract(token ledger.TokenID, env Environment) (*ReadOnly[ledger.NftID], error) {
	if env.Ledger == nil {
		return nil, fmt.Errorf("ownerOf(%v) requires a ledger view", token)
	}
	if env.Codec == nil {
		env.Codec = codec.NewABI()
	}
	return NewReadOnly[ledger.NftID](NewOwnerOf(token), env), nil
}

func init() {
	MustRegisterFactory("ownerOf", func(env Environment, config any) (Contract, error) {
		var token ledger.TokenID
		switch c := config.(type) {
		case ledger.TokenID:
			token = c
		case string:
			parsed, err := ledger.ParseTokenID(c)
			if err != nil {
				return nil, err
			}
			token = parsed
		default:
			return nil, fmt.Errorf("ownerOf expects a token id as configuration, got %T", config)
		}
		contract, err := NewOwnerOfContract(token, env)
		if err != nil {
			return nil, err
		}
		return contract, nil
	})
}
