// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ledger

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/Fantom-foundation/Nimbus/go/nimbus"
)

// TokenID identifies a token type on the ledger.
type TokenID struct {
	Shard, Realm, Num int64
}

// AccountID identifies an account on the ledger.
type AccountID struct {
	Shard, Realm, Num int64
}

// NftID identifies a single non-fungible token instance.
type NftID struct {
	Shard, Realm, Token, Serial int64
}

// Nft combines the token with a serial number into the identifier of one
// token instance.
func (t TokenID) Nft(serial int64) NftID {
	return NftID{Shard: t.Shard, Realm: t.Realm, Token: t.Num, Serial: serial}
}

func (t TokenID) String() string {
	return formatEntity(t.Shard, t.Realm, t.Num)
}

func (t TokenID) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TokenID) UnmarshalText(data []byte) error {
	id, err := ParseTokenID(string(data))
	if err != nil {
		return err
	}
	*t = id
	return nil
}

// ParseTokenID parses the <shard>.<realm>.<num> notation.
func ParseTokenID(s string) (TokenID, error) {
	shard, realm, num, err := parseEntity(s)
	if err != nil {
		return TokenID{}, fmt.Errorf("invalid token id: %w", err)
	}
	return TokenID{Shard: shard, Realm: realm, Num: num}, nil
}

func (a AccountID) String() string {
	return formatEntity(a.Shard, a.Realm, a.Num)
}

func (a AccountID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *AccountID) UnmarshalText(data []byte) error {
	id, err := ParseAccountID(string(data))
	if err != nil {
		return err
	}
	*a = id
	return nil
}

// ParseAccountID parses the <shard>.<realm>.<num> notation.
func ParseAccountID(s string) (AccountID, error) {
	shard, realm, num, err := parseEntity(s)
	if err != nil {
		return AccountID{}, fmt.Errorf("invalid account id: %w", err)
	}
	return AccountID{Shard: shard, Realm: realm, Num: num}, nil
}

// MirrorAddress is the EVM address derived from the account number, used
// whenever the account has no alias.
func (a AccountID) MirrorAddress() nimbus.Address {
	return mirrorAddress(a.Shard, a.Realm, a.Num)
}

func (n NftID) String() string {
	return fmt.Sprintf("%s/%d", formatEntity(n.Shard, n.Realm, n.Token), n.Serial)
}

// mirrorAddress lays out 4 bytes of shard, 8 bytes of realm and 8 bytes of
// entity number in big endian order.
func mirrorAddress(shard, realm, num int64) (res nimbus.Address) {
	binary.BigEndian.PutUint32(res[0:4], uint32(shard))
	binary.BigEndian.PutUint64(res[4:12], uint64(realm))
	binary.BigEndian.PutUint64(res[12:20], uint64(num))
	return res
}

func formatEntity(shard, realm, num int64) string {
	return fmt.Sprintf("%d.%d.%d", shard, realm, num)
}

func parseEntity(s string) (shard, realm, num int64, err error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected <shard>.<realm>.<num>, got %q", s)
	}
	var values [3]int64
	for i, part := range parts {
		values[i], err = strconv.ParseInt(part, 10, 64)
		if err != nil {
			return 0, 0, 0, err
		}
		if values[i] < 0 {
			return 0, 0, 0, fmt.Errorf("negative component in %q", s)
		}
	}
	return values[0], values[1], values[2], nil
}
