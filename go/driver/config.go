// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Fantom-foundation/Nimbus/go/codec"
	"github.com/Fantom-foundation/Nimbus/go/ledger"
	"github.com/Fantom-foundation/Nimbus/go/nimbus"
	"github.com/Fantom-foundation/Nimbus/go/precompile"
	"github.com/Fantom-foundation/Nimbus/go/pricing"
	"github.com/ethereum/go-ethereum/log"
)

// Config describes a node setup: the native contracts it serves, the
// content of its ledger and its fee schedule.
type Config struct {
	Revision    nimbus.Revision         `json:"revision"`
	Precompiles []PrecompileConfig      `json:"precompiles"`
	Ledger      LedgerConfig            `json:"ledger"`
	Gas         *precompile.GasSchedule `json:"gas,omitempty"`
	Fees        pricing.FeeSchedule     `json:"fees"`
}

// PrecompileConfig binds a contract of the given kind to an address. Token
// configures ownerOf contracts, Source selects the wrapped contract of
// standard ones.
type PrecompileConfig struct {
	Kind    string         `json:"kind"`
	Address nimbus.Address `json:"address"`
	Token   string         `json:"token,omitempty"`
	Source  string         `json:"source,omitempty"`
}

type LedgerConfig struct {
	Nfts    []NftConfig   `json:"nfts"`
	Aliases []AliasConfig `json:"aliases"`
}

type NftConfig struct {
	Token  ledger.TokenID   `json:"token"`
	Serial int64            `json:"serial"`
	Owner  ledger.AccountID `json:"owner"`
}

type AliasConfig struct {
	Account ledger.AccountID `json:"account"`
	Address nimbus.Address   `json:"address"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	config := &Config{Revision: nimbus.R13_Cancun}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func (c *Config) GasSchedule() precompile.GasSchedule {
	if c.Gas == nil {
		return precompile.DefaultGasSchedule
	}
	return *c.Gas
}

// NewLedger creates an in-memory ledger holding the configured tokens and
// aliases.
func (c *Config) NewLedger() *ledger.Memory {
	res := ledger.NewMemory()
	for _, nft := range c.Ledger.Nfts {
		res.SetOwner(nft.Token.Nft(nft.Serial), nft.Owner)
	}
	for _, alias := range c.Ledger.Aliases {
		res.SetAlias(alias.Account, alias.Address)
	}
	return res
}

// NewRegistry creates the configured native contracts on top of the given
// ledger.
func (c *Config) NewRegistry(view ledger.View, logger log.Logger) (*precompile.Registry, error) {
	env := precompile.Environment{
		Ledger:   view,
		Codec:    codec.NewABI(),
		Gas:      c.GasSchedule(),
		Revision: c.Revision,
		Logger:   logger,
	}
	bindings := make([]precompile.Binding, 0, len(c.Precompiles))
	for _, cur := range c.Precompiles {
		var config any
		switch {
		case cur.Token != "":
			config = cur.Token
		case cur.Source != "":
			config = cur.Source
		}
		contract, err := precompile.NewContract(cur.Kind, env, config)
		if err != nil {
			return nil, fmt.Errorf("failed to create contract at %v: %w", cur.Address, err)
		}
		bindings = append(bindings, precompile.Binding{Address: cur.Address, Contract: contract})
	}
	return precompile.NewRegistry(bindings...)
}
