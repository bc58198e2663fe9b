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
	"fmt"

	cliUtils "github.com/Fantom-foundation/Nimbus/go/driver/cli"
	"github.com/Fantom-foundation/Nimbus/go/ledger"
	"github.com/Fantom-foundation/Nimbus/go/pricing"
	"github.com/Fantom-foundation/Nimbus/go/usage"
	"github.com/urfave/cli/v2"
)

var FeeCmd = cli.Command{
	Action: doFee,
	Name:   "fee",
	Usage:  "Estimates the fee of an account creation",
	Flags: []cli.Flag{
		cliUtils.ConfigFlag,
		&cli.StringFlag{
			Name:  "memo",
			Usage: "memo of the new account",
		},
		&cli.IntFlag{
			Name:  "key-count",
			Usage: "number of ed25519 keys guarding the account",
			Value: 1,
		},
		&cli.IntFlag{
			Name:  "threshold",
			Usage: "if positive, the keys form a threshold key of the given threshold",
		},
		&cli.StringFlag{
			Name:  "proxy",
			Usage: "proxy account in <shard>.<realm>.<num> notation",
		},
		&cli.Int64SliceFlag{
			Name:     "lifetime",
			Usage:    "auto renew period in seconds, may be given multiple times",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "max-associations",
			Usage: "maximum number of automatic token associations",
		},
	},
}

func doFee(context *cli.Context) error {
	config, err := LoadConfig(cliUtils.ConfigFlag.Fetch(context))
	if err != nil {
		return err
	}
	oracle, err := pricing.NewCachedOracle(config.Fees, 128)
	if err != nil {
		return err
	}

	body := usage.CryptoCreateBody{
		Memo:                          context.String("memo"),
		Key:                           newKey(context.Int("key-count"), context.Int("threshold")),
		MaxAutomaticTokenAssociations: int32(context.Int("max-associations")),
	}
	if proxy := context.String("proxy"); proxy != "" {
		account, err := ledger.ParseAccountID(proxy)
		if err != nil {
			return err
		}
		body.ProxyAccount = &account
	}

	for _, lifetime := range context.Int64Slice("lifetime") {
		body.AutoRenewPeriod = lifetime
		meta := usage.NewCryptoCreateMeta(body)
		fee, err := oracle.Price(meta)
		if err != nil {
			return fmt.Errorf("failed to price %v: %w", meta, err)
		}
		fmt.Printf("%v: %s tinybars\n", meta, fee.Dec())
	}
	return nil
}

func newKey(count, threshold int) usage.Key {
	if count <= 0 {
		return nil
	}
	keys := make(usage.KeyList, 0, count)
	for i := 0; i < count; i++ {
		keys = append(keys, usage.Ed25519Key(make([]byte, usage.KeySize)))
	}
	if threshold > 0 {
		return usage.ThresholdKey{Threshold: int32(threshold), Keys: keys}
	}
	if count == 1 {
		return keys[0]
	}
	return keys
}
