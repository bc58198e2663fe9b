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

	"github.com/Fantom-foundation/Nimbus/go/dispatch"
	cliUtils "github.com/Fantom-foundation/Nimbus/go/driver/cli"
	"github.com/Fantom-foundation/Nimbus/go/nimbus"
	"github.com/Fantom-foundation/Nimbus/go/precompile"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"
)

// noCode is the code source of a node without deployed contracts. Calls to
// addresses without a native or standard precompiled contract complete
// without effect.
type noCode struct{}

func (noCode) GetCode(nimbus.Address) nimbus.Code {
	return nil
}

func (noCode) GetCodeHash(nimbus.Address) nimbus.Hash {
	return nimbus.Hash{}
}

func newDispatcher(config *Config, logger log.Logger, counters *dispatch.Metrics) (*dispatch.Dispatcher, error) {
	registry, err := config.NewRegistry(config.NewLedger(), logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("Created native contracts", "count", registry.Len(), "addresses", registry.Addresses())
	fallback := dispatch.NewInterpreterFallback(config.Revision, nil, noCode{}, logger)
	return dispatch.NewDispatcher(registry, fallback, dispatch.WithLogger(logger), dispatch.WithMetrics(counters)), nil
}

// ownerOfInput encodes a call of ownerOf(uint256).
func ownerOfInput(serial int64) nimbus.Data {
	word := uint256.NewInt(uint64(serial)).Bytes32()
	return append(precompile.OwnerOfSelector[:], word[:]...)
}

// fetchCall reads the parameters of a single call from the command line.
func fetchCall(context *cli.Context) (nimbus.CallParameters, error) {
	to, err := cliUtils.ToFlag.Fetch(context)
	if err != nil {
		return nimbus.CallParameters{}, err
	}
	caller, err := cliUtils.CallerFlag.Fetch(context)
	if err != nil {
		return nimbus.CallParameters{}, err
	}
	value, err := cliUtils.ValueFlag.Fetch(context)
	if err != nil {
		return nimbus.CallParameters{}, err
	}
	gas, err := cliUtils.GasFlag.Fetch(context)
	if err != nil {
		return nimbus.CallParameters{}, err
	}
	input, err := cliUtils.InputFlag.Fetch(context)
	if err != nil {
		return nimbus.CallParameters{}, fmt.Errorf("invalid input: %w", err)
	}
	if input == nil {
		serial, isSet := cliUtils.SerialFlag.Fetch(context)
		if !isSet {
			return nimbus.CallParameters{}, fmt.Errorf("either --%s or --%s must be given", cliUtils.InputFlag.Name, cliUtils.SerialFlag.Name)
		}
		input = ownerOfInput(serial)
	}
	return nimbus.CallParameters{
		Sender:    caller,
		Recipient: to,
		Value:     value,
		Input:     input,
		Gas:       gas,
	}, nil
}
