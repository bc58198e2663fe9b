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
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

var CallCmd = cli.Command{
	Action: doCall,
	Name:   "call",
	Usage:  "Dispatches a single call and prints the resulting frame",
	Flags: []cli.Flag{
		cliUtils.ConfigFlag,
		cliUtils.ToFlag,
		cliUtils.CallerFlag,
		cliUtils.InputFlag,
		cliUtils.SerialFlag,
		cliUtils.ValueFlag,
		cliUtils.GasFlag,
	},
}

func doCall(context *cli.Context) error {
	config, err := LoadConfig(cliUtils.ConfigFlag.Fetch(context))
	if err != nil {
		return err
	}
	params, err := fetchCall(context)
	if err != nil {
		return err
	}

	logger := log.Root()
	dispatcher, err := newDispatcher(config, logger, nil)
	if err != nil {
		return err
	}

	frame := nimbus.NewFrame(params)
	dispatcher.Dispatch(frame, dispatch.NewLogTracer(logger))

	fmt.Print(describeFrame(frame))
	return nil
}

func describeFrame(frame *nimbus.Frame) string {
	res := fmt.Sprintf("State:    %v\n", frame.State())
	res += fmt.Sprintf("Gas used: %d\n", frame.CallParameters.Gas-frame.Gas())
	res += fmt.Sprintf("Gas left: %d\n", frame.Gas())
	switch frame.State() {
	case nimbus.StateCompletedSuccess:
		res += fmt.Sprintf("Output:   %v\n", frame.Output())
	case nimbus.StateRevert:
		res += fmt.Sprintf("Reason:   %q\n", string(frame.RevertReason()))
	case nimbus.StateExceptionalHalt:
		res += fmt.Sprintf("Halt:     %v\n", frame.HaltReason())
	}
	for i, record := range frame.ChildRecords() {
		res += fmt.Sprintf("Record %d: %v %v\n", i, record.Status, record.Result)
	}
	return res
}
