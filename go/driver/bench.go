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
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Fantom-foundation/Nimbus/go/dispatch"
	cliUtils "github.com/Fantom-foundation/Nimbus/go/driver/cli"
	"github.com/Fantom-foundation/Nimbus/go/nimbus"
	"github.com/dsnet/golib/unitconv"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var BenchCmd = cliUtils.AddCommonFlags(cli.Command{
	Action: doBench,
	Name:   "bench",
	Usage:  "Measures the throughput of dispatching independent calls",
	Flags: []cli.Flag{
		cliUtils.ConfigFlag,
		cliUtils.ToFlag,
		cliUtils.CallerFlag,
		cliUtils.InputFlag,
		cliUtils.SerialFlag,
		cliUtils.ValueFlag,
		cliUtils.GasFlag,
		cliUtils.CallsFlag,
		cliUtils.JobsFlag,
	},
})

func doBench(cliContext *cli.Context) error {
	config, err := LoadConfig(cliUtils.ConfigFlag.Fetch(cliContext))
	if err != nil {
		return err
	}
	params, err := fetchCall(cliContext)
	if err != nil {
		return err
	}
	calls := cliUtils.CallsFlag.Fetch(cliContext)
	jobs := cliUtils.JobsFlag.Fetch(cliContext)

	counters := dispatch.NewMetrics(metrics.NewRegistry())
	dispatcher, err := newDispatcher(config, log.Root(), counters)
	if err != nil {
		return err
	}

	var next, completed, reverted, halted atomic.Int64
	fmt.Printf("Dispatching %d calls using %d jobs ...\n", calls, jobs)
	start := time.Now()

	errs, _ := errgroup.WithContext(context.Background())
	for i := 0; i < jobs; i++ {
		errs.Go(func() error {
			for next.Add(1) <= int64(calls) {
				frame := nimbus.NewFrame(params)
				dispatcher.Dispatch(frame, nil)
				switch frame.State() {
				case nimbus.StateCompletedSuccess:
					completed.Add(1)
				case nimbus.StateRevert:
					reverted.Add(1)
				case nimbus.StateExceptionalHalt:
					halted.Add(1)
				default:
					return fmt.Errorf("call ended in non-terminal state %v", frame.State())
				}
			}
			return nil
		})
	}
	if err := errs.Wait(); err != nil {
		return err
	}

	duration := time.Since(start)
	rate := float64(calls) / duration.Seconds()
	fmt.Printf(
		"Processed %d calls in %v, ~%s calls per second\n",
		calls, duration.Round(time.Millisecond), unitconv.FormatPrefix(rate, unitconv.SI, 0),
	)
	fmt.Printf("Completed: %d, reverted: %d, halted: %d\n", completed.Load(), reverted.Load(), halted.Load())
	summary := counters.Summary()
	fmt.Printf(
		"Dispatch outcomes: success %d, revert %d, halt %d, out of gas %d, fallback %d\n",
		summary["success"], summary["revert"], summary["halt"], summary["oog"], summary["fallback"],
	)
	return nil
}
