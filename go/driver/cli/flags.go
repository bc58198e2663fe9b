// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cliUtils

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/Fantom-foundation/Nimbus/go/nimbus"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"
)

type configFlagType struct {
	cli.StringFlag
}

var ConfigFlag = &configFlagType{
	cli.StringFlag{
		Name:      "config",
		Aliases:   []string{"c"},
		Usage:     "JSON file describing native contracts, ledger content and fees",
		TakesFile: true,
		Required:  true,
	},
}

func (f *configFlagType) Fetch(context *cli.Context) string {
	return context.String(f.Name)
}

type toFlagType struct {
	cli.StringFlag
}

var ToFlag = &toFlagType{
	cli.StringFlag{
		Name:     "to",
		Usage:    "address of the called contract",
		Required: true,
	},
}

func (f *toFlagType) Fetch(context *cli.Context) (nimbus.Address, error) {
	return parseAddress(context.String(f.Name))
}

type callerFlagType struct {
	cli.StringFlag
}

var CallerFlag = &callerFlagType{
	cli.StringFlag{
		Name:  "caller",
		Usage: "address of the calling account",
		Value: nimbus.Address{}.String(),
	},
}

func (f *callerFlagType) Fetch(context *cli.Context) (nimbus.Address, error) {
	return parseAddress(context.String(f.Name))
}

type inputFlagType struct {
	cli.StringFlag
}

var InputFlag = &inputFlagType{
	cli.StringFlag{
		Name:  "input",
		Usage: "hex encoded call data, including the function selector",
	},
}

func (f *inputFlagType) Fetch(context *cli.Context) (nimbus.Data, error) {
	if !context.IsSet(f.Name) {
		return nil, nil
	}
	return nimbus.ParseHex(context.String(f.Name))
}

type serialFlagType struct {
	cli.Int64Flag
}

var SerialFlag = &serialFlagType{
	cli.Int64Flag{
		Name:  "serial",
		Usage: "serial number passed to ownerOf if no explicit input is given",
	},
}

func (f *serialFlagType) Fetch(context *cli.Context) (int64, bool) {
	return context.Int64(f.Name), context.IsSet(f.Name)
}

type valueFlagType struct {
	cli.StringFlag
}

var ValueFlag = &valueFlagType{
	cli.StringFlag{
		Name:  "value",
		Usage: "decimal amount of value transferred with the call",
		Value: "0",
	},
}

func (f *valueFlagType) Fetch(context *cli.Context) (nimbus.Value, error) {
	value, err := uint256.FromDecimal(context.String(f.Name))
	if err != nil {
		return nimbus.Value{}, fmt.Errorf("invalid value: %w", err)
	}
	return nimbus.ValueFromUint256(value), nil
}

type gasFlagType struct {
	cli.Int64Flag
}

var GasFlag = &gasFlagType{
	cli.Int64Flag{
		Name:  "gas",
		Usage: "gas available to the call",
		Value: 1_000_000,
	},
}

func (f *gasFlagType) Fetch(context *cli.Context) (nimbus.Gas, error) {
	gas := context.Int64(f.Name)
	if gas < 0 {
		return 0, fmt.Errorf("gas must not be negative, got %d", gas)
	}
	return nimbus.Gas(gas), nil
}

type jobsFlagType struct {
	cli.IntFlag
}

var JobsFlag = &jobsFlagType{
	cli.IntFlag{
		Name:    "jobs",
		Aliases: []string{"j"},
		Usage:   "number of jobs run simultaneously",
		Value:   runtime.NumCPU(),
	},
}

func (f *jobsFlagType) Fetch(context *cli.Context) int {
	jobs := context.Int(f.Name)
	if jobs <= 0 {
		return runtime.NumCPU()
	}
	return jobs
}

type callsFlagType struct {
	cli.IntFlag
}

var CallsFlag = &callsFlagType{
	cli.IntFlag{
		Name:  "calls",
		Usage: "total number of calls to dispatch",
		Value: 100_000,
	},
}

func (f *callsFlagType) Fetch(context *cli.Context) int {
	return context.Int(f.Name)
}

type verbosityFlagType struct {
	cli.IntFlag
}

var VerbosityFlag = &verbosityFlagType{
	cli.IntFlag{
		Name:  "verbosity",
		Usage: "log level: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 3,
	},
}

func (f *verbosityFlagType) Fetch(context *cli.Context) slog.Level {
	return log.FromLegacyLevel(context.Int(f.Name))
}

// SetupLogging installs a terminal logger with the level selected by the
// verbosity flag as the default logger.
func SetupLogging(context *cli.Context) error {
	level := VerbosityFlag.Fetch(context)
	handler := log.NewTerminalHandlerWithLevel(os.Stderr, level, false)
	log.SetDefault(log.NewLogger(handler))
	return nil
}

func parseAddress(s string) (nimbus.Address, error) {
	var address nimbus.Address
	if err := address.UnmarshalText([]byte(s)); err != nil {
		return nimbus.Address{}, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return address, nil
}

var commonFlags = []cli.Flag{
	cpuProfileFlag,
}

var cpuProfileFlag = &cli.StringFlag{
	Name:      "cpuprofile",
	Usage:     "store CPU profile in the provided filename",
	TakesFile: true,
}

func AddCommonFlags(command cli.Command) cli.Command {
	command.Flags = append(command.Flags, commonFlags...)

	action := command.Action
	command.Action = func(ctx *cli.Context) (err error) {

		if cpuprofileFilename := ctx.String(cpuProfileFlag.Name); cpuprofileFilename != "" {
			f, err := os.Create(cpuprofileFilename)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
			defer pprof.StopCPUProfile()
		}

		return action(ctx)
	}
	return command
}
