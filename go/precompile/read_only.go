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
	"github.com/ethereum/go-ethereum/log"
)

// ErrNotPrepared is returned if the second stage of a read-only call is
// entered without a request produced by the first stage.
var ErrNotPrepared = fmt.Errorf("read-only call was not prepared")

// SelectorSize is the length of the function selector prefixing call data.
const SelectorSize = 4

// Query is a read-only native operation. Decode and Result must not modify
// the ledger.
type Query[R any] interface {
	Name() string
	// Decode parses the call arguments, with the function selector already
	// stripped, into a request.
	Decode(codec codec.Codec, args nimbus.Data) (R, error)
	// Result resolves the request against the ledger and encodes the call
	// output. Business failures are reported as nimbus.RevertError.
	Result(ledger ledger.View, codec codec.Codec, request R) (nimbus.Data, error)
}

// Prepared is the outcome of the first stage of a read-only call. Only
// values returned by ReadOnly.Body are valid input for SuccessResult.
type Prepared[R any] struct {
	request R
	body    nimbus.SyntheticBody
	valid   bool
}

func (p Prepared[R]) Request() R {
	return p.request
}

func (p Prepared[R]) Body() nimbus.SyntheticBody {
	return p.body
}

// ReadOnly adapts a Query to the Contract interface. Each call runs in two
// stages: Body validates and decodes the input, SuccessResult computes the
// output from the decoded request.
type ReadOnly[R any] struct {
	query  Query[R]
	ledger ledger.View
	codec  codec.Codec
	gas    GasSchedule
	logger log.Logger
}

func NewReadOnly[R any](query Query[R], env Environment) *ReadOnly[R] {
	return &ReadOnly[R]{
		query:  query,
		ledger: env.Ledger,
		codec:  env.Codec,
		gas:    env.Gas,
		logger: env.logger().With("contract", query.Name()),
	}
}

func (c *ReadOnly[R]) Name() string {
	return c.query.Name()
}

// Body is the first stage of a read-only call.
func (c *ReadOnly[R]) Body(input nimbus.Data) (Prepared[R], error) {
	if len(input) < SelectorSize {
		return Prepared[R]{}, fmt.Errorf(
			"%w: input of %d bytes lacks function selector",
			nimbus.NewRevert(nimbus.InvalidTransactionBody), len(input),
		)
	}
	request, err := c.query.Decode(c.codec, input[SelectorSize:])
	if err != nil {
		return Prepared[R]{}, fmt.Errorf("%w: %w", nimbus.NewRevert(nimbus.InvalidTransactionBody), err)
	}
	return Prepared[R]{
		request: request,
		body:    syntheticBody(input),
		valid:   true,
	}, nil
}

// SuccessResult is the second stage of a read-only call. The status and
// result of the call are written to the given record.
func (c *ReadOnly[R]) SuccessResult(prepared Prepared[R], record *nimbus.ChildRecord) (nimbus.Data, error) {
	if !prepared.valid {
		c.logger.Error("Read-only call result requested before preparation")
		return nil, ErrNotPrepared
	}
	output, err := c.query.Result(c.ledger, c.codec, prepared.request)
	if err != nil {
		record.Status = nimbus.FailInvalid
		if revert, ok := nimbus.IsRevert(err); ok {
			record.Status = revert.Status
		}
		return nil, err
	}
	record.Status = nimbus.Success
	record.Result = output
	return output, nil
}

func (c *ReadOnly[R]) Compute(input nimbus.Data, frame *nimbus.Frame) (nimbus.Data, error) {
	prepared, err := c.Body(input)
	if err != nil {
		record := nimbus.NewChildRecord(syntheticBody(input))
		record.Status = nimbus.InvalidTransactionBody
		frame.AddChildRecord(record)
		c.logger.Debug("Rejected read-only call", "err", err)
		return nil, err
	}
	record := nimbus.NewChildRecord(prepared.Body())
	output, err := c.SuccessResult(prepared, &record)
	frame.AddChildRecord(record)
	return output, err
}

func (c *ReadOnly[R]) GasRequirement(input nimbus.Data) nimbus.Gas {
	return c.gas.ReadOnly(input)
}

// syntheticBody is the body recorded for view calls, which the node treats
// as a contract call with the minimal gas limit.
func syntheticBody(input nimbus.Data) nimbus.SyntheticBody {
	return nimbus.SyntheticBody{
		Kind:               nimbus.ContractCall,
		Gas:                1,
		FunctionParameters: input,
	}
}
