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
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/Fantom-foundation/Nimbus/go/codec"
	"github.com/Fantom-foundation/Nimbus/go/ledger"
	"github.com/Fantom-foundation/Nimbus/go/nimbus"
	"go.uber.org/mock/gomock"
)

var testToken = ledger.TokenID{Num: 1234}

func ownerOfInput(serial byte) nimbus.Data {
	input := make(nimbus.Data, SelectorSize+32)
	copy(input, OwnerOfSelector[:])
	input[len(input)-1] = serial
	return input
}

func newTestOwnerOf(t *testing.T, view ledger.View) *ReadOnly[ledger.NftID] {
	t.Helper()
	contract, err := NewOwnerOfContract(testToken, Environment{
		Ledger: view,
		Codec:  codec.NewABI(),
		Gas:    DefaultGasSchedule,
	})
	if err != nil {
		t.Fatalf("failed to create contract: %v", err)
	}
	return contract
}

func TestReadOnly_BodyRejectsShortInput(t *testing.T) {
	contract := newTestOwnerOf(t, ledger.NewMemory())

	for _, input := range []nimbus.Data{nil, {}, {0x63}, {0x63, 0x52, 0x21}} {
		t.Run(fmt.Sprintf("%d-bytes", len(input)), func(t *testing.T) {
			_, err := contract.Body(input)
			revert, ok := nimbus.IsRevert(err)
			if !ok {
				t.Fatalf("expected revert, got %v", err)
			}
			if want, got := nimbus.InvalidTransactionBody, revert.Status; want != got {
				t.Errorf("unexpected status, wanted %v, got %v", want, got)
			}
		})
	}
}

func TestReadOnly_BodyRejectsUndecodableArguments(t *testing.T) {
	contract := newTestOwnerOf(t, ledger.NewMemory())

	_, err := contract.Body(OwnerOfSelector[:])
	revert, ok := nimbus.IsRevert(err)
	if !ok {
		t.Fatalf("expected revert, got %v", err)
	}
	if want, got := nimbus.InvalidTransactionBody, revert.Status; want != got {
		t.Errorf("unexpected status, wanted %v, got %v", want, got)
	}
	if !errors.Is(err, codec.ErrDecode) {
		t.Errorf("expected decode error to be wrapped, got %v", err)
	}
}

func TestReadOnly_BodyPassesArgumentsWithoutSelector(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCodec := codec.NewMockCodec(ctrl)
	input := ownerOfInput(7)
	mockCodec.EXPECT().DecodeOwnerOf(nimbus.Data(input[SelectorSize:])).Return(codec.OwnerOfRequest{Serial: 7}, nil)

	contract := NewReadOnly[ledger.NftID](NewOwnerOf(testToken), Environment{
		Ledger: ledger.NewMockView(ctrl),
		Codec:  mockCodec,
	})

	prepared, err := contract.Body(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := testToken.Nft(7), prepared.Request(); want != got {
		t.Errorf("unexpected request, wanted %v, got %v", want, got)
	}
	body := prepared.Body()
	if body.Kind != nimbus.ContractCall || body.Gas != 1 {
		t.Errorf("unexpected synthetic body %v", body)
	}
	if !bytes.Equal(body.FunctionParameters, input) {
		t.Errorf("synthetic body should carry full input, got %x", body.FunctionParameters)
	}
}

func TestReadOnly_SuccessResultWithoutBodyFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	// neither the ledger nor the codec may be consulted
	contract := NewReadOnly[ledger.NftID](NewOwnerOf(testToken), Environment{
		Ledger: ledger.NewMockView(ctrl),
		Codec:  codec.NewMockCodec(ctrl),
	})

	record := nimbus.NewChildRecord(nimbus.SyntheticBody{})
	output, err := contract.SuccessResult(Prepared[ledger.NftID]{}, &record)
	if !errors.Is(err, ErrNotPrepared) {
		t.Errorf("expected ErrNotPrepared, got %v", err)
	}
	if output != nil {
		t.Errorf("unexpected output %x", output)
	}
}

func TestOwnerOf_ReturnsCanonicalAddressOfOwner(t *testing.T) {
	owner := ledger.AccountID{Num: 99}
	alias := nimbus.Address{0xCA, 0xFE, 0xBA, 0xBE}

	tests := map[string]struct {
		setup func(*ledger.Memory)
		want  nimbus.Address
	}{
		"owner with alias": {
			setup: func(m *ledger.Memory) { m.SetAlias(owner, alias) },
			want:  alias,
		},
		"owner without alias": {
			setup: func(*ledger.Memory) {},
			want:  owner.MirrorAddress(),
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			view := ledger.NewMemory()
			view.SetOwner(testToken.Nft(7), owner)
			test.setup(view)
			contract := newTestOwnerOf(t, view)

			frame := nimbus.NewFrame(nimbus.CallParameters{Input: ownerOfInput(7), Gas: 1000})
			output, err := contract.Compute(frame.Input, frame)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := codec.NewABI().EncodeOwner(test.want)
			if !bytes.Equal(want, output) {
				t.Errorf("unexpected output, wanted %x, got %x", want, output)
			}

			records := frame.ChildRecords()
			if len(records) != 1 {
				t.Fatalf("expected one child record, got %d", len(records))
			}
			if want, got := nimbus.Success, records[0].Status; want != got {
				t.Errorf("unexpected record status, wanted %v, got %v", want, got)
			}
			if !bytes.Equal(records[0].Result, output) {
				t.Errorf("record should carry the result, got %x", records[0].Result)
			}
			if frame.State() != nimbus.StateNotStarted {
				t.Errorf("contract must not change the frame state, got %v", frame.State())
			}
		})
	}
}

func TestOwnerOf_MissingNftReverts(t *testing.T) {
	ctrl := gomock.NewController(t)
	view := ledger.NewMockView(ctrl)
	view.EXPECT().Exists(testToken.Nft(7)).Return(false)

	contract := newTestOwnerOf(t, view)
	frame := nimbus.NewFrame(nimbus.CallParameters{Input: ownerOfInput(7), Gas: 1000})
	output, err := contract.Compute(frame.Input, frame)

	revert, ok := nimbus.IsRevert(err)
	if !ok {
		t.Fatalf("expected revert, got %v", err)
	}
	if want, got := nimbus.InvalidTokenNftSerialNumber, revert.Status; want != got {
		t.Errorf("unexpected status, wanted %v, got %v", want, got)
	}
	if output != nil {
		t.Errorf("unexpected output %x", output)
	}
	records := frame.ChildRecords()
	if len(records) != 1 || records[0].Status != nimbus.InvalidTokenNftSerialNumber {
		t.Errorf("failed call should still be recorded, got %v", records)
	}
}

func TestOwnerOf_InvalidInputIsRecorded(t *testing.T) {
	contract := newTestOwnerOf(t, ledger.NewMemory())
	frame := nimbus.NewFrame(nimbus.CallParameters{Input: nimbus.Data{0x01}})

	if _, err := contract.Compute(frame.Input, frame); err == nil {
		t.Fatalf("expected error for short input")
	}
	records := frame.ChildRecords()
	if len(records) != 1 || records[0].Status != nimbus.InvalidTransactionBody {
		t.Errorf("rejected call should be recorded, got %v", records)
	}
}

type brokenQuery struct{}

func (brokenQuery) Name() string { return "broken" }

func (brokenQuery) Decode(codec.Codec, nimbus.Data) (int64, error) { return 0, nil }

func (brokenQuery) Result(ledger.View, codec.Codec, int64) (nimbus.Data, error) {
	return nil, fmt.Errorf("ledger unavailable")
}

func TestReadOnly_FailedResultIsNotRecordedAsSuccess(t *testing.T) {
	contract := NewReadOnly[int64](brokenQuery{}, Environment{
		Ledger: ledger.NewMemory(),
		Codec:  codec.NewABI(),
	})
	frame := nimbus.NewFrame(nimbus.CallParameters{Input: ownerOfInput(7)})

	output, err := contract.Compute(frame.Input, frame)
	if err == nil {
		t.Fatalf("expected error, got output %x", output)
	}
	if _, ok := nimbus.IsRevert(err); ok {
		t.Errorf("unexpected revert %v", err)
	}
	records := frame.ChildRecords()
	if len(records) != 1 {
		t.Fatalf("expected one child record, got %d", len(records))
	}
	if want, got := nimbus.FailInvalid, records[0].Status; want != got {
		t.Errorf("unexpected record status, wanted %v, got %v", want, got)
	}
	if records[0].Result != nil {
		t.Errorf("failed call must not record a result, got %x", records[0].Result)
	}
}

func TestReadOnly_GasRequirement(t *testing.T) {
	tests := map[string]struct {
		schedule GasSchedule
		input    nimbus.Data
		want     nimbus.Gas
	}{
		"default empty":    {DefaultGasSchedule, nil, 100},
		"default owner-of": {DefaultGasSchedule, ownerOfInput(7), 100},
		"per word":         {GasSchedule{ReadOnlyBase: 10, PerWord: 3}, ownerOfInput(7), 16},
		"per word empty":   {GasSchedule{ReadOnlyBase: 10, PerWord: 3}, nil, 10},
		"partial word":     {GasSchedule{PerWord: 5}, make(nimbus.Data, 33), 10},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			contract := NewReadOnly[ledger.NftID](NewOwnerOf(testToken), Environment{Gas: test.schedule})
			if want, got := test.want, contract.GasRequirement(test.input); want != got {
				t.Errorf("unexpected gas, wanted %d, got %d", want, got)
			}
		})
	}
}
