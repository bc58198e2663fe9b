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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Fantom-foundation/Nimbus/go/dispatch"
	"github.com/Fantom-foundation/Nimbus/go/ledger"
	"github.com/Fantom-foundation/Nimbus/go/nimbus"
	"github.com/Fantom-foundation/Nimbus/go/usage"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"
	"github.com/holiman/uint256"
)

const testConfig = `{
	"revision": "Cancun",
	"precompiles": [
		{"kind": "ownerOf", "address": "0xaa00000000000000000000000000000000000000", "token": "0.0.1234"},
		{"kind": "standard", "address": "0x0000000000000000000000000000000000000167", "source": "0x0000000000000000000000000000000000000004"}
	],
	"ledger": {
		"nfts": [{"token": "0.0.1234", "serial": 7, "owner": "0.0.99"}],
		"aliases": [{"account": "0.0.99", "address": "0xcafebabe00000000000000000000000000000000"}]
	},
	"gas": {"readOnlyBase": 250, "perWord": 0},
	"fees": {"constant": "1000", "perByte": "10", "perByteHour": "2", "perAssociation": "500"}
}`

func TestConfig_ParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte(testConfig))
	if err != nil {
		t.Fatalf("failed to parse config: %v", err)
	}
	if want, got := nimbus.R13_Cancun, config.Revision; want != got {
		t.Errorf("unexpected revision, wanted %v, got %v", want, got)
	}
	if want, got := 2, len(config.Precompiles); want != got {
		t.Fatalf("unexpected number of precompiles, wanted %d, got %d", want, got)
	}
	if want, got := nimbus.Gas(250), config.GasSchedule().ReadOnlyBase; want != got {
		t.Errorf("unexpected gas schedule, wanted %d, got %d", want, got)
	}
	if want := uint256.NewInt(500); !config.Fees.PerAssociation.Eq(want) {
		t.Errorf("unexpected fee schedule, got %v", &config.Fees.PerAssociation)
	}

	view := config.NewLedger()
	nft := ledger.TokenID{Num: 1234}.Nft(7)
	if !view.Exists(nft) {
		t.Fatalf("configured nft is missing")
	}
	if want, got := (nimbus.Address{0xca, 0xfe, 0xba, 0xbe}), view.CanonicalAddress(view.OwnerOf(nft)); want != got {
		t.Errorf("unexpected owner address, wanted %v, got %v", want, got)
	}
}

func TestConfig_DefaultsApply(t *testing.T) {
	config, err := ParseConfig([]byte(`{}`))
	if err != nil {
		t.Fatalf("failed to parse config: %v", err)
	}
	if want, got := nimbus.R13_Cancun, config.Revision; want != got {
		t.Errorf("unexpected default revision, wanted %v, got %v", want, got)
	}
	if want, got := nimbus.Gas(100), config.GasSchedule().ReadOnlyBase; want != got {
		t.Errorf("unexpected default gas, wanted %d, got %d", want, got)
	}
}

func TestConfig_InvalidConfigsAreRejected(t *testing.T) {
	tests := map[string]string{
		"not json":         `{`,
		"unknown revision": `{"revision": "Frontier"}`,
		"invalid address":  `{"precompiles": [{"kind": "ownerOf", "address": "0xaa"}]}`,
		"invalid token":    `{"ledger": {"nfts": [{"token": "1234"}]}}`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(data)); err == nil {
				t.Errorf("expected config to be rejected")
			}
		})
	}
}

func TestConfig_NewRegistry(t *testing.T) {
	config, err := ParseConfig([]byte(testConfig))
	if err != nil {
		t.Fatalf("failed to parse config: %v", err)
	}
	registry, err := config.NewRegistry(config.NewLedger(), log.Root())
	if err != nil {
		t.Fatalf("failed to create registry: %v", err)
	}

	addresses := registry.Addresses()
	if len(addresses) != 2 {
		t.Fatalf("unexpected number of contracts, wanted 2, got %d", len(addresses))
	}
	contract, found := registry.Lookup(nimbus.Address{0xaa})
	if !found {
		t.Fatalf("ownerOf contract is not bound")
	}
	if want, got := "ownerOf(0.0.1234)", contract.Name(); want != got {
		t.Errorf("unexpected contract, wanted %v, got %v", want, got)
	}
	if want, got := nimbus.Gas(250), contract.GasRequirement(nil); want != got {
		t.Errorf("configured gas schedule not applied, wanted %d, got %d", want, got)
	}
}

func TestConfig_NewRegistryRejectsInvalidContracts(t *testing.T) {
	tests := map[string]string{
		"unknown kind":      `{"precompiles": [{"kind": "transfer", "address": "0xaa00000000000000000000000000000000000000"}]}`,
		"missing token":     `{"precompiles": [{"kind": "ownerOf", "address": "0xaa00000000000000000000000000000000000000"}]}`,
		"duplicate address": `{"precompiles": [{"kind": "ownerOf", "address": "0xaa00000000000000000000000000000000000000", "token": "0.0.1"}, {"kind": "ownerOf", "address": "0xaa00000000000000000000000000000000000000", "token": "0.0.2"}]}`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			config, err := ParseConfig([]byte(data))
			if err != nil {
				t.Fatalf("failed to parse config: %v", err)
			}
			if _, err := config.NewRegistry(config.NewLedger(), log.Root()); err == nil {
				t.Errorf("expected registry creation to fail")
			}
		})
	}
}

func TestConfig_LoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(testConfig), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err != nil {
		t.Errorf("failed to load config: %v", err)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("expected missing file to be reported")
	}
}

func TestDriver_OwnerOfCallThroughDispatcher(t *testing.T) {
	config, err := ParseConfig([]byte(testConfig))
	if err != nil {
		t.Fatalf("failed to parse config: %v", err)
	}
	counters := dispatch.NewMetrics(metrics.NewRegistry())
	dispatcher, err := newDispatcher(config, log.Root(), counters)
	if err != nil {
		t.Fatalf("failed to create dispatcher: %v", err)
	}

	tests := map[string]struct {
		params nimbus.CallParameters
		state  nimbus.FrameState
		output string
	}{
		"owner of existing nft": {
			params: nimbus.CallParameters{Recipient: nimbus.Address{0xaa}, Input: ownerOfInput(7), Gas: 1000},
			state:  nimbus.StateCompletedSuccess,
			output: "Output:   0x000000000000000000000000cafebabe00000000000000000000000000000000",
		},
		"owner of missing nft": {
			params: nimbus.CallParameters{Recipient: nimbus.Address{0xaa}, Input: ownerOfInput(8), Gas: 1000},
			state:  nimbus.StateRevert,
			output: "Reason:   \"INVALID_TOKEN_NFT_SERIAL_NUMBER\"",
		},
		"wrapped identity": {
			params: nimbus.CallParameters{Recipient: nimbus.Address{18: 0x01, 19: 0x67}, Input: nimbus.Data{1, 2}, Gas: 1000},
			state:  nimbus.StateCompletedSuccess,
			output: "Output:   0x0102",
		},
		"account without code": {
			params: nimbus.CallParameters{Recipient: nimbus.Address{0xbb}, Gas: 1000},
			state:  nimbus.StateCompletedSuccess,
			output: "Gas left: 1000",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			frame := nimbus.NewFrame(test.params)
			dispatcher.Dispatch(frame, nil)
			if want, got := test.state, frame.State(); want != got {
				t.Fatalf("unexpected state, wanted %v, got %v", want, got)
			}
			if description := describeFrame(frame); !strings.Contains(description, test.output) {
				t.Errorf("description %q does not contain %q", description, test.output)
			}
		})
	}

	want := map[string]int64{"success": 2, "revert": 1, "halt": 0, "oog": 0, "fallback": 1}
	got := counters.Summary()
	for outcome, count := range want {
		if got[outcome] != count {
			t.Errorf("unexpected count for %s, wanted %d, got %d", outcome, count, got[outcome])
		}
	}
}

func TestDriver_OwnerOfInput(t *testing.T) {
	input := ownerOfInput(7)
	want := append([]byte{0x63, 0x52, 0x21, 0x1e}, make([]byte, 31)...)
	want = append(want, 7)
	if !bytes.Equal(want, input) {
		t.Errorf("unexpected input, wanted %x, got %x", want, input)
	}
}

func TestDriver_NewKeyUsesGivenThreshold(t *testing.T) {
	key, ok := newKey(3, 2).(usage.ThresholdKey)
	if !ok {
		t.Fatalf("expected threshold key, got %T", newKey(3, 2))
	}
	if want, got := int32(2), key.Threshold; want != got {
		t.Errorf("unexpected threshold, wanted %d, got %d", want, got)
	}
	if want, got := 3, len(key.Keys); want != got {
		t.Errorf("unexpected number of keys, wanted %d, got %d", want, got)
	}
}

func TestDriver_NewKey(t *testing.T) {
	tests := map[string]struct {
		count, threshold int
		size             int64
	}{
		"no key":     {0, 0, 0},
		"single key": {1, 0, 32},
		"key list":   {3, 0, 96},
		"threshold":  {3, 2, 100},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if want, got := test.size, usage.KeyStorageSize(newKey(test.count, test.threshold)); want != got {
				t.Errorf("unexpected key size, wanted %d, got %d", want, got)
			}
		})
	}
}
