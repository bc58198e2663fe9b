// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package dispatch

import "github.com/ethereum/go-ethereum/metrics"

// Metrics counts the outcomes of dispatched calls.
type Metrics struct {
	success  metrics.Counter
	revert   metrics.Counter
	halt     metrics.Counter
	outOfGas metrics.Counter
	fallback metrics.Counter
}

// NewMetrics registers the dispatch counters in the given registry, or in
// the default registry if nil. Counters are shared between all Metrics
// using the same registry and count regardless of metrics.Enabled.
func NewMetrics(registry metrics.Registry) *Metrics {
	if registry == nil {
		registry = metrics.DefaultRegistry
	}
	return &Metrics{
		success:  metrics.GetOrRegisterCounterForced("nimbus/dispatch/success", registry),
		revert:   metrics.GetOrRegisterCounterForced("nimbus/dispatch/revert", registry),
		halt:     metrics.GetOrRegisterCounterForced("nimbus/dispatch/halt", registry),
		outOfGas: metrics.GetOrRegisterCounterForced("nimbus/dispatch/oog", registry),
		fallback: metrics.GetOrRegisterCounterForced("nimbus/dispatch/fallback", registry),
	}
}

// Summary lists the current counter values by outcome.
func (m *Metrics) Summary() map[string]int64 {
	return map[string]int64{
		"success":  m.success.Snapshot().Count(),
		"revert":   m.revert.Snapshot().Count(),
		"halt":     m.halt.Snapshot().Count(),
		"oog":      m.outOfGas.Snapshot().Count(),
		"fallback": m.fallback.Snapshot().Count(),
	}
}
