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

import (
	"github.com/Fantom-foundation/Nimbus/go/nimbus"
	"github.com/ethereum/go-ethereum/log"
)

// LogTracer reports native calls to a logger.
type LogTracer struct {
	logger log.Logger
}

func NewLogTracer(logger log.Logger) *LogTracer {
	if logger == nil {
		logger = log.Root()
	}
	return &LogTracer{logger: logger}
}

func (t *LogTracer) TracePrecompileCall(frame *nimbus.Frame, gasRequirement nimbus.Gas, output nimbus.Data) {
	t.logger.Info("Native call",
		"from", frame.Sender,
		"to", frame.Recipient,
		"input", frame.Input,
		"gas", frame.Gas(),
		"required", gasRequirement,
		"output", output,
	)
}
