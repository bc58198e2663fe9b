// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package nimbus

//go:generate mockgen -source tracer.go -destination tracer_mock.go -package nimbus

// Tracer is an observability sink for native calls. It is informed about
// every executed precompile, independently of the outcome of the call, before
// the frame reaches its terminal state.
type Tracer interface {
	TracePrecompileCall(frame *Frame, gasRequirement Gas, output Data)
}
