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

//go:generate mockgen -source interpreter.go -destination interpreter_mock.go -package nimbus

// Interpreter executes ordinary EVM byte-code. Calls to addresses without a
// native precompile are forwarded to an implementation of this interface.
type Interpreter interface {
	// Run executes Parameters.Code. A nil error means the code ran to its
	// end, including reverts and code-level failures reported through the
	// Result. A non-nil error signals an interpreter fault and leaves the
	// Result undefined. Implementations must support concurrent calls.
	Run(Parameters) (Result, error)
}

// Parameters is the input of a single code execution.
type Parameters struct {
	Sender    Address
	Recipient Address
	Value     Value
	Input     Data
	Gas       Gas
	Depth     int
	Static    bool
	Revision  Revision
	Code      Code
	CodeHash  *Hash
}

// Result reports a finished execution. Success is false for reverts and
// code-level failures.
type Result struct {
	Success bool
	Output  Data
	GasLeft Gas
}

// CodeSource provides the byte-code of ordinary contracts.
type CodeSource interface {
	GetCode(Address) Code
	GetCodeHash(Address) Hash
}
