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

import "fmt"

// BodyKind names the transaction type of a synthetic body.
type BodyKind int

const (
	ContractCall BodyKind = iota
)

func (k BodyKind) String() string {
	if k == ContractCall {
		return "ContractCall"
	}
	return fmt.Sprintf("BodyKind(%d)", k)
}

// SyntheticBody is the transaction body the node records for a native
// operation, even if the operation itself does not touch the ledger.
type SyntheticBody struct {
	Kind               BodyKind
	Gas                Gas
	FunctionParameters Data
}

// ChildRecord summarizes the outcome of a synthetic operation.
type ChildRecord struct {
	Body   SyntheticBody
	Status ResponseCode
	Result Data
}

func NewChildRecord(body SyntheticBody) ChildRecord {
	return ChildRecord{Body: body, Status: Success}
}
