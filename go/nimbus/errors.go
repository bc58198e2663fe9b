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

import (
	"errors"
	"fmt"
)

var ErrExecutionReverted = fmt.Errorf("execution reverted")

// ResponseCode is the ledger status attached to records and reverts of
// native operations.
type ResponseCode int

const (
	Success ResponseCode = iota
	InvalidTransactionBody
	InvalidTokenNftSerialNumber
	FailInvalid
)

func (c ResponseCode) String() string {
	switch c {
	case Success:
		return "SUCCESS"
	case InvalidTransactionBody:
		return "INVALID_TRANSACTION_BODY"
	case InvalidTokenNftSerialNumber:
		return "INVALID_TOKEN_NFT_SERIAL_NUMBER"
	case FailInvalid:
		return "FAIL_INVALID"
	default:
		return fmt.Sprintf("ResponseCode(%d)", c)
	}
}

// RevertError signals a caller-correctable failure of a native operation.
// It matches ErrExecutionReverted under errors.Is.
type RevertError struct {
	Status ResponseCode
}

func NewRevert(status ResponseCode) error {
	return &RevertError{Status: status}
}

func (e *RevertError) Error() string {
	return fmt.Sprintf("%v: %v", ErrExecutionReverted, e.Status)
}

func (e *RevertError) Unwrap() error {
	return ErrExecutionReverted
}

// Reason is the revert payload stored on the frame.
func (e *RevertError) Reason() Data {
	return Data(e.Status.String())
}

// IsRevert extracts a RevertError from the chain of err, if any.
func IsRevert(err error) (*RevertError, bool) {
	var revert *RevertError
	if errors.As(err, &revert) {
		return revert, true
	}
	return nil, false
}
