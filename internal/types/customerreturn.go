package types

import (
	"fmt"

	"github.com/samber/lo"
)

// CustomerReturnStatus represents the workflow state of a customer return.
// Returns are always created pending; approve/reject are the dedicated
// transitions and completed is reached through the generic update path.
type CustomerReturnStatus string

const (
	CustomerReturnStatusPending   CustomerReturnStatus = "pending"
	CustomerReturnStatusApproved  CustomerReturnStatus = "approved"
	CustomerReturnStatusRejected  CustomerReturnStatus = "rejected"
	CustomerReturnStatusCompleted CustomerReturnStatus = "completed"
)

func (s CustomerReturnStatus) String() string {
	return string(s)
}

func (s CustomerReturnStatus) Validate() error {
	allowed := []CustomerReturnStatus{
		CustomerReturnStatusPending,
		CustomerReturnStatusApproved,
		CustomerReturnStatusRejected,
		CustomerReturnStatusCompleted,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid customer return status: %s", s)
	}
	return nil
}

// RefundMethod represents the settlement mechanism for a customer return
type RefundMethod string

const (
	RefundMethodCash            RefundMethod = "cash"
	RefundMethodStoreCredit     RefundMethod = "store_credit"
	RefundMethodOriginalPayment RefundMethod = "original_payment"
)

func (m RefundMethod) String() string {
	return string(m)
}

func (m RefundMethod) Validate() error {
	allowed := []RefundMethod{
		RefundMethodCash,
		RefundMethodStoreCredit,
		RefundMethodOriginalPayment,
	}
	if !lo.Contains(allowed, m) {
		return fmt.Errorf("invalid refund method: %s", m)
	}
	return nil
}
