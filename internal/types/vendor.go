package types

import (
	"fmt"

	"github.com/samber/lo"
)

// VendorStatus represents the lifecycle state of a vendor record
type VendorStatus string

const (
	VendorStatusActive   VendorStatus = "Active"
	VendorStatusInactive VendorStatus = "Inactive"
	VendorStatusBlocked  VendorStatus = "Blocked"
)

func (s VendorStatus) String() string {
	return string(s)
}

func (s VendorStatus) Validate() error {
	allowed := []VendorStatus{
		VendorStatusActive,
		VendorStatusInactive,
		VendorStatusBlocked,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid vendor status: %s", s)
	}
	return nil
}

// TransactionType represents the direction of a vendor ledger posting.
// A PAYMENT raises the vendor's total paid and lowers the outstanding
// payable; a BILL raises the outstanding payable.
type TransactionType string

const (
	TransactionTypePayment TransactionType = "PAYMENT"
	TransactionTypeBill    TransactionType = "BILL"
)

func (t TransactionType) String() string {
	return string(t)
}

func (t TransactionType) Validate() error {
	allowed := []TransactionType{
		TransactionTypePayment,
		TransactionTypeBill,
	}
	if !lo.Contains(allowed, t) {
		return fmt.Errorf("invalid transaction type: %s", t)
	}
	return nil
}
