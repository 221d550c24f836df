package types

import (
	"fmt"

	"github.com/samber/lo"
)

// VendorReturnStatus represents the workflow state of a vendor return.
// The expected progression is pending -> shipped -> received_by_vendor ->
// completed, but transitions are not ordered: UpdateStatus accepts any
// valid target status.
type VendorReturnStatus string

const (
	VendorReturnStatusPending          VendorReturnStatus = "pending"
	VendorReturnStatusShipped          VendorReturnStatus = "shipped"
	VendorReturnStatusReceivedByVendor VendorReturnStatus = "received_by_vendor"
	VendorReturnStatusCompleted        VendorReturnStatus = "completed"
)

func (s VendorReturnStatus) String() string {
	return string(s)
}

func (s VendorReturnStatus) Validate() error {
	allowed := []VendorReturnStatus{
		VendorReturnStatusPending,
		VendorReturnStatusShipped,
		VendorReturnStatusReceivedByVendor,
		VendorReturnStatusCompleted,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid vendor return status: %s", s)
	}
	return nil
}

// CreditType represents the settlement mechanism for a vendor return
type CreditType string

const (
	CreditTypeRefund      CreditType = "refund"
	CreditTypeCreditNote  CreditType = "credit_note"
	CreditTypeReplacement CreditType = "replacement"
)

func (t CreditType) String() string {
	return string(t)
}

func (t CreditType) Validate() error {
	allowed := []CreditType{
		CreditTypeRefund,
		CreditTypeCreditNote,
		CreditTypeReplacement,
	}
	if !lo.Contains(allowed, t) {
		return fmt.Errorf("invalid credit type: %s", t)
	}
	return nil
}
