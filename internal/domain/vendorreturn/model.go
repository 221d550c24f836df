package vendorreturn

import (
	"time"

	ierr "github.com/omnistore/backoffice/internal/errors"
	"github.com/omnistore/backoffice/internal/types"
	"github.com/shopspring/decimal"
)

// VendorReturn represents goods sent back to a vendor for credit.
// ReturnDate is stamped once at creation. CompletedDate is stamped when the
// status transitions to completed and is deliberately not cleared when the
// status later moves away from completed.
type VendorReturn struct {
	ID            string                   `json:"id"`
	ReturnNumber  string                   `json:"return_number"`
	VendorID      string                   `json:"vendor_id"`
	VendorName    string                   `json:"vendor_name"`
	Items         []*ReturnItem            `json:"items"`
	TotalAmount   decimal.Decimal          `json:"total_amount"`
	Status        types.VendorReturnStatus `json:"status"`
	ReturnDate    time.Time                `json:"return_date"`
	CompletedDate *time.Time               `json:"completed_date,omitempty"`
	CreditType    types.CreditType         `json:"credit_type"`
	Notes         string                   `json:"notes,omitempty"`
	CreatedBy     string                   `json:"created_by"`
}

// ReturnItem is a single returned line. TotalPrice is expected to equal
// UnitPrice multiplied by Quantity; the caller computes it before submission.
type ReturnItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	VariantID   string          `json:"variant_id,omitempty"`
	VariantName string          `json:"variant_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Reason      string          `json:"reason"`
}

func (i *ReturnItem) Validate() error {
	if i.Quantity <= 0 {
		return ierr.NewError("return item quantity must be greater than 0").
			WithHint("Quantity must be a positive value").
			WithReportableDetails(map[string]any{
				"product_id": i.ProductID,
				"quantity":   i.Quantity,
			}).
			Mark(ierr.ErrValidation)
	}

	if i.UnitPrice.IsNegative() || i.TotalPrice.IsNegative() {
		return ierr.NewError("return item price cannot be negative").
			WithHint("Unit and total price must be zero or positive").
			WithReportableDetails(map[string]any{
				"product_id":  i.ProductID,
				"unit_price":  i.UnitPrice,
				"total_price": i.TotalPrice,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

func (r *VendorReturn) Validate() error {
	if len(r.Items) == 0 {
		return ierr.NewError("return must contain at least one item").
			WithHint("Add at least one item to the return").
			Mark(ierr.ErrValidation)
	}

	for _, item := range r.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	if err := r.Status.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid return status").
			Mark(ierr.ErrValidation)
	}

	if err := r.CreditType.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Credit type must be refund, credit_note or replacement").
			Mark(ierr.ErrValidation)
	}

	if r.TotalAmount.IsNegative() {
		return ierr.NewError("total amount cannot be negative").
			WithHint("Total amount must be zero or positive").
			WithReportableDetails(map[string]any{
				"total_amount": r.TotalAmount,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
