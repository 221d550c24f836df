package customerreturn

import (
	"time"

	ierr "github.com/omnistore/backoffice/internal/errors"
	"github.com/omnistore/backoffice/internal/types"
	"github.com/shopspring/decimal"
)

// CustomerReturn represents a customer's request to return purchased items.
// RequestDate is stamped once at creation, ProcessedDate/ProcessedBy at the
// approve or reject transition. TotalAmount is supplied by the caller and
// not recomputed from items.
type CustomerReturn struct {
	ID            string                     `json:"id"`
	ReturnNumber  string                     `json:"return_number"`
	CustomerID    string                     `json:"customer_id"`
	CustomerName  string                     `json:"customer_name"`
	OrderID       string                     `json:"order_id,omitempty"`
	OrderNumber   string                     `json:"order_number,omitempty"`
	Items         []*ReturnItem              `json:"items"`
	TotalAmount   decimal.Decimal            `json:"total_amount"`
	Status        types.CustomerReturnStatus `json:"status"`
	RequestDate   time.Time                  `json:"request_date"`
	ProcessedDate *time.Time                 `json:"processed_date,omitempty"`
	ProcessedBy   string                     `json:"processed_by,omitempty"`
	RefundMethod  types.RefundMethod         `json:"refund_method"`
	Notes         string                     `json:"notes,omitempty"`
}

// ReturnItem is a single returned line
type ReturnItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	VariantID   string          `json:"variant_id,omitempty"`
	VariantName string          `json:"variant_name,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
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

	if i.Price.IsNegative() {
		return ierr.NewError("return item price cannot be negative").
			WithHint("Price must be zero or positive").
			WithReportableDetails(map[string]any{
				"product_id": i.ProductID,
				"price":      i.Price,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

func (r *CustomerReturn) Validate() error {
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

	if err := r.RefundMethod.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Refund method must be cash, store_credit or original_payment").
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
