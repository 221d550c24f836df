package dto

import (
	"context"
	"time"

	"github.com/omnistore/backoffice/internal/domain/customerreturn"
	ierr "github.com/omnistore/backoffice/internal/errors"
	"github.com/omnistore/backoffice/internal/types"
	"github.com/omnistore/backoffice/internal/validator"
	"github.com/shopspring/decimal"
)

// CustomerReturnItemRequest represents a single line of a customer return
type CustomerReturnItemRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	ProductName string          `json:"product_name" validate:"required"`
	VariantID   string          `json:"variant_id,omitempty"`
	VariantName string          `json:"variant_name,omitempty"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	Price       decimal.Decimal `json:"price"`
	Reason      string          `json:"reason" validate:"required"`
}

func (r *CustomerReturnItemRequest) toItem() *customerreturn.ReturnItem {
	return &customerreturn.ReturnItem{
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		VariantID:   r.VariantID,
		VariantName: r.VariantName,
		Quantity:    r.Quantity,
		Price:       r.Price,
		Reason:      r.Reason,
	}
}

// CreateCustomerReturnRequest represents the request to record a new
// customer return. The id, return number and request date are assigned by
// the workflow; the status always starts as pending.
type CreateCustomerReturnRequest struct {
	CustomerID   string                       `json:"customer_id" validate:"required"`
	CustomerName string                       `json:"customer_name" validate:"required"`
	OrderID      string                       `json:"order_id,omitempty"`
	OrderNumber  string                       `json:"order_number,omitempty"`
	Items        []*CustomerReturnItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount  decimal.Decimal              `json:"total_amount"`
	RefundMethod types.RefundMethod           `json:"refund_method" validate:"required"`
	Notes        string                       `json:"notes,omitempty"`
}

func (r *CreateCustomerReturnRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if err := r.RefundMethod.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Refund method must be cash, store_credit or original_payment").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// ToCustomerReturn converts the request to a domain return. The return
// number is left empty for the store to assign sequentially.
func (r *CreateCustomerReturnRequest) ToCustomerReturn(ctx context.Context) *customerreturn.CustomerReturn {
	items := make([]*customerreturn.ReturnItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, item.toItem())
	}

	return &customerreturn.CustomerReturn{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER_RETURN),
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		OrderID:      r.OrderID,
		OrderNumber:  r.OrderNumber,
		Items:        items,
		TotalAmount:  r.TotalAmount,
		Status:       types.CustomerReturnStatusPending,
		RequestDate:  time.Now().UTC(),
		RefundMethod: r.RefundMethod,
		Notes:        r.Notes,
	}
}

// UpdateCustomerReturnRequest is a partial patch for administrative
// correction: only non-nil fields are applied, including status overrides
// outside the dedicated approve/reject transitions.
type UpdateCustomerReturnRequest struct {
	CustomerName *string                      `json:"customer_name,omitempty"`
	OrderID      *string                      `json:"order_id,omitempty"`
	OrderNumber  *string                      `json:"order_number,omitempty"`
	Items        []*CustomerReturnItemRequest `json:"items,omitempty"`
	TotalAmount  *decimal.Decimal             `json:"total_amount,omitempty"`
	Status       *types.CustomerReturnStatus  `json:"status,omitempty"`
	RefundMethod *types.RefundMethod          `json:"refund_method,omitempty"`
	Notes        *string                      `json:"notes,omitempty"`
	ProcessedBy  *string                      `json:"processed_by,omitempty"`
}

func (r *UpdateCustomerReturnRequest) Validate() error {
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid return status").
				Mark(ierr.ErrValidation)
		}
	}

	if r.RefundMethod != nil {
		if err := r.RefundMethod.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Refund method must be cash, store_credit or original_payment").
				Mark(ierr.ErrValidation)
		}
	}

	if r.Items != nil && len(r.Items) == 0 {
		return ierr.NewError("items cannot be emptied").
			WithHint("A return must keep at least one item").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// Apply patches the non-nil fields onto the return
func (r *UpdateCustomerReturnRequest) Apply(ret *customerreturn.CustomerReturn) {
	if r.CustomerName != nil {
		ret.CustomerName = *r.CustomerName
	}
	if r.OrderID != nil {
		ret.OrderID = *r.OrderID
	}
	if r.OrderNumber != nil {
		ret.OrderNumber = *r.OrderNumber
	}
	if r.Items != nil {
		items := make([]*customerreturn.ReturnItem, 0, len(r.Items))
		for _, item := range r.Items {
			items = append(items, item.toItem())
		}
		ret.Items = items
	}
	if r.TotalAmount != nil {
		ret.TotalAmount = *r.TotalAmount
	}
	if r.Status != nil {
		ret.Status = *r.Status
	}
	if r.RefundMethod != nil {
		ret.RefundMethod = *r.RefundMethod
	}
	if r.Notes != nil {
		ret.Notes = *r.Notes
	}
	if r.ProcessedBy != nil {
		ret.ProcessedBy = *r.ProcessedBy
	}
}

// CustomerReturnResponse represents a customer return in API responses
type CustomerReturnResponse struct {
	*customerreturn.CustomerReturn
}

func FromCustomerReturn(ret *customerreturn.CustomerReturn) *CustomerReturnResponse {
	return &CustomerReturnResponse{CustomerReturn: ret}
}

func FromCustomerReturnList(rets []*customerreturn.CustomerReturn) []*CustomerReturnResponse {
	result := make([]*CustomerReturnResponse, len(rets))
	for i, ret := range rets {
		result[i] = FromCustomerReturn(ret)
	}
	return result
}

// CustomerReturnStatsResponse aggregates counts per status plus the refund
// liability total. Pending and rejected returns carry no refund liability
// so only approved and completed amounts are summed.
type CustomerReturnStatsResponse struct {
	Total             int             `json:"total"`
	Pending           int             `json:"pending"`
	Approved          int             `json:"approved"`
	Rejected          int             `json:"rejected"`
	Completed         int             `json:"completed"`
	TotalRefundAmount decimal.Decimal `json:"total_refund_amount"`
}
