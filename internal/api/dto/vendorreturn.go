package dto

import (
	"context"
	"time"

	"github.com/omnistore/backoffice/internal/domain/vendorreturn"
	ierr "github.com/omnistore/backoffice/internal/errors"
	"github.com/omnistore/backoffice/internal/types"
	"github.com/omnistore/backoffice/internal/validator"
	"github.com/shopspring/decimal"
)

// VendorReturnItemRequest represents a single line of a vendor return.
// TotalPrice is computed by the caller as UnitPrice times Quantity and is
// not re-derived here.
type VendorReturnItemRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	ProductName string          `json:"product_name" validate:"required"`
	VariantID   string          `json:"variant_id,omitempty"`
	VariantName string          `json:"variant_name,omitempty"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Reason      string          `json:"reason" validate:"required"`
}

func (r *VendorReturnItemRequest) toItem() *vendorreturn.ReturnItem {
	return &vendorreturn.ReturnItem{
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		VariantID:   r.VariantID,
		VariantName: r.VariantName,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		TotalPrice:  r.TotalPrice,
		Reason:      r.Reason,
	}
}

// CreateVendorReturnRequest represents the request to record a new vendor
// return. The id, return number and return date are assigned by the
// workflow; the status always starts as pending.
type CreateVendorReturnRequest struct {
	VendorID    string                     `json:"vendor_id" validate:"required"`
	VendorName  string                     `json:"vendor_name" validate:"required"`
	Items       []*VendorReturnItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount decimal.Decimal            `json:"total_amount"`
	CreditType  types.CreditType           `json:"credit_type" validate:"required"`
	Notes       string                     `json:"notes,omitempty"`
	CreatedBy   string                     `json:"created_by,omitempty"`
}

func (r *CreateVendorReturnRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if err := r.CreditType.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Credit type must be refund, credit_note or replacement").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// ToVendorReturn converts the request to a domain return. The return number
// is left empty for the store to assign sequentially. CreatedBy falls back
// to the actor recorded in the context.
func (r *CreateVendorReturnRequest) ToVendorReturn(ctx context.Context) *vendorreturn.VendorReturn {
	items := make([]*vendorreturn.ReturnItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, item.toItem())
	}

	createdBy := r.CreatedBy
	if createdBy == "" {
		createdBy = types.GetActorID(ctx)
	}

	return &vendorreturn.VendorReturn{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_VENDOR_RETURN),
		VendorID:    r.VendorID,
		VendorName:  r.VendorName,
		Items:       items,
		TotalAmount: r.TotalAmount,
		Status:      types.VendorReturnStatusPending,
		ReturnDate:  time.Now().UTC(),
		CreditType:  r.CreditType,
		Notes:       r.Notes,
		CreatedBy:   createdBy,
	}
}

// UpdateVendorReturnRequest is a partial patch for administrative
// correction: only non-nil fields are applied.
type UpdateVendorReturnRequest struct {
	VendorName  *string                    `json:"vendor_name,omitempty"`
	Items       []*VendorReturnItemRequest `json:"items,omitempty"`
	TotalAmount *decimal.Decimal           `json:"total_amount,omitempty"`
	Status      *types.VendorReturnStatus  `json:"status,omitempty"`
	CreditType  *types.CreditType          `json:"credit_type,omitempty"`
	Notes       *string                    `json:"notes,omitempty"`
}

func (r *UpdateVendorReturnRequest) Validate() error {
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid return status").
				Mark(ierr.ErrValidation)
		}
	}

	if r.CreditType != nil {
		if err := r.CreditType.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Credit type must be refund, credit_note or replacement").
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

// Apply patches the non-nil fields onto the return. A status patched to
// completed through this path does not stamp CompletedDate; that is the
// UpdateStatus transition's job.
func (r *UpdateVendorReturnRequest) Apply(ret *vendorreturn.VendorReturn) {
	if r.VendorName != nil {
		ret.VendorName = *r.VendorName
	}
	if r.Items != nil {
		items := make([]*vendorreturn.ReturnItem, 0, len(r.Items))
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
	if r.CreditType != nil {
		ret.CreditType = *r.CreditType
	}
	if r.Notes != nil {
		ret.Notes = *r.Notes
	}
}

// VendorReturnResponse represents a vendor return in API responses
type VendorReturnResponse struct {
	*vendorreturn.VendorReturn
}

func FromVendorReturn(ret *vendorreturn.VendorReturn) *VendorReturnResponse {
	return &VendorReturnResponse{VendorReturn: ret}
}

func FromVendorReturnList(rets []*vendorreturn.VendorReturn) []*VendorReturnResponse {
	result := make([]*VendorReturnResponse, len(rets))
	for i, ret := range rets {
		result[i] = FromVendorReturn(ret)
	}
	return result
}

// VendorReturnStatsResponse aggregates counts per status plus the credit
// total over completed returns. The received_by_vendor count is tracked in
// state but intentionally absent from this summary, and only completed
// returns contribute to TotalCreditAmount.
type VendorReturnStatsResponse struct {
	Total             int             `json:"total"`
	Pending           int             `json:"pending"`
	Shipped           int             `json:"shipped"`
	Completed         int             `json:"completed"`
	TotalCreditAmount decimal.Decimal `json:"total_credit_amount"`
}
