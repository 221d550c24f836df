package dto

import (
	"context"
	"time"

	"github.com/omnistore/backoffice/internal/domain/vendor"
	ierr "github.com/omnistore/backoffice/internal/errors"
	"github.com/omnistore/backoffice/internal/types"
	"github.com/omnistore/backoffice/internal/validator"
	"github.com/shopspring/decimal"
)

// CreateVendorRequest represents the request to create a new vendor.
// Opening balances and a seed transaction history may be supplied when
// migrating existing books; both default to zero/empty.
type CreateVendorRequest struct {
	ID            string                  `json:"id,omitempty"`
	Name          string                  `json:"name" validate:"required"`
	Email         string                  `json:"email" validate:"required,email"`
	Phone         string                  `json:"phone,omitempty"`
	Address       string                  `json:"address,omitempty"`
	Logo          string                  `json:"logo,omitempty"`
	Description   string                  `json:"description,omitempty"`
	Status        types.VendorStatus      `json:"status" validate:"required"`
	TotalPaid     decimal.Decimal         `json:"total_paid"`
	AmountPayable decimal.Decimal         `json:"amount_payable"`
	Transactions  []AddTransactionRequest `json:"transactions,omitempty"`
}

func (r *CreateVendorRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if err := r.Status.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Vendor status must be Active, Inactive or Blocked").
			Mark(ierr.ErrValidation)
	}

	for _, txn := range r.Transactions {
		if err := txn.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ToVendor converts a create vendor request to a vendor
func (r *CreateVendorRequest) ToVendor(ctx context.Context) *vendor.Vendor {
	id := r.ID
	if id == "" {
		id = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_VENDOR)
	}

	transactions := make([]*vendor.PaymentTransaction, 0, len(r.Transactions))
	for _, txn := range r.Transactions {
		transactions = append(transactions, txn.ToTransaction(ctx))
	}

	return &vendor.Vendor{
		ID:            id,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		Logo:          r.Logo,
		Description:   r.Description,
		Status:        r.Status,
		TotalPaid:     r.TotalPaid,
		AmountPayable: r.AmountPayable,
		Transactions:  transactions,
	}
}

// UpdateVendorRequest is a full replace of the vendor record matching ID.
// Stored aggregates are replaced as supplied; the transaction history is
// kept as is.
type UpdateVendorRequest struct {
	ID            string             `json:"id" validate:"required"`
	Name          string             `json:"name" validate:"required"`
	Email         string             `json:"email" validate:"required,email"`
	Phone         string             `json:"phone,omitempty"`
	Address       string             `json:"address,omitempty"`
	Logo          string             `json:"logo,omitempty"`
	Description   string             `json:"description,omitempty"`
	Status        types.VendorStatus `json:"status" validate:"required"`
	TotalPaid     decimal.Decimal    `json:"total_paid"`
	AmountPayable decimal.Decimal    `json:"amount_payable"`
}

func (r *UpdateVendorRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if err := r.Status.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Vendor status must be Active, Inactive or Blocked").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// AddTransactionRequest represents a single ledger posting. Date defaults
// to the current time when omitted.
type AddTransactionRequest struct {
	Amount decimal.Decimal       `json:"amount" validate:"required"`
	Type   types.TransactionType `json:"type" validate:"required"`
	Date   *time.Time            `json:"date,omitempty"`
	Note   string                `json:"note,omitempty"`
}

func (r *AddTransactionRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	txn := vendor.PaymentTransaction{Amount: r.Amount, Type: r.Type}
	return txn.Validate()
}

// ToTransaction converts an add transaction request to a payment transaction
func (r *AddTransactionRequest) ToTransaction(ctx context.Context) *vendor.PaymentTransaction {
	date := time.Now().UTC()
	if r.Date != nil {
		date = *r.Date
	}

	return &vendor.PaymentTransaction{
		ID:     types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT_TRANSACTION),
		Amount: r.Amount,
		Date:   date,
		Type:   r.Type,
		Note:   r.Note,
	}
}

// VendorResponse represents a vendor in API responses
type VendorResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Email         string                 `json:"email"`
	Phone         string                 `json:"phone,omitempty"`
	Address       string                 `json:"address,omitempty"`
	Logo          string                 `json:"logo,omitempty"`
	Description   string                 `json:"description,omitempty"`
	Status        types.VendorStatus     `json:"status"`
	TotalPaid     decimal.Decimal        `json:"total_paid"`
	AmountPayable decimal.Decimal        `json:"amount_payable"`
	Transactions  []*TransactionResponse `json:"transactions"`
}

// TransactionResponse represents a ledger posting in API responses
type TransactionResponse struct {
	ID     string                `json:"id"`
	Amount decimal.Decimal       `json:"amount"`
	Date   time.Time             `json:"date"`
	Type   types.TransactionType `json:"type"`
	Note   string                `json:"note,omitempty"`
}

func FromVendor(v *vendor.Vendor) *VendorResponse {
	transactions := make([]*TransactionResponse, 0, len(v.Transactions))
	for _, txn := range v.Transactions {
		transactions = append(transactions, &TransactionResponse{
			ID:     txn.ID,
			Amount: txn.Amount,
			Date:   txn.Date,
			Type:   txn.Type,
			Note:   txn.Note,
		})
	}

	return &VendorResponse{
		ID:            v.ID,
		Name:          v.Name,
		Email:         v.Email,
		Phone:         v.Phone,
		Address:       v.Address,
		Logo:          v.Logo,
		Description:   v.Description,
		Status:        v.Status,
		TotalPaid:     v.TotalPaid,
		AmountPayable: v.AmountPayable,
		Transactions:  transactions,
	}
}
