package service

import (
	"context"

	"github.com/omnistore/backoffice/internal/api/dto"
	"github.com/omnistore/backoffice/internal/cache"
	"github.com/omnistore/backoffice/internal/domain/vendor"
	"github.com/omnistore/backoffice/internal/types"
)

// VendorService owns vendor records and their payment ledgers
type VendorService interface {
	// CreateVendor inserts a new vendor, optionally seeded with opening
	// balances and a transaction history
	CreateVendor(ctx context.Context, req *dto.CreateVendorRequest) (*dto.VendorResponse, error)

	// GetVendor retrieves a vendor by its ID
	GetVendor(ctx context.Context, id string) (*dto.VendorResponse, error)

	// ListVendors retrieves all vendors
	ListVendors(ctx context.Context) ([]*dto.VendorResponse, error)

	// UpdateVendor is a full replace of the vendor record matching the id
	UpdateVendor(ctx context.Context, req *dto.UpdateVendorRequest) (*dto.VendorResponse, error)

	// DeleteVendor removes the vendor and its transaction history
	DeleteVendor(ctx context.Context, id string) error

	// AddTransaction posts a PAYMENT or BILL against the vendor's ledger
	// and returns the vendor with its updated running totals
	AddTransaction(ctx context.Context, vendorID string, req *dto.AddTransactionRequest) (*dto.VendorResponse, error)
}

type vendorService struct {
	ServiceParams
}

func NewVendorService(params ServiceParams) VendorService {
	return &vendorService{
		ServiceParams: params,
	}
}

func (s *vendorService) CreateVendor(ctx context.Context, req *dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	v := req.ToVendor(ctx)
	if err := v.Validate(); err != nil {
		return nil, err
	}

	if err := s.VendorRepo.Create(ctx, v); err != nil {
		return nil, err
	}

	s.Logger.Infow("created vendor",
		"request_id", types.GetRequestID(ctx),
		"vendor_id", v.ID,
		"name", v.Name,
		"status", v.Status)

	return dto.FromVendor(v), nil
}

func (s *vendorService) GetVendor(ctx context.Context, id string) (*dto.VendorResponse, error) {
	key := cache.GenerateKey(cache.PrefixVendor, id)
	if cached, found := s.Cache.Get(ctx, key); found {
		if resp, ok := cached.(*dto.VendorResponse); ok {
			return resp, nil
		}
	}

	v, err := s.VendorRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromVendor(v)
	s.Cache.Set(ctx, key, resp, cache.DefaultExpiration)
	return resp, nil
}

func (s *vendorService) ListVendors(ctx context.Context) ([]*dto.VendorResponse, error) {
	vendors, err := s.VendorRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.VendorResponse, len(vendors))
	for i, v := range vendors {
		result[i] = dto.FromVendor(v)
	}
	return result, nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, req *dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.VendorRepo.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	v := &vendor.Vendor{
		ID:            req.ID,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Logo:          req.Logo,
		Description:   req.Description,
		Status:        req.Status,
		TotalPaid:     req.TotalPaid,
		AmountPayable: req.AmountPayable,
		Transactions:  existing.Transactions,
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	if err := s.VendorRepo.Update(ctx, v); err != nil {
		return nil, err
	}

	s.Cache.DeleteByPrefix(ctx, cache.PrefixVendor)
	s.Logger.Infow("updated vendor", "vendor_id", v.ID)

	return dto.FromVendor(v), nil
}

func (s *vendorService) DeleteVendor(ctx context.Context, id string) error {
	if err := s.VendorRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Cache.DeleteByPrefix(ctx, cache.PrefixVendor)
	s.Logger.Infow("deleted vendor", "vendor_id", id)
	return nil
}

func (s *vendorService) AddTransaction(ctx context.Context, vendorID string, req *dto.AddTransactionRequest) (*dto.VendorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	txn := req.ToTransaction(ctx)
	v, err := s.VendorRepo.AddTransaction(ctx, vendorID, txn)
	if err != nil {
		return nil, err
	}

	s.Cache.DeleteByPrefix(ctx, cache.PrefixVendor)
	s.Logger.Infow("posted vendor transaction",
		"request_id", types.GetRequestID(ctx),
		"vendor_id", vendorID,
		"transaction_id", txn.ID,
		"type", txn.Type,
		"amount", txn.Amount,
		"total_paid", v.TotalPaid,
		"amount_payable", v.AmountPayable)

	return dto.FromVendor(v), nil
}
