package service

import (
	"context"
	"time"

	"github.com/omnistore/backoffice/internal/api/dto"
	"github.com/omnistore/backoffice/internal/cache"
	"github.com/omnistore/backoffice/internal/domain/vendorreturn"
	ierr "github.com/omnistore/backoffice/internal/errors"
	"github.com/omnistore/backoffice/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// VendorReturnService owns vendor return requests and their
// pending -> shipped -> received_by_vendor -> completed lifecycle
type VendorReturnService interface {
	// CreateReturn records a new return in pending state, assigning the id,
	// sequential return number and return date. Inventory deduction and
	// vendor credit posting are the embedding system's integration points.
	CreateReturn(ctx context.Context, req *dto.CreateVendorReturnRequest) (*dto.VendorReturnResponse, error)

	// GetReturn retrieves a return by its ID
	GetReturn(ctx context.Context, id string) (*dto.VendorReturnResponse, error)

	// ListReturns retrieves all returns, newest first
	ListReturns(ctx context.Context) ([]*dto.VendorReturnResponse, error)

	// GetReturnsByVendor retrieves all returns raised against a vendor
	GetReturnsByVendor(ctx context.Context, vendorID string) ([]*dto.VendorReturnResponse, error)

	// UpdateReturn applies a partial administrative patch
	UpdateReturn(ctx context.Context, id string, req *dto.UpdateVendorReturnRequest) (*dto.VendorReturnResponse, error)

	// DeleteReturn removes a return request
	DeleteReturn(ctx context.Context, id string) error

	// UpdateStatus moves the return to any valid target status. Ordering is
	// deliberately not enforced: backward and skipping transitions are
	// accepted, matching the documented permissive contract. Entering
	// completed stamps CompletedDate; leaving completed keeps the stamp.
	UpdateStatus(ctx context.Context, id string, status types.VendorReturnStatus) (*dto.VendorReturnResponse, error)

	// GetReturnStats aggregates counts per status and the credit total over
	// completed returns
	GetReturnStats(ctx context.Context) (*dto.VendorReturnStatsResponse, error)
}

type vendorReturnService struct {
	ServiceParams
}

func NewVendorReturnService(params ServiceParams) VendorReturnService {
	return &vendorReturnService{
		ServiceParams: params,
	}
}

func (s *vendorReturnService) CreateReturn(ctx context.Context, req *dto.CreateVendorReturnRequest) (*dto.VendorReturnResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ret := req.ToVendorReturn(ctx)
	if err := ret.Validate(); err != nil {
		return nil, err
	}

	if err := s.VendorReturnRepo.Create(ctx, ret); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	s.Logger.Infow("created vendor return",
		"request_id", types.GetRequestID(ctx),
		"return_id", ret.ID,
		"return_number", ret.ReturnNumber,
		"vendor_id", ret.VendorID,
		"credit_type", ret.CreditType,
		"total_amount", ret.TotalAmount)

	return dto.FromVendorReturn(ret), nil
}

func (s *vendorReturnService) GetReturn(ctx context.Context, id string) (*dto.VendorReturnResponse, error) {
	ret, err := s.VendorReturnRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromVendorReturn(ret), nil
}

func (s *vendorReturnService) ListReturns(ctx context.Context) ([]*dto.VendorReturnResponse, error) {
	rets, err := s.VendorReturnRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromVendorReturnList(rets), nil
}

func (s *vendorReturnService) GetReturnsByVendor(ctx context.Context, vendorID string) ([]*dto.VendorReturnResponse, error) {
	rets, err := s.VendorReturnRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return dto.FromVendorReturnList(rets), nil
}

func (s *vendorReturnService) UpdateReturn(ctx context.Context, id string, req *dto.UpdateVendorReturnRequest) (*dto.VendorReturnResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ret, err := s.VendorReturnRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(ret)
	if err := ret.Validate(); err != nil {
		return nil, err
	}

	if err := s.VendorReturnRepo.Update(ctx, ret); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	s.Logger.Infow("updated vendor return", "return_id", id)

	return dto.FromVendorReturn(ret), nil
}

func (s *vendorReturnService) DeleteReturn(ctx context.Context, id string) error {
	if err := s.VendorReturnRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateStats(ctx)
	s.Logger.Infow("deleted vendor return", "return_id", id)
	return nil
}

func (s *vendorReturnService) UpdateStatus(ctx context.Context, id string, status types.VendorReturnStatus) (*dto.VendorReturnResponse, error) {
	if err := status.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid return status").
			Mark(ierr.ErrValidation)
	}

	ret, err := s.VendorReturnRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ret.Status = status
	if status == types.VendorReturnStatusCompleted {
		now := time.Now().UTC()
		ret.CompletedDate = &now
	}

	if err := s.VendorReturnRepo.Update(ctx, ret); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	s.Logger.Infow("updated vendor return status",
		"return_id", id,
		"return_number", ret.ReturnNumber,
		"status", status)

	return dto.FromVendorReturn(ret), nil
}

func (s *vendorReturnService) GetReturnStats(ctx context.Context) (*dto.VendorReturnStatsResponse, error) {
	key := cache.GenerateKey(cache.PrefixVendorReturnStats, "all")
	if cached, found := s.Cache.Get(ctx, key); found {
		if stats, ok := cached.(*dto.VendorReturnStatsResponse); ok {
			return stats, nil
		}
	}

	rets, err := s.VendorReturnRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	statusCounts := lo.CountValuesBy(rets, func(ret *vendorreturn.VendorReturn) types.VendorReturnStatus {
		return ret.Status
	})

	totalCredit := decimal.Zero
	for _, ret := range rets {
		if ret.Status == types.VendorReturnStatusCompleted {
			totalCredit = totalCredit.Add(ret.TotalAmount)
		}
	}

	stats := &dto.VendorReturnStatsResponse{
		Total:             len(rets),
		Pending:           statusCounts[types.VendorReturnStatusPending],
		Shipped:           statusCounts[types.VendorReturnStatusShipped],
		Completed:         statusCounts[types.VendorReturnStatusCompleted],
		TotalCreditAmount: totalCredit,
	}

	s.Cache.Set(ctx, key, stats, cache.DefaultExpiration)
	return stats, nil
}

func (s *vendorReturnService) invalidateStats(ctx context.Context) {
	s.Cache.DeleteByPrefix(ctx, cache.PrefixVendorReturnStats)
}
