package service

import (
	"context"
	"time"

	"github.com/omnistore/backoffice/internal/api/dto"
	"github.com/omnistore/backoffice/internal/cache"
	"github.com/omnistore/backoffice/internal/domain/customerreturn"
	"github.com/omnistore/backoffice/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CustomerReturnService owns customer return requests and their
// pending -> approved/rejected lifecycle
type CustomerReturnService interface {
	// CreateReturn records a new return request in pending state, assigning
	// the id, sequential return number and request date
	CreateReturn(ctx context.Context, req *dto.CreateCustomerReturnRequest) (*dto.CustomerReturnResponse, error)

	// GetReturn retrieves a return by its ID
	GetReturn(ctx context.Context, id string) (*dto.CustomerReturnResponse, error)

	// ListReturns retrieves all returns, newest first
	ListReturns(ctx context.Context) ([]*dto.CustomerReturnResponse, error)

	// GetReturnsByCustomer retrieves all returns raised by a customer
	GetReturnsByCustomer(ctx context.Context, customerID string) ([]*dto.CustomerReturnResponse, error)

	// UpdateReturn applies a partial administrative patch, including status
	// overrides outside the dedicated approve/reject transitions
	UpdateReturn(ctx context.Context, id string, req *dto.UpdateCustomerReturnRequest) (*dto.CustomerReturnResponse, error)

	// DeleteReturn removes a return request
	DeleteReturn(ctx context.Context, id string) error

	// ApproveReturn marks the return approved and stamps the processing
	// audit fields. Restocking and refund execution are the embedding
	// system's integration points.
	ApproveReturn(ctx context.Context, id string, processedBy string) (*dto.CustomerReturnResponse, error)

	// RejectReturn marks the return rejected and stamps the processing
	// audit fields; existing notes are kept unless new ones are supplied
	RejectReturn(ctx context.Context, id string, processedBy string, notes string) (*dto.CustomerReturnResponse, error)

	// GetReturnStats aggregates counts per status and the refund liability
	// total over approved and completed returns
	GetReturnStats(ctx context.Context) (*dto.CustomerReturnStatsResponse, error)
}

type customerReturnService struct {
	ServiceParams
}

func NewCustomerReturnService(params ServiceParams) CustomerReturnService {
	return &customerReturnService{
		ServiceParams: params,
	}
}

func (s *customerReturnService) CreateReturn(ctx context.Context, req *dto.CreateCustomerReturnRequest) (*dto.CustomerReturnResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ret := req.ToCustomerReturn(ctx)
	if err := ret.Validate(); err != nil {
		return nil, err
	}

	if err := s.CustomerReturnRepo.Create(ctx, ret); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	s.Logger.Infow("created customer return",
		"request_id", types.GetRequestID(ctx),
		"return_id", ret.ID,
		"return_number", ret.ReturnNumber,
		"customer_id", ret.CustomerID,
		"total_amount", ret.TotalAmount)

	return dto.FromCustomerReturn(ret), nil
}

func (s *customerReturnService) GetReturn(ctx context.Context, id string) (*dto.CustomerReturnResponse, error) {
	ret, err := s.CustomerReturnRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromCustomerReturn(ret), nil
}

func (s *customerReturnService) ListReturns(ctx context.Context) ([]*dto.CustomerReturnResponse, error) {
	rets, err := s.CustomerReturnRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromCustomerReturnList(rets), nil
}

func (s *customerReturnService) GetReturnsByCustomer(ctx context.Context, customerID string) ([]*dto.CustomerReturnResponse, error) {
	rets, err := s.CustomerReturnRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return dto.FromCustomerReturnList(rets), nil
}

func (s *customerReturnService) UpdateReturn(ctx context.Context, id string, req *dto.UpdateCustomerReturnRequest) (*dto.CustomerReturnResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ret, err := s.CustomerReturnRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(ret)
	if err := ret.Validate(); err != nil {
		return nil, err
	}

	if err := s.CustomerReturnRepo.Update(ctx, ret); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	s.Logger.Infow("updated customer return", "return_id", id)

	return dto.FromCustomerReturn(ret), nil
}

func (s *customerReturnService) DeleteReturn(ctx context.Context, id string) error {
	if err := s.CustomerReturnRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateStats(ctx)
	s.Logger.Infow("deleted customer return", "return_id", id)
	return nil
}

func (s *customerReturnService) ApproveReturn(ctx context.Context, id string, processedBy string) (*dto.CustomerReturnResponse, error) {
	ret, err := s.CustomerReturnRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ret.Status = types.CustomerReturnStatusApproved
	ret.ProcessedDate = &now
	ret.ProcessedBy = processedBy

	if err := s.CustomerReturnRepo.Update(ctx, ret); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	s.Logger.Infow("approved customer return",
		"return_id", id,
		"return_number", ret.ReturnNumber,
		"processed_by", processedBy)

	return dto.FromCustomerReturn(ret), nil
}

func (s *customerReturnService) RejectReturn(ctx context.Context, id string, processedBy string, notes string) (*dto.CustomerReturnResponse, error) {
	ret, err := s.CustomerReturnRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ret.Status = types.CustomerReturnStatusRejected
	ret.ProcessedDate = &now
	ret.ProcessedBy = processedBy
	if notes != "" {
		ret.Notes = notes
	}

	if err := s.CustomerReturnRepo.Update(ctx, ret); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	s.Logger.Infow("rejected customer return",
		"return_id", id,
		"return_number", ret.ReturnNumber,
		"processed_by", processedBy)

	return dto.FromCustomerReturn(ret), nil
}

func (s *customerReturnService) GetReturnStats(ctx context.Context) (*dto.CustomerReturnStatsResponse, error) {
	key := cache.GenerateKey(cache.PrefixCustomerReturnStats, "all")
	if cached, found := s.Cache.Get(ctx, key); found {
		if stats, ok := cached.(*dto.CustomerReturnStatsResponse); ok {
			return stats, nil
		}
	}

	rets, err := s.CustomerReturnRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	statusCounts := lo.CountValuesBy(rets, func(ret *customerreturn.CustomerReturn) types.CustomerReturnStatus {
		return ret.Status
	})

	totalRefund := decimal.Zero
	for _, ret := range rets {
		if ret.Status == types.CustomerReturnStatusApproved || ret.Status == types.CustomerReturnStatusCompleted {
			totalRefund = totalRefund.Add(ret.TotalAmount)
		}
	}

	stats := &dto.CustomerReturnStatsResponse{
		Total:             len(rets),
		Pending:           statusCounts[types.CustomerReturnStatusPending],
		Approved:          statusCounts[types.CustomerReturnStatusApproved],
		Rejected:          statusCounts[types.CustomerReturnStatusRejected],
		Completed:         statusCounts[types.CustomerReturnStatusCompleted],
		TotalRefundAmount: totalRefund,
	}

	s.Cache.Set(ctx, key, stats, cache.DefaultExpiration)
	return stats, nil
}

func (s *customerReturnService) invalidateStats(ctx context.Context) {
	s.Cache.DeleteByPrefix(ctx, cache.PrefixCustomerReturnStats)
}
