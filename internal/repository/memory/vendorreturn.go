package memory

import (
	"context"
	"sync"

	"github.com/omnistore/backoffice/internal/domain/vendorreturn"
	ierr "github.com/omnistore/backoffice/internal/errors"
	"github.com/omnistore/backoffice/internal/types"
	"github.com/samber/lo"
)

// VendorReturnStore is the process-local state container for vendor
// returns, ordered newest first.
type VendorReturnStore struct {
	mu      sync.RWMutex
	returns []*vendorreturn.VendorReturn
}

func NewVendorReturnStore() *VendorReturnStore {
	return &VendorReturnStore{}
}

// Create prepends the return, assigning the next sequential number under
// the write lock when ReturnNumber is empty.
func (s *VendorReturnStore) Create(ctx context.Context, ret *vendorreturn.VendorReturn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ret.ReturnNumber == "" {
		ret.ReturnNumber = s.nextReturnNumber()
	}

	s.returns = append([]*vendorreturn.VendorReturn{ret}, s.returns...)
	return nil
}

func (s *VendorReturnStore) Get(ctx context.Context, id string) (*vendorreturn.VendorReturn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ret := range s.returns {
		if ret.ID == id {
			return ret, nil
		}
	}
	return nil, vendorReturnNotFound(id)
}

func (s *VendorReturnStore) Update(ctx context.Context, ret *vendorreturn.VendorReturn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.returns {
		if existing.ID == ret.ID {
			s.returns[i] = ret
			return nil
		}
	}
	return vendorReturnNotFound(ret.ID)
}

func (s *VendorReturnStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.returns {
		if existing.ID == id {
			s.returns = append(s.returns[:i], s.returns[i+1:]...)
			return nil
		}
	}
	return vendorReturnNotFound(id)
}

func (s *VendorReturnStore) List(ctx context.Context) ([]*vendorreturn.VendorReturn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*vendorreturn.VendorReturn, len(s.returns))
	copy(result, s.returns)
	return result, nil
}

func (s *VendorReturnStore) ListByVendor(ctx context.Context, vendorID string) ([]*vendorreturn.VendorReturn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Filter(s.returns, func(ret *vendorreturn.VendorReturn, _ int) bool {
		return ret.VendorID == vendorID
	}), nil
}

// nextReturnNumber scans the highest numeric suffix and returns one past it.
// Caller must hold the write lock.
func (s *VendorReturnStore) nextReturnNumber() string {
	maxNum := 0
	for _, ret := range s.returns {
		if num := types.ParseReturnNumberSuffix(ret.ReturnNumber); num > maxNum {
			maxNum = num
		}
	}
	return types.FormatReturnNumber(types.RETURN_NUMBER_PREFIX_VENDOR, maxNum+1)
}

func vendorReturnNotFound(id string) error {
	return ierr.NewError("vendor return not found").
		WithHintf("No vendor return found with id %s", id).
		WithReportableDetails(map[string]any{
			"return_id": id,
		}).
		Mark(ierr.ErrNotFound)
}
