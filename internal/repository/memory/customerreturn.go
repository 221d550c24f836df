package memory

import (
	"context"
	"sync"

	"github.com/omnistore/backoffice/internal/domain/customerreturn"
	ierr "github.com/omnistore/backoffice/internal/errors"
	"github.com/omnistore/backoffice/internal/types"
	"github.com/samber/lo"
)

// CustomerReturnStore is the process-local state container for customer
// returns, ordered newest first.
type CustomerReturnStore struct {
	mu      sync.RWMutex
	returns []*customerreturn.CustomerReturn
}

func NewCustomerReturnStore() *CustomerReturnStore {
	return &CustomerReturnStore{}
}

// Create prepends the return. An empty ReturnNumber is assigned here, under
// the same write lock as the insert, so two concurrent creates can never
// scan the same maximum and collide.
func (s *CustomerReturnStore) Create(ctx context.Context, ret *customerreturn.CustomerReturn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ret.ReturnNumber == "" {
		ret.ReturnNumber = s.nextReturnNumber()
	}

	s.returns = append([]*customerreturn.CustomerReturn{ret}, s.returns...)
	return nil
}

func (s *CustomerReturnStore) Get(ctx context.Context, id string) (*customerreturn.CustomerReturn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ret := range s.returns {
		if ret.ID == id {
			return ret, nil
		}
	}
	return nil, customerReturnNotFound(id)
}

func (s *CustomerReturnStore) Update(ctx context.Context, ret *customerreturn.CustomerReturn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.returns {
		if existing.ID == ret.ID {
			s.returns[i] = ret
			return nil
		}
	}
	return customerReturnNotFound(ret.ID)
}

func (s *CustomerReturnStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.returns {
		if existing.ID == id {
			s.returns = append(s.returns[:i], s.returns[i+1:]...)
			return nil
		}
	}
	return customerReturnNotFound(id)
}

func (s *CustomerReturnStore) List(ctx context.Context) ([]*customerreturn.CustomerReturn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*customerreturn.CustomerReturn, len(s.returns))
	copy(result, s.returns)
	return result, nil
}

func (s *CustomerReturnStore) ListByCustomer(ctx context.Context, customerID string) ([]*customerreturn.CustomerReturn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Filter(s.returns, func(ret *customerreturn.CustomerReturn, _ int) bool {
		return ret.CustomerID == customerID
	}), nil
}

// nextReturnNumber scans the highest numeric suffix and returns one past it.
// Caller must hold the write lock.
func (s *CustomerReturnStore) nextReturnNumber() string {
	maxNum := 0
	for _, ret := range s.returns {
		if num := types.ParseReturnNumberSuffix(ret.ReturnNumber); num > maxNum {
			maxNum = num
		}
	}
	return types.FormatReturnNumber(types.RETURN_NUMBER_PREFIX_CUSTOMER, maxNum+1)
}

func customerReturnNotFound(id string) error {
	return ierr.NewError("customer return not found").
		WithHintf("No customer return found with id %s", id).
		WithReportableDetails(map[string]any{
			"return_id": id,
		}).
		Mark(ierr.ErrNotFound)
}
