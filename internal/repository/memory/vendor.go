package memory

import (
	"context"
	"sync"

	"github.com/omnistore/backoffice/internal/domain/vendor"
	ierr "github.com/omnistore/backoffice/internal/errors"
	"github.com/samber/lo"
)

// VendorStore is the process-local state container for vendors and their
// transaction histories. All state is lost when the process exits.
type VendorStore struct {
	mu      sync.RWMutex
	vendors []*vendor.Vendor
}

func NewVendorStore() *VendorStore {
	return &VendorStore{}
}

func (s *VendorStore) Create(ctx context.Context, v *vendor.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(v.ID) != nil {
		return ierr.NewError("vendor already exists").
			WithHintf("A vendor with id %s already exists", v.ID).
			WithReportableDetails(map[string]any{
				"vendor_id": v.ID,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	if v.Transactions == nil {
		v.Transactions = []*vendor.PaymentTransaction{}
	}
	s.vendors = append(s.vendors, v)
	return nil
}

func (s *VendorStore) Get(ctx context.Context, id string) (*vendor.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.find(id)
	if v == nil {
		return nil, vendorNotFound(id)
	}
	return v, nil
}

func (s *VendorStore) Update(ctx context.Context, v *vendor.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.vendors {
		if existing.ID == v.ID {
			s.vendors[i] = v
			return nil
		}
	}
	return vendorNotFound(v.ID)
}

func (s *VendorStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(id) == nil {
		return vendorNotFound(id)
	}

	// transactions are owned by the vendor record and go with it
	s.vendors = lo.Reject(s.vendors, func(v *vendor.Vendor, _ int) bool {
		return v.ID == id
	})
	return nil
}

func (s *VendorStore) List(ctx context.Context) ([]*vendor.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*vendor.Vendor, len(s.vendors))
	copy(result, s.vendors)
	return result, nil
}

// AddTransaction posts the transaction and reposts the stored aggregates
// under the store's write lock
func (s *VendorStore) AddTransaction(ctx context.Context, vendorID string, txn *vendor.PaymentTransaction) (*vendor.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.find(vendorID)
	if v == nil {
		return nil, vendorNotFound(vendorID)
	}

	v.ApplyTransaction(txn)
	return v, nil
}

// find assumes the caller holds the lock
func (s *VendorStore) find(id string) *vendor.Vendor {
	for _, v := range s.vendors {
		if v.ID == id {
			return v
		}
	}
	return nil
}

func vendorNotFound(id string) error {
	return ierr.NewError("vendor not found").
		WithHintf("No vendor found with id %s", id).
		WithReportableDetails(map[string]any{
			"vendor_id": id,
		}).
		Mark(ierr.ErrNotFound)
}
