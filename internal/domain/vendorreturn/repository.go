package vendorreturn

import (
	"context"
)

// Repository defines the interface for vendor return persistence
type Repository interface {
	// Create inserts the return at the head of the collection. When
	// ReturnNumber is empty the store assigns the next sequential number;
	// the scan and the insert happen under one write lock so concurrent
	// creates cannot collide.
	Create(ctx context.Context, ret *VendorReturn) error
	Get(ctx context.Context, id string) (*VendorReturn, error)
	Update(ctx context.Context, ret *VendorReturn) error
	Delete(ctx context.Context, id string) error
	// List returns all returns, newest first
	List(ctx context.Context) ([]*VendorReturn, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*VendorReturn, error)
}
