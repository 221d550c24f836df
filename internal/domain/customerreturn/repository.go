package customerreturn

import (
	"context"
)

// Repository defines the interface for customer return persistence
type Repository interface {
	// Create inserts the return at the head of the collection. When
	// ReturnNumber is empty the store assigns the next sequential number;
	// the scan and the insert happen under one write lock so concurrent
	// creates cannot collide.
	Create(ctx context.Context, ret *CustomerReturn) error
	Get(ctx context.Context, id string) (*CustomerReturn, error)
	Update(ctx context.Context, ret *CustomerReturn) error
	Delete(ctx context.Context, id string) error
	// List returns all returns, newest first
	List(ctx context.Context) ([]*CustomerReturn, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*CustomerReturn, error)
}
