package class

import "context"

// Repository defines the interface for class data operations.
// Lookups return (nil, nil) when the class does not exist.
type Repository interface {
	Create(ctx context.Context, class *Class) error
	GetByID(ctx context.Context, id string) (*Class, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Class, error)
	// List returns every class; the listing is a public read.
	List(ctx context.Context) ([]*Class, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*Class, error)
	Update(ctx context.Context, class *Class) error
	// Delete removes the class together with every enrollment and attendance
	// record referencing it, as one logical transaction. No orphan may remain
	// under any interleaving.
	Delete(ctx context.Context, id string) error
}
