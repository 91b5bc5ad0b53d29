package apikey

import "context"

// Repository defines the interface for API key data operations.
// Lookups return (nil, nil) when no key matches.
type Repository interface {
	Create(ctx context.Context, key *APIKey) error
	GetByID(ctx context.Context, id string) (*APIKey, error)
	// GetByKeyHash is the verification path: lookup by hash of the presented raw key.
	GetByKeyHash(ctx context.Context, keyHash string) (*APIKey, error)
	ListByUserID(ctx context.Context, userID string) ([]*APIKey, error)
	Update(ctx context.Context, key *APIKey) error
	Delete(ctx context.Context, id string) error
}
