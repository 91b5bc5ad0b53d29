package user

import "context"

// Repository defines the interface for user data operations.
// Implementations return (nil, nil) when a user does not exist.
type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByIDs retrieves multiple users by ID
	GetByIDs(ctx context.Context, ids []string) ([]*User, error)

	// GetByUsername retrieves a user by login name
	GetByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByUsername checks if a user with the login name exists
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
