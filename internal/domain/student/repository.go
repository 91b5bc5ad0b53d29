package student

import "context"

// Repository defines the interface for student data operations.
// Lookups return (nil, nil) when the student does not exist.
type Repository interface {
	Create(ctx context.Context, student *Student) error
	GetByID(ctx context.Context, id string) (*Student, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Student, error)
	ExistsByStudentNumber(ctx context.Context, studentNumber string) (bool, error)
	List(ctx context.Context) ([]*Student, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*Student, error)
	Update(ctx context.Context, student *Student) error
	// Delete removes the student together with every enrollment and attendance
	// record referencing them, as one logical transaction.
	Delete(ctx context.Context, id string) error
}
