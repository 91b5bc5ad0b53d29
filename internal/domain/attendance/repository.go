package attendance

import "context"

// Repository defines the interface for attendance record operations.
// Lookups return (nil, nil) when the record does not exist.
//
// Date-range bounds are inclusive and compared lexically; this is correct
// because dates are zero-padded YYYY-MM-DD strings. Empty bounds are open.
type Repository interface {
	Create(ctx context.Context, record *Record) error
	GetByID(ctx context.Context, id string) (*Record, error)
	ListByClassID(ctx context.Context, classID, dateFrom, dateTo string) ([]*Record, error)
	ListByStudentID(ctx context.Context, studentID string) ([]*Record, error)
	Update(ctx context.Context, record *Record) error
	Delete(ctx context.Context, id string) error
}
