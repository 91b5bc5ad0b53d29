package enrollment

import "context"

// Repository defines the interface for enrollment data operations.
type Repository interface {
	Create(ctx context.Context, e *Enrollment) error
	// GetEnrolled returns the "enrolled" row for the (class, student) pair,
	// or (nil, nil) when none exists.
	GetEnrolled(ctx context.Context, classID, studentID string) (*Enrollment, error)
	ListByClassID(ctx context.Context, classID string) ([]*Enrollment, error)
	ListByStudentID(ctx context.Context, studentID string) ([]*Enrollment, error)
	// CountEnrolledByClassIDs returns the number of "enrolled" rows per class.
	// Classes without enrollments are absent from the map.
	CountEnrolledByClassIDs(ctx context.Context, classIDs []string) (map[string]int64, error)
	Delete(ctx context.Context, id string) error
}
