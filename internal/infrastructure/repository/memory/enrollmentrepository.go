package memory

import (
	"context"
	"sort"

	"github.com/pharris560/ace-attendance/internal/domain/enrollment"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
)

type EnrollmentRepository struct {
	store *Store
}

func NewEnrollmentRepository(store *Store) enrollment.Repository {
	return &EnrollmentRepository{store: store}
}

func (r *EnrollmentRepository) Create(ctx context.Context, e *enrollment.Enrollment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// Uniqueness of the "enrolled" relation is enforced here, under the same
	// lock as the insert.
	if e.Status == enrollment.StatusEnrolled {
		for _, existing := range s.enrollments {
			if existing.ClassID == e.ClassID && existing.StudentID == e.StudentID &&
				existing.Status == enrollment.StatusEnrolled {
				return errors.NewConflictError("student is already enrolled in this class")
			}
		}
	}

	s.enrollments[e.ID] = *e
	return nil
}

func (r *EnrollmentRepository) GetEnrolled(ctx context.Context, classID, studentID string) (*enrollment.Enrollment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.enrollments {
		if e.ClassID == classID && e.StudentID == studentID && e.Status == enrollment.StatusEnrolled {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func (r *EnrollmentRepository) ListByClassID(ctx context.Context, classID string) ([]*enrollment.Enrollment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var enrollments []*enrollment.Enrollment
	for _, e := range s.enrollments {
		if e.ClassID == classID {
			e := e
			enrollments = append(enrollments, &e)
		}
	}
	sortEnrollments(enrollments)
	return enrollments, nil
}

func (r *EnrollmentRepository) ListByStudentID(ctx context.Context, studentID string) ([]*enrollment.Enrollment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var enrollments []*enrollment.Enrollment
	for _, e := range s.enrollments {
		if e.StudentID == studentID {
			e := e
			enrollments = append(enrollments, &e)
		}
	}
	sortEnrollments(enrollments)
	return enrollments, nil
}

func (r *EnrollmentRepository) CountEnrolledByClassIDs(ctx context.Context, classIDs []string) (map[string]int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]bool, len(classIDs))
	for _, id := range classIDs {
		wanted[id] = true
	}

	counts := make(map[string]int64)
	for _, e := range s.enrollments {
		if e.Status == enrollment.StatusEnrolled && wanted[e.ClassID] {
			counts[e.ClassID]++
		}
	}
	return counts, nil
}

func (r *EnrollmentRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.enrollments[id]; !ok {
		return errors.NewNotFoundError("enrollment not found")
	}
	delete(s.enrollments, id)
	return nil
}

func sortEnrollments(enrollments []*enrollment.Enrollment) {
	sort.Slice(enrollments, func(i, j int) bool {
		if enrollments[i].EnrolledAt.Equal(enrollments[j].EnrolledAt) {
			return enrollments[i].ID < enrollments[j].ID
		}
		return enrollments[i].EnrolledAt.Before(enrollments[j].EnrolledAt)
	})
}
