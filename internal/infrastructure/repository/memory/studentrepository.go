package memory

import (
	"context"
	"sort"

	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
)

type StudentRepository struct {
	store *Store
}

func NewStudentRepository(store *Store) student.Repository {
	return &StudentRepository{store: store}
}

func (r *StudentRepository) Create(ctx context.Context, st *student.Student) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.studentIDByNumber[st.StudentNumber]; taken {
		return errors.NewConflictError("student number already exists")
	}

	s.students[st.ID] = *st
	s.studentIDByNumber[st.StudentNumber] = st.ID
	return nil
}

func (r *StudentRepository) GetByID(ctx context.Context, id string) (*student.Student, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.students[id]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (r *StudentRepository) GetByIDs(ctx context.Context, ids []string) ([]*student.Student, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	students := make([]*student.Student, 0, len(ids))
	for _, id := range ids {
		if st, ok := s.students[id]; ok {
			st := st
			students = append(students, &st)
		}
	}
	return students, nil
}

func (r *StudentRepository) ExistsByStudentNumber(ctx context.Context, studentNumber string) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.studentIDByNumber[studentNumber]
	return ok, nil
}

func (r *StudentRepository) List(ctx context.Context) ([]*student.Student, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	students := make([]*student.Student, 0, len(s.students))
	for _, st := range s.students {
		st := st
		students = append(students, &st)
	}
	sortStudents(students)
	return students, nil
}

func (r *StudentRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*student.Student, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var students []*student.Student
	for _, st := range s.students {
		if st.OwnerID == ownerID {
			st := st
			students = append(students, &st)
		}
	}
	sortStudents(students)
	return students, nil
}

func (r *StudentRepository) Update(ctx context.Context, st *student.Student) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.students[st.ID]
	if !ok {
		return errors.NewNotFoundError("student not found")
	}
	if prev.StudentNumber != st.StudentNumber {
		if _, taken := s.studentIDByNumber[st.StudentNumber]; taken {
			return errors.NewConflictError("student number already exists")
		}
		delete(s.studentIDByNumber, prev.StudentNumber)
		s.studentIDByNumber[st.StudentNumber] = st.ID
	}
	s.students[st.ID] = *st
	return nil
}

// Delete cascades to enrollments and attendance records referencing the
// student, all under one lock acquisition.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.students[id]
	if !ok {
		return errors.NewNotFoundError("student not found")
	}

	for eid, e := range s.enrollments {
		if e.StudentID == id {
			delete(s.enrollments, eid)
		}
	}
	for aid, rec := range s.attendance {
		if rec.StudentID == id {
			delete(s.attendance, aid)
		}
	}
	delete(s.studentIDByNumber, st.StudentNumber)
	delete(s.students, id)
	return nil
}

func sortStudents(students []*student.Student) {
	sort.Slice(students, func(i, j int) bool {
		return students[i].StudentNumber < students[j].StudentNumber
	})
}
