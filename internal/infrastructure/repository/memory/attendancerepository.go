package memory

import (
	"context"
	"sort"

	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
)

type AttendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.Repository {
	return &AttendanceRepository{store: store}
}

func (r *AttendanceRepository) Create(ctx context.Context, record *attendance.Record) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attendance[record.ID] = cloneRecord(*record)
	return nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (*attendance.Record, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.attendance[id]
	if !ok {
		return nil, nil
	}
	rec = cloneRecord(rec)
	return &rec, nil
}

func (r *AttendanceRepository) ListByClassID(ctx context.Context, classID, dateFrom, dateTo string) ([]*attendance.Record, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []*attendance.Record
	for _, rec := range s.attendance {
		if rec.ClassID != classID {
			continue
		}
		// Lexical comparison is chronological for zero-padded YYYY-MM-DD.
		if dateFrom != "" && rec.Date < dateFrom {
			continue
		}
		if dateTo != "" && rec.Date > dateTo {
			continue
		}
		rec := cloneRecord(rec)
		records = append(records, &rec)
	}
	sortRecords(records)
	return records, nil
}

func (r *AttendanceRepository) ListByStudentID(ctx context.Context, studentID string) ([]*attendance.Record, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []*attendance.Record
	for _, rec := range s.attendance {
		if rec.StudentID == studentID {
			rec := cloneRecord(rec)
			records = append(records, &rec)
		}
	}
	sortRecords(records)
	return records, nil
}

func (r *AttendanceRepository) Update(ctx context.Context, record *attendance.Record) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.attendance[record.ID]; !ok {
		return errors.NewNotFoundError("attendance record not found")
	}
	s.attendance[record.ID] = cloneRecord(*record)
	return nil
}

func (r *AttendanceRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.attendance[id]; !ok {
		return errors.NewNotFoundError("attendance record not found")
	}
	delete(s.attendance, id)
	return nil
}

// sortRecords orders newest first: date descending, then marked-at descending.
func sortRecords(records []*attendance.Record) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].MoreRecentThan(records[j])
	})
}
