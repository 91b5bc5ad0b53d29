package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/domain/user"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// EnrichedRecord is an attendance record joined with the entities it
// references. The marking user appears only as the password-free view.
type EnrichedRecord struct {
	Record   *attendance.Record `json:"record"`
	Class    *class.Class       `json:"class"`
	Student  *student.Student   `json:"student"`
	MarkedBy user.Public        `json:"markedBy"`
}

// recordEnricher batch-loads the referents of a record set and joins them.
// Records whose class, student or marking user has vanished are dropped; a
// concurrent cascade can leave such rows visible for a moment.
type recordEnricher struct {
	classRepo   class.Repository
	studentRepo student.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func (e *recordEnricher) enrich(ctx context.Context, records []*attendance.Record) ([]EnrichedRecord, error) {
	classIDs := make([]string, 0, len(records))
	studentIDs := make([]string, 0, len(records))
	userIDs := make([]string, 0, len(records))
	seenClass := make(map[string]bool)
	seenStudent := make(map[string]bool)
	seenUser := make(map[string]bool)
	for _, record := range records {
		if !seenClass[record.ClassID] {
			seenClass[record.ClassID] = true
			classIDs = append(classIDs, record.ClassID)
		}
		if !seenStudent[record.StudentID] {
			seenStudent[record.StudentID] = true
			studentIDs = append(studentIDs, record.StudentID)
		}
		if !seenUser[record.MarkedBy] {
			seenUser[record.MarkedBy] = true
			userIDs = append(userIDs, record.MarkedBy)
		}
	}

	classes, err := e.classRepo.GetByIDs(ctx, classIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load classes: %w", err)
	}
	students, err := e.studentRepo.GetByIDs(ctx, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load students: %w", err)
	}
	users, err := e.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	classesByID := make(map[string]*class.Class, len(classes))
	for _, c := range classes {
		classesByID[c.ID] = c
	}
	studentsByID := make(map[string]*student.Student, len(students))
	for _, st := range students {
		studentsByID[st.ID] = st
	}
	usersByID := make(map[string]*user.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	enriched := make([]EnrichedRecord, 0, len(records))
	for _, record := range records {
		c := classesByID[record.ClassID]
		st := studentsByID[record.StudentID]
		u := usersByID[record.MarkedBy]
		if c == nil || st == nil || u == nil {
			e.logger.Debugw("dropping attendance record with missing referent",
				"record_id", record.ID)
			continue
		}
		enriched = append(enriched, EnrichedRecord{
			Record:   record,
			Class:    c,
			Student:  st,
			MarkedBy: u.Public(),
		})
	}
	return enriched, nil
}
