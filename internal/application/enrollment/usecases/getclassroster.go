package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/domain/enrollment"
	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// RosterEntry is one enrolled student together with their most recent
// attendance record in the class, when any exists.
type RosterEntry struct {
	Student          *student.Student       `json:"student"`
	Enrollment       *enrollment.Enrollment `json:"enrollment"`
	LatestAttendance *attendance.Record     `json:"latestAttendance,omitempty"`
}

// GetClassRosterUseCase builds the roster-with-latest-attendance view.
type GetClassRosterUseCase struct {
	classRepo      class.Repository
	studentRepo    student.Repository
	enrollmentRepo enrollment.Repository
	attendanceRepo attendance.Repository
	logger         logger.Interface
}

// NewGetClassRosterUseCase creates a new get class roster use case
func NewGetClassRosterUseCase(
	classRepo class.Repository,
	studentRepo student.Repository,
	enrollmentRepo enrollment.Repository,
	attendanceRepo attendance.Repository,
	logger logger.Interface,
) *GetClassRosterUseCase {
	return &GetClassRosterUseCase{
		classRepo:      classRepo,
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

// Execute returns every enrolled student with their latest record. "Latest"
// is by date descending, ties broken by marked-at (last write wins). Students
// referenced by a dangling enrollment are skipped.
func (uc *GetClassRosterUseCase) Execute(ctx context.Context, classID string) ([]RosterEntry, error) {
	classEntity, err := uc.classRepo.GetByID(ctx, classID)
	if err != nil {
		uc.logger.Errorw("failed to load class", "class_id", classID, "error", err)
		return nil, fmt.Errorf("failed to load class: %w", err)
	}
	if classEntity == nil {
		return nil, errors.NewNotFoundError("class not found")
	}

	enrollments, err := uc.enrollmentRepo.ListByClassID(ctx, classID)
	if err != nil {
		uc.logger.Errorw("failed to list enrollments", "class_id", classID, "error", err)
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}

	enrolled := make([]*enrollment.Enrollment, 0, len(enrollments))
	studentIDs := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Status != enrollment.StatusEnrolled {
			continue
		}
		enrolled = append(enrolled, e)
		studentIDs = append(studentIDs, e.StudentID)
	}

	students, err := uc.studentRepo.GetByIDs(ctx, studentIDs)
	if err != nil {
		uc.logger.Errorw("failed to load roster students", "class_id", classID, "error", err)
		return nil, fmt.Errorf("failed to load students: %w", err)
	}
	studentsByID := make(map[string]*student.Student, len(students))
	for _, st := range students {
		studentsByID[st.ID] = st
	}

	records, err := uc.attendanceRepo.ListByClassID(ctx, classID, "", "")
	if err != nil {
		uc.logger.Errorw("failed to list attendance", "class_id", classID, "error", err)
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	latestByStudent := make(map[string]*attendance.Record)
	for _, record := range records {
		current, ok := latestByStudent[record.StudentID]
		if !ok || record.MoreRecentThan(current) {
			latestByStudent[record.StudentID] = record
		}
	}

	roster := make([]RosterEntry, 0, len(enrolled))
	for _, e := range enrolled {
		st, ok := studentsByID[e.StudentID]
		if !ok {
			uc.logger.Warnw("enrollment references missing student",
				"enrollment_id", e.ID, "student_id", e.StudentID)
			continue
		}
		roster = append(roster, RosterEntry{
			Student:          st,
			Enrollment:       e,
			LatestAttendance: latestByStudent[e.StudentID],
		})
	}
	return roster, nil
}
