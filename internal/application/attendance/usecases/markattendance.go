package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
	"github.com/pharris560/ace-attendance/internal/shared/services/sanitize"
)

// MarkAttendanceCommand records one attendance marking.
type MarkAttendanceCommand struct {
	MarkedBy  string
	ClassID   string
	StudentID string
	Date      string
	Status    string
	Notes     string
	Location  *attendance.Geolocation
	CheckIn   *time.Time
	CheckOut  *time.Time
}

// MarkAttendanceUseCase appends an attendance record. The store is
// append-permissive: a second record for the same (student, class, date) is
// allowed and readers resolve by recency.
type MarkAttendanceUseCase struct {
	classRepo      class.Repository
	studentRepo    student.Repository
	attendanceRepo attendance.Repository
	sanitizer      sanitize.Sanitizer
	logger         logger.Interface
}

// NewMarkAttendanceUseCase creates a new mark attendance use case
func NewMarkAttendanceUseCase(
	classRepo class.Repository,
	studentRepo student.Repository,
	attendanceRepo attendance.Repository,
	sanitizer sanitize.Sanitizer,
	logger logger.Interface,
) *MarkAttendanceUseCase {
	return &MarkAttendanceUseCase{
		classRepo:      classRepo,
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
		sanitizer:      sanitizer,
		logger:         logger,
	}
}

// Execute validates referents and appends the record stamped with the acting
// user. The location payload is stored verbatim apart from address sanitizing.
func (uc *MarkAttendanceUseCase) Execute(ctx context.Context, cmd MarkAttendanceCommand) (*attendance.Record, error) {
	classEntity, err := uc.classRepo.GetByID(ctx, cmd.ClassID)
	if err != nil {
		uc.logger.Errorw("failed to load class", "class_id", cmd.ClassID, "error", err)
		return nil, fmt.Errorf("failed to load class: %w", err)
	}
	if classEntity == nil {
		return nil, errors.NewNotFoundError("class not found")
	}

	studentEntity, err := uc.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		uc.logger.Errorw("failed to load student", "student_id", cmd.StudentID, "error", err)
		return nil, fmt.Errorf("failed to load student: %w", err)
	}
	if studentEntity == nil {
		return nil, errors.NewNotFoundError("student not found")
	}

	record, err := attendance.New(cmd.MarkedBy, cmd.ClassID, cmd.StudentID, cmd.Date, attendance.Status(cmd.Status))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	record.Notes = uc.sanitizer.Clean(cmd.Notes)
	record.CheckIn = cmd.CheckIn
	record.CheckOut = cmd.CheckOut
	if cmd.Location != nil {
		location := *cmd.Location
		location.Address = uc.sanitizer.Clean(location.Address)
		record.Location = &location
	}

	if err := uc.attendanceRepo.Create(ctx, record); err != nil {
		uc.logger.Errorw("failed to persist attendance record", "error", err)
		return nil, fmt.Errorf("failed to save attendance record: %w", err)
	}

	uc.logger.Infow("attendance marked",
		"record_id", record.ID,
		"class_id", cmd.ClassID,
		"student_id", cmd.StudentID,
		"date", cmd.Date,
		"status", cmd.Status)
	return record, nil
}
