package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/shared/biztime"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
	"github.com/pharris560/ace-attendance/internal/shared/services/sanitize"
)

// UpdateAttendanceCommand mutates a record. Nil fields stay as-is.
type UpdateAttendanceCommand struct {
	ActingUserID string
	RecordID     string
	Status       *string
	Notes        *string
	Location     *attendance.Geolocation
	CheckIn      *time.Time
	CheckOut     *time.Time
}

// UpdateAttendanceUseCase mutates a record created by the acting user.
type UpdateAttendanceUseCase struct {
	attendanceRepo attendance.Repository
	sanitizer      sanitize.Sanitizer
	logger         logger.Interface
}

// NewUpdateAttendanceUseCase creates a new update attendance use case
func NewUpdateAttendanceUseCase(
	attendanceRepo attendance.Repository,
	sanitizer sanitize.Sanitizer,
	logger logger.Interface,
) *UpdateAttendanceUseCase {
	return &UpdateAttendanceUseCase{
		attendanceRepo: attendanceRepo,
		sanitizer:      sanitizer,
		logger:         logger,
	}
}

// Execute applies the changes. A record marked by someone else reads as
// absent.
func (uc *UpdateAttendanceUseCase) Execute(ctx context.Context, cmd UpdateAttendanceCommand) (*attendance.Record, error) {
	record, err := uc.attendanceRepo.GetByID(ctx, cmd.RecordID)
	if err != nil {
		uc.logger.Errorw("failed to load attendance record", "record_id", cmd.RecordID, "error", err)
		return nil, fmt.Errorf("failed to load attendance record: %w", err)
	}
	if record == nil || !record.MarkedByUser(cmd.ActingUserID) {
		return nil, errors.NewNotFoundError("attendance record not found")
	}

	if cmd.Status != nil {
		status := attendance.Status(*cmd.Status)
		if !attendance.ValidStatus(status) {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid attendance status %q", *cmd.Status))
		}
		record.Status = status
	}
	if cmd.Notes != nil {
		record.Notes = uc.sanitizer.Clean(*cmd.Notes)
	}
	if cmd.Location != nil {
		location := *cmd.Location
		location.Address = uc.sanitizer.Clean(location.Address)
		record.Location = &location
	}
	if cmd.CheckIn != nil {
		record.CheckIn = cmd.CheckIn
	}
	if cmd.CheckOut != nil {
		record.CheckOut = cmd.CheckOut
	}
	record.UpdatedAt = biztime.NowUTC()

	if err := uc.attendanceRepo.Update(ctx, record); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update attendance record", "record_id", cmd.RecordID, "error", err)
		return nil, fmt.Errorf("failed to update attendance record: %w", err)
	}

	uc.logger.Infow("attendance record updated", "record_id", record.ID)
	return record, nil
}
