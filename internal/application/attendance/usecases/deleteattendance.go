package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// DeleteAttendanceUseCase removes a record created by the acting user.
type DeleteAttendanceUseCase struct {
	attendanceRepo attendance.Repository
	logger         logger.Interface
}

// NewDeleteAttendanceUseCase creates a new delete attendance use case
func NewDeleteAttendanceUseCase(attendanceRepo attendance.Repository, logger logger.Interface) *DeleteAttendanceUseCase {
	return &DeleteAttendanceUseCase{
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

// Execute deletes the record. Not-existing and marked-by-someone-else are
// the same answer.
func (uc *DeleteAttendanceUseCase) Execute(ctx context.Context, actingUserID, recordID string) error {
	record, err := uc.attendanceRepo.GetByID(ctx, recordID)
	if err != nil {
		uc.logger.Errorw("failed to load attendance record", "record_id", recordID, "error", err)
		return fmt.Errorf("failed to load attendance record: %w", err)
	}
	if record == nil || !record.MarkedByUser(actingUserID) {
		return errors.NewNotFoundError("attendance record not found")
	}

	if err := uc.attendanceRepo.Delete(ctx, recordID); err != nil {
		uc.logger.Errorw("failed to delete attendance record", "record_id", recordID, "error", err)
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	uc.logger.Infow("attendance record deleted", "record_id", recordID)
	return nil
}
