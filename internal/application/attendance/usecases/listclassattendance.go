package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/domain/user"
	"github.com/pharris560/ace-attendance/internal/shared/biztime"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// ListClassAttendanceCommand selects a class and an optional inclusive date
// range. Empty bounds are open.
type ListClassAttendanceCommand struct {
	ClassID  string
	DateFrom string
	DateTo   string
}

// ListClassAttendanceUseCase lists a class's records, newest first, enriched
// with their referents.
type ListClassAttendanceUseCase struct {
	attendanceRepo attendance.Repository
	classRepo      class.Repository
	enricher       recordEnricher
	logger         logger.Interface
}

// NewListClassAttendanceUseCase creates a new list class attendance use case
func NewListClassAttendanceUseCase(
	attendanceRepo attendance.Repository,
	classRepo class.Repository,
	studentRepo student.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListClassAttendanceUseCase {
	return &ListClassAttendanceUseCase{
		attendanceRepo: attendanceRepo,
		classRepo:      classRepo,
		enricher: recordEnricher{
			classRepo:   classRepo,
			studentRepo: studentRepo,
			userRepo:    userRepo,
			logger:      logger,
		},
		logger: logger,
	}
}

func (uc *ListClassAttendanceUseCase) Execute(ctx context.Context, cmd ListClassAttendanceCommand) ([]EnrichedRecord, error) {
	if cmd.DateFrom != "" {
		if err := biztime.ValidateDate(cmd.DateFrom); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.DateTo != "" {
		if err := biztime.ValidateDate(cmd.DateTo); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	classEntity, err := uc.classRepo.GetByID(ctx, cmd.ClassID)
	if err != nil {
		uc.logger.Errorw("failed to load class", "class_id", cmd.ClassID, "error", err)
		return nil, fmt.Errorf("failed to load class: %w", err)
	}
	if classEntity == nil {
		return nil, errors.NewNotFoundError("class not found")
	}

	records, err := uc.attendanceRepo.ListByClassID(ctx, cmd.ClassID, cmd.DateFrom, cmd.DateTo)
	if err != nil {
		uc.logger.Errorw("failed to list attendance", "class_id", cmd.ClassID, "error", err)
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return uc.enricher.enrich(ctx, records)
}
