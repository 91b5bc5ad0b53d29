package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/shared/biztime"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// GetClassStatsCommand selects the class and an optional inclusive date
// range. Empty bounds are open.
type GetClassStatsCommand struct {
	ClassID  string
	DateFrom string
	DateTo   string
}

// ClassStats is the aggregation result for one class.
type ClassStats struct {
	ClassID string           `json:"classId"`
	Stats   attendance.Stats `json:"stats"`
	Total   int64            `json:"total"`
}

// GetClassStatsUseCase counts attendance records per status for a class.
type GetClassStatsUseCase struct {
	classRepo      class.Repository
	attendanceRepo attendance.Repository
	logger         logger.Interface
}

// NewGetClassStatsUseCase creates a new get class stats use case
func NewGetClassStatsUseCase(
	classRepo class.Repository,
	attendanceRepo attendance.Repository,
	logger logger.Interface,
) *GetClassStatsUseCase {
	return &GetClassStatsUseCase{
		classRepo:      classRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

// Execute aggregates the class's records inside the range.
func (uc *GetClassStatsUseCase) Execute(ctx context.Context, cmd GetClassStatsCommand) (*ClassStats, error) {
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
		uc.logger.Errorw("failed to list attendance for stats", "class_id", cmd.ClassID, "error", err)
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	result := &ClassStats{ClassID: cmd.ClassID}
	for _, record := range records {
		result.Stats.Add(record.Status)
	}
	result.Total = result.Stats.Total()
	return result, nil
}
