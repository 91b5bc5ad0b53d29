package usecases

import (
	"context"

	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// BulkMarkAttendanceCommand marks attendance for many students at once.
type BulkMarkAttendanceCommand struct {
	MarkedBy string
	Items    []MarkAttendanceCommand
}

// BulkMarkResult is the outcome of one row. Rows are independent: a failed
// row never rolls back its neighbours.
type BulkMarkResult struct {
	Index  int                `json:"index"`
	Record *attendance.Record `json:"record,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// BulkMarkAttendanceUseCase applies MarkAttendance per row.
type BulkMarkAttendanceUseCase struct {
	mark   *MarkAttendanceUseCase
	logger logger.Interface
}

// NewBulkMarkAttendanceUseCase creates a new bulk mark attendance use case
func NewBulkMarkAttendanceUseCase(mark *MarkAttendanceUseCase, logger logger.Interface) *BulkMarkAttendanceUseCase {
	return &BulkMarkAttendanceUseCase{
		mark:   mark,
		logger: logger,
	}
}

// Execute marks every row and reports per-row results. The acting user on
// the command overrides whatever the rows carry.
func (uc *BulkMarkAttendanceUseCase) Execute(ctx context.Context, cmd BulkMarkAttendanceCommand) []BulkMarkResult {
	results := make([]BulkMarkResult, len(cmd.Items))
	failures := 0

	for i, item := range cmd.Items {
		item.MarkedBy = cmd.MarkedBy

		record, err := uc.mark.Execute(ctx, item)
		results[i] = BulkMarkResult{Index: i, Record: record}
		if err != nil {
			results[i].Error = err.Error()
			failures++
		}
	}

	if failures > 0 {
		uc.logger.Warnw("bulk attendance completed with failures",
			"total", len(cmd.Items), "failed", failures)
	}
	return results
}
