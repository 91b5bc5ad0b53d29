package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/domain/enrollment"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// ClassSummary is a class enriched with its enrolled head count and
// attendance status counts for listings.
type ClassSummary struct {
	Class         *class.Class     `json:"class"`
	EnrolledCount int64            `json:"enrolledCount"`
	Stats         attendance.Stats `json:"stats"`
}

// ListClassesCommand selects between the public listing and the acting
// user's own classes.
type ListClassesCommand struct {
	ActingUserID string
	OwnedOnly    bool
}

// ListClassesUseCase lists classes with aggregation.
type ListClassesUseCase struct {
	classRepo      class.Repository
	enrollmentRepo enrollment.Repository
	attendanceRepo attendance.Repository
	logger         logger.Interface
}

// NewListClassesUseCase creates a new list classes use case
func NewListClassesUseCase(
	classRepo class.Repository,
	enrollmentRepo enrollment.Repository,
	attendanceRepo attendance.Repository,
	logger logger.Interface,
) *ListClassesUseCase {
	return &ListClassesUseCase{
		classRepo:      classRepo,
		enrollmentRepo: enrollmentRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

// Execute lists classes and enriches each with enrolled count and stats.
func (uc *ListClassesUseCase) Execute(ctx context.Context, cmd ListClassesCommand) ([]ClassSummary, error) {
	var classes []*class.Class
	var err error
	if cmd.OwnedOnly {
		classes, err = uc.classRepo.ListByOwnerID(ctx, cmd.ActingUserID)
	} else {
		classes, err = uc.classRepo.List(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list classes", "error", err)
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}

	classIDs := make([]string, len(classes))
	for i, c := range classes {
		classIDs[i] = c.ID
	}

	counts, err := uc.enrollmentRepo.CountEnrolledByClassIDs(ctx, classIDs)
	if err != nil {
		uc.logger.Errorw("failed to count enrollments", "error", err)
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}

	summaries := make([]ClassSummary, len(classes))
	for i, c := range classes {
		records, err := uc.attendanceRepo.ListByClassID(ctx, c.ID, "", "")
		if err != nil {
			uc.logger.Errorw("failed to list attendance for class", "class_id", c.ID, "error", err)
			return nil, fmt.Errorf("failed to list attendance: %w", err)
		}

		var stats attendance.Stats
		for _, record := range records {
			stats.Add(record.Status)
		}

		summaries[i] = ClassSummary{
			Class:         c,
			EnrolledCount: counts[c.ID],
			Stats:         stats,
		}
	}
	return summaries, nil
}
