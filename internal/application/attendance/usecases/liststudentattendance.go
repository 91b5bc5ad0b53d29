package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/domain/user"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// ListStudentAttendanceUseCase lists a student's records across all classes,
// newest first, enriched with their referents.
type ListStudentAttendanceUseCase struct {
	attendanceRepo attendance.Repository
	studentRepo    student.Repository
	enricher       recordEnricher
	logger         logger.Interface
}

// NewListStudentAttendanceUseCase creates a new list student attendance use case
func NewListStudentAttendanceUseCase(
	attendanceRepo attendance.Repository,
	classRepo class.Repository,
	studentRepo student.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListStudentAttendanceUseCase {
	return &ListStudentAttendanceUseCase{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		enricher: recordEnricher{
			classRepo:   classRepo,
			studentRepo: studentRepo,
			userRepo:    userRepo,
			logger:      logger,
		},
		logger: logger,
	}
}

func (uc *ListStudentAttendanceUseCase) Execute(ctx context.Context, studentID string) ([]EnrichedRecord, error) {
	studentEntity, err := uc.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		uc.logger.Errorw("failed to load student", "student_id", studentID, "error", err)
		return nil, fmt.Errorf("failed to load student: %w", err)
	}
	if studentEntity == nil {
		return nil, errors.NewNotFoundError("student not found")
	}

	records, err := uc.attendanceRepo.ListByStudentID(ctx, studentID)
	if err != nil {
		uc.logger.Errorw("failed to list attendance", "student_id", studentID, "error", err)
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return uc.enricher.enrich(ctx, records)
}
