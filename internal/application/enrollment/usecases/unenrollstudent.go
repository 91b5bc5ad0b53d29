package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/domain/enrollment"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// UnenrollStudentCommand removes a student from a class's roster.
type UnenrollStudentCommand struct {
	ActingUserID string
	ClassID      string
	StudentID    string
}

// UnenrollStudentUseCase deletes the "enrolled" relation. Attendance history
// is kept; unenrolling only changes the roster.
type UnenrollStudentUseCase struct {
	classRepo      class.Repository
	enrollmentRepo enrollment.Repository
	logger         logger.Interface
}

// NewUnenrollStudentUseCase creates a new unenroll student use case
func NewUnenrollStudentUseCase(
	classRepo class.Repository,
	enrollmentRepo enrollment.Repository,
	logger logger.Interface,
) *UnenrollStudentUseCase {
	return &UnenrollStudentUseCase{
		classRepo:      classRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// Execute removes the enrollment. Absent class, foreign class and absent
// enrollment all answer not-found.
func (uc *UnenrollStudentUseCase) Execute(ctx context.Context, cmd UnenrollStudentCommand) error {
	classEntity, err := uc.classRepo.GetByID(ctx, cmd.ClassID)
	if err != nil {
		uc.logger.Errorw("failed to load class", "class_id", cmd.ClassID, "error", err)
		return fmt.Errorf("failed to load class: %w", err)
	}
	if classEntity == nil || !classEntity.OwnedBy(cmd.ActingUserID) {
		return errors.NewNotFoundError("class not found")
	}

	enrollmentEntity, err := uc.enrollmentRepo.GetEnrolled(ctx, cmd.ClassID, cmd.StudentID)
	if err != nil {
		uc.logger.Errorw("failed to load enrollment", "error", err)
		return fmt.Errorf("failed to load enrollment: %w", err)
	}
	if enrollmentEntity == nil {
		return errors.NewNotFoundError("enrollment not found")
	}

	if err := uc.enrollmentRepo.Delete(ctx, enrollmentEntity.ID); err != nil {
		uc.logger.Errorw("failed to delete enrollment", "enrollment_id", enrollmentEntity.ID, "error", err)
		return fmt.Errorf("failed to delete enrollment: %w", err)
	}

	uc.logger.Infow("student unenrolled", "class_id", cmd.ClassID, "student_id", cmd.StudentID)
	return nil
}
