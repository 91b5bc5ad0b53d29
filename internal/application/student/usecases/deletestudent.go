package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// DeleteStudentUseCase removes a student and, through the repository cascade,
// every enrollment and attendance record referencing them.
type DeleteStudentUseCase struct {
	studentRepo student.Repository
	logger      logger.Interface
}

// NewDeleteStudentUseCase creates a new delete student use case
func NewDeleteStudentUseCase(studentRepo student.Repository, logger logger.Interface) *DeleteStudentUseCase {
	return &DeleteStudentUseCase{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Execute deletes the student. Not-existing and not-owned are the same answer.
func (uc *DeleteStudentUseCase) Execute(ctx context.Context, actingUserID, studentID string) error {
	studentEntity, err := uc.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		uc.logger.Errorw("failed to load student", "student_id", studentID, "error", err)
		return fmt.Errorf("failed to load student: %w", err)
	}
	if studentEntity == nil || !studentEntity.OwnedBy(actingUserID) {
		return errors.NewNotFoundError("student not found")
	}

	if err := uc.studentRepo.Delete(ctx, studentID); err != nil {
		uc.logger.Errorw("failed to delete student", "student_id", studentID, "error", err)
		return fmt.Errorf("failed to delete student: %w", err)
	}

	uc.logger.Infow("student deleted", "student_id", studentID, "owner_id", actingUserID)
	return nil
}
