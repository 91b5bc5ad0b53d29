package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/shared/biztime"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
	"github.com/pharris560/ace-attendance/internal/shared/services/sanitize"
)

// UpdateStudentCommand mutates a student. Nil fields stay as-is.
type UpdateStudentCommand struct {
	ActingUserID  string
	StudentID     string
	StudentNumber *string
	FirstName     *string
	LastName      *string
	Email         *string
	Phone         *string
	Status        *string
}

// UpdateStudentUseCase mutates a student owned by the acting user.
type UpdateStudentUseCase struct {
	studentRepo student.Repository
	sanitizer   sanitize.Sanitizer
	logger      logger.Interface
}

// NewUpdateStudentUseCase creates a new update student use case
func NewUpdateStudentUseCase(
	studentRepo student.Repository,
	sanitizer sanitize.Sanitizer,
	logger logger.Interface,
) *UpdateStudentUseCase {
	return &UpdateStudentUseCase{
		studentRepo: studentRepo,
		sanitizer:   sanitizer,
		logger:      logger,
	}
}

// Execute applies the changes. Not-existing and not-owned are the same
// not-found answer; a changed student number must remain unique.
func (uc *UpdateStudentUseCase) Execute(ctx context.Context, cmd UpdateStudentCommand) (*student.Student, error) {
	studentEntity, err := uc.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		uc.logger.Errorw("failed to load student", "student_id", cmd.StudentID, "error", err)
		return nil, fmt.Errorf("failed to load student: %w", err)
	}
	if studentEntity == nil || !studentEntity.OwnedBy(cmd.ActingUserID) {
		return nil, errors.NewNotFoundError("student not found")
	}

	if cmd.StudentNumber != nil {
		number := uc.sanitizer.Clean(*cmd.StudentNumber)
		if number == "" {
			return nil, errors.NewValidationError("student number cannot be empty")
		}
		if number != studentEntity.StudentNumber {
			exists, err := uc.studentRepo.ExistsByStudentNumber(ctx, number)
			if err != nil {
				uc.logger.Errorw("failed to check student number", "error", err)
				return nil, fmt.Errorf("failed to check student number: %w", err)
			}
			if exists {
				return nil, errors.NewConflictError("student number is already in use")
			}
			studentEntity.StudentNumber = number
		}
	}
	if cmd.FirstName != nil {
		firstName := uc.sanitizer.Clean(*cmd.FirstName)
		if firstName == "" {
			return nil, errors.NewValidationError("first name cannot be empty")
		}
		studentEntity.FirstName = firstName
	}
	if cmd.LastName != nil {
		studentEntity.LastName = uc.sanitizer.Clean(*cmd.LastName)
	}
	if cmd.Email != nil {
		studentEntity.Email = uc.sanitizer.Clean(*cmd.Email)
	}
	if cmd.Phone != nil {
		studentEntity.Phone = uc.sanitizer.Clean(*cmd.Phone)
	}
	if cmd.Status != nil {
		status := student.Status(*cmd.Status)
		if !student.ValidStatus(status) {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid student status %q", *cmd.Status))
		}
		studentEntity.Status = status
	}
	studentEntity.UpdatedAt = biztime.NowUTC()

	if err := uc.studentRepo.Update(ctx, studentEntity); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update student", "student_id", cmd.StudentID, "error", err)
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	uc.logger.Infow("student updated", "student_id", studentEntity.ID)
	return studentEntity, nil
}
