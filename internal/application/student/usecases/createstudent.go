package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
	"github.com/pharris560/ace-attendance/internal/shared/services/sanitize"
)

// CreateStudentCommand contains the data for registering a student.
type CreateStudentCommand struct {
	OwnerID       string
	StudentNumber string
	FirstName     string
	LastName      string
	Email         string
	Phone         string
}

// CreateStudentUseCase handles student registration.
type CreateStudentUseCase struct {
	studentRepo student.Repository
	sanitizer   sanitize.Sanitizer
	logger      logger.Interface
}

// NewCreateStudentUseCase creates a new create student use case
func NewCreateStudentUseCase(
	studentRepo student.Repository,
	sanitizer sanitize.Sanitizer,
	logger logger.Interface,
) *CreateStudentUseCase {
	return &CreateStudentUseCase{
		studentRepo: studentRepo,
		sanitizer:   sanitizer,
		logger:      logger,
	}
}

// Execute validates the command and persists the student. The student number
// is unique across the whole store.
func (uc *CreateStudentUseCase) Execute(ctx context.Context, cmd CreateStudentCommand) (*student.Student, error) {
	studentEntity, err := student.New(
		cmd.OwnerID,
		uc.sanitizer.Clean(cmd.StudentNumber),
		uc.sanitizer.Clean(cmd.FirstName),
		uc.sanitizer.Clean(cmd.LastName),
		uc.sanitizer.Clean(cmd.Email),
		uc.sanitizer.Clean(cmd.Phone),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.studentRepo.ExistsByStudentNumber(ctx, studentEntity.StudentNumber)
	if err != nil {
		uc.logger.Errorw("failed to check student number", "error", err)
		return nil, fmt.Errorf("failed to check student number: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("student number is already in use")
	}

	if err := uc.studentRepo.Create(ctx, studentEntity); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to persist student", "error", err)
		return nil, fmt.Errorf("failed to save student: %w", err)
	}

	uc.logger.Infow("student created", "student_id", studentEntity.ID, "owner_id", cmd.OwnerID)
	return studentEntity, nil
}
