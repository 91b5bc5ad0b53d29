package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/domain/enrollment"
	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// EnrollStudentCommand enrolls a student into a class.
type EnrollStudentCommand struct {
	ActingUserID string
	ClassID      string
	StudentID    string
}

// EnrollStudentUseCase creates an "enrolled" relation. Only the class owner
// may change the class's roster.
type EnrollStudentUseCase struct {
	classRepo      class.Repository
	studentRepo    student.Repository
	enrollmentRepo enrollment.Repository
	logger         logger.Interface
}

// NewEnrollStudentUseCase creates a new enroll student use case
func NewEnrollStudentUseCase(
	classRepo class.Repository,
	studentRepo student.Repository,
	enrollmentRepo enrollment.Repository,
	logger logger.Interface,
) *EnrollStudentUseCase {
	return &EnrollStudentUseCase{
		classRepo:      classRepo,
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// Execute enrolls the student. Enrolling an already enrolled pair is a
// conflict; a class not owned by the acting user reads as absent.
func (uc *EnrollStudentUseCase) Execute(ctx context.Context, cmd EnrollStudentCommand) (*enrollment.Enrollment, error) {
	classEntity, err := uc.classRepo.GetByID(ctx, cmd.ClassID)
	if err != nil {
		uc.logger.Errorw("failed to load class", "class_id", cmd.ClassID, "error", err)
		return nil, fmt.Errorf("failed to load class: %w", err)
	}
	if classEntity == nil || !classEntity.OwnedBy(cmd.ActingUserID) {
		return nil, errors.NewNotFoundError("class not found")
	}

	studentEntity, err := uc.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		uc.logger.Errorw("failed to load student", "student_id", cmd.StudentID, "error", err)
		return nil, fmt.Errorf("failed to load student: %w", err)
	}
	if studentEntity == nil {
		return nil, errors.NewNotFoundError("student not found")
	}

	enrollmentEntity, err := enrollment.New(cmd.ClassID, cmd.StudentID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.enrollmentRepo.Create(ctx, enrollmentEntity); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to persist enrollment", "error", err)
		return nil, fmt.Errorf("failed to save enrollment: %w", err)
	}

	uc.logger.Infow("student enrolled",
		"class_id", cmd.ClassID,
		"student_id", cmd.StudentID,
		"enrollment_id", enrollmentEntity.ID)
	return enrollmentEntity, nil
}
