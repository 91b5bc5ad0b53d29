package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// GetStudentUseCase reads a single student. Reads are public to any
// authenticated user.
type GetStudentUseCase struct {
	studentRepo student.Repository
	logger      logger.Interface
}

// NewGetStudentUseCase creates a new get student use case
func NewGetStudentUseCase(studentRepo student.Repository, logger logger.Interface) *GetStudentUseCase {
	return &GetStudentUseCase{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

func (uc *GetStudentUseCase) Execute(ctx context.Context, studentID string) (*student.Student, error) {
	studentEntity, err := uc.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		uc.logger.Errorw("failed to load student", "student_id", studentID, "error", err)
		return nil, fmt.Errorf("failed to load student: %w", err)
	}
	if studentEntity == nil {
		return nil, errors.NewNotFoundError("student not found")
	}
	return studentEntity, nil
}
