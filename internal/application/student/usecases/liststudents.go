package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// ListStudentsCommand selects between the public listing and the acting
// user's own students.
type ListStudentsCommand struct {
	ActingUserID string
	OwnedOnly    bool
}

// ListStudentsUseCase lists students ordered by student number.
type ListStudentsUseCase struct {
	studentRepo student.Repository
	logger      logger.Interface
}

// NewListStudentsUseCase creates a new list students use case
func NewListStudentsUseCase(studentRepo student.Repository, logger logger.Interface) *ListStudentsUseCase {
	return &ListStudentsUseCase{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

func (uc *ListStudentsUseCase) Execute(ctx context.Context, cmd ListStudentsCommand) ([]*student.Student, error) {
	var students []*student.Student
	var err error
	if cmd.OwnedOnly {
		students, err = uc.studentRepo.ListByOwnerID(ctx, cmd.ActingUserID)
	} else {
		students, err = uc.studentRepo.List(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list students", "error", err)
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}
