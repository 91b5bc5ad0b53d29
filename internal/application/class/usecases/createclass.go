package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
	"github.com/pharris560/ace-attendance/internal/shared/services/sanitize"
)

// CreateClassCommand contains the data for creating a class.
type CreateClassCommand struct {
	OwnerID    string
	Name       string
	Instructor string
	Capacity   int
	Schedule   string
}

// CreateClassUseCase handles class creation.
type CreateClassUseCase struct {
	classRepo class.Repository
	sanitizer sanitize.Sanitizer
	logger    logger.Interface
}

// NewCreateClassUseCase creates a new create class use case
func NewCreateClassUseCase(
	classRepo class.Repository,
	sanitizer sanitize.Sanitizer,
	logger logger.Interface,
) *CreateClassUseCase {
	return &CreateClassUseCase{
		classRepo: classRepo,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

// Execute validates and persists the class, owned by the acting user.
func (uc *CreateClassUseCase) Execute(ctx context.Context, cmd CreateClassCommand) (*class.Class, error) {
	classEntity, err := class.New(
		cmd.OwnerID,
		uc.sanitizer.Clean(cmd.Name),
		uc.sanitizer.Clean(cmd.Instructor),
		cmd.Capacity,
		uc.sanitizer.Clean(cmd.Schedule),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.classRepo.Create(ctx, classEntity); err != nil {
		uc.logger.Errorw("failed to persist class", "error", err)
		return nil, fmt.Errorf("failed to save class: %w", err)
	}

	uc.logger.Infow("class created", "class_id", classEntity.ID, "owner_id", cmd.OwnerID)
	return classEntity, nil
}
