package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/shared/biztime"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
	"github.com/pharris560/ace-attendance/internal/shared/services/sanitize"
)

// UpdateClassCommand mutates a class. Nil fields stay as-is.
type UpdateClassCommand struct {
	ActingUserID string
	ClassID      string
	Name         *string
	Instructor   *string
	Capacity     *int
	Schedule     *string
	Status       *string
}

// UpdateClassUseCase mutates a class owned by the acting user.
type UpdateClassUseCase struct {
	classRepo class.Repository
	sanitizer sanitize.Sanitizer
	logger    logger.Interface
}

// NewUpdateClassUseCase creates a new update class use case
func NewUpdateClassUseCase(
	classRepo class.Repository,
	sanitizer sanitize.Sanitizer,
	logger logger.Interface,
) *UpdateClassUseCase {
	return &UpdateClassUseCase{
		classRepo: classRepo,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

// Execute applies the changes. A class that does not exist and a class owned
// by someone else produce the same not-found answer.
func (uc *UpdateClassUseCase) Execute(ctx context.Context, cmd UpdateClassCommand) (*class.Class, error) {
	classEntity, err := uc.classRepo.GetByID(ctx, cmd.ClassID)
	if err != nil {
		uc.logger.Errorw("failed to load class", "class_id", cmd.ClassID, "error", err)
		return nil, fmt.Errorf("failed to load class: %w", err)
	}
	if classEntity == nil || !classEntity.OwnedBy(cmd.ActingUserID) {
		return nil, errors.NewNotFoundError("class not found")
	}

	if cmd.Name != nil {
		name := uc.sanitizer.Clean(*cmd.Name)
		if name == "" {
			return nil, errors.NewValidationError("class name cannot be empty")
		}
		classEntity.Name = name
	}
	if cmd.Instructor != nil {
		classEntity.Instructor = uc.sanitizer.Clean(*cmd.Instructor)
	}
	if cmd.Capacity != nil {
		if *cmd.Capacity <= 0 {
			return nil, errors.NewValidationError("capacity must be a positive integer")
		}
		classEntity.Capacity = *cmd.Capacity
	}
	if cmd.Schedule != nil {
		classEntity.Schedule = uc.sanitizer.Clean(*cmd.Schedule)
	}
	if cmd.Status != nil {
		status := class.Status(*cmd.Status)
		if !class.ValidStatus(status) {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid class status %q", *cmd.Status))
		}
		classEntity.Status = status
	}
	classEntity.UpdatedAt = biztime.NowUTC()

	if err := uc.classRepo.Update(ctx, classEntity); err != nil {
		uc.logger.Errorw("failed to update class", "class_id", cmd.ClassID, "error", err)
		return nil, fmt.Errorf("failed to update class: %w", err)
	}

	uc.logger.Infow("class updated", "class_id", classEntity.ID)
	return classEntity, nil
}
