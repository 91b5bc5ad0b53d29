package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// DeleteClassUseCase removes a class and, through the repository cascade,
// every enrollment and attendance record referencing it.
type DeleteClassUseCase struct {
	classRepo class.Repository
	logger    logger.Interface
}

// NewDeleteClassUseCase creates a new delete class use case
func NewDeleteClassUseCase(classRepo class.Repository, logger logger.Interface) *DeleteClassUseCase {
	return &DeleteClassUseCase{
		classRepo: classRepo,
		logger:    logger,
	}
}

// Execute deletes the class. Not-existing and not-owned are the same answer.
func (uc *DeleteClassUseCase) Execute(ctx context.Context, actingUserID, classID string) error {
	classEntity, err := uc.classRepo.GetByID(ctx, classID)
	if err != nil {
		uc.logger.Errorw("failed to load class", "class_id", classID, "error", err)
		return fmt.Errorf("failed to load class: %w", err)
	}
	if classEntity == nil || !classEntity.OwnedBy(actingUserID) {
		return errors.NewNotFoundError("class not found")
	}

	if err := uc.classRepo.Delete(ctx, classID); err != nil {
		uc.logger.Errorw("failed to delete class", "class_id", classID, "error", err)
		return fmt.Errorf("failed to delete class: %w", err)
	}

	uc.logger.Infow("class deleted", "class_id", classID, "owner_id", actingUserID)
	return nil
}
