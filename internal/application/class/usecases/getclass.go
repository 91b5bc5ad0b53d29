package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// GetClassUseCase reads a single class. Reads are public to any
// authenticated user; only mutations check ownership.
type GetClassUseCase struct {
	classRepo class.Repository
	logger    logger.Interface
}

// NewGetClassUseCase creates a new get class use case
func NewGetClassUseCase(classRepo class.Repository, logger logger.Interface) *GetClassUseCase {
	return &GetClassUseCase{
		classRepo: classRepo,
		logger:    logger,
	}
}

func (uc *GetClassUseCase) Execute(ctx context.Context, classID string) (*class.Class, error) {
	classEntity, err := uc.classRepo.GetByID(ctx, classID)
	if err != nil {
		uc.logger.Errorw("failed to load class", "class_id", classID, "error", err)
		return nil, fmt.Errorf("failed to load class: %w", err)
	}
	if classEntity == nil {
		return nil, errors.NewNotFoundError("class not found")
	}
	return classEntity, nil
}
