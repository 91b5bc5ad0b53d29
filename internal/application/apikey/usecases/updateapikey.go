package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/pharris560/ace-attendance/internal/domain/apikey"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// UpdateAPIKeyCommand renames or (de)activates a key. Nil fields stay as-is.
type UpdateAPIKeyCommand struct {
	UserID string
	KeyID  string
	Name   *string
	Active *bool
}

// UpdateAPIKeyUseCase mutates a key owned by the acting user.
type UpdateAPIKeyUseCase struct {
	apiKeyRepo apikey.Repository
	logger     logger.Interface
}

// NewUpdateAPIKeyUseCase creates a new update API key use case
func NewUpdateAPIKeyUseCase(apiKeyRepo apikey.Repository, logger logger.Interface) *UpdateAPIKeyUseCase {
	return &UpdateAPIKeyUseCase{
		apiKeyRepo: apiKeyRepo,
		logger:     logger,
	}
}

// Execute applies the changes. A key that does not exist and a key owned by
// someone else produce the same not-found answer.
func (uc *UpdateAPIKeyUseCase) Execute(ctx context.Context, cmd UpdateAPIKeyCommand) (*apikey.Public, error) {
	keyEntity, err := uc.apiKeyRepo.GetByID(ctx, cmd.KeyID)
	if err != nil {
		uc.logger.Errorw("failed to load API key", "key_id", cmd.KeyID, "error", err)
		return nil, fmt.Errorf("failed to load API key: %w", err)
	}
	if keyEntity == nil || keyEntity.UserID != cmd.UserID {
		return nil, errors.NewNotFoundError("API key not found")
	}

	if cmd.Name != nil {
		name := strings.TrimSpace(*cmd.Name)
		if name == "" {
			return nil, errors.NewValidationError("key name cannot be empty")
		}
		keyEntity.Name = name
	}
	if cmd.Active != nil {
		keyEntity.Active = *cmd.Active
	}

	if err := uc.apiKeyRepo.Update(ctx, keyEntity); err != nil {
		uc.logger.Errorw("failed to update API key", "key_id", cmd.KeyID, "error", err)
		return nil, fmt.Errorf("failed to update API key: %w", err)
	}

	uc.logger.Infow("API key updated", "key_id", keyEntity.ID, "active", keyEntity.Active)

	publicView := keyEntity.Public()
	return &publicView, nil
}
