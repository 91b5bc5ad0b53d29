package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/apikey"
	"github.com/pharris560/ace-attendance/internal/infrastructure/token"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// CreateAPIKeyCommand contains the data for issuing a new API key.
type CreateAPIKeyCommand struct {
	UserID string
	Name   string
}

// CreateAPIKeyResult carries the one and only copy of the raw key. Every
// later read returns the masked view.
type CreateAPIKeyResult struct {
	Key    apikey.Public
	RawKey string
}

// CreateAPIKeyUseCase issues an API key for a user.
type CreateAPIKeyUseCase struct {
	apiKeyRepo apikey.Repository
	tokens     token.Generator
	logger     logger.Interface
}

// NewCreateAPIKeyUseCase creates a new create API key use case
func NewCreateAPIKeyUseCase(
	apiKeyRepo apikey.Repository,
	tokens token.Generator,
	logger logger.Interface,
) *CreateAPIKeyUseCase {
	return &CreateAPIKeyUseCase{
		apiKeyRepo: apiKeyRepo,
		tokens:     tokens,
		logger:     logger,
	}
}

// Execute generates the raw key, stores hash and display prefix, and returns
// the raw key exactly once.
func (uc *CreateAPIKeyUseCase) Execute(ctx context.Context, cmd CreateAPIKeyCommand) (*CreateAPIKeyResult, error) {
	rawKey, keyHash, err := uc.tokens.Generate(apikey.RawKeyPrefix)
	if err != nil {
		uc.logger.Errorw("failed to generate API key", "error", err)
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}

	keyEntity, err := apikey.New(cmd.UserID, cmd.Name, keyHash, rawKey[:apikey.DisplayPrefixLength])
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.apiKeyRepo.Create(ctx, keyEntity); err != nil {
		uc.logger.Errorw("failed to persist API key", "error", err)
		return nil, fmt.Errorf("failed to save API key: %w", err)
	}

	uc.logger.Infow("API key created", "key_id", keyEntity.ID, "user_id", cmd.UserID)

	return &CreateAPIKeyResult{
		Key:    keyEntity.Public(),
		RawKey: rawKey,
	}, nil
}
