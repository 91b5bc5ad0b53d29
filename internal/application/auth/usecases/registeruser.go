package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/pharris560/ace-attendance/internal/domain/user"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 8
)

// RegisterUserCommand contains the data for creating an account.
type RegisterUserCommand struct {
	Username string
	Password string
	FullName string
	Email    string
}

// RegisterUserUseCase handles account creation.
type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

// NewRegisterUserUseCase creates a new register user use case
func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute validates the command, hashes the password and persists the user.
// The returned view never contains the password hash.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*user.Public, error) {
	username := strings.TrimSpace(cmd.Username)

	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return nil, errors.NewValidationError(
			fmt.Sprintf("username must be between %d and %d characters", minUsernameLength, maxUsernameLength))
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError(
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err)
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		uc.logger.Warnw("username already taken", "username", username)
		return nil, errors.NewConflictError("username is already taken")
	}

	passwordHash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userEntity, err := user.NewUser(username, passwordHash, cmd.FullName, cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, userEntity); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to persist user", "error", err)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", userEntity.ID, "username", username)

	publicView := userEntity.Public()
	return &publicView, nil
}
