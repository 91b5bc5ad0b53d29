package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharris560/ace-attendance/internal/domain/user"
	"github.com/pharris560/ace-attendance/internal/infrastructure/auth"
	"github.com/pharris560/ace-attendance/internal/infrastructure/repository/memory"
	"github.com/pharris560/ace-attendance/internal/infrastructure/token"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

type authFixture struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	hasher      user.PasswordHasher
	tokens      token.Generator

	register     *RegisterUserUseCase
	login        *LoginUseCase
	logout       *LogoutUseCase
	authenticate *AuthenticateSessionUseCase
	cleanup      *CleanupExpiredSessionsUseCase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	sessionRepo := memory.NewSessionRepository(store)
	// Low iteration count keeps the hashing in tests fast enough.
	hasher := auth.NewPBKDF2PasswordHasher(100000)
	tokens := token.NewGenerator()
	log := logger.NewLogger()

	return &authFixture{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		hasher:       hasher,
		tokens:       tokens,
		register:     NewRegisterUserUseCase(userRepo, hasher, log),
		login:        NewLoginUseCase(userRepo, sessionRepo, hasher, tokens, 7*24*time.Hour, log),
		logout:       NewLogoutUseCase(sessionRepo, tokens, log),
		authenticate: NewAuthenticateSessionUseCase(userRepo, sessionRepo, tokens, log),
		cleanup:      NewCleanupExpiredSessionsUseCase(sessionRepo, log),
	}
}

func TestRegisterLoginRoundtrip(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	registered, err := f.register.Execute(ctx, RegisterUserCommand{
		Username: "teacher1",
		Password: "correct horse battery",
		FullName: "Pat Harris",
		Email:    "pat@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "teacher1", registered.Username)

	result, err := f.login.Execute(ctx, LoginCommand{
		Username: "teacher1",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, registered.ID, result.User.ID)

	acting, err := f.authenticate.Execute(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, acting.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterUserCommand{
		Username: "teacher1",
		Password: "password-one",
	})
	require.NoError(t, err)

	_, err = f.register.Execute(ctx, RegisterUserCommand{
		Username: "teacher1",
		Password: "password-two",
	})
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterUserCommand{Username: "ab", Password: "long enough pw"})
	assert.True(t, errors.IsValidationError(err))

	_, err = f.register.Execute(ctx, RegisterUserCommand{Username: "teacher1", Password: "short"})
	assert.True(t, errors.IsValidationError(err))
}

func TestLoginFailuresAreUniform(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterUserCommand{
		Username: "teacher1",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	_, unknownErr := f.login.Execute(ctx, LoginCommand{Username: "nobody", Password: "whatever12"})
	_, wrongPwErr := f.login.Execute(ctx, LoginCommand{Username: "teacher1", Password: "wrong password"})

	require.Error(t, unknownErr)
	require.Error(t, wrongPwErr)
	// Unknown username and wrong password must be indistinguishable.
	assert.Equal(t, unknownErr.Error(), wrongPwErr.Error())
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.authenticate.Execute(context.Background(), "not-a-real-token")
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestExpiredSessionIsEvictedOnLookup(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	registered, err := f.register.Execute(ctx, RegisterUserCommand{
		Username: "teacher1",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	plainToken, tokenHash, err := f.tokens.Generate("")
	require.NoError(t, err)

	session, err := user.NewSession(registered.ID, tokenHash, time.Hour)
	require.NoError(t, err)
	session.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	require.NoError(t, f.sessionRepo.Create(ctx, session))

	_, err = f.authenticate.Execute(ctx, plainToken)
	assert.True(t, errors.IsUnauthorizedError(err))

	// The expired row must be gone after the failed lookup.
	count, err := f.sessionRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestLogoutRevokesSession(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterUserCommand{
		Username: "teacher1",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	result, err := f.login.Execute(ctx, LoginCommand{
		Username: "teacher1",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	require.NoError(t, f.logout.Execute(ctx, result.Token))

	_, err = f.authenticate.Execute(ctx, result.Token)
	assert.True(t, errors.IsUnauthorizedError(err))

	// Logging out again with the same token is a no-op.
	assert.NoError(t, f.logout.Execute(ctx, result.Token))
}

func TestCleanupSweepRemovesOnlyExpired(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	registered, err := f.register.Execute(ctx, RegisterUserCommand{
		Username: "teacher1",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	live, err := f.login.Execute(ctx, LoginCommand{
		Username: "teacher1",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	_, staleHash, err := f.tokens.Generate("")
	require.NoError(t, err)
	stale, err := user.NewSession(registered.ID, staleHash, time.Hour)
	require.NoError(t, err)
	stale.ExpiresAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, f.sessionRepo.Create(ctx, stale))

	removed, err := f.cleanup.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = f.authenticate.Execute(ctx, live.Token)
	assert.NoError(t, err)
}
