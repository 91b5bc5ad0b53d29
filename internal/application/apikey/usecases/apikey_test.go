package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharris560/ace-attendance/internal/domain/apikey"
	"github.com/pharris560/ace-attendance/internal/domain/user"
	"github.com/pharris560/ace-attendance/internal/infrastructure/repository/memory"
	"github.com/pharris560/ace-attendance/internal/infrastructure/token"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

type apiKeyFixture struct {
	userRepo   user.Repository
	apiKeyRepo apikey.Repository

	create *CreateAPIKeyUseCase
	verify *VerifyAPIKeyUseCase
	list   *ListAPIKeysUseCase
	update *UpdateAPIKeyUseCase
	remove *DeleteAPIKeyUseCase
}

func newAPIKeyFixture(t *testing.T) *apiKeyFixture {
	t.Helper()

	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	apiKeyRepo := memory.NewAPIKeyRepository(store)
	tokens := token.NewGenerator()
	log := logger.NewLogger()

	return &apiKeyFixture{
		userRepo:   userRepo,
		apiKeyRepo: apiKeyRepo,
		create:     NewCreateAPIKeyUseCase(apiKeyRepo, tokens, log),
		verify:     NewVerifyAPIKeyUseCase(apiKeyRepo, userRepo, tokens, log),
		list:       NewListAPIKeysUseCase(apiKeyRepo, log),
		update:     NewUpdateAPIKeyUseCase(apiKeyRepo, log),
		remove:     NewDeleteAPIKeyUseCase(apiKeyRepo, log),
	}
}

func (f *apiKeyFixture) seedUser(t *testing.T, username string) *user.User {
	t.Helper()
	u, err := user.NewUser(username, "irrelevant-hash", "", "")
	require.NoError(t, err)
	require.NoError(t, f.userRepo.Create(context.Background(), u))
	return u
}

func TestCreateAndVerifyAPIKey(t *testing.T) {
	f := newAPIKeyFixture(t)
	ctx := context.Background()
	owner := f.seedUser(t, "teacher1")

	created, err := f.create.Execute(ctx, CreateAPIKeyCommand{UserID: owner.ID, Name: "ci"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.RawKey, apikey.RawKeyPrefix))
	// Raw key appears once; the stored view is masked.
	assert.NotContains(t, created.Key.MaskedKey, created.RawKey)
	assert.True(t, strings.HasPrefix(created.Key.MaskedKey, created.RawKey[:apikey.DisplayPrefixLength]))

	resolved, err := f.verify.Execute(ctx, created.RawKey)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, resolved.ID)
}

func TestVerifyRefreshesLastUsed(t *testing.T) {
	f := newAPIKeyFixture(t)
	ctx := context.Background()
	owner := f.seedUser(t, "teacher1")

	created, err := f.create.Execute(ctx, CreateAPIKeyCommand{UserID: owner.ID, Name: "ci"})
	require.NoError(t, err)
	assert.Nil(t, created.Key.LastUsedAt)

	_, err = f.verify.Execute(ctx, created.RawKey)
	require.NoError(t, err)

	stored, err := f.apiKeyRepo.GetByID(ctx, created.Key.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastUsedAt)
}

func TestVerifyFailuresAreUniform(t *testing.T) {
	f := newAPIKeyFixture(t)
	ctx := context.Background()
	owner := f.seedUser(t, "teacher1")

	created, err := f.create.Execute(ctx, CreateAPIKeyCommand{UserID: owner.ID, Name: "ci"})
	require.NoError(t, err)

	inactive := false
	_, err = f.update.Execute(ctx, UpdateAPIKeyCommand{
		UserID: owner.ID,
		KeyID:  created.Key.ID,
		Active: &inactive,
	})
	require.NoError(t, err)

	_, unknownErr := f.verify.Execute(ctx, "ak_definitely_not_issued")
	_, inactiveErr := f.verify.Execute(ctx, created.RawKey)

	require.Error(t, unknownErr)
	require.Error(t, inactiveErr)
	assert.Equal(t, unknownErr.Error(), inactiveErr.Error())
}

func TestAPIKeyOwnershipMergesIntoNotFound(t *testing.T) {
	f := newAPIKeyFixture(t)
	ctx := context.Background()
	owner := f.seedUser(t, "teacher1")
	other := f.seedUser(t, "teacher2")

	created, err := f.create.Execute(ctx, CreateAPIKeyCommand{UserID: owner.ID, Name: "ci"})
	require.NoError(t, err)

	name := "stolen"
	_, err = f.update.Execute(ctx, UpdateAPIKeyCommand{UserID: other.ID, KeyID: created.Key.ID, Name: &name})
	assert.True(t, errors.IsNotFoundError(err))

	err = f.remove.Execute(ctx, other.ID, created.Key.ID)
	assert.True(t, errors.IsNotFoundError(err))

	// The owner still sees the key untouched.
	keys, err := f.list.Execute(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, "ci", keys[0].Name)
}

func TestDeleteAPIKeyRemovesVerification(t *testing.T) {
	f := newAPIKeyFixture(t)
	ctx := context.Background()
	owner := f.seedUser(t, "teacher1")

	created, err := f.create.Execute(ctx, CreateAPIKeyCommand{UserID: owner.ID, Name: "ci"})
	require.NoError(t, err)

	require.NoError(t, f.remove.Execute(ctx, owner.ID, created.Key.ID))

	_, err = f.verify.Execute(ctx, created.RawKey)
	assert.True(t, errors.IsUnauthorizedError(err))
}
