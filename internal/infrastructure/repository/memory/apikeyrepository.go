package memory

import (
	"context"
	"sort"

	"github.com/pharris560/ace-attendance/internal/domain/apikey"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
)

type APIKeyRepository struct {
	store *Store
}

func NewAPIKeyRepository(store *Store) apikey.Repository {
	return &APIKeyRepository{store: store}
}

func (r *APIKeyRepository) Create(ctx context.Context, key *apikey.APIKey) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apiKeys[key.ID] = cloneAPIKey(*key)
	s.apiKeyIDByHash[key.KeyHash] = key.ID
	return nil
}

func (r *APIKeyRepository) GetByID(ctx context.Context, id string) (*apikey.APIKey, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	k, ok := s.apiKeys[id]
	if !ok {
		return nil, nil
	}
	k = cloneAPIKey(k)
	return &k, nil
}

func (r *APIKeyRepository) GetByKeyHash(ctx context.Context, keyHash string) (*apikey.APIKey, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.apiKeyIDByHash[keyHash]
	if !ok {
		return nil, nil
	}
	k := cloneAPIKey(s.apiKeys[id])
	return &k, nil
}

func (r *APIKeyRepository) ListByUserID(ctx context.Context, userID string) ([]*apikey.APIKey, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []*apikey.APIKey
	for _, k := range s.apiKeys {
		if k.UserID == userID {
			k := cloneAPIKey(k)
			keys = append(keys, &k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].CreatedAt.Before(keys[j].CreatedAt)
	})
	return keys, nil
}

func (r *APIKeyRepository) Update(ctx context.Context, key *apikey.APIKey) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.apiKeys[key.ID]; !ok {
		return errors.NewNotFoundError("API key not found")
	}
	s.apiKeys[key.ID] = cloneAPIKey(*key)
	return nil
}

func (r *APIKeyRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	k, ok := s.apiKeys[id]
	if !ok {
		return errors.NewNotFoundError("API key not found")
	}
	delete(s.apiKeyIDByHash, k.KeyHash)
	delete(s.apiKeys, id)
	return nil
}
