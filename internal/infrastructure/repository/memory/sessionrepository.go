package memory

import (
	"context"

	"github.com/pharris560/ace-attendance/internal/domain/user"
	"github.com/pharris560/ace-attendance/internal/shared/biztime"
)

type SessionRepository struct {
	store *Store
}

func NewSessionRepository(store *Store) user.SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) Create(ctx context.Context, session *user.Session) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.TokenHash] = *session
	return nil
}

func (r *SessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*user.Session, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[tokenHash]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for hash, sess := range s.sessions {
		if sess.ID == sessionID {
			delete(s.sessions, hash)
			return nil
		}
	}
	// Racing deletions converge on "session absent".
	return nil
}

func (r *SessionRepository) DeleteByUserID(ctx context.Context, userID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for hash, sess := range s.sessions {
		if sess.UserID == userID {
			delete(s.sessions, hash)
		}
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := biztime.NowUTC()
	var removed int64
	for hash, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, hash)
			removed++
		}
	}
	return removed, nil
}

func (r *SessionRepository) Count(ctx context.Context) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.sessions)), nil
}
