package user

import (
	"context"
	"fmt"
	"time"

	"github.com/pharris560/ace-attendance/internal/shared/biztime"
	"github.com/pharris560/ace-attendance/internal/shared/id"
)

// Session is a server-side login session. The raw token is only ever held by
// the client; the store keeps its SHA-256 hash as the lookup key.
type Session struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewSession creates a session for userID expiring after ttl.
func NewSession(userID, tokenHash string, ttl time.Duration) (*Session, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if tokenHash == "" {
		return nil, fmt.Errorf("token hash is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}

	now := biztime.NowUTC()
	return &Session{
		ID:        id.MustGenerate(24),
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}, nil
}

// IsExpired reports whether the session has passed its expiry instant.
// A session is valid up to and including ExpiresAt.
func (s *Session) IsExpired() bool {
	return biztime.NowUTC().After(s.ExpiresAt)
}

// SessionRepository stores login sessions keyed by token hash.
// GetByTokenHash returns expired sessions too: lazy expiry is decided and
// performed by the caller so that the eviction is observable.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteByUserID(ctx context.Context, userID string) error
	// DeleteExpired removes every session past its expiry and returns the count.
	DeleteExpired(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}
