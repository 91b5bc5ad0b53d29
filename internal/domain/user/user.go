package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/pharris560/ace-attendance/internal/shared/biztime"
	"github.com/pharris560/ace-attendance/internal/shared/id"
)

// User is the account aggregate. PasswordHash holds the encoded salt+derived
// key and must never cross the serialization boundary; read paths expose the
// Public view instead.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	Email        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a user with a fresh prefixed ID and timestamps.
// passwordHash must already be encoded by a PasswordHasher.
func NewUser(username, passwordHash, fullName, email string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		ID:           id.NewUserID(),
		Username:     username,
		PasswordHash: passwordHash,
		FullName:     strings.TrimSpace(fullName),
		Email:        strings.TrimSpace(email),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Public is the serializable view of a User. It has no password field at all,
// so leaking the hash through any read path is a compile-time impossibility.
type Public struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the password-free view of the user.
func (u *User) Public() Public {
	return Public{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// PasswordHasher derives and verifies password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify returns a generic error on any mismatch; callers must not be able
	// to distinguish a wrong password from a malformed stored hash.
	Verify(password, encoded string) error
}
