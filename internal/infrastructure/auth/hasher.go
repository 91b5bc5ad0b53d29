package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes         = 16
	keyBytes          = 64
	minIterations     = 100000
	DefaultIterations = 120000
)

// PBKDF2PasswordHasher derives password hashes with PBKDF2-HMAC-SHA512.
// Stored form is "hex(salt):hex(key)"; the salt is random per hash so the
// same password never produces the same stored string twice.
type PBKDF2PasswordHasher struct {
	iterations int
}

func NewPBKDF2PasswordHasher(iterations int) *PBKDF2PasswordHasher {
	if iterations < minIterations {
		iterations = DefaultIterations
	}
	return &PBKDF2PasswordHasher{iterations: iterations}
}

func (h *PBKDF2PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, keyBytes, sha512.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

func (h *PBKDF2PasswordHasher) Verify(password, encoded string) error {
	parts := strings.SplitN(encoded, ":", 2)
	if len(parts) != 2 {
		// Same generic error as a mismatch so callers can't distinguish a
		// malformed stored hash from a wrong password.
		return fmt.Errorf("password verification failed")
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil || len(salt) != saltBytes {
		return fmt.Errorf("password verification failed")
	}
	stored, err := hex.DecodeString(parts[1])
	if err != nil || len(stored) != keyBytes {
		return fmt.Errorf("password verification failed")
	}

	derived := pbkdf2.Key([]byte(password), salt, h.iterations, keyBytes, sha512.New)
	if subtle.ConstantTimeCompare(derived, stored) != 1 {
		return fmt.Errorf("password verification failed")
	}
	return nil
}
