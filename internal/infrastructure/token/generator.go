// Package token generates and hashes the opaque secrets used for sessions
// and API keys. Raw tokens are never stored; lookups go through their SHA-256.
package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

const tokenRandomBytes = 32

type Generator interface {
	// Generate returns a raw token (prefix + hex of 32 random bytes) and its hash.
	Generate(prefix string) (plainToken string, hash string, err error)
	Hash(plainToken string) string
	Verify(plainToken, hash string) bool
}

type generator struct{}

func NewGenerator() Generator {
	return &generator{}
}

func (g *generator) Generate(prefix string) (string, string, error) {
	randomBytes := make([]byte, tokenRandomBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	plainToken := prefix + hex.EncodeToString(randomBytes)
	return plainToken, g.Hash(plainToken), nil
}

func (g *generator) Hash(plainToken string) string {
	sum := sha256.Sum256([]byte(plainToken))
	return hex.EncodeToString(sum[:])
}

func (g *generator) Verify(plainToken, hash string) bool {
	computed := g.Hash(plainToken)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
