// Package apikey holds the API key aggregate. A key's raw value exists only
// at creation time; the store keeps its hash and a short display prefix.
package apikey

import (
	"fmt"
	"strings"
	"time"

	"github.com/pharris560/ace-attendance/internal/shared/biztime"
	"github.com/pharris560/ace-attendance/internal/shared/id"
	"github.com/pharris560/ace-attendance/internal/shared/utils"
)

// RawKeyPrefix is the recognizable static prefix of every issued key,
// distinguishing API keys from other secrets in logs and config files.
const RawKeyPrefix = "ak_"

// DisplayPrefixLength is how many leading characters of the raw key are
// retained for display.
const DisplayPrefixLength = 12

type APIKey struct {
	ID         string
	UserID     string
	Name       string
	KeyHash    string
	KeyPrefix  string
	Active     bool
	CreatedAt  time.Time
	LastUsedAt *time.Time
}

// New creates an active API key record from an already-hashed raw key.
func New(userID, name, keyHash, keyPrefix string) (*APIKey, error) {
	name = strings.TrimSpace(name)
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("key name is required")
	}
	if keyHash == "" || keyPrefix == "" {
		return nil, fmt.Errorf("key hash and prefix are required")
	}

	return &APIKey{
		ID:        id.NewAPIKeyID(),
		UserID:    userID,
		Name:      name,
		KeyHash:   keyHash,
		KeyPrefix: keyPrefix,
		Active:    true,
		CreatedAt: biztime.NowUTC(),
	}, nil
}

// Touch records a successful use of the key.
func (k *APIKey) Touch() {
	now := biztime.NowUTC()
	k.LastUsedAt = &now
}

// Public is the serializable view of an APIKey. The hash has no field here;
// the key appears only in masked form.
type Public struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	MaskedKey  string     `json:"key"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
}

// Public returns the masked view of the key.
func (k *APIKey) Public() Public {
	return Public{
		ID:         k.ID,
		Name:       k.Name,
		MaskedKey:  utils.MaskAPIKey(k.KeyPrefix),
		Active:     k.Active,
		CreatedAt:  k.CreatedAt,
		LastUsedAt: k.LastUsedAt,
	}
}
