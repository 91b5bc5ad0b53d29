package models

import "time"

// APIKeyModel represents the database persistence model for API keys.
// Only the hash and the display prefix of the raw key are persisted.
type APIKeyModel struct {
	ID         string `gorm:"primarykey;size:32"`
	UserID     string `gorm:"size:32;not null;index"`
	Name       string `gorm:"size:100;not null"`
	KeyHash    string `gorm:"size:64;not null;uniqueIndex"`
	KeyPrefix  string `gorm:"size:16;not null"`
	Active     bool   `gorm:"not null;default:true"`
	CreatedAt  time.Time
	LastUsedAt *time.Time
}

// TableName specifies the table name for GORM
func (APIKeyModel) TableName() string {
	return "api_keys"
}
