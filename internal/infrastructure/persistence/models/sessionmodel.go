package models

import "time"

// SessionModel represents the database persistence model for sessions.
type SessionModel struct {
	ID        string    `gorm:"primarykey;size:64"`
	UserID    string    `gorm:"size:32;not null;index"`
	TokenHash string    `gorm:"size:64;not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}
