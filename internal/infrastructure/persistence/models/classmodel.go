package models

import "time"

// ClassModel represents the database persistence model for classes.
type ClassModel struct {
	ID         string `gorm:"primarykey;size:32"`
	Name       string `gorm:"size:255;not null"`
	Instructor string `gorm:"size:255"`
	Capacity   int    `gorm:"not null"`
	Schedule   string `gorm:"type:text"`
	Status     string `gorm:"size:20;not null;index"`
	OwnerID    string `gorm:"size:32;not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (ClassModel) TableName() string {
	return "classes"
}
