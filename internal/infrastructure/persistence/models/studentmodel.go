package models

import "time"

// StudentModel represents the database persistence model for students.
type StudentModel struct {
	ID            string `gorm:"primarykey;size:32"`
	StudentNumber string `gorm:"size:50;not null;uniqueIndex"`
	FirstName     string `gorm:"size:100;not null"`
	LastName      string `gorm:"size:100"`
	Email         string `gorm:"size:255"`
	Phone         string `gorm:"size:50"`
	Status        string `gorm:"size:20;not null;index"`
	OwnerID       string `gorm:"size:32;not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (StudentModel) TableName() string {
	return "students"
}
