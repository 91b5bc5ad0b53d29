package models

import "time"

// EnrollmentModel represents the database persistence model for enrollments.
type EnrollmentModel struct {
	ID         string `gorm:"primarykey;size:32"`
	ClassID    string `gorm:"size:32;not null;index:idx_enrollments_class_student"`
	StudentID  string `gorm:"size:32;not null;index:idx_enrollments_class_student"`
	Status     string `gorm:"size:20;not null;index"`
	EnrolledAt time.Time
}

// TableName specifies the table name for GORM
func (EnrollmentModel) TableName() string {
	return "enrollments"
}
