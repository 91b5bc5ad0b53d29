package models

import (
	"time"

	"gorm.io/datatypes"
)

// AttendanceModel represents the database persistence model for attendance
// records. Date is the zero-padded YYYY-MM-DD calendar date, stored as a
// string so lexical range queries match chronological order. The raw
// geolocation payload is stored verbatim as JSON.
type AttendanceModel struct {
	ID        string         `gorm:"primarykey;size:32"`
	ClassID   string         `gorm:"size:32;not null;index"`
	StudentID string         `gorm:"size:32;not null;index"`
	Date      string         `gorm:"size:10;not null;index"`
	Status    string         `gorm:"size:20;not null"`
	Notes     string         `gorm:"type:text"`
	Location  datatypes.JSON `gorm:"type:json"`
	CheckIn   *time.Time
	CheckOut  *time.Time
	MarkedBy  string `gorm:"size:32;not null;index"`
	MarkedAt  time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (AttendanceModel) TableName() string {
	return "attendance_records"
}
