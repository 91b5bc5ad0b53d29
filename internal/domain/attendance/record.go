// Package attendance holds the attendance record aggregate and its statistics.
package attendance

import (
	"fmt"
	"time"

	"github.com/pharris560/ace-attendance/internal/shared/biztime"
	"github.com/pharris560/ace-attendance/internal/shared/id"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusTardy   Status = "tardy"
	StatusExcused Status = "excused"
)

// ValidStatus reports whether s is drawn from the closed four-value set.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusTardy, StatusExcused:
		return true
	}
	return false
}

// Geolocation is the raw location payload captured at marking time. It is
// stored verbatim; classifying it (onsite or not) is a presentation concern.
type Geolocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
	Address   string  `json:"address,omitempty"`
}

// Record is one attendance marking. Date is a calendar date (YYYY-MM-DD),
// not a timestamp; the intended grain is one record per student per class per
// date, but the store permits duplicates and readers pick the most recent by
// date, ties broken by MarkedAt (last write wins). Only the marking user may
// mutate a record.
type Record struct {
	ID        string
	ClassID   string
	StudentID string
	Date      string
	Status    Status
	Notes     string
	Location  *Geolocation
	CheckIn   *time.Time
	CheckOut  *time.Time
	MarkedBy  string
	MarkedAt  time.Time
	UpdatedAt time.Time
}

// New creates a record stamped with the marking user and the current time.
func New(markedBy, classID, studentID, date string, status Status) (*Record, error) {
	if markedBy == "" {
		return nil, fmt.Errorf("marking user is required")
	}
	if classID == "" || studentID == "" {
		return nil, fmt.Errorf("class ID and student ID are required")
	}
	if err := biztime.ValidateDate(date); err != nil {
		return nil, err
	}
	if !ValidStatus(status) {
		return nil, fmt.Errorf("invalid attendance status %q", status)
	}

	now := biztime.NowUTC()
	return &Record{
		ID:        id.NewAttendanceID(),
		ClassID:   classID,
		StudentID: studentID,
		Date:      date,
		Status:    status,
		MarkedBy:  markedBy,
		MarkedAt:  now,
		UpdatedAt: now,
	}, nil
}

// MarkedByUser reports whether userID created the record.
func (r *Record) MarkedByUser(userID string) bool {
	return r.MarkedBy == userID
}

// MoreRecentThan orders records for "current status" reads: by date
// descending, ties broken by MarkedAt descending.
func (r *Record) MoreRecentThan(other *Record) bool {
	if r.Date != other.Date {
		return r.Date > other.Date
	}
	return r.MarkedAt.After(other.MarkedAt)
}
