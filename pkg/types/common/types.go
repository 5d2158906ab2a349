// Package common holds small shared value types used across layers.
package common

import (
	"time"

	"github.com/google/uuid"
)

// ID is a string alias for UUID v4.
type ID string

// NewID generates a fresh random ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// String returns the ID as a plain string.
func (id ID) String() string { return string(id) }

// Metadata is an open-ended key-value bag attached to published events.
type Metadata map[string]string

// DateRange is a half-open [Start, End) date interval.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateKey formats t as a yyyy-mm-dd string, the canonical map key for
// date-set lookups.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
