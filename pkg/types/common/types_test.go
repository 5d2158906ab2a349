package common

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewID_IsUUID(t *testing.T) {
	id := NewID()
	_, err := uuid.Parse(id.String())
	assert.NoError(t, err)
}

func TestDateRange_Contains(t *testing.T) {
	r := DateRange{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, r.Contains(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2025, 3, 7, 23, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)))
}

func TestDateHelpers(t *testing.T) {
	ts := time.Date(2025, 6, 10, 14, 30, 45, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), DateOnly(ts))
	assert.Equal(t, "2025-06-10", DateKey(ts))
}
