package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, int32(0), DaysBetween(start, start))
	assert.Equal(t, int32(0), DaysBetween(start, start.Add(23*time.Hour)))
	assert.Equal(t, int32(1), DaysBetween(start, start.Add(24*time.Hour)))
	assert.Equal(t, int32(10), DaysBetween(start, start.Add(10*24*time.Hour+5*time.Hour)))
	assert.Equal(t, int32(0), DaysBetween(start, start.Add(-48*time.Hour)))
}
