package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefundEligibility(t *testing.T) {
	exit := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("day 10 leaves 4 days", func(t *testing.T) {
		eligible, daysLeft := RefundEligibility(exit, exit.Add(10*24*time.Hour))
		assert.False(t, eligible)
		assert.Equal(t, int32(4), daysLeft)
	})

	t.Run("partial day still counts as a day left", func(t *testing.T) {
		eligible, daysLeft := RefundEligibility(exit, exit.Add(13*24*time.Hour+6*time.Hour))
		assert.False(t, eligible)
		assert.Equal(t, int32(1), daysLeft)
	})

	t.Run("eligible at exactly 14 days", func(t *testing.T) {
		eligible, daysLeft := RefundEligibility(exit, exit.Add(14*24*time.Hour))
		assert.True(t, eligible)
		assert.Equal(t, int32(0), daysLeft)
	})

	t.Run("eligible long after", func(t *testing.T) {
		eligible, _ := RefundEligibility(exit, exit.Add(90*24*time.Hour))
		assert.True(t, eligible)
	})
}

func TestRefundAmount(t *testing.T) {
	assert.Equal(t, int64(100000), RefundAmount(200000))
	assert.Equal(t, int64(50), RefundAmount(101))
	assert.Equal(t, int64(0), RefundAmount(0))
}
