package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTotalDays(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("whole days", func(t *testing.T) {
		assert.Equal(t, 2, TotalDays(day(2025, 1, 10), day(2025, 1, 12)))
		assert.Equal(t, 1, TotalDays(day(2025, 1, 10), day(2025, 1, 11)))
		assert.Equal(t, 31, TotalDays(day(2025, 1, 1), day(2025, 2, 1)))
	})

	t.Run("partial days round up", func(t *testing.T) {
		start := day(2025, 1, 10)
		end := start.Add(36 * time.Hour)
		assert.Equal(t, 2, TotalDays(start, end))
	})

	t.Run("non-positive span", func(t *testing.T) {
		assert.Equal(t, 0, TotalDays(day(2025, 1, 12), day(2025, 1, 12)))
		assert.Equal(t, 0, TotalDays(day(2025, 1, 12), day(2025, 1, 10)))
	})
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusConfirmed.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, Status("done").Valid())
	assert.False(t, Status("").Valid())
}
