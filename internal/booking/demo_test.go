package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoRepositoryList(t *testing.T) {
	repo := NewDemoRepository()
	ctx := context.Background()

	t.Run("unfiltered returns the demo dataset", func(t *testing.T) {
		bookings, total, err := repo.List(ctx, Filter{})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, bookings, 1)
		assert.Equal(t, "vf3", bookings[0].CarID)
	})

	t.Run("status filter matches exactly", func(t *testing.T) {
		bookings, total, err := repo.List(ctx, Filter{Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, bookings, 1)
		assert.Equal(t, StatusConfirmed, bookings[0].Status)

		bookings, total, err = repo.List(ctx, Filter{Status: "cancelled"})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, bookings)
	})

	t.Run("car filter matches exactly", func(t *testing.T) {
		_, total, err := repo.List(ctx, Filter{CarID: "vf3"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)

		_, total, err = repo.List(ctx, Filter{CarID: "vf9"})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})

	t.Run("combined filters", func(t *testing.T) {
		_, total, err := repo.List(ctx, Filter{Status: "confirmed", CarID: "vf3"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)

		_, total, err = repo.List(ctx, Filter{Status: "pending", CarID: "vf3"})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})
}

func TestDemoRepositoryWritesAreNotRetained(t *testing.T) {
	repo := NewDemoRepository()
	ctx := context.Background()

	b := &Booking{ID: "booking_123", CarID: "vf5", Status: StatusPending}
	require.NoError(t, repo.Create(ctx, b))

	_, total, err := repo.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total, "created bookings must not join the demo dataset")

	_, err = repo.GetByID(ctx, "booking_123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDemoRepositoryListReturnsCopies(t *testing.T) {
	repo := NewDemoRepository()
	ctx := context.Background()

	bookings, _, err := repo.List(ctx, Filter{})
	require.NoError(t, err)
	bookings[0].Status = StatusCancelled

	fresh, _, err := repo.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, fresh[0].Status)
}
