//go:build unit

package booking_test

import (
	"testing"
	"time"

	"itemshare/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPeriod(t *testing.T) booking.Period {
	t.Helper()
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	p, err := booking.NewPeriod(start, start.Add(24*time.Hour))
	require.NoError(t, err)
	return p
}

func TestNewBooking(t *testing.T) {
	itemID := uuid.New()
	bookerID := uuid.New()

	b := booking.NewBooking(itemID, bookerID, newTestPeriod(t))

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, itemID, b.ItemID())
	assert.Equal(t, bookerID, b.BookerID())
	assert.Equal(t, booking.StatusWaiting, b.Status())
	assert.False(t, b.IsDecided())
}

func TestBookingDecide(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), newTestPeriod(t))
		b.Decide(true)
		assert.Equal(t, booking.StatusApproved, b.Status())
		assert.True(t, b.IsDecided())
	})

	t.Run("reject", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), newTestPeriod(t))
		b.Decide(false)
		assert.Equal(t, booking.StatusRejected, b.Status())
		assert.True(t, b.IsDecided())
	})

	t.Run("a decided booking can be decided again", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), newTestPeriod(t))
		b.Decide(true)
		b.Decide(false)
		assert.Equal(t, booking.StatusRejected, b.Status())
	})
}

func TestDecision(t *testing.T) {
	assert.Equal(t, booking.StatusApproved, booking.Decision(true))
	assert.Equal(t, booking.StatusRejected, booking.Decision(false))
}

func TestParseStateFilter(t *testing.T) {
	valid := []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"}
	for _, v := range valid {
		t.Run(v, func(t *testing.T) {
			f, err := booking.ParseStateFilter(v)
			require.NoError(t, err)
			assert.Equal(t, booking.StateFilter(v), f)
		})
	}

	t.Run("unknown value", func(t *testing.T) {
		_, err := booking.ParseStateFilter("SOMEDAY")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SOMEDAY")
	})

	t.Run("matching is case sensitive", func(t *testing.T) {
		_, err := booking.ParseStateFilter("all")
		assert.Error(t, err)
	})
}
