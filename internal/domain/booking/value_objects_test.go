//go:build unit

package booking_test

import (
	"testing"
	"time"

	"itemshare/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		p, err := booking.NewPeriod(base, base.Add(2*time.Hour))
		require.NoError(t, err)

		assert.Equal(t, base, p.Start())
		assert.Equal(t, base.Add(2*time.Hour), p.End())
		assert.Equal(t, 2*time.Hour, p.Duration())
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := booking.NewPeriod(base.Add(time.Hour), base)
		assert.ErrorIs(t, err, booking.ErrStartAfterEnd)
	})

	t.Run("start equals end", func(t *testing.T) {
		_, err := booking.NewPeriod(base, base)
		assert.ErrorIs(t, err, booking.ErrStartEqualsEnd)
	})

	t.Run("the two rejections carry distinct messages", func(t *testing.T) {
		_, afterErr := booking.NewPeriod(base.Add(time.Hour), base)
		_, equalErr := booking.NewPeriod(base, base)
		require.Error(t, afterErr)
		require.Error(t, equalErr)
		assert.NotEqual(t, afterErr.Error(), equalErr.Error())
	})
}

func TestPeriodPartition(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mustPeriod := func(start, end time.Time) booking.Period {
		p, err := booking.NewPeriod(start, end)
		require.NoError(t, err)
		return p
	}

	cases := []struct {
		name    string
		period  booking.Period
		current bool
		past    bool
		future  bool
	}{
		{
			name:    "strictly past",
			period:  mustPeriod(now.Add(-3*time.Hour), now.Add(-time.Hour)),
			past:    true,
		},
		{
			name:    "spanning now",
			period:  mustPeriod(now.Add(-time.Hour), now.Add(time.Hour)),
			current: true,
		},
		{
			name:   "strictly future",
			period: mustPeriod(now.Add(time.Hour), now.Add(3*time.Hour)),
			future: true,
		},
		{
			name:   "ending exactly at now is neither past nor current",
			period: mustPeriod(now.Add(-time.Hour), now),
		},
		{
			name:   "starting exactly at now is neither future nor current",
			period: mustPeriod(now, now.Add(time.Hour)),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.current, tc.period.IsCurrent(now))
			assert.Equal(t, tc.past, tc.period.IsPast(now))
			assert.Equal(t, tc.future, tc.period.IsFuture(now))
		})
	}
}
