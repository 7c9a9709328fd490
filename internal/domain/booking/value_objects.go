package booking

import (
	"errors"
	"time"
)

var (
	ErrStartAfterEnd  = errors.New("booking start must not be after its end")
	ErrStartEqualsEnd = errors.New("booking start must not equal its end")
)

// Period is the half-open booking interval. Both bounds are required;
// field-level future checks happen at the binding layer before a Period
// is ever constructed.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if start.After(end) {
		return Period{}, ErrStartAfterEnd
	}
	if start.Equal(end) {
		return Period{}, ErrStartEqualsEnd
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// IsCurrent uses strict inequalities on both sides, so for one snapshot
// of now a booking lands in exactly one of current/past/future.
func (p Period) IsCurrent(now time.Time) bool {
	return p.start.Before(now) && p.end.After(now)
}

func (p Period) IsPast(now time.Time) bool {
	return p.end.Before(now)
}

func (p Period) IsFuture(now time.Time) bool {
	return p.start.After(now)
}
