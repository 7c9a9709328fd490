package booking

import "fmt"

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Decision maps an owner's verdict onto a status. There is no guard for
// bookings that were decided before; the new status simply replaces the
// old one.
func Decision(approved bool) Status {
	if approved {
		return StatusApproved
	}
	return StatusRejected
}

// StateFilter scopes booking listings. The raw query value is matched
// case-sensitively against the closed set below.
type StateFilter string

const (
	FilterAll      StateFilter = "ALL"
	FilterCurrent  StateFilter = "CURRENT"
	FilterPast     StateFilter = "PAST"
	FilterFuture   StateFilter = "FUTURE"
	FilterWaiting  StateFilter = "WAITING"
	FilterRejected StateFilter = "REJECTED"
)

// ParseStateFilter returns a plain error on unknown input. The boundary
// layer does not translate it, so an unmapped value surfaces as an
// internal failure rather than a domain one.
func ParseStateFilter(s string) (StateFilter, error) {
	switch StateFilter(s) {
	case FilterAll, FilterCurrent, FilterPast, FilterFuture, FilterWaiting, FilterRejected:
		return StateFilter(s), nil
	default:
		return "", fmt.Errorf("unknown booking state filter: %q", s)
	}
}
