package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	period    Period
	status    Status
	createdAt time.Time
}

// NewBooking creates a WAITING booking. Cross-entity rules (item
// availability, booker existence) are checked by the usecase before this
// constructor runs; booking a self-owned item is not rejected here or
// anywhere else.
func NewBooking(itemID, bookerID uuid.UUID, period Period) *Booking {
	return &Booking{
		id:       uuid.New(),
		itemID:   itemID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}
}

func ReconstructBooking(
	id, itemID, bookerID uuid.UUID,
	period Period,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		period:    period,
		status:    status,
		createdAt: createdAt,
	}
}

// Decide moves the booking to APPROVED or REJECTED. An already-decided
// booking may be decided again; the overwrite is intentional.
func (b *Booking) Decide(approved bool) {
	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
}

func (b *Booking) IsDecided() bool {
	return b.status != StatusWaiting
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) Period() Period       { return b.period }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
