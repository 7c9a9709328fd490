package shared

import (
	"context"
	"time"

	"itemshare/internal/domain/booking"
	"itemshare/internal/domain/comment"
	"itemshare/internal/domain/item"
	"itemshare/internal/domain/request"
	"itemshare/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn inside a single transaction so precondition reads and
	// the write they guard cannot interleave with a concurrent decision on
	// the same row.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Users() UserRepository
	Items() ItemRepository
	Bookings() BookingRepository
	Comments() CommentRepository
	Requests() RequestRepository
	Reads() CommandReads
}

// CommandReads are the write-side lookups. They return snapshots, not
// query views, so commands never depend on read-model shapes.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// HasPastBooking reports whether the user has any booking of the item
	// ending before now. Status is intentionally not part of the predicate.
	HasPastBooking(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error)
}

type UserSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type ItemSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

// BookingSnapshot carries the item owner alongside the booking so
// authorization never needs a second lookup.
type BookingSnapshot struct {
	ID       uuid.UUID
	ItemID   uuid.UUID
	BookerID uuid.UUID
	OwnerID  uuid.UUID
	Start    time.Time
	End      time.Time
	Status   booking.Status
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ItemRepository interface {
	Create(ctx context.Context, it *item.Item) error
	Update(ctx context.Context, it *item.Item) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) error
}

type RequestRepository interface {
	Create(ctx context.Context, r *request.ItemRequest) error
}
