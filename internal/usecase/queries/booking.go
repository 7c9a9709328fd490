package queries

import (
	"context"
	"time"

	"itemshare/internal/domain/booking"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/clock"
	"itemshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

// Read models (DTO for read side)
type BookingView struct {
	ID     uuid.UUID `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Item   ItemRef   `json:"item"`
	Booker UserRef   `json:"booker"`
	// OwnerID is carried for authorization only and never serialized.
	OwnerID uuid.UUID `json:"-"`
}

type ItemRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// FindByBooker and FindByOwner return rows ordered by start ascending;
	// time predicates are evaluated against the passed now snapshot.
	FindByBooker(ctx context.Context, bookerID uuid.UUID, filter booking.StateFilter, now time.Time) ([]*BookingView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter booking.StateFilter, now time.Time) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id, actorID uuid.UUID) (*BookingView, error)
	ListByBooker(ctx context.Context, stateValue string, bookerID uuid.UUID) ([]*BookingView, error)
	ListByOwner(ctx context.Context, stateValue string, ownerID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	users UserReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, users: users, clock: clk}
}

// GetByID allows only the booker and the item owner to see a booking.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Newf("booking with id = %s not found", id), ErrBookingNotFound)
		}
		return nil, err
	}

	if actorID != view.Booker.ID && actorID != view.OwnerID {
		return nil, errs.Mark(
			errs.Newf("user %s may not view booking %s", actorID, id),
			ErrBookingAccess,
		)
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, stateValue string, bookerID uuid.UUID) ([]*BookingView, error) {
	filter, now, err := q.prepare(ctx, stateValue, bookerID)
	if err != nil {
		return nil, err
	}
	return q.store.FindByBooker(ctx, bookerID, filter, now)
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, stateValue string, ownerID uuid.UUID) ([]*BookingView, error) {
	filter, now, err := q.prepare(ctx, stateValue, ownerID)
	if err != nil {
		return nil, err
	}
	return q.store.FindByOwner(ctx, ownerID, filter, now)
}

// prepare parses the raw filter, checks the user exists and captures now
// exactly once so one listing never straddles two instants. A filter the
// closed set does not contain propagates as-is.
func (q *bookingQueriesImpl) prepare(ctx context.Context, stateValue string, userID uuid.UUID) (booking.StateFilter, time.Time, error) {
	filter, err := booking.ParseStateFilter(stateValue)
	if err != nil {
		return "", time.Time{}, err
	}

	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", time.Time{}, errs.Mark(errs.Newf("user with id = %s not found", userID), ErrUserNotFound)
		}
		return "", time.Time{}, err
	}

	return filter, q.clock.Now(), nil
}
