package readstore

import (
	"context"
	"time"

	"itemshare/internal/infra"
	"itemshare/internal/infra/db"
	"itemshare/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads serves the write-side snapshot lookups. Constructed over
// a transaction it shares the transaction's visibility; constructed over
// the pool it reads committed state.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

func (r *CommandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	const q = `SELECT id, name, email FROM users WHERE id = $1`

	var snap shared.UserSnapshot
	if err := r.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.Name, &snap.Email); err != nil {
		return nil, infra.WrapRepoErr("failed to get user by id", err)
	}
	return &snap, nil
}

func (r *CommandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	const q = `SELECT id, name, email FROM users WHERE email = $1`

	var snap shared.UserSnapshot
	if err := r.db.QueryRow(ctx, q, email).Scan(&snap.ID, &snap.Name, &snap.Email); err != nil {
		return nil, infra.WrapRepoErr("failed to get user by email", err)
	}
	return &snap, nil
}

func (r *CommandReads) ItemByID(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	const q = `
		SELECT id, owner_id, name, description, available, request_id
		FROM items
		WHERE id = $1`

	var snap shared.ItemSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.OwnerID, &snap.Name, &snap.Description, &snap.Available, &snap.RequestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get item by id", err)
	}
	return &snap, nil
}

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const q = `
		SELECT b.id, b.item_id, b.booker_id, i.owner_id, b.start_ts, b.end_ts, b.status
		FROM bookings b
		JOIN items i ON b.item_id = i.id
		WHERE b.id = $1`

	var snap shared.BookingSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.ItemID, &snap.BookerID, &snap.OwnerID, &snap.Start, &snap.End, &snap.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return &snap, nil
}

// HasPastBooking checks only that a booking of the item by the user
// ended before now; status is not part of the predicate.
func (r *CommandReads) HasPastBooking(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1 AND booker_id = $2 AND end_ts < $3
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, itemID, bookerID, now).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check past bookings", err)
	}
	return exists, nil
}
