package writerepo

import (
	"context"

	"itemshare/internal/domain/booking"
	"itemshare/internal/infra"
	"itemshare/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const q = `
		INSERT INTO bookings (id, item_id, booker_id, start_ts, end_ts, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`

	_, err := r.db.Exec(ctx, q,
		b.ID(), b.ItemID(), b.BookerID(), b.Period().Start(), b.Period().End(), b.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

// UpdateStatus overwrites whatever status the row holds; the row lock
// taken by UPDATE serializes concurrent decisions.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	const q = `
		UPDATE bookings
		SET status = $2
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
