package commands

import (
	"context"
	"log/slog"
	"time"

	"itemshare/internal/domain/booking"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/errs"
	"itemshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookerNotFound  = errs.New("booker not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrItemUnavailable = errs.New("item not available for booking")
	ErrInvalidPeriod   = errs.New("invalid booking period")
	ErrNotItemOwner    = errs.New("acting user is not the item owner")
)

type CreateBookingCommand struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, cmd CreateBookingCommand, bookerID uuid.UUID) (*CreateBookingResult, error)
	Decide(ctx context.Context, bookingID uuid.UUID, approved bool, actorID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewBookingCommands(uow shared.UnitOfWork) BookingCommands {
	return &bookingUseCaseImpl{uow: uow}
}

// Create runs the business checks in a fixed order: booker lookup, item
// lookup, period validation, availability. Booking one's own item is not
// rejected.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, cmd CreateBookingCommand, bookerID uuid.UUID) (*CreateBookingResult, error) {
	var createdID uuid.UUID

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		booker, err := tx.Reads().UserByID(ctx, bookerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Newf("booker with id = %s not found", bookerID), ErrBookerNotFound)
			}
			return err
		}

		it, err := tx.Reads().ItemByID(ctx, cmd.ItemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Newf("item with id = %s not found", cmd.ItemID), ErrItemNotFound)
			}
			return err
		}

		period, err := booking.NewPeriod(cmd.Start, cmd.End)
		if err != nil {
			return errs.Mark(err, ErrInvalidPeriod)
		}

		if !it.Available {
			return errs.Mark(errs.Newf("item with id = %s is not available for booking", it.ID), ErrItemUnavailable)
		}

		b := booking.NewBooking(it.ID, booker.ID, period)
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}

		createdID = b.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("created booking", "booking_id", createdID, "item_id", cmd.ItemID, "booker_id", bookerID)
	return &CreateBookingResult{BookingID: createdID}, nil
}

// Decide approves or rejects a booking. Only the item owner may decide;
// re-deciding an already-decided booking overwrites the previous status.
// The read and the status write share one transaction.
func (uc *bookingUseCaseImpl) Decide(ctx context.Context, bookingID uuid.UUID, approved bool, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Newf("booking with id = %s not found", bookingID), ErrBookingNotFound)
			}
			return err
		}

		if snap.OwnerID != actorID {
			return errs.Mark(
				errs.Newf("user %s may not decide booking %s: item owner is %s", actorID, bookingID, snap.OwnerID),
				ErrNotItemOwner,
			)
		}

		status := booking.Decision(approved)
		if err := tx.Bookings().UpdateStatus(ctx, snap.ID, status); err != nil {
			return err
		}

		slog.Info("booking decided", "booking_id", bookingID, "status", status)
		return nil
	})
}
