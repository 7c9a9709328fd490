//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"itemshare/internal/domain/booking"
	"itemshare/internal/infra"
	"itemshare/internal/usecase/commands"
	"itemshare/internal/usecase/shared"
	sharedmock "itemshare/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", errors.New("no rows in result set"), infra.KindNotFound)
}

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	bookings *sharedmock.MockBookingRepository
	uc       commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.reads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.bookings = sharedmock.NewMockBookingRepository(s.mockCtrl)

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()

	s.uc = commands.NewBookingCommands(s.uow)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) validCreateCommand() (commands.CreateBookingCommand, uuid.UUID, *shared.UserSnapshot, *shared.ItemSnapshot) {
	bookerID := uuid.New()
	itemID := uuid.New()
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	cmd := commands.CreateBookingCommand{
		ItemID: itemID,
		Start:  start,
		End:    start.Add(48 * time.Hour),
	}
	booker := &shared.UserSnapshot{ID: bookerID, Name: "booker", Email: "booker@example.com"}
	it := &shared.ItemSnapshot{ID: itemID, OwnerID: uuid.New(), Name: "drill", Available: true}
	return cmd, bookerID, booker, it
}

func (s *BookingCommandsTestSuite) TestCreate() {
	s.Run("success: new booking starts WAITING", func() {
		cmd, bookerID, booker, it := s.validCreateCommand()

		s.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(booker, nil)
		s.reads.EXPECT().ItemByID(gomock.Any(), cmd.ItemID).Return(it, nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				s.Equal(booking.StatusWaiting, b.Status())
				s.Equal(cmd.ItemID, b.ItemID())
				s.Equal(bookerID, b.BookerID())
				return nil
			})

		result, err := s.uc.Create(context.Background(), cmd, bookerID)
		s.NoError(err)
		s.NotEqual(uuid.Nil, result.BookingID)
	})

	s.Run("success: booking one's own item is allowed", func() {
		cmd, bookerID, booker, it := s.validCreateCommand()
		it.OwnerID = bookerID

		s.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(booker, nil)
		s.reads.EXPECT().ItemByID(gomock.Any(), cmd.ItemID).Return(it, nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.uc.Create(context.Background(), cmd, bookerID)
		s.NoError(err)
	})

	s.Run("error: unknown booker", func() {
		cmd, bookerID, _, _ := s.validCreateCommand()

		s.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(nil, notFoundErr())

		_, err := s.uc.Create(context.Background(), cmd, bookerID)
		s.ErrorIs(err, commands.ErrBookerNotFound)
	})

	s.Run("error: unknown item, checked after the booker", func() {
		cmd, bookerID, booker, _ := s.validCreateCommand()

		s.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(booker, nil)
		s.reads.EXPECT().ItemByID(gomock.Any(), cmd.ItemID).Return(nil, notFoundErr())

		_, err := s.uc.Create(context.Background(), cmd, bookerID)
		s.ErrorIs(err, commands.ErrItemNotFound)
	})

	s.Run("error: start after end", func() {
		cmd, bookerID, booker, it := s.validCreateCommand()
		cmd.Start, cmd.End = cmd.End, cmd.Start

		s.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(booker, nil)
		s.reads.EXPECT().ItemByID(gomock.Any(), cmd.ItemID).Return(it, nil)

		_, err := s.uc.Create(context.Background(), cmd, bookerID)
		s.ErrorIs(err, commands.ErrInvalidPeriod)
		s.ErrorIs(err, booking.ErrStartAfterEnd)
	})

	s.Run("error: start equals end", func() {
		cmd, bookerID, booker, it := s.validCreateCommand()
		cmd.End = cmd.Start

		s.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(booker, nil)
		s.reads.EXPECT().ItemByID(gomock.Any(), cmd.ItemID).Return(it, nil)

		_, err := s.uc.Create(context.Background(), cmd, bookerID)
		s.ErrorIs(err, commands.ErrInvalidPeriod)
		s.ErrorIs(err, booking.ErrStartEqualsEnd)
	})

	s.Run("error: item unavailable, checked after period validation", func() {
		cmd, bookerID, booker, it := s.validCreateCommand()
		it.Available = false
		cmd.Start, cmd.End = cmd.End, cmd.Start

		s.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(booker, nil)
		s.reads.EXPECT().ItemByID(gomock.Any(), cmd.ItemID).Return(it, nil)

		// The bad period wins: availability is never reached.
		_, err := s.uc.Create(context.Background(), cmd, bookerID)
		s.ErrorIs(err, commands.ErrInvalidPeriod)
	})

	s.Run("error: item unavailable", func() {
		cmd, bookerID, booker, it := s.validCreateCommand()
		it.Available = false

		s.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(booker, nil)
		s.reads.EXPECT().ItemByID(gomock.Any(), cmd.ItemID).Return(it, nil)

		_, err := s.uc.Create(context.Background(), cmd, bookerID)
		s.ErrorIs(err, commands.ErrItemUnavailable)
	})
}

func (s *BookingCommandsTestSuite) bookingSnapshot(ownerID uuid.UUID) *shared.BookingSnapshot {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	return &shared.BookingSnapshot{
		ID:       uuid.New(),
		ItemID:   uuid.New(),
		BookerID: uuid.New(),
		OwnerID:  ownerID,
		Start:    start,
		End:      start.Add(24 * time.Hour),
		Status:   booking.StatusWaiting,
	}
}

func (s *BookingCommandsTestSuite) TestDecide() {
	s.Run("success: owner approves", func() {
		ownerID := uuid.New()
		snap := s.bookingSnapshot(ownerID)

		s.reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), snap.ID, booking.StatusApproved).Return(nil)

		s.NoError(s.uc.Decide(context.Background(), snap.ID, true, ownerID))
	})

	s.Run("success: owner rejects", func() {
		ownerID := uuid.New()
		snap := s.bookingSnapshot(ownerID)

		s.reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), snap.ID, booking.StatusRejected).Return(nil)

		s.NoError(s.uc.Decide(context.Background(), snap.ID, false, ownerID))
	})

	s.Run("success: an already decided booking is decided again", func() {
		ownerID := uuid.New()
		snap := s.bookingSnapshot(ownerID)
		snap.Status = booking.StatusApproved

		s.reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), snap.ID, booking.StatusRejected).Return(nil)

		s.NoError(s.uc.Decide(context.Background(), snap.ID, false, ownerID))
	})

	s.Run("error: unknown booking", func() {
		id := uuid.New()
		s.reads.EXPECT().BookingByID(gomock.Any(), id).Return(nil, notFoundErr())

		err := s.uc.Decide(context.Background(), id, true, uuid.New())
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})

	s.Run("error: the booker may not decide their own request", func() {
		snap := s.bookingSnapshot(uuid.New())

		s.reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)

		err := s.uc.Decide(context.Background(), snap.ID, true, snap.BookerID)
		s.ErrorIs(err, commands.ErrNotItemOwner)
	})
}
