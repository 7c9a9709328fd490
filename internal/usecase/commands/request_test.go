//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"itemshare/internal/domain/request"
	"itemshare/internal/pkg/clock"
	"itemshare/internal/usecase/commands"
	"itemshare/internal/usecase/shared"
	sharedmock "itemshare/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	requests *sharedmock.MockRequestRepository
	clock    *clock.MockClock
	uc       commands.RequestCommands
}

func (s *RequestCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.reads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.requests = sharedmock.NewMockRequestRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Requests().Return(s.requests).AnyTimes()

	s.uc = commands.NewRequestCommands(s.uow, s.clock)
}

func (s *RequestCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestCommandsSuite(t *testing.T) {
	suite.Run(t, new(RequestCommandsTestSuite))
}

func (s *RequestCommandsTestSuite) TestCreate() {
	s.Run("success: request stamped with the clock", func() {
		requestor := &shared.UserSnapshot{ID: uuid.New(), Name: "alice", Email: "alice@example.com"}

		s.reads.EXPECT().UserByID(gomock.Any(), requestor.ID).Return(requestor, nil)
		s.requests.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *request.ItemRequest) error {
				s.Equal("need a drill", r.Description())
				s.Equal(requestor.ID, r.RequestorID())
				s.Equal(s.clock.Now(), r.Created())
				return nil
			})

		result, err := s.uc.Create(context.Background(), "need a drill", requestor.ID)
		s.NoError(err)
		s.NotEqual(uuid.Nil, result.RequestID)
	})

	s.Run("error: unknown requestor", func() {
		requestorID := uuid.New()

		s.reads.EXPECT().UserByID(gomock.Any(), requestorID).Return(nil, notFoundErr())

		_, err := s.uc.Create(context.Background(), "need a drill", requestorID)
		s.ErrorIs(err, commands.ErrUserNotFound)
	})

	s.Run("error: blank description fails domain validation", func() {
		requestor := &shared.UserSnapshot{ID: uuid.New(), Name: "alice", Email: "alice@example.com"}

		s.reads.EXPECT().UserByID(gomock.Any(), requestor.ID).Return(requestor, nil)

		_, err := s.uc.Create(context.Background(), "   ", requestor.ID)
		s.ErrorIs(err, commands.ErrDomainValidation)
	})
}
