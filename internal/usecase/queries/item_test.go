//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"itemshare/internal/pkg/clock"
	"itemshare/internal/usecase/queries"
	queriesmock "itemshare/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	store    *queriesmock.MockItemReadStore
	users    *queriesmock.MockUserReadStore
	clock    *clock.MockClock
	q        queries.ItemQueries
}

func (s *ItemQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockItemReadStore(s.mockCtrl)
	s.users = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC))
	s.q = queries.NewItemQueries(s.store, s.users, s.clock)
}

func (s *ItemQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemQueriesSuite(t *testing.T) {
	suite.Run(t, new(ItemQueriesTestSuite))
}

func (s *ItemQueriesTestSuite) userView(id uuid.UUID) *queries.UserView {
	return &queries.UserView{ID: id, Name: "alice", Email: "alice@example.com"}
}

func (s *ItemQueriesTestSuite) TestGetByID() {
	s.Run("success", func() {
		id := uuid.New()
		view := &queries.ItemView{ID: id, Name: "drill", Available: true, Comments: []queries.CommentView{}}

		s.store.EXPECT().FindByID(gomock.Any(), id).Return(view, nil)

		got, err := s.q.GetByID(context.Background(), id)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: unknown item", func() {
		id := uuid.New()

		s.store.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.q.GetByID(context.Background(), id)
		s.ErrorIs(err, queries.ErrItemNotFound)
	})
}

func (s *ItemQueriesTestSuite) TestListByOwner() {
	s.Run("success: store receives the clock snapshot and views pass through", func() {
		ownerID := uuid.New()
		last := s.clock.Now().Add(-24 * time.Hour)
		next := s.clock.Now().Add(24 * time.Hour)
		views := []*queries.ItemView{
			{ID: uuid.New(), OwnerID: ownerID, Name: "drill", LastBooking: &last, NextBooking: &next},
			{ID: uuid.New(), OwnerID: ownerID, Name: "saw"},
		}

		s.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(s.userView(ownerID), nil)
		s.store.EXPECT().FindByOwner(gomock.Any(), ownerID, s.clock.Now()).Return(views, nil)

		got, err := s.q.ListByOwner(context.Background(), ownerID)
		s.NoError(err)
		s.Equal(views, got)
		s.Equal(&last, got[0].LastBooking)
		s.Equal(&next, got[0].NextBooking)
	})

	s.Run("error: unknown owner skips the store", func() {
		ownerID := uuid.New()

		s.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(nil, notFoundErr())

		_, err := s.q.ListByOwner(context.Background(), ownerID)
		s.ErrorIs(err, queries.ErrUserNotFound)
	})
}

func (s *ItemQueriesTestSuite) TestSearch() {
	s.Run("blank query returns empty without touching the store", func() {
		got, err := s.q.Search(context.Background(), "")
		s.NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})

	s.Run("whitespace-only query returns empty without touching the store", func() {
		got, err := s.q.Search(context.Background(), "   \t ")
		s.NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})

	s.Run("non-blank query reaches the store verbatim", func() {
		views := []*queries.ItemView{{ID: uuid.New(), Name: "Drill", Available: true}}

		s.store.EXPECT().Search(gomock.Any(), "dRiLl").Return(views, nil)

		got, err := s.q.Search(context.Background(), "dRiLl")
		s.NoError(err)
		s.Equal(views, got)
	})
}
