//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"itemshare/internal/usecase/queries"
	queriesmock "itemshare/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	store    *queriesmock.MockRequestReadStore
	users    *queriesmock.MockUserReadStore
	q        queries.RequestQueries
}

func (s *RequestQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockRequestReadStore(s.mockCtrl)
	s.users = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.q = queries.NewRequestQueries(s.store, s.users)
}

func (s *RequestQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestQueriesSuite(t *testing.T) {
	suite.Run(t, new(RequestQueriesTestSuite))
}

func (s *RequestQueriesTestSuite) actor() *queries.UserView {
	return &queries.UserView{ID: uuid.New(), Name: "alice", Email: "alice@example.com"}
}

func (s *RequestQueriesTestSuite) requestView(requestorID uuid.UUID, created time.Time) *queries.RequestView {
	return &queries.RequestView{
		ID:          uuid.New(),
		Description: "need a drill",
		RequestorID: requestorID,
		Created:     created,
		Items:       []queries.RequestItemView{},
	}
}

func (s *RequestQueriesTestSuite) TestGetByID() {
	s.Run("success", func() {
		actor := s.actor()
		view := s.requestView(actor.ID, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
		view.Items = []queries.RequestItemView{{ID: uuid.New(), OwnerID: uuid.New(), Name: "drill"}}

		s.users.EXPECT().FindByID(gomock.Any(), actor.ID).Return(actor, nil)
		s.store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := s.q.GetByID(context.Background(), view.ID, actor.ID)
		s.NoError(err)
		s.Equal(view, got)
		s.Len(got.Items, 1)
	})

	s.Run("error: unknown actor skips the store", func() {
		actorID := uuid.New()

		s.users.EXPECT().FindByID(gomock.Any(), actorID).Return(nil, notFoundErr())

		_, err := s.q.GetByID(context.Background(), uuid.New(), actorID)
		s.ErrorIs(err, queries.ErrUserNotFound)
	})

	s.Run("error: unknown request", func() {
		actor := s.actor()
		id := uuid.New()

		s.users.EXPECT().FindByID(gomock.Any(), actor.ID).Return(actor, nil)
		s.store.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.q.GetByID(context.Background(), id, actor.ID)
		s.ErrorIs(err, queries.ErrRequestNotFound)
	})
}

func (s *RequestQueriesTestSuite) TestListOwn() {
	s.Run("success: store order is preserved, newest first", func() {
		actor := s.actor()
		newer := s.requestView(actor.ID, time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC))
		older := s.requestView(actor.ID, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

		s.users.EXPECT().FindByID(gomock.Any(), actor.ID).Return(actor, nil)
		s.store.EXPECT().FindByRequestor(gomock.Any(), actor.ID).
			Return([]*queries.RequestView{newer, older}, nil)

		got, err := s.q.ListOwn(context.Background(), actor.ID)
		s.NoError(err)
		s.Equal([]*queries.RequestView{newer, older}, got)
	})

	s.Run("error: unknown user", func() {
		userID := uuid.New()

		s.users.EXPECT().FindByID(gomock.Any(), userID).Return(nil, notFoundErr())

		_, err := s.q.ListOwn(context.Background(), userID)
		s.ErrorIs(err, queries.ErrUserNotFound)
	})
}

func (s *RequestQueriesTestSuite) TestListOthers() {
	s.Run("success: delegates with the actor excluded", func() {
		actor := s.actor()
		other := s.requestView(uuid.New(), time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC))

		s.users.EXPECT().FindByID(gomock.Any(), actor.ID).Return(actor, nil)
		s.store.EXPECT().FindAllExcept(gomock.Any(), actor.ID).
			Return([]*queries.RequestView{other}, nil)

		got, err := s.q.ListOthers(context.Background(), actor.ID)
		s.NoError(err)
		s.Equal([]*queries.RequestView{other}, got)
	})

	s.Run("error: unknown user", func() {
		userID := uuid.New()

		s.users.EXPECT().FindByID(gomock.Any(), userID).Return(nil, notFoundErr())

		_, err := s.q.ListOthers(context.Background(), userID)
		s.ErrorIs(err, queries.ErrUserNotFound)
	})
}
