//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"itemshare/internal/handler/api"
	"itemshare/internal/pkg/errs"
	"itemshare/internal/usecase/commands"
	"itemshare/internal/usecase/queries"
	commonhttp "itemshare/tests/common/httptest"
	commandsmock "itemshare/tests/mock/commands"
	queriesmock "itemshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.UserHandler
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/users", s.handler.CreateUser)
	s.router.PATCH("/users/:id", s.handler.UpdateUser)
	s.router.GET("/users/:id", s.handler.GetUser)
	s.router.DELETE("/users/:id", s.handler.DeleteUser)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestCreateUser() {
	s.Run("success: returns 201 with the created user", func() {
		userID := uuid.New()
		view := &queries.UserView{ID: userID, Name: "alice", Email: "alice@example.com"}

		s.mockCommands.EXPECT().Create(gomock.Any(), commands.CreateUserCommand{Name: "alice", Email: "alice@example.com"}).
			Return(&commands.CreateUserResult{UserID: userID}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), userID).Return(view, nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/users",
			map[string]any{"name": "alice", "email": "alice@example.com"}, "")
		s.Equal(http.StatusCreated, rec.Code)

		var body map[string]any
		commonhttp.DecodeJSON(s.T(), rec, &body)
		s.Equal("alice@example.com", body["email"])
	})

	s.Run("error: 400 on a malformed email", func() {
		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/users",
			map[string]any{"name": "alice", "email": "not-an-email"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 409 when the email is taken", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("email taken"), commands.ErrEmailTaken))

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/users",
			map[string]any{"name": "bob", "email": "alice@example.com"}, "")
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *UserHandlerTestSuite) TestUpdateUser() {
	userID := uuid.New()

	s.Run("success: partial patch keeps absent fields", func() {
		view := &queries.UserView{ID: userID, Name: "alice", Email: "new@example.com"}

		s.mockCommands.EXPECT().Update(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, cmd commands.UpdateUserCommand) error {
				s.Nil(cmd.Name)
				s.NotNil(cmd.Email)
				s.Equal("new@example.com", *cmd.Email)
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), userID).Return(view, nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/"+userID.String(),
			map[string]any{"email": "new@example.com"}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 for an unknown user", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), userID, gomock.Any()).
			Return(errs.Mark(errs.New("missing"), commands.ErrUserNotFound))

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/"+userID.String(),
			map[string]any{"name": "zoe"}, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *UserHandlerTestSuite) TestDeleteUser() {
	s.Run("success: returns 204", func() {
		userID := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), userID).Return(nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/"+userID.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/garbage", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
