//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"itemshare/internal/domain/booking"
	"itemshare/internal/handler/api"
	"itemshare/internal/handler/middleware"
	"itemshare/internal/pkg/errs"
	"itemshare/internal/usecase/commands"
	"itemshare/internal/usecase/queries"
	commonhttp "itemshare/tests/common/httptest"
	commandsmock "itemshare/tests/mock/commands"
	queriesmock "itemshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("future", func(fl validator.FieldLevel) bool {
			t, ok := fl.Field().Interface().(time.Time)
			return ok && t.After(time.Now())
		})
	}

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	identity := middleware.RequireIdentity()
	s.router.POST("/bookings", identity, s.handler.CreateBooking)
	s.router.PATCH("/bookings/:id", identity, s.handler.DecideBooking)
	s.router.GET("/bookings/:id", identity, s.handler.GetBooking)
	s.router.GET("/bookings", identity, s.handler.ListBookerBookings)
	s.router.GET("/bookings/owner", identity, s.handler.ListOwnerBookings)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) view(id, bookerID uuid.UUID) *queries.BookingView {
	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	return &queries.BookingView{
		ID:     id,
		Start:  start,
		End:    start.Add(24 * time.Hour),
		Status: booking.StatusWaiting.String(),
		Item:   queries.ItemRef{ID: uuid.New(), Name: "drill"},
		Booker: queries.UserRef{ID: bookerID, Name: "alice"},
	}
}

func (s *BookingHandlerTestSuite) validBody() map[string]any {
	return map[string]any{
		"itemId": uuid.New().String(),
		"start":  time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339),
		"end":    time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	bookerID := uuid.New()

	s.Run("success: returns 201 with the booking view", func() {
		bookingID := uuid.New()
		result := &commands.CreateBookingResult{BookingID: bookingID}
		returned := s.view(bookingID, bookerID)

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), bookerID).Return(result, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, bookerID).Return(returned, nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.validBody(), bookerID.String())
		s.Equal(http.StatusCreated, rec.Code)

		var body map[string]any
		commonhttp.DecodeJSON(s.T(), rec, &body)
		s.Equal(bookingID.String(), body["id"])
		s.Equal("WAITING", body["status"])
	})

	s.Run("error: 400 without sharer header", func() {
		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.validBody(), "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 on malformed sharer header", func() {
		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.validBody(), "not-a-uuid")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 when start is not in the future", func() {
		body := s.validBody()
		body["start"] = time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, bookerID.String())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 when itemId is missing", func() {
		body := s.validBody()
		delete(body, "itemId")

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, bookerID.String())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 when the item does not exist", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), bookerID).
			Return(nil, errs.Mark(errs.New("item missing"), commands.ErrItemNotFound))

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.validBody(), bookerID.String())
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 when the item is unavailable", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), bookerID).
			Return(nil, errs.Mark(errs.New("item unavailable"), commands.ErrItemUnavailable))

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.validBody(), bookerID.String())
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestDecideBooking() {
	ownerID := uuid.New()
	bookingID := uuid.New()

	s.Run("success: approval returns the refreshed view", func() {
		returned := s.view(bookingID, uuid.New())
		returned.Status = booking.StatusApproved.String()

		s.mockCommands.EXPECT().Decide(gomock.Any(), bookingID, true, ownerID).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, ownerID).Return(returned, nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+bookingID.String()+"?approved=true", nil, ownerID.String())
		s.Equal(http.StatusOK, rec.Code)

		var body map[string]any
		commonhttp.DecodeJSON(s.T(), rec, &body)
		s.Equal("APPROVED", body["status"])
	})

	s.Run("error: 400 on a garbled approved parameter", func() {
		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+bookingID.String()+"?approved=maybe", nil, ownerID.String())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 when approved is missing", func() {
		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+bookingID.String(), nil, ownerID.String())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 403 for a non-owner", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), bookingID, false, ownerID).
			Return(errs.Mark(errs.New("not the owner"), commands.ErrNotItemOwner))

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+bookingID.String()+"?approved=false", nil, ownerID.String())
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	actorID := uuid.New()
	bookingID := uuid.New()

	s.Run("error: 403 for an unrelated user", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, actorID).
			Return(nil, errs.Mark(errs.New("access denied"), queries.ErrBookingAccess))

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/"+bookingID.String(), nil, actorID.String())
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: 404 for an unknown booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, actorID).
			Return(nil, errs.Mark(errs.New("missing"), queries.ErrBookingNotFound))

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/"+bookingID.String(), nil, actorID.String())
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	actorID := uuid.New()

	s.Run("state defaults to ALL", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), "ALL", actorID).
			Return([]*queries.BookingView{}, nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, actorID.String())
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("unknown filter surfaces as an internal error", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), "SOMEDAY", actorID).
			Return(nil, errs.New("unknown booking state filter"))

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=SOMEDAY", nil, actorID.String())
		s.Equal(http.StatusInternalServerError, rec.Code)
	})

	s.Run("owner listing passes the raw filter through", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), "WAITING", actorID).
			Return([]*queries.BookingView{}, nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner?state=WAITING", nil, actorID.String())
		s.Equal(http.StatusOK, rec.Code)
	})
}
