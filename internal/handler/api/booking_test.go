//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotelhub/internal/domain/user"
	"hotelhub/internal/handler/api"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/commands"
	"hotelhub/internal/usecase/queries"
	"hotelhub/tests/common/builder"
	"hotelhub/tests/common/httptest"
	"hotelhub/tests/common/testutil"
	commandsmock "hotelhub/tests/mock/commands"
	queriesmock "hotelhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
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
	authedUserID uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.authedUserID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.authedUserID)
		c.Set("user_role", user.RoleGuest)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.ReserveBooking)
	s.router.POST("/bookings/:id/confirm", authMiddleware, s.handler.ConfirmBooking)
	s.router.PATCH("/bookings/:id/status", authMiddleware, s.handler.UpdateBookingStatus)
	s.router.PUT("/bookings/:id", authMiddleware, s.handler.UpdateGuestDetails)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.DeleteBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/mine", authMiddleware, s.handler.ListMyBookings)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestReserveBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestReserveBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildReserveRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	validation := []testCaseBooking{
		{name: "missing field: package_id", mutate: testutil.Field("package_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: check_in_date", mutate: testutil.Field("check_in_date", nil), expectCode: http.StatusBadRequest},
		{name: "malformed check_in_date", mutate: testutil.Field("check_in_date", "10/01/2026"), expectCode: http.StatusBadRequest},
		{name: "invalid guest_email", mutate: testutil.Field("guest_email", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "negative total_amount", mutate: testutil.Field("total_amount", -1), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with pending booking", func() {
		s.mockCommands.EXPECT().ReserveBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.ReserveBookingParams) (*queries.BookingView, error) {
				s.Equal(s.authedUserID, params.UserID)
				s.Equal(reqBody.GuestEmail, params.GuestEmail)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("pending", body.Status)
		s.Equal(returnView.PackageName, body.PackageName)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 Not Found for unknown package", func() {
		s.mockCommands.EXPECT().ReserveBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrPackageNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Package not found")
	})

	s.Run("error: 409 Conflict when no rooms remain", func() {
		s.mockCommands.EXPECT().ReserveBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrNoRoomsAvailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "No rooms available")
	})

	s.Run("error: 400 Bad Request on reversed stay range", func() {
		// The command layer marks the sentinel onto the underlying validation
		// error, so the handler must see it through the mark.
		stayErr := errs.Mark(errs.New("check-out on or before check-in"), commands.ErrInvalidStayRange)
		s.mockCommands.EXPECT().ReserveBooking(gomock.Any(), gomock.Any()).
			Return(nil, stayErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Check-out date must be after check-in date")
	})
}

// ================================================================================
// TestConfirmBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirmBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/confirm"

	s.Run("success: returns 200 OK with confirmed booking", func() {
		returnView := builder.NewBookingBuilder().BuildView()
		returnView.Status = "confirmed"

		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Status)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+uuid.NewString()+"/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 409 Conflict when capacity is exhausted at confirm time", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrNoRoomsAvailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "No rooms available")
	})

	s.Run("error: 409 Conflict when booking is not pending", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidBookingState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "current state")
	})
}

// ================================================================================
// TestUpdateBookingStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateBookingStatus() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/status"

	s.Run("success: returns 200 OK with updated status", func() {
		returnView := builder.NewBookingBuilder().BuildView()
		returnView.Status = "cancelled"

		s.mockCommands.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID, "cancelled").
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "cancelled"}, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: 400 Bad Request on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "archived"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 Conflict when confirming without capacity", func() {
		s.mockCommands.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID, "confirmed").
			Return(nil, commands.ErrNoRoomsAvailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "confirmed"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "No rooms available")
	})
}

// ================================================================================
// TestUpdateGuestDetails
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateGuestDetails() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 200 OK with updated guest fields", func() {
		returnView := builder.NewBookingBuilder().BuildView()
		returnView.GuestName = "Morgan Lee"

		s.mockCommands.EXPECT().UpdateGuestDetails(gomock.Any(), bookingID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, params commands.UpdateGuestDetailsParams) (*queries.BookingView, error) {
				s.Require().NotNil(params.GuestName)
				s.Equal("Morgan Lee", *params.GuestName)
				s.Nil(params.GuestPhone)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"guest_name": "Morgan Lee"}, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Morgan Lee", body.GuestName)
	})

	s.Run("error: 400 Bad Request on invalid email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"guest_email": "not-an-email"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().UpdateGuestDetails(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/"+uuid.NewString(),
			map[string]any{"guest_name": "Morgan Lee"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestDeleteBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), gomock.Any()).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: returns 200 OK with paginated bookings", func() {
		page := &queries.BookingPage{
			Bookings:    []*queries.BookingView{builder.NewBookingBuilder().BuildView()},
			TotalPages:  3,
			CurrentPage: 2,
			Total:       25,
		}

		s.mockQueries.EXPECT().ListBookings(gomock.Any(), queries.BookingFilter{Page: 2, Limit: 10, Search: "jamie"}).
			Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?page=2&search=jamie", nil, "bearer-token")

		var body resdto.BookingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Bookings, 1)
		s.Equal(3, body.TotalPages)
		s.Equal(25, body.Total)
	})

	s.Run("success: defaults to page 1 and limit 10", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), queries.BookingFilter{Page: 1, Limit: 10}).
			Return(&queries.BookingPage{Bookings: []*queries.BookingView{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestListMyBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMyBookings() {
	s.Run("success: returns only the authenticated user's bookings", func() {
		returnViews := []*queries.BookingView{
			builder.NewBookingBuilder().WithUserID(s.authedUserID).BuildView(),
		}

		s.mockQueries.EXPECT().ListUserBookings(gomock.Any(), s.authedUserID).
			Return(returnViews, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/mine", nil, "bearer-token")

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(s.authedUserID, body[0].UserID)
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/mine", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
