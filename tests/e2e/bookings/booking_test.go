//go:build e2e

package bookings_test

import (
	"net/http"
	"testing"
	"time"

	"hotelhub/internal/domain/user"
	"hotelhub/internal/handler/dto/request"
	"hotelhub/internal/handler/dto/response"
	"hotelhub/tests/common/authtest"
	"hotelhub/tests/common/dbtest"
	"hotelhub/tests/common/httptest"
	"hotelhub/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) reserveRequest(packageID uuid.UUID, checkIn, checkOut time.Time) request.ReserveBookingRequest {
	return request.ReserveBookingRequest{
		PackageID:    packageID,
		CheckInDate:  checkIn.Format("2006-01-02"),
		CheckOutDate: checkOut.Format("2006-01-02"),
		GuestName:    "Jamie Rivera",
		GuestEmail:   "jamie@example.com",
		GuestPhone:   "+1-555-0100",
		TotalAmount:  180,
	}
}

// =============================================================================
// TestReserveAndConfirm
// =============================================================================

func (s *BookingSuite) TestReserveAndConfirm() {
	s.Run("Normal case: guest reserves then confirms a booking", func() {
		t := s.T()

		roomTypeID := dbtest.CreateTestRoomType(t, s.DB, "Single", 2)
		packageID := dbtest.CreateTestPackage(t, s.DB, roomTypeID, "PKG-001", "City Single", 90)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		checkIn := time.Now().UTC().AddDate(0, 0, 10).Truncate(24 * time.Hour)
		reqBody := s.reserveRequest(packageID, checkIn, checkIn.AddDate(0, 0, 2))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var reserved response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &reserved))

		expected := &response.BookingResponse{
			PackageName:  "City Single",
			CheckInDate:  checkIn.Format("2006-01-02"),
			CheckOutDate: checkIn.AddDate(0, 0, 2).Format("2006-01-02"),
			GuestName:    "Jamie Rivera",
			GuestEmail:   "jamie@example.com",
			GuestPhone:   "+1-555-0100",
			TotalAmount:  180,
			Status:       "pending",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "PackageID", "UserID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &reserved, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+reserved.ID.String()+"/confirm", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var confirmed response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &confirmed))
		require.Equal(t, "confirmed", confirmed.Status)

		// a confirmed booking cannot be confirmed twice
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+reserved.ID.String()+"/confirm", nil, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: reserve fails when capacity is already taken", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleGuest))
		roomTypeID := dbtest.CreateTestRoomType(t, s.DB, "Single", 1)
		packageID := dbtest.CreateTestPackage(t, s.DB, roomTypeID, "PKG-001", "City Single", 90)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		checkIn := time.Now().UTC().AddDate(0, 0, 10).Truncate(24 * time.Hour)
		dbtest.CreateTestBooking(t, s.DB, packageID, userID, checkIn, checkIn.AddDate(0, 0, 2), "confirmed")

		reqBody := s.reserveRequest(packageID, checkIn, checkIn.AddDate(0, 0, 2))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: confirm fails when capacity ran out after reserving", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleGuest))
		roomTypeID := dbtest.CreateTestRoomType(t, s.DB, "Single", 1)
		packageID := dbtest.CreateTestPackage(t, s.DB, roomTypeID, "PKG-001", "City Single", 90)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		checkIn := time.Now().UTC().AddDate(0, 0, 10).Truncate(24 * time.Hour)
		reqBody := s.reserveRequest(packageID, checkIn, checkIn.AddDate(0, 0, 2))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var reserved response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &reserved))

		// someone else takes the last room while this booking is still pending
		dbtest.CreateTestBooking(t, s.DB, packageID, userID, checkIn, checkIn.AddDate(0, 0, 2), "confirmed")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+reserved.ID.String()+"/confirm", nil, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: only one of two pending bookings can confirm the last room", func() {
		t := s.T()

		roomTypeID := dbtest.CreateTestRoomType(t, s.DB, "Single", 1)
		packageID := dbtest.CreateTestPackage(t, s.DB, roomTypeID, "PKG-001", "City Single", 90)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleGuest))

		checkIn := time.Now().UTC().AddDate(0, 0, 10).Truncate(24 * time.Hour)
		reqBody := s.reserveRequest(packageID, checkIn, checkIn.AddDate(0, 0, 2))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var first response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &first))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, otherToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var second response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &second))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+first.ID.String()+"/confirm", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+second.ID.String()+"/confirm", nil, otherToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: reverse stay range is rejected", func() {
		t := s.T()

		roomTypeID := dbtest.CreateTestRoomType(t, s.DB, "Single", 2)
		packageID := dbtest.CreateTestPackage(t, s.DB, roomTypeID, "PKG-001", "City Single", 90)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		checkIn := time.Now().UTC().AddDate(0, 0, 10).Truncate(24 * time.Hour)
		reqBody := s.reserveRequest(packageID, checkIn, checkIn.AddDate(0, 0, -2))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestMyBookings
// =============================================================================

func (s *BookingSuite) TestMyBookings() {
	s.Run("Normal case: user only sees their own bookings", func() {
		t := s.T()

		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleGuest))
		roomTypeID := dbtest.CreateTestRoomType(t, s.DB, "Single", 5)
		packageID := dbtest.CreateTestPackage(t, s.DB, roomTypeID, "PKG-001", "City Single", 90)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		checkIn := time.Now().UTC().AddDate(0, 0, 10).Truncate(24 * time.Hour)
		dbtest.CreateTestBooking(t, s.DB, packageID, otherID, checkIn, checkIn.AddDate(0, 0, 2), "confirmed")

		reqBody := s.reserveRequest(packageID, checkIn, checkIn.AddDate(0, 0, 2))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/mine", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var mine []response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &mine))
		require.Len(t, mine, 1)
		require.Equal(t, "jamie@example.com", mine[0].GuestEmail)
	})
}

// =============================================================================
// TestAdminBookingList
// =============================================================================

func (s *BookingSuite) TestAdminBookingList() {
	s.Run("Normal case: admin list is paginated and searchable", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))
		roomTypeID := dbtest.CreateTestRoomType(t, s.DB, "Single", 5)
		packageID := dbtest.CreateTestPackage(t, s.DB, roomTypeID, "PKG-001", "City Single", 90)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		checkIn := time.Now().UTC().AddDate(0, 0, 10).Truncate(24 * time.Hour)
		dbtest.CreateTestBooking(t, s.DB, packageID, userID, checkIn, checkIn.AddDate(0, 0, 2), "confirmed")
		dbtest.CreateTestBooking(t, s.DB, packageID, userID, checkIn.AddDate(0, 0, 4), checkIn.AddDate(0, 0, 6), "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?search=confirmed", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page response.BookingPageResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Equal(t, 1, page.Total)
		require.Len(t, page.Bookings, 1)
		require.Equal(t, "confirmed", page.Bookings[0].Status)
	})
}
