//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotelhub/internal/domain/user"
	"hotelhub/internal/handler/api"
	resdto "hotelhub/internal/handler/dto/response"
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

type PackageHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPackageCommands
	mockQueries  *queriesmock.MockPackageQueries
	handler      *api.PackageHandler
}

func (s *PackageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPackageCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPackageQueries(s.mockCtrl)
	s.handler = api.NewPackageHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.GET("/packages", s.handler.ListPackages)
	s.router.GET("/packages/:id", s.handler.GetPackage)
	s.router.GET("/packages/:id/fully-booked-dates", s.handler.GetFullyBookedDates)
	s.router.POST("/packages", authMiddleware, s.handler.CreatePackage)
	s.router.PUT("/packages/:id", authMiddleware, s.handler.UpdatePackage)
	s.router.DELETE("/packages/:id", authMiddleware, s.handler.DeletePackage)
}

func (s *PackageHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPackageHandlerSuite(t *testing.T) {
	suite.Run(t, new(PackageHandlerTestSuite))
}

type testCasePackage struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestListPackages
// ================================================================================

func (s *PackageHandlerTestSuite) TestListPackages() {
	returnViews := []*queries.PackageView{
		builder.NewPackageBuilder().BuildView(),
		builder.NewPackageBuilder().WithName("Garden Suite").BuildView(),
	}

	s.Run("success: returns 200 OK with package list", func() {
		s.mockQueries.EXPECT().ListAvailablePackages(gomock.Any(), gomock.Any()).
			Return(returnViews, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/packages", nil, "")

		var body []resdto.PackageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(returnViews[0].Code, body[0].Code)
		s.Equal("Garden Suite", body[1].Name)
	})

	s.Run("success: forwards stay filter to queries", func() {
		s.mockQueries.EXPECT().ListAvailablePackages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filter queries.PackageFilter) ([]*queries.PackageView, error) {
				s.Require().NotNil(filter.CheckIn)
				s.Require().NotNil(filter.CheckOut)
				s.Equal("2026-10-01", filter.CheckIn.Format("2006-01-02"))
				s.Equal("2026-10-04", filter.CheckOut.Format("2006-01-02"))
				return returnViews[:1], nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/packages?check_in=2026-10-01&check_out=2026-10-04", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request when only check_in is given", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/packages?check_in=2026-10-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date filter")
	})

	s.Run("error: 400 Bad Request on unparseable date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/packages?check_in=not-a-date&check_out=2026-10-04", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date filter")
	})

	s.Run("error: 400 Bad Request on reversed stay range", func() {
		s.mockQueries.EXPECT().ListAvailablePackages(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidDateRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/packages?check_in=2026-10-04&check_out=2026-10-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Check-out date must be after check-in date")
	})
}

// ================================================================================
// TestGetPackage
// ================================================================================

func (s *PackageHandlerTestSuite) TestGetPackage() {
	returnView := builder.NewPackageBuilder().BuildView()
	url := "/packages/" + returnView.ID.String()

	s.Run("success: returns 200 OK with package", func() {
		s.mockQueries.EXPECT().GetPackage(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.PackageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.AvailableRooms, body.AvailableRooms)
		s.Equal(returnView.BasePrice, body.DiscountedPrice)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/packages/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid package ID format")
	})

	s.Run("error: 404 Not Found for unknown package", func() {
		s.mockQueries.EXPECT().GetPackage(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrPackageNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/packages/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Package not found")
	})

	s.Run("error: 404 Not Found for package with broken room type reference", func() {
		s.mockQueries.EXPECT().GetPackage(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrPackageMalformed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/packages/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Package not found")
	})
}

// ================================================================================
// TestGetFullyBookedDates
// ================================================================================

func (s *PackageHandlerTestSuite) TestGetFullyBookedDates() {
	packageID := uuid.New()
	url := "/packages/" + packageID.String() + "/fully-booked-dates"

	s.Run("success: returns 200 OK with dates", func() {
		s.mockQueries.EXPECT().GetFullyBookedDates(gomock.Any(), packageID).
			Return([]string{"2026-10-01", "2026-10-02"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.FullyBookedDatesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(packageID, body.PackageID)
		s.Equal([]string{"2026-10-01", "2026-10-02"}, body.Dates)
	})

	s.Run("error: 404 Not Found for unknown package", func() {
		s.mockQueries.EXPECT().GetFullyBookedDates(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrPackageNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/packages/"+uuid.NewString()+"/fully-booked-dates", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Package not found")
	})
}

// ================================================================================
// TestCreatePackage
// ================================================================================

func (s *PackageHandlerTestSuite) TestCreatePackage() {
	url := "/packages"

	reqBody := builder.NewPackageBuilder().BuildCreateRequestDTO()
	returnView := builder.NewPackageBuilder().BuildView()

	validation := []testCasePackage{
		{name: "missing field: name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: room_type_id", mutate: testutil.Field("room_type_id", nil), expectCode: http.StatusBadRequest},
		{name: "capacity invalid (0)", mutate: testutil.Field("capacity", 0), expectCode: http.StatusBadRequest},
		{name: "negative base price", mutate: testutil.Field("base_price", -10), expectCode: http.StatusBadRequest},
		{name: "malformed start date", mutate: testutil.Field("start_date", "01/10/2026"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreatePackage(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.PackageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.Code, body.Code)
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

	s.Run("error: 404 Not Found for unknown room type", func() {
		s.mockCommands.EXPECT().CreatePackage(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrRoomTypeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room type not found")
	})

	s.Run("error: 422 Unprocessable Entity on domain validation failure", func() {
		s.mockCommands.EXPECT().CreatePackage(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

// ================================================================================
// TestUpdatePackage
// ================================================================================

func (s *PackageHandlerTestSuite) TestUpdatePackage() {
	returnView := builder.NewPackageBuilder().WithName("Renovated Suite").BuildView()
	url := "/packages/" + returnView.ID.String()
	reqBody := builder.NewPackageBuilder().WithName("Renovated Suite").BuildCreateRequestDTO()

	s.Run("success: returns 200 OK with updated package", func() {
		s.mockCommands.EXPECT().UpdatePackage(gomock.Any(), returnView.ID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var body resdto.PackageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Renovated Suite", body.Name)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/packages/not-a-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid package ID format")
	})

	s.Run("error: 404 Not Found for unknown package", func() {
		s.mockCommands.EXPECT().UpdatePackage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrPackageNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/packages/"+uuid.NewString(), reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Package not found")
	})
}

// ================================================================================
// TestDeletePackage
// ================================================================================

func (s *PackageHandlerTestSuite) TestDeletePackage() {
	packageID := uuid.New()
	url := "/packages/" + packageID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeletePackage(gomock.Any(), packageID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown package", func() {
		s.mockCommands.EXPECT().DeletePackage(gomock.Any(), gomock.Any()).
			Return(commands.ErrPackageNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/packages/"+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Package not found")
	})
}
