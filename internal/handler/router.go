package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotelhub/internal/handler/api"
	"hotelhub/internal/handler/middleware"
	"hotelhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Package  *api.PackageHandler
	RoomType *api.RoomTypeHandler
	Booking  *api.BookingHandler
	Discount *api.DiscountHandler
	Feedback *api.FeedbackHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		packages := apiGroup.Group("/packages")
		{
			addRoutes(packages, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Package.ListPackages},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Package.GetPackage},
				{Method: http.MethodGet, Path: "/:id/fully-booked-dates", Handler: h.Package.GetFullyBookedDates},
			})

			admin := packages.Group("")
			admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Package.CreatePackage},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Package.UpdatePackage},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Package.DeletePackage},
			})
		}

		roomTypes := apiGroup.Group("/room-types")
		{
			addRoutes(roomTypes, []route{
				{Method: http.MethodGet, Path: "", Handler: h.RoomType.ListRoomTypes},
			})

			admin := roomTypes.Group("")
			admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.RoomType.CreateRoomType},
			})
		}

		discounts := apiGroup.Group("/discounts")
		{
			addRoutes(discounts, []route{
				{Method: http.MethodGet, Path: "/active", Handler: h.Discount.ListActiveDiscounts},
			})

			admin := discounts.Group("")
			admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Discount.ListDiscounts},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Discount.GetDiscount},
				{Method: http.MethodPost, Path: "", Handler: h.Discount.CreateDiscount},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Discount.UpdateDiscount},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Discount.DeleteDiscount},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.ReserveBooking},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Booking.ConfirmBooking},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.UpdateGuestDetails},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Booking.ListMyBookings},
			})

			admin := bookings.Group("")
			admin.Use(authMiddleware.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListBookings},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Booking.UpdateBookingStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.DeleteBooking},
			})
		}

		feedbacks := apiGroup.Group("/feedbacks")
		{
			addRoutes(feedbacks, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Feedback.ListFeedbacks},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Feedback.GetFeedback},
			})

			authRequired := feedbacks.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Feedback.CreateFeedback},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
