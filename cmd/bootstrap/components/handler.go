package components

import (
	"hotelhub/internal/handler"
	"hotelhub/internal/handler/api"
	"hotelhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		middleware.NewAuthMiddleware,
		api.NewAuthHandler,
		api.NewPackageHandler,
		api.NewRoomTypeHandler,
		api.NewBookingHandler,
		api.NewDiscountHandler,
		api.NewFeedbackHandler,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	pkg *api.PackageHandler,
	roomType *api.RoomTypeHandler,
	booking *api.BookingHandler,
	discount *api.DiscountHandler,
	feedback *api.FeedbackHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Package:  pkg,
		RoomType: roomType,
		Booking:  booking,
		Discount: discount,
		Feedback: feedback,
	}
}
