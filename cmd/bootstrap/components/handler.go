package components

import (
	"cleanpro-api/internal/handler"
	"cleanpro-api/internal/handler/api"
	"cleanpro-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewNotificationHandler,
		api.NewSliderHandler,
		api.NewCatalogHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	availability *api.AvailabilityHandler,
	notification *api.NotificationHandler,
	slider *api.SliderHandler,
	catalog *api.CatalogHandler,
	dashboard *api.DashboardHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Booking:      booking,
		Availability: availability,
		Notification: notification,
		Slider:       slider,
		Catalog:      catalog,
		Dashboard:    dashboard,
	}
}
