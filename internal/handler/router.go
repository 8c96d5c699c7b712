package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cleanpro-api/internal/handler/api"
	"cleanpro-api/internal/handler/middleware"
	"cleanpro-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Booking      *api.BookingHandler
	Availability *api.AvailabilityHandler
	Notification *api.NotificationHandler
	Slider       *api.SliderHandler
	Catalog      *api.CatalogHandler
	Dashboard    *api.DashboardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
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
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Public surface used by the landing page.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/services", Handler: h.Catalog.List},
			{Method: http.MethodGet, Path: "/availability/check", Handler: h.Availability.Check},
			{Method: http.MethodGet, Path: "/slider", Handler: h.Slider.ListActive},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Booking.Stats},
				{Method: http.MethodGet, Path: "/days", Handler: h.Booking.Days},
				{Method: http.MethodGet, Path: "/day/:date", Handler: h.Booking.GetByDay},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Booking.Transition},
			})
		}

		availability := apiGroup.Group("/availability")
		availability.Use(authMiddleware.RequireAuth())
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Availability.List},
				{Method: http.MethodPut, Path: "/day", Handler: h.Availability.SetDay},
				{Method: http.MethodPut, Path: "/range", Handler: h.Availability.SetRange},
				{Method: http.MethodPut, Path: "/weekly", Handler: h.Availability.SetWeeklyPattern},
				{Method: http.MethodPost, Path: "/holidays", Handler: h.Availability.SetHolidays},
				{Method: http.MethodDelete, Path: "/day/:date", Handler: h.Availability.Remove},
				{Method: http.MethodDelete, Path: "", Handler: h.Availability.ClearAll},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
				{Method: http.MethodGet, Path: "/unread_count", Handler: h.Notification.UnreadCount},
				{Method: http.MethodPost, Path: "/:id/read", Handler: h.Notification.MarkRead},
				{Method: http.MethodPost, Path: "/read_all", Handler: h.Notification.MarkAllRead},
			})
		}

		slider := apiGroup.Group("/slider")
		slider.Use(authMiddleware.RequireAuth())
		{
			addRoutes(slider, []route{
				{Method: http.MethodGet, Path: "/all", Handler: h.Slider.ListAll},
				{Method: http.MethodPost, Path: "", Handler: h.Slider.Add},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Slider.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Slider.Delete},
			})
		}

		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(authMiddleware.RequireAuth())
		{
			addRoutes(dashboard, []route{
				{Method: http.MethodGet, Path: "/stats", Handler: h.Dashboard.Stats},
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
