package components

import (
	"cleanpro-api/internal/domain/catalog"
	"cleanpro-api/internal/notification"
	"cleanpro-api/internal/pkg/clock"
	"cleanpro-api/internal/pkg/config"
	"cleanpro-api/internal/usecase"
	"cleanpro-api/internal/usecase/commands"
	"cleanpro-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	catalog.Default,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAvailabilityCommands,
		commands.NewNotificationCommands,
		commands.NewSliderCommands,
		NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewNotificationQueries,
		queries.NewSliderQueries,
		queries.NewDashboardQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBookingCommands(
	bookings commands.BookingRepository,
	overrides commands.AvailabilityRepository,
	feed commands.NotificationRepository,
	cat *catalog.Catalog,
	notifier notification.Notifier,
	clk clock.Clock,
	cfg config.Config,
) commands.BookingCommands {
	return commands.NewBookingCommands(bookings, overrides, feed, cat, notifier, clk, cfg.WhatsApp.BusinessNumber)
}
