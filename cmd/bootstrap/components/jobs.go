package components

import (
	"context"

	"cleanpro-api/internal/domain/catalog"
	"cleanpro-api/internal/jobs"
	"cleanpro-api/internal/notification"
	"cleanpro-api/internal/pkg/clock"
	"cleanpro-api/internal/pkg/config"
	"cleanpro-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		NewReminderScheduler,
	),
	fx.Invoke(registerReminderScheduler),
)

func NewReminderScheduler(
	cfg config.Config,
	bookings queries.BookingReadStore,
	cat *catalog.Catalog,
	notifier notification.Notifier,
	clk clock.Clock,
) *jobs.ReminderScheduler {
	return jobs.NewReminderScheduler(cfg.Reminder, bookings, cat, notifier, clk)
}

func registerReminderScheduler(lc fx.Lifecycle, s *jobs.ReminderScheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Start()
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
