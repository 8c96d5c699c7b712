// Package jobs holds background schedules that run alongside the HTTP server.
package jobs

import (
	"context"
	"log/slog"

	"cleanpro-api/internal/domain/booking"
	"cleanpro-api/internal/domain/catalog"
	"cleanpro-api/internal/notification"
	"cleanpro-api/internal/pkg/clock"
	"cleanpro-api/internal/pkg/config"
	"cleanpro-api/internal/usecase/queries"

	"github.com/robfig/cron/v3"
)

// ReminderScheduler sends the day-before WhatsApp nudge to every client with
// a confirmed booking for tomorrow.
type ReminderScheduler struct {
	cron     *cron.Cron
	cfg      config.ReminderConfig
	bookings queries.BookingReadStore
	catalog  *catalog.Catalog
	notifier notification.Notifier
	clock    clock.Clock
}

func NewReminderScheduler(
	cfg config.ReminderConfig,
	bookings queries.BookingReadStore,
	cat *catalog.Catalog,
	notifier notification.Notifier,
	clk clock.Clock,
) *ReminderScheduler {
	return &ReminderScheduler{
		cron:     cron.New(),
		cfg:      cfg,
		bookings: bookings,
		catalog:  cat,
		notifier: notifier,
		clock:    clk,
	}
}

func (s *ReminderScheduler) Start() error {
	if !s.cfg.Enabled {
		slog.Info("Reminder scheduler disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.Cron, s.runOnce); err != nil {
		return err
	}
	s.cron.Start()
	slog.Info("Reminder scheduler started", "schedule", s.cfg.Cron)
	return nil
}

func (s *ReminderScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *ReminderScheduler) runOnce() {
	ctx := context.Background()
	tomorrow := clock.Today(s.clock).AddDays(1)

	views, err := s.bookings.ListByDay(ctx, tomorrow)
	if err != nil {
		slog.Error("Reminder run failed to list bookings", "day", tomorrow.String(), "error", err.Error())
		return
	}

	sent := 0
	for _, v := range views {
		if v.Status != string(booking.StatusConfirmed) {
			continue
		}

		b := bookingFromView(v)
		svc, ok := s.catalog.FindByID(v.ServiceID)
		if !ok {
			svc = catalog.Service{Title: v.ServiceName, PriceText: "A combinar", DurationText: "A definir"}
		}

		msg := notification.RenderClientReminder(b, svc)
		if err := s.notifier.Send(ctx, v.ClientPhone, msg); err != nil {
			slog.Warn("Reminder delivery failed", "booking_id", v.ID.String(), "error", err.Error())
			continue
		}
		sent++
	}

	slog.Info("Reminder run completed", "day", tomorrow.String(), "sent", sent)
}

func bookingFromView(v *queries.BookingView) *booking.Booking {
	return booking.ReconstructBooking(
		v.ID, v.Day, v.ServiceID, v.ServiceName,
		booking.ReconstructClientInfo(v.ClientName, v.ClientPhone, v.ClientEmail, v.ClientAddress),
		booking.NewNote(v.Notes),
		booking.Status(v.Status), v.NotificationSent, v.CreatedAt, v.ConfirmedAt,
	)
}
