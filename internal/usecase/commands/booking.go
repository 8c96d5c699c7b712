package commands

import (
	"context"
	"log/slog"

	"cleanpro-api/internal/domain/availability"
	"cleanpro-api/internal/domain/booking"
	"cleanpro-api/internal/domain/catalog"
	"cleanpro-api/internal/infra"
	"cleanpro-api/internal/notification"
	"cleanpro-api/internal/notification/walink"
	"cleanpro-api/internal/pkg/calendar"
	"cleanpro-api/internal/pkg/clock"
	"cleanpro-api/internal/pkg/errs"
	"cleanpro-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound         = errs.New("service not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidTransition       = errs.New("invalid booking transition")
	ErrDateUnavailable         = errs.New("date not available")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingInput struct {
	Day       calendar.Day
	ServiceID string
	Name      string
	Phone     string
	Email     string
	Address   string
	Notes     string
}

// CreateBookingResult carries the stored booking plus the pre-rendered admin
// notice and its wa.me link, so a browser client can open the conversation
// the way the original site did.
type CreateBookingResult struct {
	Booking     *queries.BookingView
	Message     string
	WhatsAppURL string
}

type TransitionResult struct {
	Booking     *queries.BookingView
	Message     string
	WhatsAppURL string
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	Transition(ctx context.Context, id uuid.UUID, to booking.Status) (*TransitionResult, error)
}

type bookingCommandsImpl struct {
	bookings      BookingRepository
	overrides     AvailabilityRepository
	feed          NotificationRepository
	catalog       *catalog.Catalog
	notifier      notification.Notifier
	clock         clock.Clock
	businessPhone string
}

func NewBookingCommands(
	bookings BookingRepository,
	overrides AvailabilityRepository,
	feed NotificationRepository,
	cat *catalog.Catalog,
	notifier notification.Notifier,
	clk clock.Clock,
	businessPhone string,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:      bookings,
		overrides:     overrides,
		feed:          feed,
		catalog:       cat,
		notifier:      notifier,
		clock:         clk,
		businessPhone: businessPhone,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	svc, ok := c.catalog.FindByID(in.ServiceID)
	if !ok {
		return nil, ErrServiceNotFound
	}

	client, err := booking.NewClientInfo(in.Name, in.Phone, in.Email, in.Address)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.checkDay(ctx, in.Day); err != nil {
		return nil, err
	}

	b, err := booking.NewBooking(in.Day, svc.ID, svc.Title, client, booking.NewNote(in.Notes), c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.bookings.Insert(ctx, b); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.recordFeedEntry(ctx, FeedKindBookingCreated,
		"Nova solicitação de agendamento",
		client.Name()+" solicitou "+svc.Title+" para "+in.Day.String(), b.ID())

	// Best-effort: the booking is the durable fact, the notice is not.
	message := notification.RenderAdminNotice(b, svc)
	c.dispatch(ctx, c.businessPhone, message)

	return &CreateBookingResult{
		Booking:     BookingToView(b),
		Message:     message,
		WhatsAppURL: walink.BuildURL(c.businessPhone, message),
	}, nil
}

func (c *bookingCommandsImpl) Transition(ctx context.Context, id uuid.UUID, to booking.Status) (*TransitionResult, error) {
	b, err := c.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	expected := b.Status()
	if err := b.TransitionTo(to, c.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrInvalidTransition)
	}

	if err := c.bookings.UpdateStatus(ctx, b, expected); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			// Lost a race with another admin action on the same booking.
			return nil, ErrInvalidTransition
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrBookingNotFound
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	result := &TransitionResult{Booking: BookingToView(b)}

	switch to {
	case booking.StatusConfirmed:
		c.recordFeedEntry(ctx, FeedKindBookingConfirmed,
			"Agendamento confirmado",
			b.Client().Name()+" em "+b.Day().String(), b.ID())
		result.Message = notification.RenderClientConfirmation(b, c.serviceFor(b))
	case booking.StatusCancelled:
		c.recordFeedEntry(ctx, FeedKindBookingCancelled,
			"Agendamento cancelado",
			b.Client().Name()+" em "+b.Day().String(), b.ID())
		result.Message = notification.RenderClientCancellation(b)
	case booking.StatusCompleted:
		c.recordFeedEntry(ctx, FeedKindBookingCompleted,
			"Serviço concluído",
			b.Client().Name()+" em "+b.Day().String(), b.ID())
	}

	if result.Message != "" {
		c.dispatch(ctx, b.Client().Phone(), result.Message)
		result.WhatsAppURL = walink.BuildURL(b.Client().Phone(), result.Message)
	}

	return result, nil
}

func (c *bookingCommandsImpl) checkDay(ctx context.Context, day calendar.Day) error {
	overrides, err := c.overrides.ListAll(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	decision := availability.Evaluate(day, clock.Today(c.clock), availability.NewOverrideSet(overrides))
	if !decision.Available {
		if decision.Reason != "" {
			return errs.Mark(errs.New("date not available: "+decision.Reason), ErrDateUnavailable)
		}
		return ErrDateUnavailable
	}
	return nil
}

// serviceFor resolves the catalog entry for an existing booking; entries
// removed from the catalog fall back to placeholder display text.
func (c *bookingCommandsImpl) serviceFor(b *booking.Booking) catalog.Service {
	if svc, ok := c.catalog.FindByID(b.ServiceID()); ok {
		return svc
	}
	return catalog.Service{
		ID:           b.ServiceID(),
		Title:        b.ServiceName(),
		PriceText:    "A combinar",
		DurationText: "A definir",
	}
}

func (c *bookingCommandsImpl) recordFeedEntry(ctx context.Context, kind, title, message string, bookingID uuid.UUID) {
	entry := FeedEntry{
		ID:        uuid.New(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		BookingID: &bookingID,
		CreatedAt: c.clock.Now(),
	}
	if err := c.feed.Insert(ctx, entry); err != nil {
		slog.Warn("failed to record notification feed entry", "kind", kind, "error", err.Error())
	}
}

func (c *bookingCommandsImpl) dispatch(ctx context.Context, phone, message string) {
	if err := c.notifier.Send(ctx, phone, message); err != nil {
		slog.Warn("whatsapp dispatch failed", "error", err.Error())
	}
}

func BookingToView(b *booking.Booking) *queries.BookingView {
	return &queries.BookingView{
		ID:               b.ID(),
		ShortCode:        b.ShortCode(),
		Day:              b.Day(),
		ServiceID:        b.ServiceID(),
		ServiceName:      b.ServiceName(),
		ClientName:       b.Client().Name(),
		ClientPhone:      b.Client().Phone(),
		ClientEmail:      b.Client().Email(),
		ClientAddress:    b.Client().Address(),
		Notes:            b.Note().String(),
		Status:           b.Status().String(),
		NotificationSent: b.NotificationSent(),
		CreatedAt:        b.CreatedAt(),
		ConfirmedAt:      b.ConfirmedAt(),
	}
}
