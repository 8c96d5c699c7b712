//go:build unit

package notification_test

import (
	"testing"
	"time"

	"cleanpro-api/internal/domain/booking"
	"cleanpro-api/internal/domain/catalog"
	"cleanpro-api/internal/notification"
	"cleanpro-api/internal/pkg/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooking(t *testing.T, note string) (*booking.Booking, catalog.Service) {
	t.Helper()

	client, err := booking.NewClientInfo("Maria Silva", "(53) 99911-2233", "maria@example.com", "Rua das Flores 120")
	require.NoError(t, err)

	day, _ := calendar.ParseDay("2025-03-10")
	svc, ok := catalog.Default().FindByID("residencial")
	require.True(t, ok)

	b, err := booking.NewBooking(day, svc.ID, svc.Title, client, booking.NewNote(note), time.Now())
	require.NoError(t, err)
	return b, svc
}

func TestRenderAdminNotice(t *testing.T) {
	b, svc := sampleBooking(t, "Apartamento com dois banheiros")

	msg := notification.RenderAdminNotice(b, svc)

	assert.Contains(t, msg, "#"+b.ShortCode())
	assert.Contains(t, msg, "10/03/2025")
	assert.Contains(t, msg, "(53) 99911-2233")
	assert.Contains(t, msg, svc.Title)
	assert.Contains(t, msg, svc.PriceText)
	assert.Contains(t, msg, "Maria Silva")
	assert.Contains(t, msg, "Rua das Flores 120")
	assert.Contains(t, msg, "Apartamento com dois banheiros")
}

func TestRenderAdminNoticeOmitsEmptyNote(t *testing.T) {
	b, svc := sampleBooking(t, "")

	msg := notification.RenderAdminNotice(b, svc)

	assert.NotContains(t, msg, "Observações")
}

func TestRenderClientConfirmation(t *testing.T) {
	b, svc := sampleBooking(t, "")
	require.NoError(t, b.TransitionTo(booking.StatusConfirmed, time.Now()))

	msg := notification.RenderClientConfirmation(b, svc)

	assert.Contains(t, msg, "CONFIRMADO")
	assert.Contains(t, msg, "#"+b.ShortCode())
	assert.Contains(t, msg, "10/03/2025")
	assert.Contains(t, msg, "Maria Silva")
	assert.Contains(t, msg, "(53) 99911-2233")
}

func TestRenderClientCancellation(t *testing.T) {
	b, _ := sampleBooking(t, "")
	require.NoError(t, b.TransitionTo(booking.StatusCancelled, time.Now()))

	msg := notification.RenderClientCancellation(b)

	assert.Contains(t, msg, "CANCELADO")
	assert.Contains(t, msg, "#"+b.ShortCode())
	assert.Contains(t, msg, "desculpas")
	assert.Contains(t, msg, "reagendar")
}
