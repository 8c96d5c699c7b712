// Package walink delivers WhatsApp messages as wa.me deep links. Nothing is
// pushed anywhere: the link is logged (and surfaced through API responses) so
// the operator's browser can open it, which is how the original site worked.
package walink

import (
	"context"
	"log/slog"
	"net/url"

	"cleanpro-api/internal/domain/booking"
)

// BuildURL renders a https://wa.me/<digits>?text=<encoded> deep link. All
// non-digit characters are stripped from the phone first.
func BuildURL(phone, message string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + booking.PhoneDigits(phone),
		RawQuery: "text=" + url.QueryEscape(message),
	}
	return u.String()
}

type Notifier struct {
	logger *slog.Logger
}

func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{logger: logger}
}

func (n *Notifier) Send(_ context.Context, phone, message string) error {
	n.logger.Info("whatsapp deep link ready",
		"phone", booking.PhoneDigits(phone),
		"url", BuildURL(phone, message),
	)
	return nil
}
