package components

import (
	"fmt"
	"log/slog"

	"cleanpro-api/internal/notification"
	"cleanpro-api/internal/notification/twilio"
	"cleanpro-api/internal/notification/walink"
	"cleanpro-api/internal/pkg/config"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier picks the WhatsApp delivery channel. walink hands wa.me deep
// links back to the caller; twilio pushes messages through the API.
func NewNotifier(cfg config.Config, logger *slog.Logger) (notification.Notifier, error) {
	switch cfg.WhatsApp.Channel {
	case "walink":
		return walink.NewNotifier(logger), nil
	case "twilio":
		return twilio.NewNotifier(cfg.WhatsApp.TwilioSID, cfg.WhatsApp.TwilioAuthToken, cfg.WhatsApp.TwilioFrom), nil
	default:
		return nil, fmt.Errorf("unknown whatsapp channel %q", cfg.WhatsApp.Channel)
	}
}
