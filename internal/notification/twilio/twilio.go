// Package twilio sends WhatsApp messages through the Twilio API for
// deployments that want real server-side delivery instead of wa.me links.
package twilio

import (
	"context"

	"cleanpro-api/internal/domain/booking"
	"cleanpro-api/internal/pkg/errs"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type Notifier struct {
	client *twilio.RestClient
	from   string
}

func NewNotifier(accountSID, authToken, fromNumber string) *Notifier {
	return &Notifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: fromNumber,
	}
}

func (n *Notifier) Send(_ context.Context, phone, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:+" + booking.PhoneDigits(phone))
	params.SetFrom("whatsapp:" + n.from)
	params.SetBody(message)

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		return errs.Wrap(err, "twilio whatsapp send failed")
	}
	return nil
}
