package response

import (
	"cleanpro-api/internal/usecase/commands"
	"cleanpro-api/internal/usecase/queries"
)

// CreateBookingResponse returns the stored booking together with the
// pre-rendered WhatsApp notice, so a browser client can open the business
// conversation in one click.
type CreateBookingResponse struct {
	Booking     *queries.BookingView `json:"booking"`
	Message     string               `json:"message"`
	WhatsAppURL string               `json:"whatsapp_url,omitempty"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) CreateBookingResponse {
	return CreateBookingResponse{
		Booking:     r.Booking,
		Message:     r.Message,
		WhatsAppURL: r.WhatsAppURL,
	}
}

type TransitionBookingResponse struct {
	Booking     *queries.BookingView `json:"booking"`
	Message     string               `json:"message,omitempty"`
	WhatsAppURL string               `json:"whatsapp_url,omitempty"`
}

func FromTransitionResult(r *commands.TransitionResult) TransitionBookingResponse {
	return TransitionBookingResponse{
		Booking:     r.Booking,
		Message:     r.Message,
		WhatsAppURL: r.WhatsAppURL,
	}
}
