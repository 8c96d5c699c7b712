package request

import (
	"cleanpro-api/internal/domain/booking"
	"cleanpro-api/internal/pkg/calendar"
	"cleanpro-api/internal/usecase/commands"
)

type CreateBookingRequest struct {
	Date      string `json:"date" binding:"required"`
	ServiceID string `json:"service_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Address   string `json:"address" binding:"required"`
	Notes     string `json:"notes"`
}

func (r *CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	day, err := calendar.ParseDay(r.Date)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		Day:       day,
		ServiceID: r.ServiceID,
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Address:   r.Address,
		Notes:     r.Notes,
	}, nil
}

type TransitionBookingRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled completed"`
}

func (r *TransitionBookingRequest) ToStatus() booking.Status {
	return booking.Status(r.Status)
}
