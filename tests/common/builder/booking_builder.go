//go:build unit || integration

package builder

import (
	"time"

	dombooking "cleanpro-api/internal/domain/booking"
	reqdto "cleanpro-api/internal/handler/dto/request"
	"cleanpro-api/internal/pkg/calendar"
	"cleanpro-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID        uuid.UUID
	Date      string
	ServiceID string
	Name      string
	Phone     string
	Email     string
	Address   string
	Notes     string
	Status    string
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        uuid.New(),
		Date:      "2025-03-10",
		ServiceID: "residencial",
		Name:      "Maria Silva",
		Phone:     "(53) 99911-2233",
		Email:     "maria@example.com",
		Address:   "Rua das Flores 120",
		Notes:     "",
		Status:    "pending",
		CreatedAt: time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	day, err := calendar.ParseDay(b.Date)
	if err != nil {
		return nil, err
	}
	client, err := dombooking.NewClientInfo(b.Name, b.Phone, b.Email, b.Address)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(day, b.ServiceID, "Limpeza Residencial", client, dombooking.NewNote(b.Notes), b.CreatedAt)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Date:      b.Date,
		ServiceID: b.ServiceID,
		Name:      b.Name,
		Phone:     b.Phone,
		Email:     b.Email,
		Address:   b.Address,
		Notes:     b.Notes,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	day, _ := calendar.ParseDay(b.Date)
	return &queries.BookingView{
		ID:            b.ID,
		ShortCode:     dombooking.ShortCode(b.ID),
		Day:           day,
		ServiceID:     b.ServiceID,
		ServiceName:   "Limpeza Residencial",
		ClientName:    b.Name,
		ClientPhone:   b.Phone,
		ClientEmail:   b.Email,
		ClientAddress: b.Address,
		Notes:         b.Notes,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}
