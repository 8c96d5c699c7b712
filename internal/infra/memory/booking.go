// Package memory provides mutex-guarded in-process stores used when the
// service runs without Postgres (STORAGE_DRIVER=memory) and by unit tests.
package memory

import (
	"context"
	"sync"
	"time"

	"cleanpro-api/internal/domain/booking"
	"cleanpro-api/internal/infra"
	"cleanpro-api/internal/pkg/calendar"
	"cleanpro-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingStore struct {
	mu    sync.RWMutex
	items []*booking.Booking // insertion order
	byID  map[uuid.UUID]int
}

func NewBookingStore() *BookingStore {
	return &BookingStore{byID: make(map[uuid.UUID]int)}
}

func (s *BookingStore) Insert(_ context.Context, b *booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[b.ID()]; ok {
		return infra.WrapRepoErr("booking already exists", nil, infra.KindDuplicateKey)
	}
	s.byID[b.ID()] = len(s.items)
	s.items = append(s.items, cloneBooking(b))
	return nil
}

func (s *BookingStore) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return cloneBooking(s.items[idx]), nil
}

func (s *BookingStore) UpdateStatus(_ context.Context, b *booking.Booking, expected booking.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[b.ID()]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if s.items[idx].Status() != expected {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}
	s.items[idx] = cloneBooking(b)
	return nil
}

func (s *BookingStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	b, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return bookingToView(b), nil
}

func (s *BookingStore) List(_ context.Context) ([]*queries.BookingView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]*queries.BookingView, 0, len(s.items))
	for _, b := range s.items {
		views = append(views, bookingToView(b))
	}
	return views, nil
}

func (s *BookingStore) ListByStatus(_ context.Context, status string) ([]*queries.BookingView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var views []*queries.BookingView
	for _, b := range s.items {
		if string(b.Status()) == status {
			views = append(views, bookingToView(b))
		}
	}
	return views, nil
}

func (s *BookingStore) ListByDay(_ context.Context, day calendar.Day) ([]*queries.BookingView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var views []*queries.BookingView
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].Day().Equal(day) {
			views = append(views, bookingToView(s.items[i]))
		}
	}
	return views, nil
}

func (s *BookingStore) DaysByStatus(_ context.Context, status string) ([]calendar.Day, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var days []calendar.Day
	for _, b := range s.items {
		if string(b.Status()) != status {
			continue
		}
		key := b.Day().String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, b.Day())
	}
	return days, nil
}

func (s *BookingStore) CountsByStatus(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, b := range s.items {
		counts[string(b.Status())]++
	}
	return counts, nil
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	var confirmedAt *time.Time
	if t := b.ConfirmedAt(); t != nil {
		c := *t
		confirmedAt = &c
	}
	return booking.ReconstructBooking(
		b.ID(), b.Day(), b.ServiceID(), b.ServiceName(),
		b.Client(), b.Note(), b.Status(), b.NotificationSent(),
		b.CreatedAt(), confirmedAt,
	)
}

func bookingToView(b *booking.Booking) *queries.BookingView {
	client := b.Client()
	return &queries.BookingView{
		ID:               b.ID(),
		ShortCode:        b.ShortCode(),
		Day:              b.Day(),
		ServiceID:        b.ServiceID(),
		ServiceName:      b.ServiceName(),
		ClientName:       client.Name(),
		ClientPhone:      client.Phone(),
		ClientEmail:      client.Email(),
		ClientAddress:    client.Address(),
		Notes:            b.Note().String(),
		Status:           string(b.Status()),
		NotificationSent: b.NotificationSent(),
		CreatedAt:        b.CreatedAt(),
		ConfirmedAt:      b.ConfirmedAt(),
	}
}
