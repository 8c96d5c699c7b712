package memory

import (
	"context"
	"sync"
	"time"

	"cleanpro-api/internal/infra"
	"cleanpro-api/internal/usecase/commands"
	"cleanpro-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type feedRecord struct {
	entry  commands.FeedEntry
	isRead bool
	readAt *time.Time
}

type NotificationStore struct {
	mu    sync.RWMutex
	items []*feedRecord // insertion order
	byID  map[uuid.UUID]*feedRecord
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{byID: make(map[uuid.UUID]*feedRecord)}
}

func (s *NotificationStore) Insert(_ context.Context, entry commands.FeedEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &feedRecord{entry: entry}
	s.items = append(s.items, rec)
	s.byID[entry.ID] = rec
	return nil
}

func (s *NotificationStore) MarkRead(_ context.Context, id uuid.UUID, readAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	rec.isRead = true
	t := readAt
	rec.readAt = &t
	return nil
}

func (s *NotificationStore) MarkAllRead(_ context.Context, readAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.items {
		if rec.isRead {
			continue
		}
		rec.isRead = true
		t := readAt
		rec.readAt = &t
	}
	return nil
}

func (s *NotificationStore) ListRecent(_ context.Context, limit int) ([]*queries.NotificationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var views []*queries.NotificationView
	for i := len(s.items) - 1; i >= 0 && len(views) < limit; i-- {
		views = append(views, recordToView(s.items[i]))
	}
	return views, nil
}

func (s *NotificationStore) CountUnread(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, rec := range s.items {
		if !rec.isRead {
			n++
		}
	}
	return n, nil
}

func recordToView(rec *feedRecord) *queries.NotificationView {
	v := &queries.NotificationView{
		ID:        rec.entry.ID,
		Kind:      rec.entry.Kind,
		Title:     rec.entry.Title,
		Message:   rec.entry.Message,
		BookingID: rec.entry.BookingID,
		IsRead:    rec.isRead,
		CreatedAt: rec.entry.CreatedAt,
	}
	if rec.readAt != nil {
		t := *rec.readAt
		v.ReadAt = &t
	}
	return v
}
