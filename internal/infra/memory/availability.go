package memory

import (
	"context"
	"sort"
	"sync"

	"cleanpro-api/internal/domain/availability"
	"cleanpro-api/internal/infra"
	"cleanpro-api/internal/pkg/calendar"
)

type AvailabilityStore struct {
	mu    sync.RWMutex
	byDay map[string]*availability.Override
}

func NewAvailabilityStore() *AvailabilityStore {
	return &AvailabilityStore{byDay: make(map[string]*availability.Override)}
}

func (s *AvailabilityStore) Save(_ context.Context, o *availability.Override) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byDay[o.Day().String()] = cloneOverride(o)
	return nil
}

func (s *AvailabilityStore) FindByDay(_ context.Context, day calendar.Day) (*availability.Override, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.byDay[day.String()]
	if !ok {
		return nil, infra.WrapRepoErr("availability override not found", nil, infra.KindNotFound)
	}
	return cloneOverride(o), nil
}

func (s *AvailabilityStore) ListAll(_ context.Context) ([]*availability.Override, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	overrides := make([]*availability.Override, 0, len(s.byDay))
	for _, o := range s.byDay {
		overrides = append(overrides, cloneOverride(o))
	}
	sort.Slice(overrides, func(i, j int) bool {
		return overrides[i].Day().Before(overrides[j].Day())
	})
	return overrides, nil
}

func (s *AvailabilityStore) Delete(_ context.Context, day calendar.Day) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byDay, day.String())
	return nil
}

func (s *AvailabilityStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byDay = make(map[string]*availability.Override)
	return nil
}

func cloneOverride(o *availability.Override) *availability.Override {
	return availability.ReconstructOverride(
		o.ID(), o.Day(), o.IsAvailable(), o.Reason(), o.CreatedAt(), o.UpdatedAt(),
	)
}
