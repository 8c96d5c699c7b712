package memory

import (
	"context"
	"sort"
	"sync"

	"cleanpro-api/internal/domain/slider"
	"cleanpro-api/internal/infra"
	"cleanpro-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type SliderStore struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*slider.Image
}

func NewSliderStore() *SliderStore {
	return &SliderStore{byID: make(map[uuid.UUID]*slider.Image)}
}

func (s *SliderStore) Insert(_ context.Context, img *slider.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[img.ID()]; ok {
		return infra.WrapRepoErr("slider image already exists", nil, infra.KindDuplicateKey)
	}
	s.byID[img.ID()] = cloneImage(img)
	return nil
}

func (s *SliderStore) FindByID(_ context.Context, id uuid.UUID) (*slider.Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	img, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("slider image not found", nil, infra.KindNotFound)
	}
	return cloneImage(img), nil
}

func (s *SliderStore) Update(_ context.Context, img *slider.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[img.ID()]; !ok {
		return infra.WrapRepoErr("slider image not found", nil, infra.KindNotFound)
	}
	s.byID[img.ID()] = cloneImage(img)
	return nil
}

func (s *SliderStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return infra.WrapRepoErr("slider image not found", nil, infra.KindNotFound)
	}
	delete(s.byID, id)
	return nil
}

func (s *SliderStore) NextPosition(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	max := 0
	for _, img := range s.byID {
		if img.Position() > max {
			max = img.Position()
		}
	}
	return max + 1, nil
}

func (s *SliderStore) List(_ context.Context, activeOnly bool) ([]*queries.SliderImageView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var views []*queries.SliderImageView
	for _, img := range s.byID {
		if activeOnly && !img.IsActive() {
			continue
		}
		views = append(views, &queries.SliderImageView{
			ID:        img.ID(),
			URL:       img.URL(),
			Caption:   img.Caption(),
			Position:  img.Position(),
			IsActive:  img.IsActive(),
			CreatedAt: img.CreatedAt(),
			UpdatedAt: img.UpdatedAt(),
		})
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].Position < views[j].Position
	})
	return views, nil
}

func cloneImage(img *slider.Image) *slider.Image {
	return slider.ReconstructImage(
		img.ID(), img.URL(), img.Caption(), img.Position(), img.IsActive(),
		img.CreatedAt(), img.UpdatedAt(),
	)
}
