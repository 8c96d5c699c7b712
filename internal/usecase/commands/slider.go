package commands

import (
	"context"

	"cleanpro-api/internal/domain/slider"
	"cleanpro-api/internal/infra"
	"cleanpro-api/internal/pkg/clock"
	"cleanpro-api/internal/pkg/errs"
	"cleanpro-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrSliderImageNotFound = errs.New("slider image not found")

type UpdateSliderImageInput struct {
	Caption  string
	Position int
	IsActive bool
}

type SliderCommands interface {
	AddImage(ctx context.Context, url, caption string) (*queries.SliderImageView, error)
	UpdateImage(ctx context.Context, id uuid.UUID, in UpdateSliderImageInput) (*queries.SliderImageView, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
}

type sliderCommandsImpl struct {
	images SliderRepository
	clock  clock.Clock
}

func NewSliderCommands(images SliderRepository, clk clock.Clock) SliderCommands {
	return &sliderCommandsImpl{images: images, clock: clk}
}

func (c *sliderCommandsImpl) AddImage(ctx context.Context, url, caption string) (*queries.SliderImageView, error) {
	position, err := c.images.NextPosition(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	img, err := slider.NewImage(url, caption, position, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.images.Insert(ctx, img); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return imageToView(img), nil
}

func (c *sliderCommandsImpl) UpdateImage(ctx context.Context, id uuid.UUID, in UpdateSliderImageInput) (*queries.SliderImageView, error) {
	img, err := c.images.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSliderImageNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := img.Update(in.Caption, in.Position, in.IsActive, c.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.images.Update(ctx, img); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return imageToView(img), nil
}

func (c *sliderCommandsImpl) DeleteImage(ctx context.Context, id uuid.UUID) error {
	if err := c.images.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSliderImageNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func imageToView(img *slider.Image) *queries.SliderImageView {
	return &queries.SliderImageView{
		ID:        img.ID(),
		URL:       img.URL(),
		Caption:   img.Caption(),
		Position:  img.Position(),
		IsActive:  img.IsActive(),
		CreatedAt: img.CreatedAt(),
		UpdatedAt: img.UpdatedAt(),
	}
}
