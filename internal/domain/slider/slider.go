package slider

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrURLRequired     = errors.New("image url is required")
	ErrInvalidPosition = errors.New("image position cannot be negative")
)

// Image is one marketing slide shown on the public site. Position orders the
// carousel; inactive images stay stored but are hidden.
type Image struct {
	id        uuid.UUID
	url       string
	caption   string
	position  int
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewImage(url, caption string, position int, now time.Time) (*Image, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrURLRequired
	}
	if position < 0 {
		return nil, ErrInvalidPosition
	}

	return &Image{
		id:        uuid.New(),
		url:       url,
		caption:   strings.TrimSpace(caption),
		position:  position,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructImage(id uuid.UUID, url, caption string, position int, isActive bool, createdAt, updatedAt time.Time) *Image {
	return &Image{
		id:        id,
		url:       url,
		caption:   caption,
		position:  position,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (i *Image) Update(caption string, position int, isActive bool, now time.Time) error {
	if position < 0 {
		return ErrInvalidPosition
	}
	i.caption = strings.TrimSpace(caption)
	i.position = position
	i.isActive = isActive
	i.updatedAt = now
	return nil
}

func (i *Image) ID() uuid.UUID        { return i.id }
func (i *Image) URL() string          { return i.url }
func (i *Image) Caption() string      { return i.caption }
func (i *Image) Position() int        { return i.position }
func (i *Image) IsActive() bool       { return i.isActive }
func (i *Image) CreatedAt() time.Time { return i.createdAt }
func (i *Image) UpdatedAt() time.Time { return i.updatedAt }
