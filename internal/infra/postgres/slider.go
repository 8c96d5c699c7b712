package postgres

import (
	"context"
	"errors"
	"time"

	"cleanpro-api/internal/domain/slider"
	"cleanpro-api/internal/infra"
	"cleanpro-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SliderRepository struct {
	pool *pgxpool.Pool
}

func NewSliderRepository(pool *pgxpool.Pool) *SliderRepository {
	return &SliderRepository{pool: pool}
}

const insertSliderImageSQL = `
INSERT INTO slider_images (id, url, caption, position, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *SliderRepository) Insert(ctx context.Context, img *slider.Image) error {
	_, err := r.pool.Exec(ctx, insertSliderImageSQL,
		img.ID(), img.URL(), img.Caption(), img.Position(), img.IsActive(), img.CreatedAt(), img.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert slider image", err)
	}
	return nil
}

const selectSliderImageSQL = `
SELECT id, url, caption, position, is_active, created_at, updated_at
FROM slider_images`

func (r *SliderRepository) FindByID(ctx context.Context, id uuid.UUID) (*slider.Image, error) {
	row := r.pool.QueryRow(ctx, selectSliderImageSQL+" WHERE id = $1", id)
	img, err := scanSliderImage(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slider image not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slider image", err)
	}
	return img, nil
}

const updateSliderImageSQL = `
UPDATE slider_images
SET caption = $1, position = $2, is_active = $3, updated_at = $4
WHERE id = $5`

func (r *SliderRepository) Update(ctx context.Context, img *slider.Image) error {
	tag, err := r.pool.Exec(ctx, updateSliderImageSQL,
		img.Caption(), img.Position(), img.IsActive(), img.UpdatedAt(), img.ID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update slider image", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slider image not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SliderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM slider_images WHERE id = $1", id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete slider image", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slider image not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SliderRepository) NextPosition(ctx context.Context) (int, error) {
	var next int
	if err := r.pool.QueryRow(ctx, "SELECT COALESCE(MAX(position), 0) + 1 FROM slider_images").Scan(&next); err != nil {
		return 0, infra.WrapRepoErr("failed to compute next slider position", err)
	}
	return next, nil
}

type sliderRow interface {
	Scan(dest ...any) error
}

func scanSliderImage(row sliderRow) (*slider.Image, error) {
	var (
		id                   uuid.UUID
		url, caption         string
		position             int
		isActive             bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &url, &caption, &position, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return slider.ReconstructImage(id, url, caption, position, isActive, createdAt, updatedAt), nil
}

type SliderReadStore struct {
	pool *pgxpool.Pool
}

func NewSliderReadStore(pool *pgxpool.Pool) *SliderReadStore {
	return &SliderReadStore{pool: pool}
}

func (r *SliderReadStore) List(ctx context.Context, activeOnly bool) ([]*queries.SliderImageView, error) {
	query := selectSliderImageSQL
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY position ASC"

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slider images", err)
	}
	defer rows.Close()

	var views []*queries.SliderImageView
	for rows.Next() {
		img, err := scanSliderImage(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan slider image row", err)
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
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slider image rows", err)
	}
	return views, nil
}
