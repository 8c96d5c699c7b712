package postgres

import (
	"context"
	"errors"
	"time"

	"cleanpro-api/internal/domain/availability"
	"cleanpro-api/internal/infra"
	"cleanpro-api/internal/pkg/calendar"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AvailabilityRepository struct {
	pool *pgxpool.Pool
}

func NewAvailabilityRepository(pool *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{pool: pool}
}

const saveOverrideSQL = `
INSERT INTO availability_overrides (id, day, is_available, reason, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (day) DO UPDATE
SET is_available = EXCLUDED.is_available,
    reason       = EXCLUDED.reason,
    updated_at   = EXCLUDED.updated_at`

func (r *AvailabilityRepository) Save(ctx context.Context, o *availability.Override) error {
	_, err := r.pool.Exec(ctx, saveOverrideSQL,
		o.ID(), o.Day().Time(), o.IsAvailable(), o.Reason(), o.CreatedAt(), o.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save availability override", err)
	}
	return nil
}

const selectOverrideSQL = `
SELECT id, day, is_available, reason, created_at, updated_at
FROM availability_overrides`

func (r *AvailabilityRepository) FindByDay(ctx context.Context, day calendar.Day) (*availability.Override, error) {
	row := r.pool.QueryRow(ctx, selectOverrideSQL+" WHERE day = $1", day.Time())
	o, err := scanOverride(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("availability override not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find availability override", err)
	}
	return o, nil
}

func (r *AvailabilityRepository) ListAll(ctx context.Context) ([]*availability.Override, error) {
	rows, err := r.pool.Query(ctx, selectOverrideSQL+" ORDER BY day ASC")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability overrides", err)
	}
	defer rows.Close()

	var overrides []*availability.Override
	for rows.Next() {
		o, err := scanOverride(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability override", err)
		}
		overrides = append(overrides, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate availability overrides", err)
	}
	return overrides, nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, day calendar.Day) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM availability_overrides WHERE day = $1", day.Time()); err != nil {
		return infra.WrapRepoErr("failed to delete availability override", err)
	}
	return nil
}

func (r *AvailabilityRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM availability_overrides"); err != nil {
		return infra.WrapRepoErr("failed to clear availability overrides", err)
	}
	return nil
}

type overrideRow interface {
	Scan(dest ...any) error
}

func scanOverride(row overrideRow) (*availability.Override, error) {
	var (
		id                   uuid.UUID
		day                  time.Time
		isAvailable          bool
		reason               string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &day, &isAvailable, &reason, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return availability.ReconstructOverride(id, calendar.DayOf(day), isAvailable, reason, createdAt, updatedAt), nil
}
