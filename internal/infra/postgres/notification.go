package postgres

import (
	"context"
	"time"

	"cleanpro-api/internal/infra"
	"cleanpro-api/internal/usecase/commands"
	"cleanpro-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

const insertNotificationSQL = `
INSERT INTO notifications (id, kind, title, message, booking_id, is_read, created_at)
VALUES ($1, $2, $3, $4, $5, false, $6)`

func (r *NotificationRepository) Insert(ctx context.Context, entry commands.FeedEntry) error {
	_, err := r.pool.Exec(ctx, insertNotificationSQL,
		entry.ID, entry.Kind, entry.Title, entry.Message, entry.BookingID, entry.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert notification", err)
	}
	return nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE notifications SET is_read = true, read_at = $1 WHERE id = $2", readAt, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, readAt time.Time) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE notifications SET is_read = true, read_at = $1 WHERE is_read = false", readAt)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return nil
}

type NotificationReadStore struct {
	pool *pgxpool.Pool
}

func NewNotificationReadStore(pool *pgxpool.Pool) *NotificationReadStore {
	return &NotificationReadStore{pool: pool}
}

const selectNotificationSQL = `
SELECT id, kind, title, message, booking_id, is_read, created_at, read_at
FROM notifications`

func (r *NotificationReadStore) ListRecent(ctx context.Context, limit int) ([]*queries.NotificationView, error) {
	rows, err := r.pool.Query(ctx, selectNotificationSQL+" ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var views []*queries.NotificationView
	for rows.Next() {
		var v queries.NotificationView
		if err := rows.Scan(&v.ID, &v.Kind, &v.Title, &v.Message, &v.BookingID, &v.IsRead, &v.CreatedAt, &v.ReadAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification rows", err)
	}
	return views, nil
}

func (r *NotificationReadStore) CountUnread(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM notifications WHERE is_read = false").Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return n, nil
}
