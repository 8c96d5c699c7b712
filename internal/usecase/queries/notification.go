package queries

import (
	"context"

	"cleanpro-api/internal/pkg/errs"
)

const defaultFeedLimit = 50

type NotificationQueries interface {
	ListRecent(ctx context.Context, limit int) ([]*NotificationView, error)
	UnreadCount(ctx context.Context) (int, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListRecent(ctx context.Context, limit int) ([]*NotificationView, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	views, err := q.store.ListRecent(ctx, limit)
	return views, errs.Wrap(err, "failed to list notifications")
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context) (int, error) {
	n, err := q.store.CountUnread(ctx)
	return n, errs.Wrap(err, "failed to count unread notifications")
}
