package commands

import (
	"context"

	"cleanpro-api/internal/infra"
	"cleanpro-api/internal/pkg/clock"
	"cleanpro-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.New("notification not found")

type NotificationCommands interface {
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) error
}

type notificationCommandsImpl struct {
	feed  NotificationRepository
	clock clock.Clock
}

func NewNotificationCommands(feed NotificationRepository, clk clock.Clock) NotificationCommands {
	return &notificationCommandsImpl{feed: feed, clock: clk}
}

func (c *notificationCommandsImpl) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := c.feed.MarkRead(ctx, id, c.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNotificationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *notificationCommandsImpl) MarkAllRead(ctx context.Context) error {
	if err := c.feed.MarkAllRead(ctx, c.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
