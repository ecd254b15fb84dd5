package repository

import (
	"context"

	"tradbazar/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	ListByUser(ctx context.Context, userEmail string, limit, offset int) ([]*entity.Notification, int64, error)
	CountUnread(ctx context.Context, userEmail string) (int64, error)
	MarkRead(ctx context.Context, userEmail, id string) error
	MarkAllRead(ctx context.Context, userEmail string) error
}
