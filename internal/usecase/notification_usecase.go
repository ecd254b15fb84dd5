package usecase

import (
	"context"

	"tradbazar/internal/domain/entity"
	"tradbazar/internal/domain/repository"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

type NotificationFeed struct {
	Items       []*entity.Notification `json:"items"`
	Total       int64                  `json:"total"`
	UnreadCount int64                  `json:"unread_count"`
}

func (uc *NotificationUseCase) GetFeed(ctx context.Context, userEmail string, limit, offset int) (*NotificationFeed, error) {
	items, total, err := uc.notificationRepo.ListByUser(ctx, userEmail, limit, offset)
	if err != nil {
		return nil, err
	}

	unread, err := uc.notificationRepo.CountUnread(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	return &NotificationFeed{
		Items:       items,
		Total:       total,
		UnreadCount: unread,
	}, nil
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, userEmail, id string) error {
	return uc.notificationRepo.MarkRead(ctx, userEmail, id)
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userEmail string) error {
	return uc.notificationRepo.MarkAllRead(ctx, userEmail)
}
