package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tradbazar/internal/domain/entity"
	"tradbazar/internal/domain/repository"
	"tradbazar/pkg/logger"
)

// EventPublisher publishes a domain event to the notification event stream.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event interface{}) error
}

// PushBroadcaster delivers a payload to a user's live notification sockets.
type PushBroadcaster interface {
	Push(email string, payload interface{})
}

// Notifier is the emission stage for notification fan-out. Mutating usecases
// build the list of notifications for a transition and hand it here; storing
// is mandatory, streaming and pushing are best-effort and never fail the
// primary mutation.
type Notifier struct {
	notificationRepo repository.NotificationRepository
	events           EventPublisher
	push             PushBroadcaster
}

func NewNotifier(notificationRepo repository.NotificationRepository, events EventPublisher, push PushBroadcaster) *Notifier {
	return &Notifier{
		notificationRepo: notificationRepo,
		events:           events,
		push:             push,
	}
}

// Emit stores each notification, then publishes and pushes it. Repeated
// identical transitions re-notify every time; deduplication is intentionally
// not done here.
func (n *Notifier) Emit(ctx context.Context, notifications ...*entity.Notification) error {
	for _, notification := range notifications {
		if notification.ID == "" {
			notification.ID = uuid.NewString()
		}
		if notification.CreatedAt.IsZero() {
			notification.CreatedAt = time.Now()
		}

		if err := n.notificationRepo.Create(ctx, notification); err != nil {
			return err
		}

		if n.events != nil {
			if err := n.events.Publish(ctx, notification.UserEmail, notification); err != nil {
				logger.Warn("Failed to publish notification event for %s: %v", notification.UserEmail, err)
			}
		}

		if n.push != nil {
			n.push.Push(notification.UserEmail, notification)
		}
	}

	return nil
}
