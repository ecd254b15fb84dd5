package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradbazar/internal/domain/entity"
)

type failingPublisher struct {
	calls int
}

func (p *failingPublisher) Publish(_ context.Context, _ string, _ interface{}) error {
	p.calls++
	return fmt.Errorf("broker unavailable")
}

type recordingBroadcaster struct {
	pushed []string
}

func (b *recordingBroadcaster) Push(email string, _ interface{}) {
	b.pushed = append(b.pushed, email)
}

func TestEmitAssignsIDAndTimestamp(t *testing.T) {
	repo := newFakeNotificationRepo()
	notifier := NewNotifier(repo, nil, nil)

	err := notifier.Emit(context.Background(), &entity.Notification{
		UserEmail: "buyer@example.com",
		Title:     "Order placed",
	})

	require.NoError(t, err)
	require.Len(t, repo.notifications, 1)
	assert.NotEmpty(t, repo.notifications[0].ID)
	assert.False(t, repo.notifications[0].CreatedAt.IsZero())
}

func TestEmitSurvivesPublisherFailure(t *testing.T) {
	repo := newFakeNotificationRepo()
	publisher := &failingPublisher{}
	broadcaster := &recordingBroadcaster{}
	notifier := NewNotifier(repo, publisher, broadcaster)

	err := notifier.Emit(context.Background(),
		&entity.Notification{UserEmail: "buyer@example.com", Title: "Order placed"},
		&entity.Notification{UserEmail: "rahim@example.com", Title: "New order"},
	)

	require.NoError(t, err)
	assert.Len(t, repo.notifications, 2)
	assert.Equal(t, 2, publisher.calls)
	assert.Equal(t, []string{"buyer@example.com", "rahim@example.com"}, broadcaster.pushed)
}

func TestEmitWithoutSinks(t *testing.T) {
	repo := newFakeNotificationRepo()
	notifier := NewNotifier(repo, nil, nil)

	err := notifier.Emit(context.Background(), &entity.Notification{UserEmail: "buyer@example.com"})

	require.NoError(t, err)
	assert.Len(t, repo.notifications, 1)
}
