package notifications

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
	"vetcare-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeNotificationRepository struct {
	created   []*models.Notification
	createErr error
	sequence  int
}

func (f *fakeNotificationRepository) Create(ctx context.Context, notification *models.Notification) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.sequence++
	stored := *notification
	stored.ID = fmt.Sprintf("notif-%d", f.sequence)
	f.created = append(f.created, &stored)
	return stored.ID, nil
}

func (f *fakeNotificationRepository) FindByRecipientID(ctx context.Context, recipientID string) ([]models.Notification, error) {
	var result []models.Notification
	for _, notification := range f.created {
		if notification.RecipientID == recipientID {
			result = append(result, *notification)
		}
	}
	return result, nil
}

func (f *fakeNotificationRepository) MarkRead(ctx context.Context, notificationID, recipientID string) error {
	return nil
}

type fakeQueueService struct {
	published  []*models.Notification
	publishErr error
}

func (f *fakeQueueService) Publish(ctx context.Context, notification *models.Notification) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, notification)
	return nil
}

func TestEmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Records the notification and publishes it", func(t *testing.T) {
		repo := &fakeNotificationRepository{}
		queue := &fakeQueueService{}
		uc := &notificationUsecase{NotificationRepository: repo, QueueService: queue, Log: zap.NewNop()}

		err := uc.Emit(ctx, &models.Notification{
			RecipientID: "c1",
			Kind:        models.NotificationAppointmentUpdate,
			Message:     "Your appointment has been approved!",
		})

		assert.NoError(t, err)
		if assert.Len(t, repo.created, 1) {
			assert.False(t, repo.created[0].Read, "a fresh notification is always unread")
			assert.False(t, repo.created[0].CreatedAt.IsZero())
		}
		assert.Len(t, queue.published, 1)
	})

	t.Run("A queue failure does not fail the emit", func(t *testing.T) {
		repo := &fakeNotificationRepository{}
		queue := &fakeQueueService{publishErr: errors.New("channel closed")}
		uc := &notificationUsecase{NotificationRepository: repo, QueueService: queue, Log: zap.NewNop()}

		err := uc.Emit(ctx, &models.Notification{RecipientID: "c1", Kind: models.NotificationEmergency, Message: "m"})

		assert.NoError(t, err, "the record is durable; delivery catches up later")
		assert.Len(t, repo.created, 1)
	})

	t.Run("A create failure fails the emit", func(t *testing.T) {
		repo := &fakeNotificationRepository{createErr: errors.New("connection reset")}
		queue := &fakeQueueService{}
		uc := &notificationUsecase{NotificationRepository: repo, QueueService: queue, Log: zap.NewNop()}

		err := uc.Emit(ctx, &models.Notification{RecipientID: "c1", Kind: models.NotificationEmergency, Message: "m"})

		assert.Error(t, err)
		assert.Empty(t, queue.published, "nothing is published without a durable record")
	})
}

func TestFindAll(t *testing.T) {
	ctx := context.Background()
	repo := &fakeNotificationRepository{}
	uc := &notificationUsecase{NotificationRepository: repo, Log: zap.NewNop()}

	now := time.Now()
	repo.Create(ctx, &models.Notification{RecipientID: "c1", Kind: models.NotificationAppointmentUpdate, Message: "one", CreatedAt: now})
	repo.Create(ctx, &models.Notification{RecipientID: "c2", Kind: models.NotificationEmergency, Message: "two", CreatedAt: now})

	response, err := uc.FindAll(ctx, "c1")

	assert.NoError(t, err)
	if assert.Len(t, response, 1) {
		assert.Equal(t, "one", response[0].Message)
		assert.Equal(t, string(models.NotificationAppointmentUpdate), response[0].Kind)
	}
}
