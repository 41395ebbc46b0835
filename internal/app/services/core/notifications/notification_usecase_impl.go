package notifications

import (
	"context"
	"sync"
	"time"
	"vetcare-service/internal/app/contracts"
	"vetcare-service/internal/app/models"
	"vetcare-service/internal/pkg/constvars"
	"vetcare-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	QueueService           contracts.NotificationQueueService
	Log                    *zap.Logger
}

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

func NewNotificationUsecase(
	notificationRepository contracts.NotificationRepository,
	queueService contracts.NotificationQueueService,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		instance := &notificationUsecase{
			NotificationRepository: notificationRepository,
			QueueService:           queueService,
			Log:                    logger,
		}
		notificationUsecaseInstance = instance
	})
	return notificationUsecaseInstance
}

// Emit durably records the notification, then hands it to the delivery
// queue. The caller only learns about create failures; a queue hiccup is
// logged and retried by the delivery pipeline's own reconciliation, since
// the record is already persisted.
func (uc *notificationUsecase) Emit(ctx context.Context, notification *models.Notification) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	notification.Read = false
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	notificationID, err := uc.NotificationRepository.Create(ctx, notification)
	if err != nil {
		uc.Log.Error("notificationUsecase.Emit error creating notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecipientIDKey, notification.RecipientID),
			zap.Error(err),
		)
		return err
	}
	notification.ID = notificationID

	if uc.QueueService != nil {
		if err := uc.QueueService.Publish(ctx, notification); err != nil {
			uc.Log.Warn("notificationUsecase.Emit error publishing to delivery queue",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRecipientIDKey, notification.RecipientID),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (uc *notificationUsecase) FindAll(ctx context.Context, recipientID string) ([]responses.Notification, error) {
	notifications, err := uc.NotificationRepository.FindByRecipientID(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Notification, 0, len(notifications))
	for _, notification := range notifications {
		response = append(response, responses.Notification{
			ID:        notification.ID,
			Kind:      string(notification.Kind),
			Message:   notification.Message,
			Read:      notification.Read,
			CreatedAt: notification.CreatedAt,
		})
	}
	return response, nil
}

func (uc *notificationUsecase) MarkRead(ctx context.Context, recipientID, notificationID string) error {
	return uc.NotificationRepository.MarkRead(ctx, notificationID, recipientID)
}
