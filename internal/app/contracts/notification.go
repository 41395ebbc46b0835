package contracts

import (
	"context"
	"vetcare-service/internal/app/models"
	"vetcare-service/internal/pkg/dto/responses"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) (string, error)
	FindByRecipientID(ctx context.Context, recipientID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID, recipientID string) error
}

// NotificationEmitter is the fire-and-forget side channel invoked by state
// transitions. The core only observes create-failed vs create-succeeded;
// delivery is the collaborator's problem.
type NotificationEmitter interface {
	Emit(ctx context.Context, notification *models.Notification) error
}

type NotificationUsecase interface {
	NotificationEmitter
	FindAll(ctx context.Context, recipientID string) ([]responses.Notification, error)
	MarkRead(ctx context.Context, recipientID, notificationID string) error
}

// NotificationQueueService hands a durably recorded notification to the
// delivery pipeline with at-least-once intent.
type NotificationQueueService interface {
	Publish(ctx context.Context, notification *models.Notification) error
}
