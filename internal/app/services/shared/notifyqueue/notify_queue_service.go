package notifyqueue

import (
	"context"
	"sync"
	"time"
	"vetcare-service/internal/app/contracts"
	"vetcare-service/internal/app/models"
	"vetcare-service/internal/pkg/constvars"
	"vetcare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// queueMessage is the payload handed to the delivery pipeline. Delivery
// transport is out of scope; the queue only carries at-least-once intent.
type queueMessage struct {
	NotificationID string    `json:"notification_id"`
	RecipientID    string    `json:"recipient_id"`
	Kind           string    `json:"kind"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

type Service struct {
	ch             *amqp.Channel
	log            *zap.Logger
	queueName      string
	publishTimeout time.Duration
	confirms       chan amqp.Confirmation
	mu             sync.Mutex
}

// NewService declares the durable delivery queue, enables publisher
// confirms, and sets QoS.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string, prefetch int, publishTimeout time.Duration) (contracts.NotificationQueueService, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:             ch,
		log:            log,
		queueName:      queueName,
		publishTimeout: publishTimeout,
		confirms:       ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

func (s *Service) Publish(ctx context.Context, notification *models.Notification) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(queueMessage{
		NotificationID: notification.ID,
		RecipientID:    notification.RecipientID,
		Kind:           string(notification.Kind),
		Message:        notification.Message,
		CreatedAt:      notification.CreatedAt,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	// Publishing and waiting on the confirm must not interleave across
	// goroutines on a single channel.
	s.mu.Lock()
	defer s.mu.Unlock()

	deliveryTag := s.ch.GetNextPublishSeqNo()

	err = s.ch.PublishWithContext(ctx,
		"",          // exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		s.log.Error("notifyqueue.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, s.queueName),
			zap.Error(err),
		)
		return exceptions.ErrQueuePublish(err)
	}

	return awaitConfirm(ctx, s.confirms, deliveryTag, s.publishTimeout)
}

// awaitConfirm blocks until the broker confirms the publish carrying
// deliveryTag. A confirm with a lower tag belongs to an earlier publish
// whose waiter already gave up, so it is drained rather than attributed to
// the current one.
func awaitConfirm(ctx context.Context, confirms <-chan amqp.Confirmation, deliveryTag uint64, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case confirmation := <-confirms:
			if confirmation.DeliveryTag < deliveryTag {
				continue
			}
			if !confirmation.Ack {
				return exceptions.ErrQueueNotConfirmed(nil)
			}
			return nil
		case <-timer.C:
			return exceptions.ErrQueueNotConfirmed(context.DeadlineExceeded)
		case <-ctx.Done():
			return exceptions.ErrQueueNotConfirmed(ctx.Err())
		}
	}
}
