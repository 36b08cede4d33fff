package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bookmybox/backend/internal/entity"
	"github.com/bookmybox/backend/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
)

// NotificationWorker consumes booking lifecycle events from the queue and
// emits user-facing notifications. Delivery channels beyond the structured
// log (email, push) plug in behind the notify method.
type NotificationWorker struct {
	queue rabbitmq.Queue
}

func NewNotificationWorker(queue rabbitmq.Queue) *NotificationWorker {
	return &NotificationWorker{queue: queue}
}

func (w *NotificationWorker) Start(ctx context.Context) error {
	logrus.Info("Notification worker started")

	return w.queue.Consume(ctx, w.handleMessage)
}

func (w *NotificationWorker) handleMessage(message []byte) error {
	var event entity.BookingEvent
	if err := json.Unmarshal(message, &event); err != nil {
		// Broken payloads are dropped, requeueing them would loop forever.
		logrus.Errorf("Failed to decode booking event, dropping: %v", err)
		return nil
	}

	return w.notify(&event)
}

func (w *NotificationWorker) notify(event *entity.BookingEvent) error {
	var message string

	switch event.Type {
	case entity.EventBookingConfirmed:
		message = fmt.Sprintf("Your booking #%d is confirmed for %s at %s",
			event.BookingID, event.Date, event.StartTime)
	case entity.EventBookingCancelled:
		message = fmt.Sprintf("Your booking #%d for %s at %s has been cancelled",
			event.BookingID, event.Date, event.StartTime)
	default:
		logrus.Warnf("Unknown booking event type %q, skipping", event.Type)
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"event_id":   event.ID,
		"event_type": event.Type,
		"booking_id": event.BookingID,
		"user_id":    event.UserID,
	}).Info(message)

	return nil
}
