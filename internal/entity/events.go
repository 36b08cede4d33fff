package entity

import "time"

type BookingEventType string

const (
	EventBookingConfirmed BookingEventType = "booking.confirmed"
	EventBookingCancelled BookingEventType = "booking.cancelled"
)

// BookingEvent is published after a booking changes state. Delivery is
// best-effort: consumers react asynchronously, the booking itself is already
// durable by the time the event is sent.
type BookingEvent struct {
	ID         string           `json:"id"`
	Type       BookingEventType `json:"type"`
	BookingID  int64            `json:"booking_id"`
	BoxID      int64            `json:"box_id"`
	UserID     int64            `json:"user_id"`
	Date       string           `json:"date"`
	StartTime  string           `json:"start_time"`
	OccurredAt time.Time        `json:"occurred_at"`
}
