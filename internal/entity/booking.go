package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

type Booking struct {
	ID            int64         `json:"id" db:"id"`
	BoxID         int64         `json:"box_id" db:"box_id"`
	UserID        int64         `json:"user_id" db:"user_id"`
	Date          string        `json:"date" db:"date"`             // YYYY-MM-DD
	StartTime     string        `json:"start_time" db:"start_time"` // HH:MM
	EndTime       string        `json:"end_time" db:"end_time"`     // HH:MM
	Duration      int           `json:"duration" db:"duration"`     // hours
	TotalAmount   float64       `json:"total_amount" db:"total_amount"`
	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status"`
	Status        BookingStatus `json:"booking_status" db:"booking_status"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}
