package entity

import "errors"

var (
	// Booking errors
	ErrMissingFields      = errors.New("missing required booking details (boxId, date, startTime, duration)")
	ErrInvalidDuration    = errors.New("duration must be between 1 and 6 hours")
	ErrInvalidTimeFormat  = errors.New("invalid start time or date format")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrPastDayEnd         = errors.New("booking cannot extend past 23:00")
	ErrSlotTaken          = errors.New("this time slot is already booked for this box")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrAlreadyCancelled   = errors.New("booking already cancelled")
	ErrCancelWindowClosed = errors.New("cancellation not allowed within 2 hours of booking time")

	// Box errors
	ErrBoxNotFound    = errors.New("box not found")
	ErrBoxNotApproved = errors.New("box is not approved for booking")
	ErrBoxNotPending  = errors.New("box is not awaiting approval")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidEmail      = errors.New("invalid email format")

	// Review errors
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// General errors
	ErrForbidden = errors.New("forbidden operation")
)
