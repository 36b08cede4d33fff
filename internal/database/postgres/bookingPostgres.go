package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bookmybox/backend/internal/entity"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create inserts the booking in a single statement. Slot conflicts are not
// pre-checked here: the partial unique index on (box_id, date, start_time)
// is the only defense, so two racing requests cannot both succeed.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (
			box_id, user_id, date, start_time, end_time, duration,
			total_amount, payment_status, booking_status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	now := time.Now()

	err := r.db.QueryRowContext(ctx, query,
		booking.BoxID,
		booking.UserID,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.Duration,
		booking.TotalAmount,
		booking.PaymentStatus,
		booking.Status,
		now,
		now,
	).Scan(&booking.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return entity.ErrSlotTaken
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}

	booking.CreatedAt = now
	booking.UpdatedAt = now

	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `
		SELECT
			id, box_id, user_id, to_char(date, 'YYYY-MM-DD'), start_time, end_time,
			duration, total_amount, payment_status, booking_status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.BoxID,
		&booking.UserID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Duration,
		&booking.TotalAmount,
		&booking.PaymentStatus,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) error {
	query := `UPDATE bookings SET booking_status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrBookingNotFound
	}

	return nil
}

// GetByBoxDateAndStatus returns bookings for one box on one calendar date,
// ordered by start time. The availability query depends on this ordering.
func (r *bookingRepository) GetByBoxDateAndStatus(ctx context.Context, boxID int64, date string, status entity.BookingStatus) ([]*entity.Booking, error) {
	query := `
		SELECT
			id, box_id, user_id, to_char(date, 'YYYY-MM-DD'), start_time, end_time,
			duration, total_amount, payment_status, booking_status, created_at, updated_at
		FROM bookings
		WHERE box_id = $1 AND date = $2 AND booking_status = $3
		ORDER BY start_time ASC
	`

	rows, err := r.db.QueryContext(ctx, query, boxID, date, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings by box and date: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) GetByUserID(ctx context.Context, userID int64) ([]*entity.Booking, error) {
	query := `
		SELECT
			id, box_id, user_id, to_char(date, 'YYYY-MM-DD'), start_time, end_time,
			duration, total_amount, payment_status, booking_status, created_at, updated_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY date DESC, start_time DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings by user: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) GetAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT
			id, box_id, user_id, to_char(date, 'YYYY-MM-DD'), start_time, end_time,
			duration, total_amount, payment_status, booking_status, created_at, updated_at
		FROM bookings
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func scanBookings(rows *sql.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.BoxID,
			&booking.UserID,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Duration,
			&booking.TotalAmount,
			&booking.PaymentStatus,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}
