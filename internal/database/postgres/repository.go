package repository

import (
	"context"

	"github.com/bookmybox/backend/internal/entity"
)

type BookingRepository interface {
	// Create inserts a Confirmed booking. The (box, date, start_time) slot
	// key is guarded by a unique index; a conflicting insert returns
	// entity.ErrSlotTaken.
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id int64) (*entity.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) error

	GetByBoxDateAndStatus(ctx context.Context, boxID int64, date string, status entity.BookingStatus) ([]*entity.Booking, error)
	GetByUserID(ctx context.Context, userID int64) ([]*entity.Booking, error)
	GetAll(ctx context.Context) ([]*entity.Booking, error)
}

type BoxRepository interface {
	Create(ctx context.Context, box *entity.Box) error
	GetByID(ctx context.Context, id int64) (*entity.Box, error)
	GetByStatus(ctx context.Context, status entity.BoxStatus) ([]*entity.Box, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]*entity.Box, error)
	UpdateStatus(ctx context.Context, id int64, status entity.BoxStatus, reason string) error
	UpdateRating(ctx context.Context, id int64, rating float64) error
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByBoxID(ctx context.Context, boxID int64) ([]*entity.Review, error)
	AverageRating(ctx context.Context, boxID int64) (float64, error)
}
