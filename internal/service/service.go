package service

import (
	"context"

	"github.com/bookmybox/backend/internal/entity"
)

// BookingService определяет интерфейс для операций с бронированиями
type BookingService interface {
	// Основные операции
	CreateBooking(ctx context.Context, req *CreateBookingRequest) (*entity.Booking, error)
	CancelBooking(ctx context.Context, bookingID, requesterID int64, isAdmin bool) (*entity.Booking, error)
	GetBookedSlots(ctx context.Context, boxID int64, date string) ([]string, error)

	// Запросы
	GetBooking(ctx context.Context, id, requesterID int64, isAdmin bool) (*entity.Booking, error)
	GetUserBookings(ctx context.Context, userID int64) ([]*entity.Booking, error)

	// Административные операции
	GetAllBookings(ctx context.Context) ([]*entity.Booking, error)
}

type BoxService interface {
	// Основные операции
	CreateBox(ctx context.Context, req *CreateBoxRequest) (*entity.Box, error)
	GetBox(ctx context.Context, id int64) (*entity.Box, error)
	GetApprovedBoxes(ctx context.Context) ([]*entity.Box, error)
	GetOwnerBoxes(ctx context.Context, ownerID int64) ([]*entity.Box, error)

	// Модерация
	ApproveBox(ctx context.Context, id int64) error
	RejectBox(ctx context.Context, id int64, reason string) error

	// Отзывы
	AddReview(ctx context.Context, req *AddReviewRequest) (*entity.Review, error)
	GetBoxReviews(ctx context.Context, boxID int64) ([]*entity.Review, error)
}

type UserService interface {
	RegisterUser(ctx context.Context, req *RegisterUserRequest) (*entity.User, error)
	GetUser(ctx context.Context, id int64) (*entity.User, error)
}

// EventPublisher публикует события бронирования в очередь
type EventPublisher interface {
	Publish(ctx context.Context, message interface{}) error
}

// SlotCache кэширует занятые слоты для пары (box, date)
type SlotCache interface {
	Get(ctx context.Context, boxID int64, date string) ([]string, error)
	Set(ctx context.Context, boxID int64, date string, slots []string) error
	Invalidate(ctx context.Context, boxID int64, date string) error
}
