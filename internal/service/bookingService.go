package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bookmybox/backend/config"
	repository "github.com/bookmybox/backend/internal/database/postgres"
	"github.com/bookmybox/backend/internal/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CreateBookingRequest представляет данные для бронирования слота
type CreateBookingRequest struct {
	BoxID     int64  `json:"boxId"`
	Date      string `json:"date"`      // YYYY-MM-DD
	StartTime string `json:"startTime"` // HH:MM
	Duration  *int   `json:"duration"`  // hours; pointer so an absent field is distinguishable from 0
	UserID    int64  `json:"-"`         // taken from the authenticated identity, never the body
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	boxRepo     repository.BoxRepository
	cache       SlotCache
	events      EventPublisher
	cfg         config.BookingConfig
	loc         *time.Location
	now         func() time.Time
}

// NewBookingService создает новый экземпляр BookingService
func NewBookingService(
	bookingRepo repository.BookingRepository,
	boxRepo repository.BoxRepository,
	cache SlotCache,
	events EventPublisher,
	cfg config.BookingConfig,
) BookingService {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logrus.Warnf("Unknown timezone %q, falling back to local time: %v", cfg.Timezone, err)
		loc = time.Local
	}

	return &bookingService{
		bookingRepo: bookingRepo,
		boxRepo:     boxRepo,
		cache:       cache,
		events:      events,
		cfg:         cfg,
		loc:         loc,
		now:         time.Now,
	}
}

// CreateBooking validates the request and commits the reservation. The slot
// conflict check is not performed here: the repository's insert is the single
// atomic step that decides who gets the slot.
func (s *bookingService) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*entity.Booking, error) {
	if req.BoxID == 0 || req.Date == "" || req.StartTime == "" || req.Duration == nil {
		return nil, entity.ErrMissingFields
	}

	duration := *req.Duration
	if duration < s.cfg.MinDuration || duration > s.cfg.MaxDuration {
		return nil, entity.ErrInvalidDuration
	}

	box, err := s.boxRepo.GetByID(ctx, req.BoxID)
	if err != nil {
		return nil, err
	}

	if s.cfg.RequireApprovedBox && box.Status != entity.BoxStatusApproved {
		return nil, entity.ErrBoxNotApproved
	}

	startHour, startMinute, err := parseClock(req.StartTime)
	if err != nil {
		return nil, entity.ErrInvalidTimeFormat
	}
	if err := parseDate(req.Date); err != nil {
		return nil, entity.ErrInvalidTimeFormat
	}

	// No date rollover: a slot ending past the configured day end is
	// rejected outright rather than wrapped onto the next day.
	endHour := startHour + duration
	if endHour > s.cfg.DayEndHour || (endHour == s.cfg.DayEndHour && startMinute > 0) {
		return nil, entity.ErrPastDayEnd
	}
	endTime := formatClock(endHour, startMinute)

	// Amount is always computed server-side from the box's current price.
	totalAmount := box.Price * float64(duration)

	booking := &entity.Booking{
		BoxID:         req.BoxID,
		UserID:        req.UserID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       endTime,
		Duration:      duration,
		TotalAmount:   totalAmount,
		PaymentStatus: entity.PaymentStatusPending,
		Status:        entity.BookingStatusConfirmed,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	logrus.Infof("Booking created: ID=%d, Box=%d, User=%d, Date=%s, Start=%s",
		booking.ID, booking.BoxID, booking.UserID, booking.Date, booking.StartTime)

	s.invalidateSlots(ctx, booking.BoxID, booking.Date)
	s.publishEvent(ctx, entity.EventBookingConfirmed, booking)

	return booking, nil
}

// CancelBooking releases a reservation. Only the booking's owner or an admin
// may cancel, and only strictly more than the configured window before the
// slot begins.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID, requesterID int64, isAdmin bool) (*entity.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != requesterID && !isAdmin {
		return nil, entity.ErrForbidden
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil, entity.ErrAlreadyCancelled
	}

	slotStart, err := time.ParseInLocation(dateLayout+" "+clockLayout, booking.Date+" "+booking.StartTime, s.loc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse booking start: %w", err)
	}

	cutoff := slotStart.Add(-time.Duration(s.cfg.CancelWindow) * time.Hour)
	if s.now().After(cutoff) {
		return nil, entity.ErrCancelWindowClosed
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, entity.BookingStatusCancelled); err != nil {
		return nil, err
	}

	booking.Status = entity.BookingStatusCancelled
	booking.UpdatedAt = s.now()

	logrus.Infof("Booking cancelled: ID=%d, requester=%d", bookingID, requesterID)

	s.invalidateSlots(ctx, booking.BoxID, booking.Date)
	s.publishEvent(ctx, entity.EventBookingCancelled, booking)

	return booking, nil
}

// GetBookedSlots expands confirmed bookings for a box and date into the
// occupied hour-start labels. The result is a sequence, not a set: labels
// from overlapping bookings are kept as-is.
func (s *bookingService) GetBookedSlots(ctx context.Context, boxID int64, date string) ([]string, error) {
	if _, err := s.boxRepo.GetByID(ctx, boxID); err != nil {
		return nil, err
	}

	if err := parseDate(date); err != nil {
		return nil, entity.ErrInvalidDateFormat
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, boxID, date); err == nil {
			return cached, nil
		}
	}

	bookings, err := s.bookingRepo.GetByBoxDateAndStatus(ctx, boxID, date, entity.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings for box and date: %w", err)
	}

	slots := make([]string, 0)
	for _, booking := range bookings {
		slots = append(slots, expandSlots(booking.StartTime, booking.Duration)...)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, boxID, date, slots); err != nil {
			logrus.Warnf("Failed to cache booked slots for box %d on %s: %v", boxID, date, err)
		}
	}

	return slots, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id, requesterID int64, isAdmin bool) (*entity.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.UserID != requesterID && !isAdmin {
		return nil, entity.ErrForbidden
	}

	return booking, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID int64) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) invalidateSlots(ctx context.Context, boxID int64, date string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, boxID, date); err != nil {
		logrus.Warnf("Failed to invalidate slot cache for box %d on %s: %v", boxID, date, err)
	}
}

// publishEvent emits a lifecycle event best-effort: the booking is already
// durable, so a publish failure is logged and never fails the request.
func (s *bookingService) publishEvent(ctx context.Context, eventType entity.BookingEventType, booking *entity.Booking) {
	if s.events == nil {
		return
	}

	event := entity.BookingEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		BookingID:  booking.ID,
		BoxID:      booking.BoxID,
		UserID:     booking.UserID,
		Date:       booking.Date,
		StartTime:  booking.StartTime,
		OccurredAt: s.now(),
	}

	if err := s.events.Publish(ctx, event); err != nil {
		logrus.Errorf("Failed to publish %s event for booking %d: %v", eventType, booking.ID, err)
	}
}
