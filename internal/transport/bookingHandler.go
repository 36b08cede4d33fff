package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/bookmybox/backend/internal/entity"
	"github.com/bookmybox/backend/internal/service"
	"github.com/bookmybox/backend/internal/transport/middleware"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService service.BookingService
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// SuccessResponse представляет успешный ответ
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

// errorCode maps a domain error to its HTTP status and machine-readable kind
func errorCode(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrMissingFields):
		return http.StatusBadRequest, "missing_fields"
	case errors.Is(err, entity.ErrInvalidDuration):
		return http.StatusBadRequest, "invalid_duration"
	case errors.Is(err, entity.ErrInvalidTimeFormat):
		return http.StatusBadRequest, "invalid_time_format"
	case errors.Is(err, entity.ErrInvalidDateFormat):
		return http.StatusBadRequest, "invalid_date_format"
	case errors.Is(err, entity.ErrPastDayEnd):
		return http.StatusBadRequest, "past_day_end"
	case errors.Is(err, entity.ErrBoxNotApproved):
		return http.StatusBadRequest, "box_not_approved"
	case errors.Is(err, entity.ErrBoxNotPending):
		return http.StatusBadRequest, "box_not_pending"
	case errors.Is(err, entity.ErrAlreadyCancelled):
		return http.StatusBadRequest, "already_cancelled"
	case errors.Is(err, entity.ErrCancelWindowClosed):
		return http.StatusBadRequest, "cancel_window_closed"
	case errors.Is(err, entity.ErrInvalidRating):
		return http.StatusBadRequest, "invalid_rating"
	case errors.Is(err, entity.ErrInvalidEmail):
		return http.StatusBadRequest, "invalid_email"
	case errors.Is(err, entity.ErrSlotTaken):
		return http.StatusConflict, "slot_taken"
	case errors.Is(err, entity.ErrUserAlreadyExists):
		return http.StatusConflict, "user_already_exists"
	case errors.Is(err, entity.ErrBoxNotFound):
		return http.StatusNotFound, "box_not_found"
	case errors.Is(err, entity.ErrBookingNotFound):
		return http.StatusNotFound, "booking_not_found"
	case errors.Is(err, entity.ErrUserNotFound):
		return http.StatusNotFound, "user_not_found"
	case errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func respondError(c *gin.Context, err error) {
	status, code := errorCode(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs
		message = "internal server error"
	}

	c.JSON(status, ErrorResponse{
		Success: false,
		Code:    code,
		Error:   message,
	})
}

func respondBadBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Code:    "invalid_request",
		Error:   "Invalid request body: " + err.Error(),
	})
}

type createBookingBody struct {
	BoxID     int64        `json:"boxId"`
	Date      string       `json:"date"`
	StartTime string       `json:"startTime"`
	Duration  *json.Number `json:"duration"`
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var body createBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadBody(c, err)
		return
	}

	req := &service.CreateBookingRequest{
		BoxID:     body.BoxID,
		Date:      body.Date,
		StartTime: body.StartTime,
		UserID:    middleware.UserID(c),
	}

	if body.Duration != nil {
		d64, err := body.Duration.Int64()
		if err != nil {
			respondError(c, entity.ErrInvalidDuration)
			return
		}
		d := int(d64)
		req.Duration = &d
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	booking, err := h.bookingService.CancelBooking(
		c.Request.Context(),
		bookingID,
		middleware.UserID(c),
		middleware.IsAdmin(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// BookedSlots returns the occupied hour-start labels for a box and date.
// Query params: box_id, date (YYYY-MM-DD). Public, no identity required.
func (h *BookingHandler) BookedSlots(c *gin.Context) {
	boxIDStr := c.Query("box_id")
	dateStr := c.Query("date")

	if boxIDStr == "" || dateStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Code:    "missing_fields",
			Error:   "box_id and date parameters are required",
		})
		return
	}

	boxID, err := strconv.ParseInt(boxIDStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid box id"})
		return
	}

	slots, err := h.bookingService.GetBookedSlots(c.Request.Context(), boxID, dateStr)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"box_id":       boxID,
		"date":         dateStr,
		"booked_slots": slots,
	})
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetBooking(
		c.Request.Context(),
		bookingID,
		middleware.UserID(c),
		middleware.IsAdmin(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	bookings, err := h.bookingService.GetUserBookings(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetAllBookings возвращает все бронирования (admin)
func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	bookings, err := h.bookingService.GetAllBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Bookings retrieved successfully",
		Data:    bookings,
		Meta: map[string]interface{}{
			"total": len(bookings),
		},
	})
}
