package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"swingbay/internal/domain"
	"swingbay/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the customer-facing endpoints; employee routes are
// registered separately behind the staff role gate.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Reserve)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.POST("/bookings/:id/confirm", h.ConfirmPayment)
	rg.POST("/bookings/:id/cancel", h.Cancel)
}

func (h *Handler) RegisterEmployeeRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/:id/cancel", h.CancelByEmployee)
}

func (h *Handler) Reserve(c *gin.Context) {
	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if req.UserID == nil {
		if uid := c.GetInt64("user_id"); uid > 0 {
			req.UserID = &uid
		}
	}

	res, err := h.service.Reserve(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": res})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ConfirmPayment(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	if err := h.service.ConfirmPayment(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking_id": id, "status": "confirmed"})
}

// Cancel routes to the reserved or confirmed cancellation path based on the
// booking's current status, so the client has a single cancel endpoint.
func (h *Handler) Cancel(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	userID := c.GetInt64("user_id")

	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if b.Status == domain.BookingReserved {
		err = h.service.CancelReservedByCustomer(c.Request.Context(), id, userID)
	} else {
		err = h.service.CancelByCustomer(c.Request.Context(), id, userID)
	}
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking_id": id})
}

func (h *Handler) CancelByEmployee(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	employeeID := c.GetInt64("user_id")

	if err := h.service.CancelByEmployee(c.Request.Context(), id, employeeID, req.Reason); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking_id": id})
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case errors.Is(err, ErrInvalidLocation):
		response.Error(c, http.StatusBadRequest, "INVALID_LOCATION", "Unknown location")
	case errors.Is(err, ErrSlotUnavailable):
		response.Error(c, http.StatusConflict, "SLOT_UNAVAILABLE", "The requested time slot is not available")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrAlreadyCancelled):
		response.Error(c, http.StatusConflict, "ALREADY_CANCELLED", "Booking is already cancelled")
	case errors.Is(err, ErrReservationExpired):
		response.Error(c, http.StatusConflict, "RESERVATION_EXPIRED", "The reservation has expired")
	case errors.Is(err, ErrCancellationWindow):
		response.Error(c, http.StatusUnprocessableEntity, "CANCELLATION_WINDOW", err.Error())
	case errors.Is(err, ErrWrongStatus):
		response.Error(c, http.StatusConflict, "WRONG_STATUS", "Operation not allowed for the booking's status")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
