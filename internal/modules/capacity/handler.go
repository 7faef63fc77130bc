package capacity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"swingbay/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/locations/:id/holds", h.HoldsForDate)
	rg.GET("/locations/:id/holds/today", h.TodaysHold)
}

func (h *Handler) HoldsForDate(c *gin.Context) {
	locationID, ok := locationID(c)
	if !ok {
		return
	}
	date := c.Query("date")

	holds, err := h.service.GetHoldsForDate(c.Request.Context(), locationID, date)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"holds": holds})
}

func (h *Handler) TodaysHold(c *gin.Context) {
	locID, ok := locationID(c)
	if !ok {
		return
	}
	hold, err := h.service.GetTodaysHold(c.Request.Context(), locID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hold": hold})
}

func locationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid location id")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date")
	case errors.Is(err, ErrInvalidLocation):
		response.Error(c, http.StatusBadRequest, "INVALID_LOCATION", "Unknown location")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load holds")
	}
}
