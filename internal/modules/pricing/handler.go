package pricing

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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
	rg.GET("/locations/:id/quote", h.Quote)
}

// Quote prices an arbitrary window, e.g. GET
// /locations/1/quote?start=2026-09-01T14:00:00Z&end=2026-09-01T16:00:00Z.
func (h *Handler) Quote(c *gin.Context) {
	locationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || locationID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid location id")
		return
	}
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid start time")
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid end time")
		return
	}

	quote, err := h.service.CalculatePrice(c.Request.Context(), locationID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid time range")
		case errors.Is(err, ErrInvalidLocation):
			response.Error(c, http.StatusBadRequest, "INVALID_LOCATION", "Unknown location")
		case errors.Is(err, ErrNoPricingRule):
			response.Error(c, http.StatusUnprocessableEntity, "NO_PRICING_RULE", "No pricing rule covers the requested window")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute quote")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quote": quote})
}
