package attendance

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

// RegisterRoutes mounts the staff-only hold management endpoints; the league
// attendance workflow calls adjust-hold after responses are locked for a week.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/leagues/:leagueId/weeks/:weekId/adjust-hold", h.AdjustHold)
	rg.POST("/leagues/:leagueId/release-holds", h.ReleaseHolds)
}

func (h *Handler) AdjustHold(c *gin.Context) {
	leagueID, err := strconv.ParseInt(c.Param("leagueId"), 10, 64)
	if err != nil || leagueID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid league id")
		return
	}
	weekID, err := strconv.ParseInt(c.Param("weekId"), 10, 64)
	if err != nil || weekID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid week id")
		return
	}

	result, err := h.service.AdjustHold(c.Request.Context(), leagueID, weekID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "League, week or hold not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "League configuration is invalid")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to adjust hold")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"adjustment": result})
}

// ReleaseHolds is the league-cancellation hook: it releases every hold the
// league still owns.
func (h *Handler) ReleaseHolds(c *gin.Context) {
	leagueID, err := strconv.ParseInt(c.Param("leagueId"), 10, 64)
	if err != nil || leagueID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid league id")
		return
	}

	if err := h.service.ReleaseLeagueHolds(c.Request.Context(), leagueID); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "League not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to release holds")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"league_id": leagueID, "released": true})
}
