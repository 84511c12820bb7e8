package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tourhive/tourhive/internal/api/dto"
	ierr "github.com/tourhive/tourhive/internal/errors"
	"github.com/tourhive/tourhive/internal/logger"
	"github.com/tourhive/tourhive/internal/service"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

func NewDashboardHandler(
	dashboardService service.DashboardService,
	logger *logger.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboard returns the dashboard payload for the owner in context.
// Query parameters: period_type (weekly|monthly|yearly), dates (repeated
// YYYY-MM-DD anchors), top_limit.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var req dto.GetDashboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.dashboardService.GetDashboard(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to get dashboard", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetBookingTrend returns gap-free bucketed series for a raw date window.
// Query parameters: start_date, end_date (YYYY-MM-DD), granularity
// (hour|day|week|month|year, default day).
func (h *DashboardHandler) GetBookingTrend(c *gin.Context) {
	var req dto.GetBookingTrendRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.dashboardService.GetBookingTrend(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to get booking trend", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
