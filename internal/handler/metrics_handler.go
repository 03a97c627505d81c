package handler

import (
	"creatorpay-be-svc/internal/service"
	"creatorpay-be-svc/pkg/logger"
	"creatorpay-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MetricsHandler handles manual metrics refresh HTTP requests
type MetricsHandler struct {
	metricsService service.MetricsService
	logger         *logger.Logger
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(metricsService service.MetricsService, logger *logger.Logger) *MetricsHandler {
	return &MetricsHandler{
		metricsService: metricsService,
		logger:         logger,
	}
}

// RefreshMetrics handles POST /api/v1/metrics/refresh
// @Summary Refresh video metrics
// @Description Scrape current engagement metrics for recent videos and update view counts. Optionally scoped to one company.
// @Tags metrics
// @Accept json
// @Produce json
// @Param company_id query string false "Company ID"
// @Success 200 {object} utils.APIResponse{data=response.MetricsRefreshResponse} "Metrics refreshed successfully"
// @Failure 400 {object} utils.APIResponse "Invalid company ID"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/metrics/refresh [post]
func (h *MetricsHandler) RefreshMetrics(c *gin.Context) {
	companyID, err := optionalCompanyID(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid company ID", err)
		return
	}

	result, err := h.metricsService.RefreshVideoMetrics(c.Request.Context(), companyID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to refresh video metrics")
		respondServiceError(c, "Failed to refresh video metrics", err)
		return
	}

	utils.SuccessResponse(c, "Metrics refreshed successfully", result)
}
