package handler

import (
	"fmt"
	"net/http"

	"creatorpay-be-svc/internal/service"
	"creatorpay-be-svc/pkg/logger"
	"creatorpay-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DashboardHandler handles payment reporting HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetCreatorTotals handles GET /api/v1/dashboard/creators/:id/totals
// @Summary Get creator payment totals
// @Description Get the frozen paid amount rollup across one creator's videos
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Creator ID"
// @Success 200 {object} utils.APIResponse{data=response.CreatorTotals} "Creator totals retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Creator not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/creators/{id}/totals [get]
func (h *DashboardHandler) GetCreatorTotals(c *gin.Context) {
	creatorID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid creator ID", err)
		return
	}

	totals, err := h.dashboardService.GetCreatorTotals(creatorID)
	if err != nil {
		h.logger.WithError(err).WithField("creator_id", creatorID).Error("Failed to get creator totals")
		respondServiceError(c, "Failed to get creator totals", err)
		return
	}

	utils.SuccessResponse(c, "Creator totals retrieved successfully", totals)
}

// GetCompanyTotals handles GET /api/v1/dashboard/companies/:id/totals
// @Summary Get company payment totals
// @Description Get the frozen paid amount rollup across every creator in a company
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} utils.APIResponse{data=response.CompanyTotals} "Company totals retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Company not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/companies/{id}/totals [get]
func (h *DashboardHandler) GetCompanyTotals(c *gin.Context) {
	companyID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid company ID", err)
		return
	}

	totals, err := h.dashboardService.GetCompanyTotals(companyID)
	if err != nil {
		h.logger.WithError(err).WithField("company_id", companyID).Error("Failed to get company totals")
		respondServiceError(c, "Failed to get company totals", err)
		return
	}

	utils.SuccessResponse(c, "Company totals retrieved successfully", totals)
}

// ExportPayments handles GET /api/v1/dashboard/companies/:id/export
// @Summary Export company payments to Excel
// @Description Download an Excel file with one row per video and the frozen paid amounts
// @Tags dashboard
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Company ID"
// @Success 200 {file} binary "Excel file"
// @Failure 400 {object} utils.APIResponse "Invalid company ID"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/companies/{id}/export [get]
func (h *DashboardHandler) ExportPayments(c *gin.Context) {
	companyID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid company ID", err)
		return
	}

	fileBytes, filename, err := h.dashboardService.ExportPaymentsToExcel(companyID)
	if err != nil {
		h.logger.WithError(err).WithField("company_id", companyID).Error("Failed to export payments")
		respondServiceError(c, "Failed to export payments", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", fileBytes)
}

// helper for parsing an optional company scope on admin endpoints
func optionalCompanyID(c *gin.Context) (*uuid.UUID, error) {
	raw := c.Query("company_id")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
