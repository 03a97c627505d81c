package handler

import (
	"creatorpay-be-svc/internal/service"
	"creatorpay-be-svc/pkg/logger"
	"creatorpay-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CompanyHandler handles company-related HTTP requests
type CompanyHandler struct {
	companyService service.CompanyService
	logger         *logger.Logger
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService service.CompanyService, logger *logger.Logger) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		logger:         logger,
	}
}

// UpdateCompanyRatesRequest is the payload for updating company default rates
type UpdateCompanyRatesRequest struct {
	BasePay    *decimal.Decimal `json:"base_pay"`
	DefaultCPM *decimal.Decimal `json:"default_cpm"`
}

// GetCompany handles GET /api/v1/companies/:id
// @Summary Get company
// @Description Get a company with its default payment rates
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} utils.APIResponse{data=models.Company} "Company retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid company ID"
// @Failure 404 {object} utils.APIResponse "Company not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid company ID", err)
		return
	}

	company, err := h.companyService.GetCompany(id)
	if err != nil {
		h.logger.WithError(err).WithField("company_id", id).Error("Failed to get company")
		respondServiceError(c, "Failed to get company", err)
		return
	}

	utils.SuccessResponse(c, "Company retrieved successfully", company)
}

// UpdateRates handles PUT /api/v1/companies/:id/rates
// @Summary Update company default rates
// @Description Set the company-wide fallback base pay and CPM. Frozen payment amounts on already-paid videos are not affected.
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param request body UpdateCompanyRatesRequest true "New default rates"
// @Success 200 {object} utils.APIResponse{data=models.Company} "Company rates updated successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Company not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/companies/{id}/rates [put]
func (h *CompanyHandler) UpdateRates(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid company ID", err)
		return
	}

	var req UpdateCompanyRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	company, err := h.companyService.UpdateRates(id, req.BasePay, req.DefaultCPM)
	if err != nil {
		h.logger.WithError(err).WithField("company_id", id).Error("Failed to update company rates")
		respondServiceError(c, "Failed to update company rates", err)
		return
	}

	h.logger.WithField("company_id", id).Info("Company rates updated")
	utils.SuccessResponse(c, "Company rates updated successfully", company)
}
