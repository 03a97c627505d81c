package handler

import (
	"creatorpay-be-svc/internal/models"
	"creatorpay-be-svc/internal/service"
	"creatorpay-be-svc/pkg/logger"
	"creatorpay-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NicheHandler handles niche-related HTTP requests
type NicheHandler struct {
	nicheService service.NicheService
	logger       *logger.Logger
}

// NewNicheHandler creates a new niche handler
func NewNicheHandler(nicheService service.NicheService, logger *logger.Logger) *NicheHandler {
	return &NicheHandler{
		nicheService: nicheService,
		logger:       logger,
	}
}

// NicheRequest is the payload for creating or updating a niche
type NicheRequest struct {
	CompanyID   uuid.UUID        `json:"company_id" binding:"required"`
	Name        string           `json:"name" binding:"required"`
	Description *string          `json:"description"`
	BasePay     *decimal.Decimal `json:"base_pay"`
	CPM         *decimal.Decimal `json:"cpm"`
}

// ListNiches handles GET /api/v1/niches
// @Summary List niches
// @Description List all niches for a company
// @Tags niches
// @Accept json
// @Produce json
// @Param company_id query string true "Company ID"
// @Success 200 {object} utils.APIResponse{data=[]models.Niche} "Niches retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid company ID"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/niches [get]
func (h *NicheHandler) ListNiches(c *gin.Context) {
	companyID, err := uuid.Parse(c.Query("company_id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid company ID", err)
		return
	}

	niches, err := h.nicheService.ListNiches(companyID)
	if err != nil {
		h.logger.WithError(err).WithField("company_id", companyID).Error("Failed to list niches")
		respondServiceError(c, "Failed to list niches", err)
		return
	}

	utils.SuccessResponse(c, "Niches retrieved successfully", niches)
}

// GetNiche handles GET /api/v1/niches/:id
// @Summary Get niche
// @Description Get a niche by ID
// @Tags niches
// @Accept json
// @Produce json
// @Param id path string true "Niche ID"
// @Success 200 {object} utils.APIResponse{data=models.Niche} "Niche retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Niche not found"
// @Router /api/v1/niches/{id} [get]
func (h *NicheHandler) GetNiche(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid niche ID", err)
		return
	}

	niche, err := h.nicheService.GetNiche(id)
	if err != nil {
		respondServiceError(c, "Failed to get niche", err)
		return
	}

	utils.SuccessResponse(c, "Niche retrieved successfully", niche)
}

// CreateNiche handles POST /api/v1/niches
// @Summary Create niche
// @Description Create a new niche with optional rate overrides
// @Tags niches
// @Accept json
// @Produce json
// @Param request body NicheRequest true "Niche data"
// @Success 201 {object} utils.APIResponse{data=models.Niche} "Niche created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/niches [post]
func (h *NicheHandler) CreateNiche(c *gin.Context) {
	var req NicheRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	niche := &models.Niche{
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		Description: req.Description,
		BasePay:     req.BasePay,
		CPM:         req.CPM,
	}

	if err := h.nicheService.CreateNiche(niche); err != nil {
		h.logger.WithError(err).Error("Failed to create niche")
		respondServiceError(c, "Failed to create niche", err)
		return
	}

	h.logger.WithField("niche_id", niche.ID).Info("Niche created")
	utils.CreatedResponse(c, "Niche created successfully", niche)
}

// UpdateNiche handles PUT /api/v1/niches/:id
// @Summary Update niche
// @Description Update a niche's name, description and rate overrides
// @Tags niches
// @Accept json
// @Produce json
// @Param id path string true "Niche ID"
// @Param request body NicheRequest true "Niche data"
// @Success 200 {object} utils.APIResponse{data=models.Niche} "Niche updated successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Niche not found"
// @Router /api/v1/niches/{id} [put]
func (h *NicheHandler) UpdateNiche(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid niche ID", err)
		return
	}

	var req NicheRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	niche, err := h.nicheService.GetNiche(id)
	if err != nil {
		respondServiceError(c, "Failed to get niche", err)
		return
	}

	niche.Name = req.Name
	niche.Description = req.Description
	niche.BasePay = req.BasePay
	niche.CPM = req.CPM

	if err := h.nicheService.UpdateNiche(niche); err != nil {
		h.logger.WithError(err).WithField("niche_id", id).Error("Failed to update niche")
		respondServiceError(c, "Failed to update niche", err)
		return
	}

	utils.SuccessResponse(c, "Niche updated successfully", niche)
}

// DeleteNiche handles DELETE /api/v1/niches/:id
// @Summary Delete niche
// @Description Delete a niche, detach its creators and remove its tiers
// @Tags niches
// @Accept json
// @Produce json
// @Param id path string true "Niche ID"
// @Success 200 {object} utils.APIResponse "Niche deleted successfully"
// @Failure 404 {object} utils.APIResponse "Niche not found"
// @Router /api/v1/niches/{id} [delete]
func (h *NicheHandler) DeleteNiche(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid niche ID", err)
		return
	}

	if err := h.nicheService.DeleteNiche(id); err != nil {
		h.logger.WithError(err).WithField("niche_id", id).Error("Failed to delete niche")
		respondServiceError(c, "Failed to delete niche", err)
		return
	}

	utils.SuccessResponse(c, "Niche deleted successfully", nil)
}
