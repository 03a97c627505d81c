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

// TierHandler handles payment tier HTTP requests
type TierHandler struct {
	tierService service.TierService
	logger      *logger.Logger
}

// NewTierHandler creates a new tier handler
func NewTierHandler(tierService service.TierService, logger *logger.Logger) *TierHandler {
	return &TierHandler{
		tierService: tierService,
		logger:      logger,
	}
}

// TierRequest is the payload for creating or updating a payment tier. At most
// one of niche_id and creator_id may be set; both empty means company-wide.
type TierRequest struct {
	CompanyID          uuid.UUID       `json:"company_id" binding:"required"`
	NicheID            *uuid.UUID      `json:"niche_id"`
	CreatorID          *uuid.UUID      `json:"creator_id"`
	TierName           string          `json:"tier_name" binding:"required"`
	ViewCountThreshold int64           `json:"view_count_threshold"`
	Amount             decimal.Decimal `json:"amount"`
	Description        *string         `json:"description"`
}

// ListTiers handles GET /api/v1/tiers
// @Summary List tiers for a scope
// @Description List configured payment tiers at exactly one scope level (creator, niche, or company-wide)
// @Tags tiers
// @Accept json
// @Produce json
// @Param company_id query string true "Company ID"
// @Param niche_id query string false "Niche ID (niche scope)"
// @Param creator_id query string false "Creator ID (creator scope)"
// @Success 200 {object} utils.APIResponse{data=[]models.PaymentTier} "Tiers retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid parameters"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/tiers [get]
func (h *TierHandler) ListTiers(c *gin.Context) {
	companyID, err := uuid.Parse(c.Query("company_id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid company ID", err)
		return
	}

	var nicheID, creatorID *uuid.UUID
	if raw := c.Query("niche_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid niche ID", err)
			return
		}
		nicheID = &id
	}
	if raw := c.Query("creator_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid creator ID", err)
			return
		}
		creatorID = &id
	}

	tiers, err := h.tierService.ListTiersForScope(companyID, nicheID, creatorID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list tiers")
		respondServiceError(c, "Failed to list tiers", err)
		return
	}

	utils.SuccessResponse(c, "Tiers retrieved successfully", tiers)
}

// GetTier handles GET /api/v1/tiers/:id
// @Summary Get tier
// @Description Get a payment tier config by ID
// @Tags tiers
// @Accept json
// @Produce json
// @Param id path string true "Tier ID"
// @Success 200 {object} utils.APIResponse{data=models.PaymentTier} "Tier retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Tier not found"
// @Router /api/v1/tiers/{id} [get]
func (h *TierHandler) GetTier(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid tier ID", err)
		return
	}

	tier, err := h.tierService.GetTier(id)
	if err != nil {
		respondServiceError(c, "Failed to get tier", err)
		return
	}

	utils.SuccessResponse(c, "Tier retrieved successfully", tier)
}

// CreateTier handles POST /api/v1/tiers
// @Summary Create tier
// @Description Create a payment tier and regenerate tier payment rows for all affected creators
// @Tags tiers
// @Accept json
// @Produce json
// @Param request body TierRequest true "Tier data"
// @Success 201 {object} utils.APIResponse{data=models.PaymentTier} "Tier created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/tiers [post]
func (h *TierHandler) CreateTier(c *gin.Context) {
	var req TierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	tier := &models.PaymentTier{
		CompanyID:          req.CompanyID,
		NicheID:            req.NicheID,
		CreatorID:          req.CreatorID,
		TierName:           req.TierName,
		ViewCountThreshold: req.ViewCountThreshold,
		Amount:             req.Amount,
		Description:        req.Description,
	}

	if err := h.tierService.CreateTier(tier); err != nil {
		h.logger.WithError(err).Error("Failed to create tier")
		respondServiceError(c, "Failed to create tier", err)
		return
	}

	h.logger.WithField("tier_id", tier.ID).Info("Tier created")
	utils.CreatedResponse(c, "Tier created successfully", tier)
}

// UpdateTier handles PUT /api/v1/tiers/:id
// @Summary Update tier
// @Description Update a payment tier. Already-paid tier payment rows keep their frozen amounts.
// @Tags tiers
// @Accept json
// @Produce json
// @Param id path string true "Tier ID"
// @Param request body TierRequest true "Tier data"
// @Success 200 {object} utils.APIResponse{data=models.PaymentTier} "Tier updated successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Tier not found"
// @Router /api/v1/tiers/{id} [put]
func (h *TierHandler) UpdateTier(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid tier ID", err)
		return
	}

	var req TierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	tier, err := h.tierService.GetTier(id)
	if err != nil {
		respondServiceError(c, "Failed to get tier", err)
		return
	}

	tier.TierName = req.TierName
	tier.ViewCountThreshold = req.ViewCountThreshold
	tier.Amount = req.Amount
	tier.Description = req.Description

	if err := h.tierService.UpdateTier(tier); err != nil {
		h.logger.WithError(err).WithField("tier_id", id).Error("Failed to update tier")
		respondServiceError(c, "Failed to update tier", err)
		return
	}

	utils.SuccessResponse(c, "Tier updated successfully", tier)
}

// DeleteTier handles DELETE /api/v1/tiers/:id
// @Summary Delete tier
// @Description Delete a payment tier and its video rows, then regenerate affected creators
// @Tags tiers
// @Accept json
// @Produce json
// @Param id path string true "Tier ID"
// @Success 200 {object} utils.APIResponse "Tier deleted successfully"
// @Failure 404 {object} utils.APIResponse "Tier not found"
// @Router /api/v1/tiers/{id} [delete]
func (h *TierHandler) DeleteTier(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid tier ID", err)
		return
	}

	if err := h.tierService.DeleteTier(id); err != nil {
		h.logger.WithError(err).WithField("tier_id", id).Error("Failed to delete tier")
		respondServiceError(c, "Failed to delete tier", err)
		return
	}

	utils.SuccessResponse(c, "Tier deleted successfully", nil)
}
