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

// CreatorHandler handles creator-related HTTP requests
type CreatorHandler struct {
	creatorService service.CreatorService
	logger         *logger.Logger
}

// NewCreatorHandler creates a new creator handler
func NewCreatorHandler(creatorService service.CreatorService, logger *logger.Logger) *CreatorHandler {
	return &CreatorHandler{
		creatorService: creatorService,
		logger:         logger,
	}
}

// CreatorRequest is the payload for creating or updating a creator
type CreatorRequest struct {
	CompanyID       uuid.UUID        `json:"company_id" binding:"required"`
	NicheID         *uuid.UUID       `json:"niche_id"`
	Name            string           `json:"name" binding:"required"`
	Email           *string          `json:"email"`
	Phone           *string          `json:"phone"`
	TikTokHandle    *string          `json:"tiktok_handle"`
	InstagramHandle *string          `json:"instagram_handle"`
	BasePay         *decimal.Decimal `json:"base_pay"`
	CPM             *decimal.Decimal `json:"cpm"`
	IsActive        *bool            `json:"is_active"`
	Notes           *string          `json:"notes"`
}

// ListCreators handles GET /api/v1/creators
// @Summary List creators
// @Description List all creators for a company
// @Tags creators
// @Accept json
// @Produce json
// @Param company_id query string true "Company ID"
// @Success 200 {object} utils.APIResponse{data=[]models.Creator} "Creators retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid company ID"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/creators [get]
func (h *CreatorHandler) ListCreators(c *gin.Context) {
	companyID, err := uuid.Parse(c.Query("company_id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid company ID", err)
		return
	}

	creators, err := h.creatorService.ListCreators(companyID)
	if err != nil {
		h.logger.WithError(err).WithField("company_id", companyID).Error("Failed to list creators")
		respondServiceError(c, "Failed to list creators", err)
		return
	}

	utils.SuccessResponse(c, "Creators retrieved successfully", creators)
}

// GetCreator handles GET /api/v1/creators/:id
// @Summary Get creator
// @Description Get a creator by ID
// @Tags creators
// @Accept json
// @Produce json
// @Param id path string true "Creator ID"
// @Success 200 {object} utils.APIResponse{data=models.Creator} "Creator retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Creator not found"
// @Router /api/v1/creators/{id} [get]
func (h *CreatorHandler) GetCreator(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid creator ID", err)
		return
	}

	creator, err := h.creatorService.GetCreator(id)
	if err != nil {
		respondServiceError(c, "Failed to get creator", err)
		return
	}

	utils.SuccessResponse(c, "Creator retrieved successfully", creator)
}

// CreateCreator handles POST /api/v1/creators
// @Summary Create creator
// @Description Create a new creator with optional niche assignment and rate overrides
// @Tags creators
// @Accept json
// @Produce json
// @Param request body CreatorRequest true "Creator data"
// @Success 201 {object} utils.APIResponse{data=models.Creator} "Creator created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/creators [post]
func (h *CreatorHandler) CreateCreator(c *gin.Context) {
	var req CreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	creator := &models.Creator{
		CompanyID:       req.CompanyID,
		NicheID:         req.NicheID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		TikTokHandle:    req.TikTokHandle,
		InstagramHandle: req.InstagramHandle,
		BasePay:         req.BasePay,
		CPM:             req.CPM,
		IsActive:        req.IsActive,
		Notes:           req.Notes,
	}

	if err := h.creatorService.CreateCreator(creator); err != nil {
		h.logger.WithError(err).Error("Failed to create creator")
		respondServiceError(c, "Failed to create creator", err)
		return
	}

	h.logger.WithField("creator_id", creator.ID).Info("Creator created")
	utils.CreatedResponse(c, "Creator created successfully", creator)
}

// UpdateCreator handles PUT /api/v1/creators/:id
// @Summary Update creator
// @Description Update a creator. Changing the niche regenerates the creator's tier payment rows.
// @Tags creators
// @Accept json
// @Produce json
// @Param id path string true "Creator ID"
// @Param request body CreatorRequest true "Creator data"
// @Success 200 {object} utils.APIResponse{data=models.Creator} "Creator updated successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Creator not found"
// @Router /api/v1/creators/{id} [put]
func (h *CreatorHandler) UpdateCreator(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid creator ID", err)
		return
	}

	var req CreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	creator, err := h.creatorService.GetCreator(id)
	if err != nil {
		respondServiceError(c, "Failed to get creator", err)
		return
	}

	creator.NicheID = req.NicheID
	creator.Name = req.Name
	creator.Email = req.Email
	creator.Phone = req.Phone
	creator.TikTokHandle = req.TikTokHandle
	creator.InstagramHandle = req.InstagramHandle
	creator.BasePay = req.BasePay
	creator.CPM = req.CPM
	creator.IsActive = req.IsActive
	creator.Notes = req.Notes

	if err := h.creatorService.UpdateCreator(creator); err != nil {
		h.logger.WithError(err).WithField("creator_id", id).Error("Failed to update creator")
		respondServiceError(c, "Failed to update creator", err)
		return
	}

	utils.SuccessResponse(c, "Creator updated successfully", creator)
}

// DeleteCreator handles DELETE /api/v1/creators/:id
// @Summary Delete creator
// @Description Delete a creator together with their videos, tier payment rows and creator-specific tiers
// @Tags creators
// @Accept json
// @Produce json
// @Param id path string true "Creator ID"
// @Success 200 {object} utils.APIResponse "Creator deleted successfully"
// @Failure 404 {object} utils.APIResponse "Creator not found"
// @Router /api/v1/creators/{id} [delete]
func (h *CreatorHandler) DeleteCreator(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid creator ID", err)
		return
	}

	if err := h.creatorService.DeleteCreator(id); err != nil {
		h.logger.WithError(err).WithField("creator_id", id).Error("Failed to delete creator")
		respondServiceError(c, "Failed to delete creator", err)
		return
	}

	utils.SuccessResponse(c, "Creator deleted successfully", nil)
}
