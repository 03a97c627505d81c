package handler

import (
	"creatorpay-be-svc/internal/service"
	"creatorpay-be-svc/pkg/logger"
	"creatorpay-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment freeze and reconciliation HTTP requests
type PaymentHandler struct {
	paymentService service.PaymentService
	logger         *logger.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService service.PaymentService, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// SetPaidRequest is the payload for toggling a paid flag
type SetPaidRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}

// GetPaymentSummary handles GET /api/v1/videos/:id/payments
// @Summary Get video payment summary
// @Description Get the live (recomputed) payment amounts for a video next to its frozen paid facts and per-tier statuses
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} utils.APIResponse{data=response.VideoPaymentSummary} "Payment summary retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Video not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/videos/{id}/payments [get]
func (h *PaymentHandler) GetPaymentSummary(c *gin.Context) {
	videoID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid video ID", err)
		return
	}

	summary, err := h.paymentService.GetPaymentSummary(videoID)
	if err != nil {
		h.logger.WithError(err).WithField("video_id", videoID).Error("Failed to get payment summary")
		respondServiceError(c, "Failed to get payment summary", err)
		return
	}

	utils.SuccessResponse(c, "Payment summary retrieved successfully", summary)
}

// SetBaseCPMPaid handles PUT /api/v1/videos/:id/payments/base-cpm
// @Summary Toggle base+CPM paid state
// @Description Mark the base+CPM payment of a video paid or unpaid. Marking paid freezes the current live amounts; unmarking clears the frozen amounts. A concurrent toggle returns 409.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param request body SetPaidRequest true "Target paid state"
// @Success 200 {object} utils.APIResponse{data=response.VideoPaymentSummary} "Payment state updated successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Video not found"
// @Failure 409 {object} utils.APIResponse "Payment state changed concurrently"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/videos/{id}/payments/base-cpm [put]
func (h *PaymentHandler) SetBaseCPMPaid(c *gin.Context) {
	videoID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid video ID", err)
		return
	}

	var req SetPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	summary, err := h.paymentService.SetBaseCPMPaid(videoID, *req.Paid)
	if err != nil {
		h.logger.WithError(err).WithField("video_id", videoID).Error("Failed to update base+CPM paid state")
		respondServiceError(c, "Failed to update payment state", err)
		return
	}

	utils.SuccessResponse(c, "Payment state updated successfully", summary)
}

// SetTierPaid handles PUT /api/v1/tier-payments/:id/paid
// @Summary Toggle tier payment paid state
// @Description Mark a single tier payment row paid or unpaid. Marking paid freezes the tier's current bonus amount; unmarking clears it. A concurrent toggle returns 409.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Tier payment ID"
// @Param request body SetPaidRequest true "Target paid state"
// @Success 200 {object} utils.APIResponse{data=models.VideoTierPayment} "Tier payment state updated successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Tier payment not found"
// @Failure 409 {object} utils.APIResponse "Payment state changed concurrently"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/tier-payments/{id}/paid [put]
func (h *PaymentHandler) SetTierPaid(c *gin.Context) {
	tierPaymentID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid tier payment ID", err)
		return
	}

	var req SetPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	row, err := h.paymentService.SetTierPaid(tierPaymentID, *req.Paid)
	if err != nil {
		h.logger.WithError(err).WithField("tier_payment_id", tierPaymentID).Error("Failed to update tier payment state")
		respondServiceError(c, "Failed to update tier payment state", err)
		return
	}

	utils.SuccessResponse(c, "Tier payment state updated successfully", row)
}
