package handler

import (
	"creatorpay-be-svc/internal/middleware"
	"creatorpay-be-svc/internal/service"
	"creatorpay-be-svc/pkg/logger"
	"creatorpay-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FeedbackHandler handles video feedback HTTP requests
type FeedbackHandler struct {
	feedbackService service.FeedbackService
	logger          *logger.Logger
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService service.FeedbackService, logger *logger.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// CreateFeedbackRequest is the payload for adding feedback to a video
type CreateFeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

// ListFeedback handles GET /api/v1/videos/:id/feedback
// @Summary List video feedback
// @Description List all admin feedback entries for a video, newest first
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} utils.APIResponse{data=[]models.VideoFeedback} "Feedback retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid video ID"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/videos/{id}/feedback [get]
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	videoID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid video ID", err)
		return
	}

	feedback, err := h.feedbackService.ListFeedback(videoID)
	if err != nil {
		h.logger.WithError(err).WithField("video_id", videoID).Error("Failed to list feedback")
		respondServiceError(c, "Failed to list feedback", err)
		return
	}

	utils.SuccessResponse(c, "Feedback retrieved successfully", feedback)
}

// CreateFeedback handles POST /api/v1/videos/:id/feedback
// @Summary Add video feedback
// @Description Add an admin feedback entry to a video
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param request body CreateFeedbackRequest true "Feedback text"
// @Success 201 {object} utils.APIResponse{data=models.VideoFeedback} "Feedback created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Video not found"
// @Router /api/v1/videos/{id}/feedback [post]
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	videoID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid video ID", err)
		return
	}

	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	adminID, _ := c.Get(middleware.ContextUserID)
	adminUUID, _ := adminID.(uuid.UUID)

	feedback, err := h.feedbackService.CreateFeedback(videoID, adminUUID, req.Feedback)
	if err != nil {
		h.logger.WithError(err).WithField("video_id", videoID).Error("Failed to create feedback")
		respondServiceError(c, "Failed to create feedback", err)
		return
	}

	utils.CreatedResponse(c, "Feedback created successfully", feedback)
}

// DeleteFeedback handles DELETE /api/v1/feedback/:id
// @Summary Delete video feedback
// @Description Delete a feedback entry
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} utils.APIResponse "Feedback deleted successfully"
// @Failure 400 {object} utils.APIResponse "Invalid feedback ID"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/feedback/{id} [delete]
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid feedback ID", err)
		return
	}

	if err := h.feedbackService.DeleteFeedback(id); err != nil {
		h.logger.WithError(err).WithField("feedback_id", id).Error("Failed to delete feedback")
		respondServiceError(c, "Failed to delete feedback", err)
		return
	}

	utils.SuccessResponse(c, "Feedback deleted successfully", nil)
}
