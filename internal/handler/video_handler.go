package handler

import (
	"creatorpay-be-svc/internal/models"
	"creatorpay-be-svc/internal/service"
	"creatorpay-be-svc/pkg/logger"
	"creatorpay-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VideoHandler handles video-related HTTP requests
type VideoHandler struct {
	videoService service.VideoService
	logger       *logger.Logger
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(videoService service.VideoService, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
		logger:       logger,
	}
}

// SubmitVideoRequest is the payload for submitting a new video
type SubmitVideoRequest struct {
	CreatorID    uuid.UUID `json:"creator_id" binding:"required"`
	Title        string    `json:"title" binding:"required"`
	Description  *string   `json:"description"`
	VideoURL     *string   `json:"video_url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	Platform     *string   `json:"platform"`
	Views        int64     `json:"views"`
}

// UpdateVideoStatusRequest is the payload for the approval workflow
type UpdateVideoStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateVideoViewsRequest is the payload for a manual view count edit
type UpdateVideoViewsRequest struct {
	Views int64 `json:"views"`
}

// ListVideos handles GET /api/v1/videos
// @Summary List videos
// @Description List a company's videos with pagination
// @Tags videos
// @Accept json
// @Produce json
// @Param company_id query string true "Company ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.PaginatedResponse{data=[]models.Video} "Videos retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid company ID"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	companyID, err := uuid.Parse(c.Query("company_id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid company ID", err)
		return
	}

	page, limit := utils.GetPaginationParams(c)

	videos, total, err := h.videoService.ListVideos(companyID, page, limit)
	if err != nil {
		h.logger.WithError(err).WithField("company_id", companyID).Error("Failed to list videos")
		respondServiceError(c, "Failed to list videos", err)
		return
	}

	utils.PaginatedSuccessResponse(c, "Videos retrieved successfully", videos, page, limit, total)
}

// ListCreatorVideos handles GET /api/v1/creators/:id/videos
// @Summary List creator videos
// @Description List all videos submitted by a creator
// @Tags videos
// @Accept json
// @Produce json
// @Param id path string true "Creator ID"
// @Success 200 {object} utils.APIResponse{data=[]models.Video} "Videos retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid creator ID"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/creators/{id}/videos [get]
func (h *VideoHandler) ListCreatorVideos(c *gin.Context) {
	creatorID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid creator ID", err)
		return
	}

	videos, err := h.videoService.ListCreatorVideos(creatorID)
	if err != nil {
		h.logger.WithError(err).WithField("creator_id", creatorID).Error("Failed to list creator videos")
		respondServiceError(c, "Failed to list creator videos", err)
		return
	}

	utils.SuccessResponse(c, "Videos retrieved successfully", videos)
}

// GetVideo handles GET /api/v1/videos/:id
// @Summary Get video
// @Description Get a video by ID
// @Tags videos
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} utils.APIResponse{data=models.Video} "Video retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Video not found"
// @Router /api/v1/videos/{id} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid video ID", err)
		return
	}

	video, err := h.videoService.GetVideo(id)
	if err != nil {
		respondServiceError(c, "Failed to get video", err)
		return
	}

	utils.SuccessResponse(c, "Video retrieved successfully", video)
}

// SubmitVideo handles POST /api/v1/videos
// @Summary Submit video
// @Description Submit a new video in pending state and seed its tier payment rows
// @Tags videos
// @Accept json
// @Produce json
// @Param request body SubmitVideoRequest true "Video data"
// @Success 201 {object} utils.APIResponse{data=models.Video} "Video submitted successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/videos [post]
func (h *VideoHandler) SubmitVideo(c *gin.Context) {
	var req SubmitVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	video := &models.Video{
		CreatorID:    req.CreatorID,
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Platform:     req.Platform,
		Views:        req.Views,
	}

	if err := h.videoService.SubmitVideo(video); err != nil {
		h.logger.WithError(err).Error("Failed to submit video")
		respondServiceError(c, "Failed to submit video", err)
		return
	}

	utils.CreatedResponse(c, "Video submitted successfully", video)
}

// UpdateStatus handles PUT /api/v1/videos/:id/status
// @Summary Update video status
// @Description Move a video through the approval workflow (pending, approved, rejected)
// @Tags videos
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param request body UpdateVideoStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse "Video status updated successfully"
// @Failure 400 {object} utils.APIResponse "Invalid status"
// @Failure 404 {object} utils.APIResponse "Video not found"
// @Router /api/v1/videos/{id}/status [put]
func (h *VideoHandler) UpdateStatus(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid video ID", err)
		return
	}

	var req UpdateVideoStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	if err := h.videoService.UpdateStatus(id, req.Status); err != nil {
		h.logger.WithError(err).WithField("video_id", id).Error("Failed to update video status")
		respondServiceError(c, "Failed to update video status", err)
		return
	}

	utils.SuccessResponse(c, "Video status updated successfully", nil)
}

// UpdateViews handles PUT /api/v1/videos/:id/views
// @Summary Update video views
// @Description Manually set a video's view count. Live payment amounts follow the new count; frozen amounts stay as written.
// @Tags videos
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param request body UpdateVideoViewsRequest true "New view count"
// @Success 200 {object} utils.APIResponse "Video views updated successfully"
// @Failure 400 {object} utils.APIResponse "Invalid view count"
// @Failure 404 {object} utils.APIResponse "Video not found"
// @Router /api/v1/videos/{id}/views [put]
func (h *VideoHandler) UpdateViews(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid video ID", err)
		return
	}

	var req UpdateVideoViewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	if err := h.videoService.UpdateViews(id, req.Views); err != nil {
		h.logger.WithError(err).WithField("video_id", id).Error("Failed to update video views")
		respondServiceError(c, "Failed to update video views", err)
		return
	}

	utils.SuccessResponse(c, "Video views updated successfully", nil)
}

// DeleteVideo handles DELETE /api/v1/videos/:id
// @Summary Delete video
// @Description Delete a video together with its tier payment rows
// @Tags videos
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} utils.APIResponse "Video deleted successfully"
// @Failure 404 {object} utils.APIResponse "Video not found"
// @Router /api/v1/videos/{id} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid video ID", err)
		return
	}

	if err := h.videoService.DeleteVideo(id); err != nil {
		h.logger.WithError(err).WithField("video_id", id).Error("Failed to delete video")
		respondServiceError(c, "Failed to delete video", err)
		return
	}

	utils.SuccessResponse(c, "Video deleted successfully", nil)
}
