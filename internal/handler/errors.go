package handler

import (
	"errors"

	"creatorpay-be-svc/internal/service"
	"creatorpay-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondServiceError maps service errors to the right HTTP status
func respondServiceError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.NotFoundResponse(c, message)
	case errors.Is(err, service.ErrInvalidInput):
		utils.BadRequestResponse(c, message, err)
	case errors.Is(err, service.ErrPaymentStateConflict):
		utils.ConflictResponse(c, message, err)
	default:
		utils.InternalServerErrorResponse(c, message, err)
	}
}
