package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUUIDParam parses a named path parameter as a UUID
func GetUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %q is not a valid UUID", name, raw)
	}
	return id, nil
}

// GetIDParam parses the "id" path parameter as a UUID
func GetIDParam(c *gin.Context) (uuid.UUID, error) {
	return GetUUIDParam(c, "id")
}

// GetPaginationParams reads page and limit query parameters with defaults
func GetPaginationParams(c *gin.Context) (page, limit int) {
	page = 1
	limit = 20

	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}

	return page, limit
}
