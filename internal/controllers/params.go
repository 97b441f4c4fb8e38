package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"fittrack/internal/cache"
	"fittrack/internal/models"
	"fittrack/internal/utils"

	"github.com/gin-gonic/gin"
)

// parseDateQuery reads an optional ?date=YYYY-MM-DD query parameter,
// defaulting to today in UTC.
func parseDateQuery(c *gin.Context) (time.Time, error) {
	value := c.Query("date")
	if value == "" {
		return utils.DateOnly(time.Now().UTC()), nil
	}
	date, err := utils.ParseDate(value)
	if err != nil {
		return time.Time{}, errors.New("date must be in YYYY-MM-DD format")
	}
	return date, nil
}

// respondValidationFailed writes a 400 with the accumulated field errors.
func respondValidationFailed(c *gin.Context, err error) {
	var validation *models.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"error":   validation.FieldErrors,
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Validation failed",
		"error":   err.Error(),
	})
}

// invalidateSummaries drops a user's cached period summaries after a write
// that changes what they would contain. Best effort: failures log and the
// cache TTL takes over.
func invalidateSummaries(summaryCache *cache.RedisClient, username string) {
	if summaryCache == nil {
		return
	}
	if err := summaryCache.InvalidateUserSummaries(username); err != nil {
		log.Printf("summary cache invalidation failed for %s: %v", username, err)
	}
}
