package controllers

import (
	"errors"
	"net/http"
	"time"

	"fittrack/internal/cache"
	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProgressController struct {
	users        repository.UserRepository
	progress     repository.ProgressRepository
	summaryCache *cache.RedisClient
}

func NewProgressController(
	users repository.UserRepository,
	progress repository.ProgressRepository,
	summaryCache *cache.RedisClient,
) *ProgressController {
	return &ProgressController{users: users, progress: progress, summaryCache: summaryCache}
}

// ProgressInput is one dated measurement entry. Weight may be omitted to
// record notes without a weigh-in.
type ProgressInput struct {
	Date     time.Time `json:"date"`
	WeightKG *float64  `json:"weight_kg" example:"80"`
	Notes    string    `json:"notes"`
}

// SaveProgress godoc
// @Summary Record a progress entry
// @Description Create or update the measurement entry for (user, date)
// @Tags progress
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param progress body ProgressInput true "Progress data"
// @Success 200 {object} map[string]interface{} "Progress saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Failed to save progress"
// @Router /progress/{username} [put]
func (pc *ProgressController) SaveProgress(c *gin.Context) {
	var input ProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := models.ValidateProgress(input.Date, input.WeightKG, input.Notes); err != nil {
		respondValidationFailed(c, err)
		return
	}

	user, err := pc.users.FindByUsername(c.Param("username"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided username",
		})
		return
	}

	date := models.DateOnly(input.Date)
	entry, err := pc.progress.FindByUserIDAndDate(user.ID, date)
	switch {
	case err == nil:
		entry.WeightKG = input.WeightKG
		entry.Notes = input.Notes
		entry.UpdatedByID = &user.ID
		if err := pc.progress.Update(entry); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to save progress",
				"error":   err.Error(),
			})
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry = &models.Progress{
			UserID:      user.ID,
			Date:        date,
			WeightKG:    input.WeightKG,
			Notes:       input.Notes,
			CreatedByID: user.ID,
		}
		if err := pc.progress.Create(entry); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to save progress",
				"error":   err.Error(),
			})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save progress",
			"error":   err.Error(),
		})
		return
	}

	// Day summaries join each day against the latest weigh-in, so a weight
	// change reshapes per-kg figures across cached ranges.
	invalidateSummaries(pc.summaryCache, user.Username)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Progress saved successfully",
		"data":    entry,
	})
}

// GetLatestWeight godoc
// @Summary Get the latest weigh-in
// @Description Retrieve the most recent entry with a recorded weight on or before a date
// @Tags progress
// @Produce json
// @Param username path string true "Username"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{} "Progress retrieved successfully"
// @Failure 404 {object} map[string]interface{} "No weigh-in found"
// @Router /progress/{username}/latest [get]
func (pc *ProgressController) GetLatestWeight(c *gin.Context) {
	date, err := parseDateQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   err.Error(),
		})
		return
	}

	user, err := pc.users.FindByUsername(c.Param("username"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided username",
		})
		return
	}

	entry, err := pc.progress.FindLatestWeightBefore(user.ID, date)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No weigh-in found",
			"error":   "No entry with a recorded weight exists on or before the provided date",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Progress retrieved successfully",
		"data":    entry,
	})
}
