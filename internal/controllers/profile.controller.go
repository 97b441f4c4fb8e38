package controllers

import (
	"errors"
	"net/http"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repository"
	"fittrack/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileController struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	metrics  *services.MetricsService
}

func NewProfileController(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	metrics *services.MetricsService,
) *ProfileController {
	return &ProfileController{users: users, profiles: profiles, metrics: metrics}
}

// ProfileInput carries the editable profile fields. Enum fields accept their
// short codes; anything unrecognized falls back to the unspecified code.
type ProfileInput struct {
	Sex           string    `json:"sex" example:"M"`
	ActivityLevel string    `json:"activity_level" example:"MA"`
	FitnessGoal   string    `json:"fitness_goal" example:"LW"`
	Height        float64   `json:"height" example:"180"`
	DateOfBirth   time.Time `json:"date_of_birth"`
}

// SaveProfile godoc
// @Summary Create or update a user's profile
// @Description Upsert the profile for the given username
// @Tags profile
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param profile body ProfileInput true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Failed to save profile"
// @Router /profile/{username} [put]
func (pc *ProfileController) SaveProfile(c *gin.Context) {
	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := models.ValidateProfile(input.Height, input.DateOfBirth); err != nil {
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

	// Unknown enum codes normalize to the unspecified value instead of
	// being rejected.
	normalized := models.Profile{
		UserID:        user.ID,
		Sex:           string(models.ParseSex(input.Sex)),
		ActivityLevel: string(models.ParseActivityLevel(input.ActivityLevel)),
		FitnessGoal:   string(models.ParseFitnessGoal(input.FitnessGoal)),
		Height:        input.Height,
		DateOfBirth:   input.DateOfBirth,
	}

	existing, err := pc.profiles.FindByUserID(user.ID)
	switch {
	case err == nil:
		normalized.ID = existing.ID
		normalized.CreatedByID = existing.CreatedByID
		normalized.UpdatedByID = &user.ID
		if err := pc.profiles.Update(&normalized); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to save profile",
				"error":   err.Error(),
			})
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		normalized.CreatedByID = user.ID
		if err := pc.profiles.Create(&normalized); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to save profile",
				"error":   err.Error(),
			})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile saved successfully",
		"data":    normalized,
	})
}

// GetProfile godoc
// @Summary Get a user's profile
// @Description Retrieve the stored profile for the given username
// @Tags profile
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile/{username} [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	user, err := pc.users.FindByUsername(c.Param("username"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided username",
		})
		return
	}

	profile, err := pc.profiles.FindByUserID(user.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for the provided username",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    profile,
	})
}

// DeleteProfile godoc
// @Summary Delete a user's profile
// @Description Delete the stored profile for the given username
// @Tags profile
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} map[string]interface{} "Profile deleted successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Failed to delete profile"
// @Router /profile/{username} [delete]
func (pc *ProfileController) DeleteProfile(c *gin.Context) {
	user, err := pc.users.FindByUsername(c.Param("username"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided username",
		})
		return
	}

	if err := pc.profiles.DeleteByUserID(user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile deleted successfully",
		"data":    nil,
	})
}

// GetProfileMetrics godoc
// @Summary Get derived profile metrics
// @Description Retrieve BMI, BMR, TDEE and target calories as of a date
// @Tags profile
// @Produce json
// @Param username path string true "Username"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{} "Metrics retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve metrics"
// @Router /profile/{username}/metrics [get]
func (pc *ProfileController) GetProfileMetrics(c *gin.Context) {
	date, err := parseDateQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   err.Error(),
		})
		return
	}

	metrics, err := pc.metrics.GetMetricsByUsername(c.Param("username"), date)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "User not found",
				"error":   "No user exists with the provided username",
			})
		case errors.Is(err, services.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Profile not found",
				"error":   "No profile exists for the provided username",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to retrieve metrics",
				"error":   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Metrics retrieved successfully",
		"data":    metrics,
	})
}
