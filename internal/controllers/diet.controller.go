package controllers

import (
	"errors"
	"net/http"
	"time"

	"fittrack/internal/cache"
	"fittrack/internal/models"
	"fittrack/internal/repository"
	"fittrack/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DietController struct {
	diet         *services.DietService
	users        repository.UserRepository
	foodLogs     repository.FoodLogRepository
	summaryCache *cache.RedisClient
}

func NewDietController(
	diet *services.DietService,
	users repository.UserRepository,
	foodLogs repository.FoodLogRepository,
	summaryCache *cache.RedisClient,
) *DietController {
	return &DietController{diet: diet, users: users, foodLogs: foodLogs, summaryCache: summaryCache}
}

// FoodLogInput is one logged food entry.
type FoodLogInput struct {
	FoodID    uuid.UUID `json:"food_id" binding:"required"`
	Date      time.Time `json:"date"`
	MealOfDay string    `json:"meal_of_day" example:"breakfast"`
	MealOrder int       `json:"meal_order"`
	Quantity  float64   `json:"quantity" example:"1.5"`
}

// GetDietDay godoc
// @Summary Get a user's diet day
// @Description Retrieve everything logged on a date, grouped into meals, with the applicable target and remaining allowance
// @Tags diet
// @Produce json
// @Param username path string true "Username"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{} "Diet day retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve diet day"
// @Router /diet/{username} [get]
func (dc *DietController) GetDietDay(c *gin.Context) {
	date, err := parseDateQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   err.Error(),
		})
		return
	}

	response, err := dc.diet.GetDietDay(c.Param("username"), date)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "User not found",
				"error":   "No user exists with the provided username",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve diet day",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Diet day retrieved successfully",
		"data":    response,
	})
}

// CreateFoodLog godoc
// @Summary Log a food
// @Description Record a food eaten on a date in a given quantity
// @Tags diet
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param log body FoodLogInput true "Food log data"
// @Success 201 {object} map[string]interface{} "Food logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Failed to log food"
// @Router /diet/{username}/log [post]
func (dc *DietController) CreateFoodLog(c *gin.Context) {
	var input FoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := models.ValidateFoodLog(input.Date, input.Quantity); err != nil {
		respondValidationFailed(c, err)
		return
	}

	user, err := dc.users.FindByUsername(c.Param("username"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided username",
		})
		return
	}

	log := models.FoodLog{
		UserID:      user.ID,
		FoodID:      input.FoodID,
		Date:        models.DateOnly(input.Date),
		MealOfDay:   input.MealOfDay,
		MealOrder:   input.MealOrder,
		Quantity:    input.Quantity,
		CreatedByID: user.ID,
	}
	if err := dc.foodLogs.Create(&log); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log food",
			"error":   err.Error(),
		})
		return
	}
	invalidateSummaries(dc.summaryCache, user.Username)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food logged successfully",
		"data":    log,
	})
}

// DeleteFoodLog godoc
// @Summary Delete a food log entry
// @Description Delete a logged food entry by its id
// @Tags diet
// @Produce json
// @Param id path string true "Food log ID"
// @Success 200 {object} map[string]interface{} "Food log deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid food log ID"
// @Failure 500 {object} map[string]interface{} "Failed to delete food log"
// @Router /diet/log/{id} [delete]
func (dc *DietController) DeleteFoodLog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food log ID",
			"error":   "ID must be a valid UUID",
		})
		return
	}

	// Resolve the owner before the row disappears so their cached summaries
	// can be dropped.
	var ownerUsername string
	if dc.summaryCache != nil {
		if log, err := dc.foodLogs.FindByID(id); err == nil {
			if owner, err := dc.users.FindByID(log.UserID); err == nil {
				ownerUsername = owner.Username
			}
		}
	}

	if err := dc.foodLogs.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete food log",
			"error":   err.Error(),
		})
		return
	}
	if ownerUsername != "" {
		invalidateSummaries(dc.summaryCache, ownerUsername)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food log deleted successfully",
		"data":    nil,
	})
}
