package controllers

import (
	"errors"
	"net/http"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/services"
	"fittrack/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DietTargetController struct {
	targets *services.DietTargetService
}

func NewDietTargetController(targets *services.DietTargetService) *DietTargetController {
	return &DietTargetController{targets: targets}
}

// GramsPerKGInput is the manual target request: per-kg macro settings plus
// the body weight they apply to.
type GramsPerKGInput struct {
	Date              time.Time `json:"date"`
	Weight            float64   `json:"weight" example:"80"`
	ProteinPerKG      float64   `json:"protein_per_kg" example:"2.2"`
	CarbohydratePerKG float64   `json:"carbohydrate_per_kg" example:"4"`
	FatPerKG          float64   `json:"fat_per_kg" example:"1"`
}

// BulkGramsPerKGInput applies one set of per-kg settings to many dates.
type BulkGramsPerKGInput struct {
	Dates             []time.Time `json:"dates"`
	Weight            float64     `json:"weight" example:"80"`
	ProteinPerKG      float64     `json:"protein_per_kg" example:"2.2"`
	CarbohydratePerKG float64     `json:"carbohydrate_per_kg" example:"4"`
	FatPerKG          float64     `json:"fat_per_kg" example:"1"`
}

// respondTargetError maps service failures onto the response envelope.
// Validation failures carry their field errors in the error payload.
func respondTargetError(c *gin.Context, err error, fallback string) {
	var validation *models.ValidationError
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
	case errors.Is(err, services.ErrNoWeightLogged):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "No body weight logged",
			"error":   err.Error(),
		})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"error":   validation.FieldErrors,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": fallback,
			"error":   err.Error(),
		})
	}
}

// GenerateFromProfile godoc
// @Summary Generate a diet target from the profile
// @Description Derive and save the macro target for a date from the stored profile, latest weigh-in and fitness goal
// @Tags diet-target
// @Produce json
// @Param username path string true "Username"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 201 {object} map[string]interface{} "Diet target generated successfully"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 422 {object} map[string]interface{} "No body weight logged"
// @Router /diet-target/{username}/generate [post]
func (dc *DietTargetController) GenerateFromProfile(c *gin.Context) {
	date, err := parseDateQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   err.Error(),
		})
		return
	}

	username := c.Param("username")
	view, err := dc.targets.GenerateFromProfile(username, date)
	if err != nil {
		respondTargetError(c, err, "Failed to generate diet target")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Diet target generated successfully",
		"data":    view,
	})
}

// SaveGramsPerKG godoc
// @Summary Save a manual diet target
// @Description Save a target from grams-per-kilogram macro settings
// @Tags diet-target
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param target body GramsPerKGInput true "Per-kg target settings"
// @Success 201 {object} map[string]interface{} "Diet target saved successfully"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /diet-target/{username} [post]
func (dc *DietTargetController) SaveGramsPerKG(c *gin.Context) {
	var input GramsPerKGInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	username := c.Param("username")
	view, err := dc.targets.SaveGramsPerKG(username, models.DietTargetGramsPerKG{
		Date:              input.Date,
		Weight:            input.Weight,
		ProteinPerKG:      input.ProteinPerKG,
		CarbohydratePerKG: input.CarbohydratePerKG,
		FatPerKG:          input.FatPerKG,
	})
	if err != nil {
		respondTargetError(c, err, "Failed to save diet target")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Diet target saved successfully",
		"data":    view,
	})
}

// BulkSaveGramsPerKG godoc
// @Summary Save a manual diet target for many dates
// @Description Apply one set of per-kg settings to every listed date; each date succeeds or fails on its own
// @Tags diet-target
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param target body BulkGramsPerKGInput true "Per-kg settings and dates"
// @Success 200 {object} map[string]interface{} "Bulk save completed"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /diet-target/{username}/bulk [post]
func (dc *DietTargetController) BulkSaveGramsPerKG(c *gin.Context) {
	var input BulkGramsPerKGInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	if len(input.Dates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "dates must not be empty",
		})
		return
	}

	username := c.Param("username")
	outcomes, err := dc.targets.BulkSaveGramsPerKG(username, models.DietTargetGramsPerKG{
		Weight:            input.Weight,
		ProteinPerKG:      input.ProteinPerKG,
		CarbohydratePerKG: input.CarbohydratePerKG,
		FatPerKG:          input.FatPerKG,
	}, input.Dates)
	if err != nil {
		respondTargetError(c, err, "Failed to save diet targets")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Bulk save completed",
		"data":    outcomes,
	})
}

// GetLatestTarget godoc
// @Summary Get the target in effect on a date
// @Description Retrieve the latest target with date on or before the given date
// @Tags diet-target
// @Produce json
// @Param username path string true "Username"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{} "Diet target retrieved successfully"
// @Failure 404 {object} map[string]interface{} "No diet target set"
// @Router /diet-target/{username}/latest [get]
func (dc *DietTargetController) GetLatestTarget(c *gin.Context) {
	date, err := parseDateQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   err.Error(),
		})
		return
	}

	view, err := dc.targets.LatestView(c.Param("username"), date)
	if err != nil {
		respondTargetError(c, err, "Failed to retrieve diet target")
		return
	}
	if view == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No diet target set",
			"error":   "No target exists on or before the provided date",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Diet target retrieved successfully",
		"data":    view,
	})
}

// ListTargets godoc
// @Summary List stored targets in a date range
// @Description Retrieve every stored target between from and to inclusive
// @Tags diet-target
// @Produce json
// @Param username path string true "Username"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Diet targets retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid range"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /diet-target/{username} [get]
func (dc *DietTargetController) ListTargets(c *gin.Context) {
	from, err := utils.ParseDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid range",
			"error":   "from must be in YYYY-MM-DD format",
		})
		return
	}
	to, err := utils.ParseDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid range",
			"error":   "to must be in YYYY-MM-DD format",
		})
		return
	}

	views, err := dc.targets.ListRange(c.Param("username"), from, to)
	if err != nil {
		respondTargetError(c, err, "Failed to retrieve diet targets")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Diet targets retrieved successfully",
		"data":    views,
	})
}

// DeleteTarget godoc
// @Summary Delete a diet target
// @Description Delete a stored target by its id
// @Tags diet-target
// @Produce json
// @Param id path string true "Target ID"
// @Success 200 {object} map[string]interface{} "Diet target deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid target ID"
// @Failure 500 {object} map[string]interface{} "Failed to delete diet target"
// @Router /diet-target/{id} [delete]
func (dc *DietTargetController) DeleteTarget(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid target ID",
			"error":   "ID must be a valid UUID",
		})
		return
	}

	if err := dc.targets.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete diet target",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Diet target deleted successfully",
		"data":    nil,
	})
}
