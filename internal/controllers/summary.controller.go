package controllers

import (
	"errors"
	"net/http"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/services"

	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	summaries *services.SummaryService
}

func NewSummaryController(summaries *services.SummaryService) *SummaryController {
	return &SummaryController{summaries: summaries}
}

func (sc *SummaryController) respond(c *gin.Context, summary *models.PeriodSummary, err error) {
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
			"message": "Failed to build summary",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Summary retrieved successfully",
		"data":    summary,
	})
}

func (sc *SummaryController) handle(c *gin.Context, build func(string, time.Time) (*models.PeriodSummary, error)) {
	date, err := parseDateQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   err.Error(),
		})
		return
	}
	summary, err := build(c.Param("username"), date)
	sc.respond(c, summary, err)
}

// GetDietWeekSummary godoc
// @Summary Get a diet week summary
// @Description Summarize logged food over the Monday-to-Sunday week containing the date, one row per day with gaps as zero rows
// @Tags summary
// @Produce json
// @Param username path string true "Username"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{} "Summary retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /summary/{username}/diet/week [get]
func (sc *SummaryController) GetDietWeekSummary(c *gin.Context) {
	sc.handle(c, sc.summaries.DietWeekSummary)
}

// GetDietMonthSummary godoc
// @Summary Get a diet month summary
// @Description Summarize logged food over the comprehensive month containing the date
// @Tags summary
// @Produce json
// @Param username path string true "Username"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{} "Summary retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /summary/{username}/diet/month [get]
func (sc *SummaryController) GetDietMonthSummary(c *gin.Context) {
	sc.handle(c, sc.summaries.DietMonthSummary)
}

// GetTargetWeekSummary godoc
// @Summary Get a diet target week summary
// @Description Summarize the effective target over the week containing the date, carrying the last set target across gaps
// @Tags summary
// @Produce json
// @Param username path string true "Username"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{} "Summary retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /summary/{username}/target/week [get]
func (sc *SummaryController) GetTargetWeekSummary(c *gin.Context) {
	sc.handle(c, sc.summaries.DietTargetWeekSummary)
}

// GetTargetMonthSummary godoc
// @Summary Get a diet target month summary
// @Description Summarize the effective target over the comprehensive month containing the date
// @Tags summary
// @Produce json
// @Param username path string true "Username"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{} "Summary retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /summary/{username}/target/month [get]
func (sc *SummaryController) GetTargetMonthSummary(c *gin.Context) {
	sc.handle(c, sc.summaries.DietTargetMonthSummary)
}
