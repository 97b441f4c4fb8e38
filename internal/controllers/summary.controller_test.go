package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fittrack/internal/mocks"
	"fittrack/internal/models"
	"fittrack/internal/services"
	"fittrack/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// Test helper functions
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func setupSummaryController() (*SummaryController, *mocks.MockUserRepository, *mocks.MockFoodLogRepository, *mocks.MockDietTargetRepository) {
	users := new(mocks.MockUserRepository)
	foodLogs := new(mocks.MockFoodLogRepository)
	targets := new(mocks.MockDietTargetRepository)
	service := services.NewSummaryService(users, foodLogs, targets, nil)
	return NewSummaryController(service), users, foodLogs, targets
}

func TestGetDietWeekSummary(t *testing.T) {
	controller, users, foodLogs, _ := setupSummaryController()

	userID := uuid.New()
	start := utils.Date(2024, 6, 17)
	end := utils.Date(2024, 6, 23)

	users.On("FindByUsername", "alice").Return(&models.User{ID: userID, Username: "alice"}, nil)
	foodLogs.On("FindDaySummariesRange", userID, start, end).Return([]models.DaySummary{
		{UserID: userID, Username: "alice", Date: start, Weight: 80, Energy: 2100},
	}, nil)

	router := setupTestRouter()
	router.GET("/summary/:username/diet/week", controller.GetDietWeekSummary)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/summary/alice/diet/week?date=2024-06-20", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Status string               `json:"status"`
		Data   models.PeriodSummary `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "success", response.Status)
	assert.Len(t, response.Data.Days, 7)
	assert.InDelta(t, 2100.0/7, response.Data.Average.Energy, 0.0001)
}

func TestGetDietWeekSummaryInvalidDate(t *testing.T) {
	controller, _, _, _ := setupSummaryController()

	router := setupTestRouter()
	router.GET("/summary/:username/diet/week", controller.GetDietWeekSummary)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/summary/alice/diet/week?date=20-06-2024", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid date")
}

func TestGetDietWeekSummaryUnknownUser(t *testing.T) {
	controller, users, _, _ := setupSummaryController()

	users.On("FindByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.GET("/summary/:username/diet/week", controller.GetDietWeekSummary)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/summary/ghost/diet/week?date=2024-06-20", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestGetTargetMonthSummary(t *testing.T) {
	controller, users, _, targets := setupSummaryController()

	userID := uuid.New()
	start := utils.Date(2024, 5, 27)
	end := utils.Date(2024, 6, 30)

	users.On("FindByUsername", "alice").Return(&models.User{ID: userID, Username: "alice"}, nil)
	targets.On("FindRange", userID, start, end).Return([]models.DietTarget{
		{UserID: userID, Date: start, Energy: 2300, Weight: 80},
	}, nil)

	router := setupTestRouter()
	router.GET("/summary/:username/target/month", controller.GetTargetMonthSummary)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/summary/alice/target/month?date=2024-06-20", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data models.PeriodSummary `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Data.Days, 35)
	// The single target carries across the whole grid.
	assert.InDelta(t, 2300, response.Data.Average.Energy, 0.0001)
}
