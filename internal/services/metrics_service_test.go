package services

import (
	"errors"
	"testing"
	"time"

	"fittrack/internal/mocks"
	"fittrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func metricsServiceWithMocks() (*MetricsService, *mocks.MockUserRepository, *mocks.MockProfileRepository, *mocks.MockProgressRepository) {
	users := new(mocks.MockUserRepository)
	profiles := new(mocks.MockProfileRepository)
	progress := new(mocks.MockProgressRepository)
	return NewMetricsService(users, profiles, progress), users, profiles, progress
}

func TestGetMetricsByUsername(t *testing.T) {
	service, users, profiles, progress := metricsServiceWithMocks()

	userID := uuid.New()
	asOf := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	weight := 80.0

	users.On("FindByUsername", "alice").Return(&models.User{ID: userID, Username: "alice"}, nil)
	profiles.On("FindByUserID", userID).Return(&models.Profile{
		UserID:        userID,
		Sex:           "M",
		Height:        180,
		DateOfBirth:   time.Date(1994, 1, 1, 0, 0, 0, 0, time.UTC),
		ActivityLevel: "MA",
		FitnessGoal:   "LW",
	}, nil)
	progress.On("FindLatestWeightBefore", userID, asOf).Return(&models.Progress{
		UserID:   userID,
		Date:     asOf.AddDate(0, 0, -2),
		WeightKG: &weight,
	}, nil)

	metrics, err := service.GetMetricsByUsername("alice", asOf)

	assert.NoError(t, err)
	assert.Equal(t, "alice", metrics.Username)
	assert.Equal(t, 30, metrics.Age)
	assert.InDelta(t, 1853.632, metrics.BasalMetabolicRate, 0.001)
	assert.InDelta(t, 2873.1296, metrics.TotalDailyEnergyExpenditure, 0.001)
	assert.InDelta(t, 2298.50368, metrics.TargetCalories, 0.001)
	assert.NotNil(t, metrics.LatestWeightDate)
	users.AssertExpectations(t)
	profiles.AssertExpectations(t)
	progress.AssertExpectations(t)
}

func TestGetMetricsByUsernameNoWeight(t *testing.T) {
	service, users, profiles, progress := metricsServiceWithMocks()

	userID := uuid.New()
	asOf := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	users.On("FindByUsername", "alice").Return(&models.User{ID: userID, Username: "alice"}, nil)
	profiles.On("FindByUserID", userID).Return(&models.Profile{
		UserID: userID,
		Sex:    "M",
		Height: 180,
	}, nil)
	progress.On("FindLatestWeightBefore", userID, asOf).Return(nil, gorm.ErrRecordNotFound)

	metrics, err := service.GetMetricsByUsername("alice", asOf)

	assert.NoError(t, err)
	assert.Nil(t, metrics.LatestWeight)
	assert.Zero(t, metrics.BodyMassIndex)
	assert.Zero(t, metrics.BasalMetabolicRate)
	assert.Zero(t, metrics.TargetCalories)
}

func TestGetMetricsByUsernameUserNotFound(t *testing.T) {
	service, users, _, _ := metricsServiceWithMocks()

	users.On("FindByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.GetMetricsByUsername("ghost", time.Now())

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetMetricsByUsernameProfileNotFound(t *testing.T) {
	service, users, profiles, _ := metricsServiceWithMocks()

	userID := uuid.New()
	users.On("FindByUsername", "alice").Return(&models.User{ID: userID, Username: "alice"}, nil)
	profiles.On("FindByUserID", userID).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.GetMetricsByUsername("alice", time.Now())

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetMetricsByUsernameStoreError(t *testing.T) {
	service, users, profiles, progress := metricsServiceWithMocks()

	userID := uuid.New()
	users.On("FindByUsername", "alice").Return(&models.User{ID: userID}, nil)
	profiles.On("FindByUserID", userID).Return(&models.Profile{UserID: userID}, nil)
	progress.On("FindLatestWeightBefore", userID, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := service.GetMetricsByUsername("alice", time.Now())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}
