package mocks

import (
	"time"

	"fittrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uuid.UUID) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Shared MockProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(profile *models.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Update(profile *models.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByUserID(userID uuid.UUID) (*models.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) DeleteByUserID(userID uuid.UUID) error {
	args := m.Called(userID)
	return args.Error(0)
}

// Shared MockProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Create(progress *models.Progress) error {
	args := m.Called(progress)
	return args.Error(0)
}

func (m *MockProgressRepository) Update(progress *models.Progress) error {
	args := m.Called(progress)
	return args.Error(0)
}

func (m *MockProgressRepository) FindByUserIDAndDate(userID uuid.UUID, date time.Time) (*models.Progress, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Progress), args.Error(1)
}

func (m *MockProgressRepository) FindLatestWeightBefore(userID uuid.UUID, date time.Time) (*models.Progress, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Progress), args.Error(1)
}

// Shared MockFoodLogRepository
type MockFoodLogRepository struct {
	mock.Mock
}

func (m *MockFoodLogRepository) Create(log *models.FoodLog) error {
	args := m.Called(log)
	return args.Error(0)
}

func (m *MockFoodLogRepository) FindByID(id uuid.UUID) (*models.FoodLog, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodLog), args.Error(1)
}

func (m *MockFoodLogRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockFoodLogRepository) FindRowsByUserAndDate(userID uuid.UUID, date time.Time) ([]models.DietFoodRow, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DietFoodRow), args.Error(1)
}

func (m *MockFoodLogRepository) FindDaySummariesRange(userID uuid.UUID, start, end time.Time) ([]models.DaySummary, error) {
	args := m.Called(userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DaySummary), args.Error(1)
}

// Shared MockDietTargetRepository
type MockDietTargetRepository struct {
	mock.Mock
}

func (m *MockDietTargetRepository) FindByID(id uuid.UUID) (*models.DietTarget, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DietTarget), args.Error(1)
}

func (m *MockDietTargetRepository) FindByUserIDAndDate(userID uuid.UUID, date time.Time) (*models.DietTarget, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DietTarget), args.Error(1)
}

func (m *MockDietTargetRepository) FindLatestOnOrBefore(userID uuid.UUID, date time.Time) (*models.DietTarget, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DietTarget), args.Error(1)
}

func (m *MockDietTargetRepository) FindRange(userID uuid.UUID, start, end time.Time) ([]models.DietTarget, error) {
	args := m.Called(userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DietTarget), args.Error(1)
}

func (m *MockDietTargetRepository) Save(input models.DietTargetInput, requestUserID uuid.UUID) (*models.DietTarget, error) {
	args := m.Called(input, requestUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DietTarget), args.Error(1)
}

func (m *MockDietTargetRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}
