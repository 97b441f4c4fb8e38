package services

import (
	"errors"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repository"

	"gorm.io/gorm"
)

// DietService builds the day view: logged food grouped into meals, paired
// with the applicable target and the remaining allowance.
type DietService struct {
	users    repository.UserRepository
	foodLogs repository.FoodLogRepository
	targets  repository.DietTargetRepository
}

func NewDietService(
	users repository.UserRepository,
	foodLogs repository.FoodLogRepository,
	targets repository.DietTargetRepository,
) *DietService {
	return &DietService{users: users, foodLogs: foodLogs, targets: targets}
}

// GetDietDay aggregates everything logged on the date. A day with no logs is
// a valid empty aggregate, not an error. Target and remaining stay nil when
// no target applies on or before the date.
func (s *DietService) GetDietDay(username string, date time.Time) (*models.DietDayResponse, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	rows, err := s.foodLogs.FindRowsByUserAndDate(user.ID, date)
	if err != nil {
		return nil, err
	}

	response := models.DietDayResponse{
		Day: models.BuildDietDay(user.ID, user.Username, date, rows),
	}

	target, err := s.targets.FindLatestOnOrBefore(user.ID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &response, nil
		}
		return nil, err
	}

	view := target.View(user.Username)
	remaining := models.Remaining(target.Nutrition(), response.Day.Nutrition)
	response.Target = &view
	response.Remaining = &remaining
	return &response, nil
}
