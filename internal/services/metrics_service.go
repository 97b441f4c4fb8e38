package services

import (
	"errors"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
)

// MetricsService derives profile metrics (BMI, BMR, TDEE, target calories)
// from the stored profile and the latest logged body weight.
type MetricsService struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	progress repository.ProgressRepository
}

func NewMetricsService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	progress repository.ProgressRepository,
) *MetricsService {
	return &MetricsService{users: users, profiles: profiles, progress: progress}
}

// GetMetricsByUsername builds the metric view as of the given date. With no
// weigh-in on record the metrics come back zero-valued rather than failing;
// with no profile at all the caller gets ErrProfileNotFound and decides
// between a placeholder and a hard failure.
func (s *MetricsService) GetMetricsByUsername(username string, asOf time.Time) (*models.ProfileMetrics, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	profile, err := s.profiles.FindByUserID(user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var weightKG *float64
	var weightDate *time.Time
	latest, err := s.progress.FindLatestWeightBefore(user.ID, asOf)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && latest.WeightKG != nil {
		weightKG = latest.WeightKG
		d := models.DateOnly(latest.Date)
		weightDate = &d
	}

	metrics := models.BuildProfileMetrics(profile, user.Username, weightKG, weightDate, asOf)
	return &metrics, nil
}
