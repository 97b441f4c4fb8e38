package services

import (
	"errors"
	"log"
	"time"

	"fittrack/internal/cache"
	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNoWeightLogged means a target could not be derived because the user has
// never logged a body weight on or before the requested date.
var ErrNoWeightLogged = errors.New("no body weight logged on or before the target date")

// DietTargetService generates and persists daily macro targets, either derived
// from the profile's TDEE and goal or set manually in grams per kilogram.
type DietTargetService struct {
	users        repository.UserRepository
	profiles     repository.ProfileRepository
	progress     repository.ProgressRepository
	targets      repository.DietTargetRepository
	summaryCache *cache.RedisClient
}

// NewDietTargetService wires the target generator. The cache is optional and
// only used to drop stale period summaries after a write.
func NewDietTargetService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	progress repository.ProgressRepository,
	targets repository.DietTargetRepository,
	summaryCache *cache.RedisClient,
) *DietTargetService {
	return &DietTargetService{
		users:        users,
		profiles:     profiles,
		progress:     progress,
		targets:      targets,
		summaryCache: summaryCache,
	}
}

// invalidateSummaries is best effort: a failed invalidation logs and relies on
// the cache TTL instead.
func (s *DietTargetService) invalidateSummaries(username string) {
	if s.summaryCache == nil {
		return
	}
	if err := s.summaryCache.InvalidateUserSummaries(username); err != nil {
		log.Printf("summary cache invalidation failed for %s: %v", username, err)
	}
}

// GenerateFromProfile computes the target for the date from the stored
// profile, the latest weigh-in on or before the date and the goal's macro
// split, then upserts it for (user, date).
func (s *DietTargetService) GenerateFromProfile(username string, date time.Time) (*models.DietTargetView, error) {
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

	latest, err := s.progress.FindLatestWeightBefore(user.ID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoWeightLogged
		}
		return nil, err
	}
	if latest.WeightKG == nil {
		return nil, ErrNoWeightLogged
	}
	weightKG := *latest.WeightKG

	if err := models.ValidateProfileTarget(date, weightKG); err != nil {
		return nil, err
	}

	sex := models.ParseSex(profile.Sex)
	level := models.ParseActivityLevel(profile.ActivityLevel)
	goal := models.ParseFitnessGoal(profile.FitnessGoal)

	bmr := models.BasalMetabolicRate(&weightKG, profile.Height, profile.AgeAt(date), sex)
	tdee := models.TotalDailyEnergyExpenditure(bmr, level)

	input := models.NewDietTargetFromProfile(user.ID, date, weightKG, goal, tdee)
	saved, err := s.targets.Save(input, user.ID)
	if err != nil {
		return nil, err
	}
	s.invalidateSummaries(user.Username)
	view := saved.View(user.Username)
	return &view, nil
}

// SaveGramsPerKG validates and upserts a manual per-kg target.
func (s *DietTargetService) SaveGramsPerKG(username string, g models.DietTargetGramsPerKG) (*models.DietTargetView, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	g.UserID = user.ID

	if err := g.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.targets.Save(g.Input(), user.ID)
	if err != nil {
		return nil, err
	}
	s.invalidateSummaries(user.Username)
	view := saved.View(user.Username)
	return &view, nil
}

// BulkOutcome is the per-date result of a bulk save. Exactly one of Target and
// Error is set.
type BulkOutcome struct {
	Date   time.Time              `json:"date"`
	Target *models.DietTargetView `json:"target,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

// BulkSaveGramsPerKG applies the same per-kg settings to every date in the
// list. Each date validates and saves independently, so one bad date does not
// block the rest.
func (s *DietTargetService) BulkSaveGramsPerKG(username string, g models.DietTargetGramsPerKG, dates []time.Time) ([]BulkOutcome, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	g.UserID = user.ID

	outcomes := make([]BulkOutcome, 0, len(dates))
	anySaved := false
	for _, date := range dates {
		dated := g
		dated.Date = date

		if err := dated.Validate(); err != nil {
			outcomes = append(outcomes, BulkOutcome{Date: models.DateOnly(date), Error: err.Error()})
			continue
		}

		saved, err := s.targets.Save(dated.Input(), user.ID)
		if err != nil {
			outcomes = append(outcomes, BulkOutcome{Date: models.DateOnly(date), Error: err.Error()})
			continue
		}
		anySaved = true
		view := saved.View(user.Username)
		outcomes = append(outcomes, BulkOutcome{Date: models.DateOnly(date), Target: &view})
	}
	if anySaved {
		s.invalidateSummaries(user.Username)
	}
	return outcomes, nil
}

// LatestView returns the latest applicable target view for the date, or nil
// when the user has never set a target on or before it.
func (s *DietTargetService) LatestView(username string, date time.Time) (*models.DietTargetView, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	target, err := s.targets.FindLatestOnOrBefore(user.ID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	view := target.View(user.Username)
	return &view, nil
}

// ListRange returns the stored target views in [start, end], chronologically.
func (s *DietTargetService) ListRange(username string, start, end time.Time) ([]models.DietTargetView, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	targets, err := s.targets.FindRange(user.ID, start, end)
	if err != nil {
		return nil, err
	}

	views := make([]models.DietTargetView, 0, len(targets))
	for _, target := range targets {
		views = append(views, target.View(user.Username))
	}
	return views, nil
}

// Delete removes a stored target by id. Cached summaries for the owner are
// dropped when the owner can be resolved; otherwise the cache TTL covers it.
func (s *DietTargetService) Delete(id uuid.UUID) error {
	if s.summaryCache == nil {
		return s.targets.Delete(id)
	}

	target, err := s.targets.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.targets.Delete(id); err != nil {
		return err
	}
	if user, err := s.users.FindByID(target.UserID); err == nil {
		s.invalidateSummaries(user.Username)
	}
	return nil
}
