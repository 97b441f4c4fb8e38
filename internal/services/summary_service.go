package services

import (
	"errors"
	"log"
	"time"

	"fittrack/internal/cache"
	"fittrack/internal/models"
	"fittrack/internal/repository"
	"fittrack/internal/utils"

	"gorm.io/gorm"
)

const summaryCacheTTL = 5 * time.Minute

// SummaryService builds dense week and month summaries for logged food and
// for diet targets. Food gaps fill with zero rows; target gaps carry the last
// set target forward, seeded from before the range when needed.
type SummaryService struct {
	users    repository.UserRepository
	foodLogs repository.FoodLogRepository
	targets  repository.DietTargetRepository
	cache    *cache.RedisClient
}

// NewSummaryService wires the summary builder. The cache is optional; pass
// nil to compute every request from the store.
func NewSummaryService(
	users repository.UserRepository,
	foodLogs repository.FoodLogRepository,
	targets repository.DietTargetRepository,
	redisCache *cache.RedisClient,
) *SummaryService {
	return &SummaryService{users: users, foodLogs: foodLogs, targets: targets, cache: redisCache}
}

// DietWeekSummary summarizes logged food over the Monday-to-Sunday week
// containing the date.
func (s *SummaryService) DietWeekSummary(username string, date time.Time) (*models.PeriodSummary, error) {
	return s.dietSummary("diet:week", username, utils.WeekStart(date), utils.WeekEnd(date))
}

// DietMonthSummary summarizes logged food over the comprehensive month
// containing the date: the calendar month padded out to full weeks.
func (s *SummaryService) DietMonthSummary(username string, date time.Time) (*models.PeriodSummary, error) {
	return s.dietSummary("diet:month", username, utils.MonthStartComprehensive(date), utils.MonthEndComprehensive(date))
}

// DietTargetWeekSummary summarizes the effective target over the week
// containing the date.
func (s *SummaryService) DietTargetWeekSummary(username string, date time.Time) (*models.PeriodSummary, error) {
	return s.targetSummary("target:week", username, utils.WeekStart(date), utils.WeekEnd(date))
}

// DietTargetMonthSummary summarizes the effective target over the
// comprehensive month containing the date.
func (s *SummaryService) DietTargetMonthSummary(username string, date time.Time) (*models.PeriodSummary, error) {
	return s.targetSummary("target:month", username, utils.MonthStartComprehensive(date), utils.MonthEndComprehensive(date))
}

func (s *SummaryService) dietSummary(kind, username string, start, end time.Time) (*models.PeriodSummary, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if cached := s.fromCache(kind, username, start, end); cached != nil {
		return cached, nil
	}

	days, err := s.foodLogs.FindDaySummariesRange(user.ID, start, end)
	if err != nil {
		return nil, err
	}
	for i := range days {
		days[i].Derive()
		days[i].Actual = true
	}

	dense := models.BuildDenseSeries(days, start, end, models.GapPolicy{
		Mode:     models.GapFillZero,
		Username: user.Username,
	})

	summary := &models.PeriodSummary{
		Days:    dense,
		Average: models.PeriodAverage(dense, end),
	}
	s.toCache(kind, username, start, end, summary)
	return summary, nil
}

func (s *SummaryService) targetSummary(kind, username string, start, end time.Time) (*models.PeriodSummary, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if cached := s.fromCache(kind, username, start, end); cached != nil {
		return cached, nil
	}

	targets, err := s.targets.FindRange(user.ID, start, end)
	if err != nil {
		return nil, err
	}

	days := make([]models.DaySummary, 0, len(targets))
	for _, target := range targets {
		days = append(days, target.DaySummary(user.Username))
	}

	// A target set before the range keeps applying into it, so leading gaps
	// seed from the latest earlier record. Skip the lookup when the range
	// opens with its own row.
	var seed *models.DaySummary
	if len(days) == 0 || !models.DateOnly(days[0].Date).Equal(models.DateOnly(start)) {
		earlier, err := s.targets.FindLatestOnOrBefore(user.ID, start)
		switch {
		case err == nil:
			seeded := earlier.DaySummary(user.Username)
			seed = &seeded
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return nil, err
		}
	}

	dense := models.BuildDenseSeries(days, start, end, models.GapPolicy{
		Mode:     models.GapFillCarryForward,
		Seed:     seed,
		Username: user.Username,
	})

	summary := &models.PeriodSummary{
		Days:    dense,
		Average: models.PeriodAverage(dense, end),
	}
	s.toCache(kind, username, start, end, summary)
	return summary, nil
}

// fromCache is best effort: a cache failure logs and falls through to the
// store.
func (s *SummaryService) fromCache(kind, username string, start, end time.Time) *models.PeriodSummary {
	if s.cache == nil {
		return nil
	}
	summary, found, err := s.cache.GetPeriodSummary(cache.SummaryKey(kind, username, start, end))
	if err != nil {
		log.Printf("summary cache read failed: %v", err)
		return nil
	}
	if !found {
		return nil
	}
	return summary
}

func (s *SummaryService) toCache(kind, username string, start, end time.Time, summary *models.PeriodSummary) {
	if s.cache == nil {
		return
	}
	if err := s.cache.StorePeriodSummary(cache.SummaryKey(kind, username, start, end), summary, summaryCacheTTL); err != nil {
		log.Printf("summary cache write failed: %v", err)
	}
}
