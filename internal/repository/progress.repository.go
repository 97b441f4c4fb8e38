package repository

import (
	"time"

	"fittrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	Create(progress *models.Progress) error
	Update(progress *models.Progress) error
	FindByUserIDAndDate(userID uuid.UUID, date time.Time) (*models.Progress, error)
	// FindLatestWeightBefore returns the most recent entry with a recorded
	// weight on or before the given date, or gorm.ErrRecordNotFound.
	FindLatestWeightBefore(userID uuid.UUID, date time.Time) (*models.Progress, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(progress *models.Progress) error {
	return r.db.Create(progress).Error
}

func (r *progressRepository) Update(progress *models.Progress) error {
	return r.db.Save(progress).Error
}

func (r *progressRepository) FindByUserIDAndDate(userID uuid.UUID, date time.Time) (*models.Progress, error) {
	var progress models.Progress
	err := r.db.Where("user_id = ? AND date = ?", userID, models.DateOnly(date)).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) FindLatestWeightBefore(userID uuid.UUID, date time.Time) (*models.Progress, error) {
	var progress models.Progress
	err := r.db.
		Where("user_id = ? AND date <= ? AND weight_kg IS NOT NULL", userID, models.DateOnly(date)).
		Order("date DESC").
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
