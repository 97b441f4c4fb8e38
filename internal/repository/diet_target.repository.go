package repository

import (
	"time"

	"fittrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DietTargetRepository interface {
	FindByID(id uuid.UUID) (*models.DietTarget, error)
	FindByUserIDAndDate(userID uuid.UUID, date time.Time) (*models.DietTarget, error)
	// FindLatestOnOrBefore returns the most recent target with date <= the
	// given date, or gorm.ErrRecordNotFound. Targets apply forward until
	// superseded.
	FindLatestOnOrBefore(userID uuid.UUID, date time.Time) (*models.DietTarget, error)
	FindRange(userID uuid.UUID, start, end time.Time) ([]models.DietTarget, error)
	// Save applies update-or-create semantics for the input's (user, date).
	Save(input models.DietTargetInput, requestUserID uuid.UUID) (*models.DietTarget, error)
	Delete(id uuid.UUID) error
}

type dietTargetRepository struct {
	db *gorm.DB
}

func NewDietTargetRepository(db *gorm.DB) DietTargetRepository {
	return &dietTargetRepository{db: db}
}

func (r *dietTargetRepository) FindByID(id uuid.UUID) (*models.DietTarget, error) {
	var target models.DietTarget
	if err := r.db.First(&target, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &target, nil
}

func (r *dietTargetRepository) FindByUserIDAndDate(userID uuid.UUID, date time.Time) (*models.DietTarget, error) {
	var target models.DietTarget
	err := r.db.Where("user_id = ? AND date = ?", userID, models.DateOnly(date)).First(&target).Error
	if err != nil {
		return nil, err
	}
	return &target, nil
}

func (r *dietTargetRepository) FindLatestOnOrBefore(userID uuid.UUID, date time.Time) (*models.DietTarget, error) {
	var target models.DietTarget
	err := r.db.
		Where("user_id = ? AND date <= ?", userID, models.DateOnly(date)).
		Order("date DESC").
		First(&target).Error
	if err != nil {
		return nil, err
	}
	return &target, nil
}

func (r *dietTargetRepository) FindRange(userID uuid.UUID, start, end time.Time) ([]models.DietTarget, error) {
	var targets []models.DietTarget
	err := r.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, models.DateOnly(start), models.DateOnly(end)).
		Order("date").
		Find(&targets).Error
	if err != nil {
		return nil, err
	}
	return targets, nil
}

func (r *dietTargetRepository) Save(input models.DietTargetInput, requestUserID uuid.UUID) (*models.DietTarget, error) {
	date := models.DateOnly(input.Date)

	var existing models.DietTarget
	err := r.db.Where("user_id = ? AND date = ?", input.UserID, date).First(&existing).Error
	switch {
	case err == nil:
		existing.Weight = input.Weight
		existing.Energy = input.Energy
		existing.Fat = input.Fat
		existing.Saturates = input.Saturates
		existing.Carbohydrate = input.Carbohydrate
		existing.Sugars = input.Sugars
		existing.Fibre = input.Fibre
		existing.Protein = input.Protein
		existing.Salt = input.Salt
		existing.UpdatedByID = &requestUserID
		if err := r.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	case err == gorm.ErrRecordNotFound:
		target := models.DietTarget{
			UserID:       input.UserID,
			Date:         date,
			Weight:       input.Weight,
			Energy:       input.Energy,
			Fat:          input.Fat,
			Saturates:    input.Saturates,
			Carbohydrate: input.Carbohydrate,
			Sugars:       input.Sugars,
			Fibre:        input.Fibre,
			Protein:      input.Protein,
			Salt:         input.Salt,
			CreatedByID:  requestUserID,
		}
		if err := r.db.Create(&target).Error; err != nil {
			return nil, err
		}
		return &target, nil
	default:
		return nil, err
	}
}

func (r *dietTargetRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.DietTarget{}, "id = ?", id).Error
}
