package repository

import (
	"time"

	"fittrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FoodLogRepository interface {
	Create(log *models.FoodLog) error
	FindByID(id uuid.UUID) (*models.FoodLog, error)
	Delete(id uuid.UUID) error
	// FindRowsByUserAndDate returns one quantity-scaled nutrient row per
	// logged food for the date.
	FindRowsByUserAndDate(userID uuid.UUID, date time.Time) ([]models.DietFoodRow, error)
	// FindDaySummariesRange returns one summed row per date that has logged
	// food in [start, end], each joined with the latest weigh-in on or
	// before that date. Percentage and per-kg fields are left for the
	// caller to derive.
	FindDaySummariesRange(userID uuid.UUID, start, end time.Time) ([]models.DaySummary, error)
}

type foodLogRepository struct {
	db *gorm.DB
}

func NewFoodLogRepository(db *gorm.DB) FoodLogRepository {
	return &foodLogRepository{db: db}
}

func (r *foodLogRepository) Create(log *models.FoodLog) error {
	return r.db.Create(log).Error
}

func (r *foodLogRepository) FindByID(id uuid.UUID) (*models.FoodLog, error) {
	var log models.FoodLog
	if err := r.db.First(&log, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *foodLogRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.FoodLog{}, "id = ?", id).Error
}

func (r *foodLogRepository) FindRowsByUserAndDate(userID uuid.UUID, date time.Time) ([]models.DietFoodRow, error) {
	var rows []models.DietFoodRow
	err := r.db.
		Table("food_logs").
		Select(`food_logs.id,
			food_logs.user_id,
			users.username,
			food_logs.date,
			food_logs.meal_of_day,
			food_logs.meal_order,
			foods.name AS food_name,
			foods.brand,
			food_logs.quantity,
			food_logs.quantity * foods.energy AS energy,
			food_logs.quantity * foods.fat AS fat,
			food_logs.quantity * foods.saturates AS saturates,
			food_logs.quantity * foods.carbohydrate AS carbohydrate,
			food_logs.quantity * foods.sugars AS sugars,
			food_logs.quantity * foods.fibre AS fibre,
			food_logs.quantity * foods.protein AS protein,
			food_logs.quantity * foods.salt AS salt`).
		Joins("JOIN foods ON foods.id = food_logs.food_id").
		Joins("JOIN users ON users.id = food_logs.user_id").
		Where("food_logs.user_id = ? AND food_logs.date = ?", userID, models.DateOnly(date)).
		Order("food_logs.meal_order, food_logs.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *foodLogRepository) FindDaySummariesRange(userID uuid.UUID, start, end time.Time) ([]models.DaySummary, error) {
	var summaries []models.DaySummary
	err := r.db.Raw(`
		SELECT
			food_logs.user_id,
			users.username,
			food_logs.date,
			COALESCE(latest.weight_kg, 0) AS weight,
			SUM(food_logs.quantity * foods.energy) AS energy,
			SUM(food_logs.quantity * foods.fat) AS fat,
			SUM(food_logs.quantity * foods.saturates) AS saturates,
			SUM(food_logs.quantity * foods.carbohydrate) AS carbohydrate,
			SUM(food_logs.quantity * foods.sugars) AS sugars,
			SUM(food_logs.quantity * foods.fibre) AS fibre,
			SUM(food_logs.quantity * foods.protein) AS protein,
			SUM(food_logs.quantity * foods.salt) AS salt,
			TRUE AS actual
		FROM food_logs
		JOIN foods ON foods.id = food_logs.food_id
		JOIN users ON users.id = food_logs.user_id
		LEFT JOIN progress latest ON latest.user_id = food_logs.user_id
			AND latest.date = (
				SELECT MAX(date) FROM progress
				WHERE user_id = food_logs.user_id
					AND date <= food_logs.date
					AND weight_kg IS NOT NULL
			)
		WHERE food_logs.user_id = ? AND food_logs.date BETWEEN ? AND ?
		GROUP BY food_logs.user_id, users.username, food_logs.date, latest.weight_kg
		ORDER BY food_logs.date`,
		userID, models.DateOnly(start), models.DateOnly(end),
	).Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
