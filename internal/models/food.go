package models

import (
	"time"

	"github.com/google/uuid"
)

// Food holds nutrient data per single unit of its measurement (one gram, one
// millilitre or one serving).
type Food struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string    `gorm:"size:200" json:"name"`
	Brand           string    `gorm:"size:200" json:"brand"`
	DataValue       float64   `json:"data_value" example:"100"`
	DataMeasurement string    `gorm:"size:3" json:"data_measurement" example:"g"`
	Energy          float64   `json:"energy"`
	Fat             float64   `json:"fat"`
	Saturates       float64   `json:"saturates"`
	Carbohydrate    float64   `json:"carbohydrate"`
	Sugars          float64   `json:"sugars"`
	Fibre           float64   `json:"fibre"`
	Protein         float64   `json:"protein"`
	Salt            float64   `json:"salt"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FoodLog is one logged food entry: a food eaten on a date in a given
// quantity, assigned to a meal of the day.
type FoodLog struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	User        User       `gorm:"foreignKey:UserID" json:"-"`
	FoodID      uuid.UUID  `gorm:"type:uuid" json:"food_id"`
	Food        Food       `gorm:"foreignKey:FoodID" json:"-"`
	Date        time.Time  `gorm:"type:date;index" json:"date"`
	MealOfDay   string     `gorm:"size:50" json:"meal_of_day" example:"breakfast"`
	MealOrder   int        `json:"meal_order"`
	Quantity    float64    `json:"quantity" example:"1.5"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CreatedByID uuid.UUID  `gorm:"type:uuid" json:"created_by_id"`
	UpdatedByID *uuid.UUID `gorm:"type:uuid" json:"updated_by_id"`
}

// DietFoodRow is a quantity-scaled logged-food row as the store hands it to
// the engine: every nutrient field has already been multiplied by quantity.
type DietFoodRow struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Date      time.Time `json:"date"`
	MealOfDay string    `json:"meal_of_day"`
	MealOrder int       `json:"meal_order"`
	FoodName  string    `json:"food_name"`
	Brand     string    `json:"brand"`
	Quantity  float64   `json:"quantity"`
	Nutrition `gorm:"embedded"`
}
