package utils

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"fittrack/internal/models"

	"gorm.io/gorm"
)

const DefaultNumUsers = 10

var seedFoods = []models.Food{
	{Name: "Rolled Oats", Brand: "Generic", DataValue: 100, DataMeasurement: "g", Energy: 379, Fat: 6.5, Saturates: 1.2, Carbohydrate: 67.7, Sugars: 0.99, Fibre: 10.1, Protein: 13.2, Salt: 0.01},
	{Name: "Chicken Breast", Brand: "Generic", DataValue: 100, DataMeasurement: "g", Energy: 165, Fat: 3.6, Saturates: 1.0, Carbohydrate: 0, Sugars: 0, Fibre: 0, Protein: 31, Salt: 0.1},
	{Name: "Brown Rice", Brand: "Generic", DataValue: 100, DataMeasurement: "g", Energy: 112, Fat: 0.9, Saturates: 0.2, Carbohydrate: 23.5, Sugars: 0.4, Fibre: 1.8, Protein: 2.3, Salt: 0},
	{Name: "Whole Milk", Brand: "Generic", DataValue: 100, DataMeasurement: "ml", Energy: 64, Fat: 3.6, Saturates: 2.3, Carbohydrate: 4.7, Sugars: 4.7, Fibre: 0, Protein: 3.3, Salt: 0.1},
	{Name: "Banana", Brand: "Generic", DataValue: 100, DataMeasurement: "g", Energy: 89, Fat: 0.3, Saturates: 0.1, Carbohydrate: 22.8, Sugars: 12.2, Fibre: 2.6, Protein: 1.1, Salt: 0},
	{Name: "Whey Protein", Brand: "Generic", DataValue: 30, DataMeasurement: "g", Energy: 120, Fat: 1.5, Saturates: 1.0, Carbohydrate: 3, Sugars: 2, Fibre: 0, Protein: 24, Salt: 0.15},
}

var seedMeals = []struct {
	Name  string
	Order int
}{
	{"breakfast", 1},
	{"lunch", 2},
	{"dinner", 3},
	{"snacks", 4},
}

// SeedDemoData creates demo users with profiles, weigh-ins and two weeks of
// food logs so every endpoint has something to return.
func SeedDemoData(db *gorm.DB, numUsers int) error {
	foods := make([]models.Food, len(seedFoods))
	copy(foods, seedFoods)
	if err := db.Create(&foods).Error; err != nil {
		return fmt.Errorf("failed to seed foods: %w", err)
	}

	sexes := []string{"M", "F"}
	levels := []string{"SD", "LA", "MA", "VA", "EA"}
	goals := []string{"LW", "GW", "MW"}

	today := DateOnly(time.Now().UTC())
	for i := 1; i <= numUsers; i++ {
		user := models.User{
			Username: fmt.Sprintf("demo%d", i),
			Email:    fmt.Sprintf("demo%d@example.com", i),
			Name:     fmt.Sprintf("Demo User %d", i),
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %d: %w", i, err)
		}

		profile := models.Profile{
			UserID:        user.ID,
			Sex:           sexes[rand.Intn(len(sexes))],
			Height:        155 + rand.Float64()*40,
			DateOfBirth:   Date(1970+rand.Intn(35), time.Month(1+rand.Intn(12)), 1+rand.Intn(28)),
			ActivityLevel: levels[rand.Intn(len(levels))],
			FitnessGoal:   goals[rand.Intn(len(goals))],
			CreatedByID:   user.ID,
		}
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to seed profile for user %d: %w", i, err)
		}

		// Weekly weigh-ins for the last four weeks.
		weight := 55 + rand.Float64()*45
		for week := 4; week >= 0; week-- {
			w := weight + rand.Float64()*2 - 1
			entry := models.Progress{
				UserID:      user.ID,
				Date:        today.AddDate(0, 0, -7*week),
				WeightKG:    &w,
				CreatedByID: user.ID,
			}
			if err := db.Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to seed progress for user %d: %w", i, err)
			}
		}

		// Two weeks of food logs, a few meals per day with occasional gaps.
		for day := 13; day >= 0; day-- {
			if rand.Intn(6) == 0 {
				continue
			}
			date := today.AddDate(0, 0, -day)
			for _, meal := range seedMeals {
				if meal.Name == "snacks" && rand.Intn(2) == 0 {
					continue
				}
				entry := models.FoodLog{
					UserID:      user.ID,
					FoodID:      foods[rand.Intn(len(foods))].ID,
					Date:        date,
					MealOfDay:   meal.Name,
					MealOrder:   meal.Order,
					Quantity:    0.5 + rand.Float64()*2,
					CreatedByID: user.ID,
				}
				if err := db.Create(&entry).Error; err != nil {
					return fmt.Errorf("failed to seed food log for user %d: %w", i, err)
				}
			}
		}
	}

	log.Printf("Seeded %d users, %d foods", numUsers, len(foods))
	return nil
}

// ClearDemoData removes every seeded row. Order respects foreign keys.
func ClearDemoData(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.FoodLog{},
		&models.DietTarget{},
		&models.Progress{},
		&models.Profile{},
		&models.Food{},
		&models.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// CountRows reports row counts per table for the stats command.
func CountRows(db *gorm.DB) (map[string]int64, error) {
	counts := map[string]int64{}
	tables := map[string]interface{}{
		"users":        &models.User{},
		"profiles":     &models.Profile{},
		"progress":     &models.Progress{},
		"foods":        &models.Food{},
		"food_logs":    &models.FoodLog{},
		"diet_targets": &models.DietTarget{},
	}
	for name, model := range tables {
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			return nil, err
		}
		counts[name] = count
	}
	return counts, nil
}
