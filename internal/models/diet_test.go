package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func foodRow(meal string, order int, name string, energy, protein float64) DietFoodRow {
	return DietFoodRow{
		ID:        uuid.New(),
		MealOfDay: meal,
		MealOrder: order,
		FoodName:  name,
		Quantity:  1,
		Nutrition: Nutrition{Energy: energy, Protein: protein},
	}
}

func TestBuildDietDay(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	rows := []DietFoodRow{
		foodRow("dinner", 3, "Rice", 400, 8),
		foodRow("breakfast", 1, "Oats", 300, 10),
		foodRow("breakfast", 1, "Milk", 130, 7),
		foodRow("lunch", 2, "Chicken", 330, 62),
	}

	day := BuildDietDay(userID, "alice", date, rows)

	assert.Equal(t, "alice", day.Username)
	assert.Equal(t, date, day.Date)
	assert.Len(t, day.Meals, 3)

	// Meals come back in meal order regardless of row order.
	assert.Equal(t, "breakfast", day.Meals[0].Name)
	assert.Equal(t, "lunch", day.Meals[1].Name)
	assert.Equal(t, "dinner", day.Meals[2].Name)

	assert.Len(t, day.Meals[0].Rows, 2)
	assert.InDelta(t, 430, day.Meals[0].Energy, 0.0001)
	assert.InDelta(t, 17, day.Meals[0].Protein, 0.0001)

	assert.InDelta(t, 1160, day.Energy, 0.0001)
	assert.InDelta(t, 87, day.Protein, 0.0001)
}

func TestBuildDietDayEmpty(t *testing.T) {
	day := BuildDietDay(uuid.New(), "alice", time.Now(), nil)

	assert.Empty(t, day.Meals)
	assert.Zero(t, day.Energy)
	assert.Zero(t, day.ProteinPct)
}

func TestDietDayDaySummary(t *testing.T) {
	date := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	day := BuildDietDay(uuid.New(), "alice", date, []DietFoodRow{
		foodRow("lunch", 2, "Chicken", 330, 62),
	})

	summary := day.DaySummary(80)

	assert.True(t, summary.Actual)
	assert.Equal(t, date, summary.Date)
	assert.InDelta(t, 330, summary.Energy, 0.0001)
	assert.InDelta(t, 330.0/80, summary.EnergyPerKG, 0.0001)
	assert.InDelta(t, 62.0/80, summary.ProteinPerKG, 0.0001)
}
