package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePercentages(t *testing.T) {
	n := Nutrition{Protein: 100, Carbohydrate: 100, Fat: 0}
	n.CalculatePercentages()

	assert.InDelta(t, 50, n.ProteinPct, 0.0001)
	assert.InDelta(t, 50, n.CarbohydratePct, 0.0001)
	assert.Zero(t, n.FatPct)
}

func TestCalculatePercentagesFatWeighted(t *testing.T) {
	// 100g protein (400 kcal), 100g carb (400 kcal), 100g fat (900 kcal)
	n := Nutrition{Protein: 100, Carbohydrate: 100, Fat: 100}
	n.CalculatePercentages()

	assert.InDelta(t, 400.0/1700*100, n.ProteinPct, 0.0001)
	assert.InDelta(t, 400.0/1700*100, n.CarbohydratePct, 0.0001)
	assert.InDelta(t, 900.0/1700*100, n.FatPct, 0.0001)
}

func TestCalculatePercentagesZeroMacros(t *testing.T) {
	n := Nutrition{Energy: 500}
	n.CalculatePercentages()

	assert.Zero(t, n.ProteinPct)
	assert.Zero(t, n.CarbohydratePct)
	assert.Zero(t, n.FatPct)
}

func TestAggregateNutrition(t *testing.T) {
	rows := []Nutrition{
		{Energy: 300, Protein: 20, Carbohydrate: 30, Fat: 10, Fibre: 3, Salt: 0.5},
		{Energy: 500, Protein: 35, Carbohydrate: 50, Fat: 15, Fibre: 5, Salt: 1},
	}

	total := AggregateNutrition(rows)

	assert.InDelta(t, 800, total.Energy, 0.0001)
	assert.InDelta(t, 55, total.Protein, 0.0001)
	assert.InDelta(t, 80, total.Carbohydrate, 0.0001)
	assert.InDelta(t, 25, total.Fat, 0.0001)
	assert.InDelta(t, 8, total.Fibre, 0.0001)
	assert.InDelta(t, 1.5, total.Salt, 0.0001)
	assert.Greater(t, total.CarbohydratePct, total.ProteinPct)
}

func TestAggregateNutritionEmpty(t *testing.T) {
	total := AggregateNutrition(nil)

	assert.Zero(t, total.Energy)
	assert.Zero(t, total.ProteinPct)
}

func TestRemaining(t *testing.T) {
	target := Nutrition{Energy: 2300, Protein: 230, Carbohydrate: 230, Fat: 51, Fibre: 30, Salt: 6}
	consumed := Nutrition{Energy: 1800, Protein: 120, Carbohydrate: 200, Fat: 60, Fibre: 18, Salt: 4}

	remaining := Remaining(target, consumed)

	assert.InDelta(t, 500, remaining.Energy, 0.0001)
	assert.InDelta(t, 110, remaining.Protein, 0.0001)
	assert.InDelta(t, 30, remaining.Carbohydrate, 0.0001)
	// Over target goes negative rather than clamping.
	assert.InDelta(t, -9, remaining.Fat, 0.0001)
	assert.InDelta(t, 12, remaining.Fibre, 0.0001)
	assert.InDelta(t, 2, remaining.Salt, 0.0001)
}

func TestPerKG(t *testing.T) {
	assert.InDelta(t, 2.5, PerKG(200, 80), 0.0001)
	assert.Zero(t, PerKG(200, 0))
	assert.Zero(t, PerKG(200, -5))
}
