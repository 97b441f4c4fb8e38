package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTargetModifierTable(t *testing.T) {
	lose := GoalLoseWeight.TargetModifier()
	assert.Equal(t, 0.8, lose.EnergyFactor)
	assert.Equal(t, 0.40, lose.ProteinPct)
	assert.Equal(t, 0.40, lose.CarbohydratePct)
	assert.Equal(t, 0.20, lose.FatPct)

	gain := GoalGainWeight.TargetModifier()
	assert.Equal(t, 1.1, gain.EnergyFactor)
	assert.Equal(t, 0.25, gain.ProteinPct)
	assert.Equal(t, 0.55, gain.CarbohydratePct)
	assert.Equal(t, 0.20, gain.FatPct)

	maintain := GoalMaintainWeight.TargetModifier()
	assert.Equal(t, 1.0, maintain.EnergyFactor)

	// Unknown goals fall back to the maintain row.
	assert.Equal(t, maintain, GoalDefault.TargetModifier())

	for _, modifier := range []TargetModifier{lose, gain, maintain} {
		assert.InDelta(t, 1.0, modifier.ProteinPct+modifier.CarbohydratePct+modifier.FatPct, 0.0001)
		assert.Equal(t, 0.35, modifier.SaturatesPct)
		assert.Equal(t, 0.03, modifier.SugarsPct)
		assert.Equal(t, 30.0, modifier.Fibre)
		assert.Equal(t, 6.0, modifier.Salt)
	}
}

func TestNewDietTargetFromProfile(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	tdee := 2873.1296

	target := NewDietTargetFromProfile(userID, date, 80, GoalLoseWeight, tdee)

	energy := tdee * 0.8
	assert.Equal(t, 2299, target.Energy)
	assert.InDelta(t, energy*0.40/4, target.Protein, 0.0001)
	assert.InDelta(t, energy*0.40/4, target.Carbohydrate, 0.0001)
	assert.InDelta(t, energy*0.20/9, target.Fat, 0.0001)
	assert.InDelta(t, target.Fat*0.35, target.Saturates, 0.0001)
	assert.InDelta(t, target.Carbohydrate*0.03, target.Sugars, 0.0001)
	assert.Equal(t, 30.0, target.Fibre)
	assert.Equal(t, 6.0, target.Salt)
	assert.Equal(t, 80.0, target.Weight)
	assert.Equal(t, userID, target.UserID)
}

func TestNewDietTargetFromProfileMacrosUseUnroundedEnergy(t *testing.T) {
	// 2001.25 kcal rounds to 2001 but the macro grams come from 2001.25.
	target := NewDietTargetFromProfile(uuid.New(), time.Now(), 70, GoalMaintainWeight, 2001.25)

	assert.Equal(t, 2001, target.Energy)
	assert.InDelta(t, 2001.25*0.25/4, target.Protein, 0.0001)
	assert.InDelta(t, 2001.25*0.55/4, target.Carbohydrate, 0.0001)
	assert.InDelta(t, 2001.25*0.20/9, target.Fat, 0.0001)
}

func TestNewDietTargetFromGramsPerKG(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	target := NewDietTargetFromGramsPerKG(userID, date, 80, 2.0, 4.0, 1.0)

	assert.InDelta(t, 160, target.Protein, 0.0001)
	assert.InDelta(t, 320, target.Carbohydrate, 0.0001)
	assert.InDelta(t, 80, target.Fat, 0.0001)
	// Energy is back-computed: 160*4 + 320*4 + 80*9.
	assert.Equal(t, 2640, target.Energy)
	assert.InDelta(t, 28, target.Saturates, 0.0001)
	assert.InDelta(t, 9.6, target.Sugars, 0.0001)
	assert.Equal(t, 30.0, target.Fibre)
	assert.Equal(t, 6.0, target.Salt)
}

func TestDietTargetView(t *testing.T) {
	target := DietTarget{
		Date:         time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		Weight:       80,
		Energy:       2000,
		Protein:      150,
		Carbohydrate: 200,
		Fat:          60,
	}

	view := target.View("alice")

	assert.Equal(t, "alice", view.Username)
	// Percentages are shares of the stored energy, not of the macro sum.
	assert.InDelta(t, 150*4.0/2000*100, view.ProteinPct, 0.0001)
	assert.InDelta(t, 200*4.0/2000*100, view.CarbohydratePct, 0.0001)
	assert.InDelta(t, 60*9.0/2000*100, view.FatPct, 0.0001)
	assert.InDelta(t, 25, view.EnergyPerKG, 0.0001)
	assert.InDelta(t, 1.875, view.ProteinPerKG, 0.0001)
	assert.InDelta(t, 2.5, view.CarbohydratePerKG, 0.0001)
	assert.InDelta(t, 0.75, view.FatPerKG, 0.0001)
}

func TestDietTargetViewZeroGuards(t *testing.T) {
	view := DietTarget{Energy: 0, Weight: 0, Protein: 100}.View("alice")

	assert.Zero(t, view.ProteinPct)
	assert.Zero(t, view.EnergyPerKG)
	assert.Zero(t, view.ProteinPerKG)
}

func TestDietTargetDaySummary(t *testing.T) {
	target := DietTarget{
		UserID:       uuid.New(),
		Date:         time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		Weight:       80,
		Energy:       2300,
		Protein:      230,
		Carbohydrate: 230,
		Fat:          51,
		Fibre:        30,
		Salt:         6,
	}

	day := target.DaySummary("alice")

	assert.True(t, day.Actual)
	assert.Equal(t, "alice", day.Username)
	assert.Equal(t, target.UserID, day.UserID)
	assert.InDelta(t, 2300, day.Energy, 0.0001)
	assert.InDelta(t, 230*4.0/2300*100, day.ProteinPct, 0.0001)
	assert.InDelta(t, 230.0/80, day.ProteinPerKG, 0.0001)
}
