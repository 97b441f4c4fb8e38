package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// TargetModifier is one row of the goal table: how a target energy budget is
// split into macros. Protein/carbohydrate/fat percentages are fractions of
// target energy; saturates is a fraction of fat grams and sugars a fraction
// of carbohydrate grams. Fibre and salt are flat daily amounts independent of
// the energy budget.
type TargetModifier struct {
	EnergyFactor    float64
	ProteinPct      float64
	CarbohydratePct float64
	FatPct          float64
	SaturatesPct    float64
	SugarsPct       float64
	Fibre           float64
	Salt            float64
}

// TargetModifier returns the macro-split row for the goal. Unknown goals use
// the maintain-weight row.
func (g FitnessGoal) TargetModifier() TargetModifier {
	switch g {
	case GoalLoseWeight:
		return TargetModifier{
			EnergyFactor:    0.8,
			ProteinPct:      0.40,
			CarbohydratePct: 0.40,
			FatPct:          0.20,
			SaturatesPct:    0.35,
			SugarsPct:       0.03,
			Fibre:           30,
			Salt:            6,
		}
	case GoalGainWeight:
		return TargetModifier{
			EnergyFactor:    1.1,
			ProteinPct:      0.25,
			CarbohydratePct: 0.55,
			FatPct:          0.20,
			SaturatesPct:    0.35,
			SugarsPct:       0.03,
			Fibre:           30,
			Salt:            6,
		}
	default:
		return TargetModifier{
			EnergyFactor:    1.0,
			ProteinPct:      0.25,
			CarbohydratePct: 0.55,
			FatPct:          0.20,
			SaturatesPct:    0.35,
			SugarsPct:       0.03,
			Fibre:           30,
			Salt:            6,
		}
	}
}

// DietTarget is the authoritative macro/calorie target for one (user, date).
// A target applies forward: the latest record with date <= the requested date
// wins until superseded.
type DietTarget struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_diet_target_user_date" json:"user_id"`
	User         User       `gorm:"foreignKey:UserID" json:"-"`
	Date         time.Time  `gorm:"type:date;uniqueIndex:idx_diet_target_user_date" json:"date"`
	Weight       float64    `json:"weight" example:"80"`
	Energy       int        `json:"energy" example:"2300"`
	Fat          float64    `json:"fat"`
	Saturates    float64    `json:"saturates"`
	Carbohydrate float64    `json:"carbohydrate"`
	Sugars       float64    `json:"sugars"`
	Fibre        float64    `json:"fibre"`
	Protein      float64    `json:"protein"`
	Salt         float64    `json:"salt"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	CreatedByID  uuid.UUID  `gorm:"type:uuid" json:"created_by_id"`
	UpdatedByID  *uuid.UUID `gorm:"type:uuid" json:"updated_by_id"`
}

// DietTargetView is a stored target decorated with its derived figures:
// macro percentages of the target's own energy and per-kg amounts.
type DietTargetView struct {
	DietTarget
	Username          string  `json:"username"`
	ProteinPct        float64 `json:"protein_pct"`
	CarbohydratePct   float64 `json:"carbohydrate_pct"`
	FatPct            float64 `json:"fat_pct"`
	EnergyPerKG       float64 `json:"energy_per_kg"`
	ProteinPerKG      float64 `json:"protein_per_kg"`
	CarbohydratePerKG float64 `json:"carbohydrate_per_kg"`
	FatPerKG          float64 `json:"fat_per_kg"`
}

// View derives the percentage and per-kg figures. Percentages here are shares
// of the stored target energy, matching how targets are displayed, not shares
// of the macro-derived energy sum.
func (t DietTarget) View(username string) DietTargetView {
	view := DietTargetView{DietTarget: t, Username: username}
	if t.Energy > 0 {
		energy := float64(t.Energy)
		view.ProteinPct = t.Protein * KcalPerGramProtein / energy * 100
		view.CarbohydratePct = t.Carbohydrate * KcalPerGramCarbohydrate / energy * 100
		view.FatPct = t.Fat * KcalPerGramFat / energy * 100
	}
	view.EnergyPerKG = PerKG(float64(t.Energy), t.Weight)
	view.ProteinPerKG = PerKG(t.Protein, t.Weight)
	view.CarbohydratePerKG = PerKG(t.Carbohydrate, t.Weight)
	view.FatPerKG = PerKG(t.Fat, t.Weight)
	return view
}

// Nutrition returns the target as a plain nutrient vector.
func (t DietTarget) Nutrition() Nutrition {
	n := Nutrition{
		Energy:       float64(t.Energy),
		Fat:          t.Fat,
		Saturates:    t.Saturates,
		Carbohydrate: t.Carbohydrate,
		Sugars:       t.Sugars,
		Fibre:        t.Fibre,
		Protein:      t.Protein,
		Salt:         t.Salt,
	}
	n.CalculatePercentages()
	return n
}

// DaySummary converts a stored target into an actual day-summary row.
func (t DietTarget) DaySummary(username string) DaySummary {
	view := t.View(username)
	return DaySummary{
		UserID:            t.UserID,
		Username:          username,
		Date:              t.Date,
		Weight:            t.Weight,
		Energy:            float64(t.Energy),
		Fat:               t.Fat,
		Saturates:         t.Saturates,
		Carbohydrate:      t.Carbohydrate,
		Sugars:            t.Sugars,
		Fibre:             t.Fibre,
		Protein:           t.Protein,
		Salt:              t.Salt,
		ProteinPct:        view.ProteinPct,
		CarbohydratePct:   view.CarbohydratePct,
		FatPct:            view.FatPct,
		EnergyPerKG:       view.EnergyPerKG,
		ProteinPerKG:      view.ProteinPerKG,
		CarbohydratePerKG: view.CarbohydratePerKG,
		FatPerKG:          view.FatPerKG,
		Actual:            true,
	}
}

// DietTargetInput is a computed target ready to be persisted. It carries the
// body weight it was derived from so per-kg figures never need recomputation.
type DietTargetInput struct {
	UserID       uuid.UUID `json:"user_id"`
	Date         time.Time `json:"date"`
	Weight       float64   `json:"weight"`
	Energy       int       `json:"energy"`
	Fat          float64   `json:"fat"`
	Saturates    float64   `json:"saturates"`
	Carbohydrate float64   `json:"carbohydrate"`
	Sugars       float64   `json:"sugars"`
	Fibre        float64   `json:"fibre"`
	Protein      float64   `json:"protein"`
	Salt         float64   `json:"salt"`
}

// NewDietTargetFromProfile turns a TDEE estimate and a fitness goal into an
// absolute daily target. Macro grams come from the unrounded energy budget
// via each macro's caloric density; the budget itself is stored as whole
// kcal. Saturates scale with fat grams and sugars with carbohydrate grams,
// while fibre and salt stay at the table's flat amounts.
func NewDietTargetFromProfile(userID uuid.UUID, date time.Time, weightKG float64, goal FitnessGoal, tdee float64) DietTargetInput {
	modifier := goal.TargetModifier()

	energy := tdee * modifier.EnergyFactor
	protein := energy * modifier.ProteinPct / KcalPerGramProtein
	carbohydrate := energy * modifier.CarbohydratePct / KcalPerGramCarbohydrate
	fat := energy * modifier.FatPct / KcalPerGramFat

	return DietTargetInput{
		UserID:       userID,
		Date:         date,
		Weight:       weightKG,
		Energy:       int(math.Round(energy)),
		Fat:          fat,
		Saturates:    fat * modifier.SaturatesPct,
		Carbohydrate: carbohydrate,
		Sugars:       carbohydrate * modifier.SugarsPct,
		Fibre:        modifier.Fibre,
		Protein:      protein,
		Salt:         modifier.Salt,
	}
}

// NewDietTargetFromGramsPerKG is the manual-override path: macro grams are
// body weight times the per-kg settings, and energy is back-computed from the
// macros. Saturates/sugars/fibre/salt fall back to the same defaults the goal
// table uses.
func NewDietTargetFromGramsPerKG(userID uuid.UUID, date time.Time, weightKG, proteinPerKG, carbohydratePerKG, fatPerKG float64) DietTargetInput {
	protein := weightKG * proteinPerKG
	carbohydrate := weightKG * carbohydratePerKG
	fat := weightKG * fatPerKG

	energy := protein*KcalPerGramProtein + carbohydrate*KcalPerGramCarbohydrate + fat*KcalPerGramFat

	return DietTargetInput{
		UserID:       userID,
		Date:         date,
		Weight:       weightKG,
		Energy:       int(math.Round(energy)),
		Fat:          fat,
		Saturates:    fat * 0.35,
		Carbohydrate: carbohydrate,
		Sugars:       carbohydrate * 0.03,
		Fibre:        30,
		Protein:      protein,
		Salt:         6,
	}
}

// DietTargetGramsPerKG is the manual-override request shape.
type DietTargetGramsPerKG struct {
	UserID            uuid.UUID `json:"user_id"`
	Date              time.Time `json:"date"`
	Weight            float64   `json:"weight"`
	ProteinPerKG      float64   `json:"protein_per_kg"`
	CarbohydratePerKG float64   `json:"carbohydrate_per_kg"`
	FatPerKG          float64   `json:"fat_per_kg"`
}

// Input computes the persistable target from the per-kg settings.
func (g DietTargetGramsPerKG) Input() DietTargetInput {
	return NewDietTargetFromGramsPerKG(g.UserID, g.Date, g.Weight, g.ProteinPerKG, g.CarbohydratePerKG, g.FatPerKG)
}
