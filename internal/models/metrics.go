package models

import (
	"time"

	"github.com/google/uuid"
)

// The four formulas below are pure and total: a nil weight or an unset enum
// degrades to zero / a neutral multiplier instead of erroring, and nothing
// here divides by zero. Callers decide whether a zero metric means "show a
// placeholder".

// BodyMassIndex is weight (kg) over squared height (m).
func BodyMassIndex(weightKG *float64, heightCM float64) float64 {
	if weightKG == nil || heightCM == 0 {
		return 0
	}
	heightM := heightCM / 100
	return *weightKG / (heightM * heightM)
}

// BasalMetabolicRate uses the revised Harris-Benedict equation with per-sex
// coefficients. The unspecified sex maps to an all-zero coefficient row.
func BasalMetabolicRate(weightKG *float64, heightCM float64, ageYears int, sex Sex) float64 {
	if weightKG == nil {
		return 0
	}
	m := sex.BMRModifier()
	return m.SexConstant + *weightKG*m.WeightCoeff + heightCM*m.HeightCoeff - float64(ageYears)*m.AgeCoeff
}

// TotalDailyEnergyExpenditure scales BMR by the activity multiplier.
func TotalDailyEnergyExpenditure(bmr float64, level ActivityLevel) float64 {
	return bmr * level.Multiplier()
}

// TargetCalories scales TDEE by the fitness-goal factor.
func TargetCalories(tdee float64, goal FitnessGoal) float64 {
	return tdee * goal.CalorieFactor()
}

// ProfileMetrics is the derived, never-stored metric view of a profile.
// Every derived figure is zero when no body weight has been logged.
type ProfileMetrics struct {
	UserID           uuid.UUID  `json:"user_id"`
	Username         string     `json:"username"`
	Sex              string     `json:"sex"`
	SexDisplay       string     `json:"sex_display"`
	Height           float64    `json:"height"`
	Age              int        `json:"age"`
	ActivityLevel    string     `json:"activity_level"`
	ActivityDisplay  string     `json:"activity_level_display"`
	FitnessGoal      string     `json:"fitness_goal"`
	GoalDisplay      string     `json:"fitness_goal_display"`
	LatestWeight     *float64   `json:"latest_weight"`
	LatestWeightDate *time.Time `json:"latest_weight_date"`

	BodyMassIndex               float64 `json:"body_mass_index"`
	BasalMetabolicRate          float64 `json:"basal_metabolic_rate"`
	TotalDailyEnergyExpenditure float64 `json:"total_daily_energy_expenditure"`
	TargetCalories              float64 `json:"target_calories"`
}

// BuildProfileMetrics derives the full metric set from a profile and the
// latest logged weight as of the given date.
func BuildProfileMetrics(profile *Profile, username string, weightKG *float64, weightDate *time.Time, asOf time.Time) ProfileMetrics {
	sex := ParseSex(profile.Sex)
	level := ParseActivityLevel(profile.ActivityLevel)
	goal := ParseFitnessGoal(profile.FitnessGoal)
	age := profile.AgeAt(asOf)

	bmr := BasalMetabolicRate(weightKG, profile.Height, age, sex)
	tdee := TotalDailyEnergyExpenditure(bmr, level)

	return ProfileMetrics{
		UserID:           profile.UserID,
		Username:         username,
		Sex:              profile.Sex,
		SexDisplay:       sex.Display(),
		Height:           profile.Height,
		Age:              age,
		ActivityLevel:    profile.ActivityLevel,
		ActivityDisplay:  level.Display(),
		FitnessGoal:      profile.FitnessGoal,
		GoalDisplay:      goal.Display(),
		LatestWeight:     weightKG,
		LatestWeightDate: weightDate,

		BodyMassIndex:               BodyMassIndex(weightKG, profile.Height),
		BasalMetabolicRate:          bmr,
		TotalDailyEnergyExpenditure: tdee,
		TargetCalories:              TargetCalories(tdee, goal),
	}
}
