package models

import (
	"time"

	"github.com/google/uuid"
)

// Sex, ActivityLevel and FitnessGoal are stored as short string codes.
// Parsing never fails: unrecognised codes degrade to the Default variant,
// which maps to a neutral row in every lookup table.

type Sex string

const (
	SexMale    Sex = "M"
	SexFemale  Sex = "F"
	SexDefault Sex = "-"
)

func ParseSex(code string) Sex {
	switch code {
	case "M":
		return SexMale
	case "F":
		return SexFemale
	default:
		return SexDefault
	}
}

func (s Sex) Display() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	default:
		return "-"
	}
}

// BMRModifier holds the revised Harris-Benedict coefficients for one sex.
type BMRModifier struct {
	SexConstant float64
	WeightCoeff float64
	HeightCoeff float64
	AgeCoeff    float64
}

func (s Sex) BMRModifier() BMRModifier {
	switch s {
	case SexMale:
		return BMRModifier{SexConstant: 88.362, WeightCoeff: 13.397, HeightCoeff: 4.799, AgeCoeff: 5.677}
	case SexFemale:
		return BMRModifier{SexConstant: 447.593, WeightCoeff: 9.247, HeightCoeff: 3.098, AgeCoeff: 4.330}
	default:
		return BMRModifier{}
	}
}

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "SD"
	ActivityLightlyActive    ActivityLevel = "LA"
	ActivityModeratelyActive ActivityLevel = "MA"
	ActivityVeryActive       ActivityLevel = "VA"
	ActivityExtremelyActive  ActivityLevel = "EA"
	ActivityDefault          ActivityLevel = "-"
)

func ParseActivityLevel(code string) ActivityLevel {
	switch code {
	case "SD":
		return ActivitySedentary
	case "LA":
		return ActivityLightlyActive
	case "MA":
		return ActivityModeratelyActive
	case "VA":
		return ActivityVeryActive
	case "EA":
		return ActivityExtremelyActive
	default:
		return ActivityDefault
	}
}

func (a ActivityLevel) Display() string {
	switch a {
	case ActivitySedentary:
		return "Sedentary"
	case ActivityLightlyActive:
		return "Lightly Active"
	case ActivityModeratelyActive:
		return "Moderately Active"
	case ActivityVeryActive:
		return "Very Active"
	case ActivityExtremelyActive:
		return "Extremely Active"
	default:
		return "-"
	}
}

// Multiplier returns the TDEE activity multiplier. The unset/unknown level
// multiplies by 1.0 so a missing profile field never inflates the estimate.
func (a ActivityLevel) Multiplier() float64 {
	switch a {
	case ActivitySedentary:
		return 1.200
	case ActivityLightlyActive:
		return 1.375
	case ActivityModeratelyActive:
		return 1.550
	case ActivityVeryActive:
		return 1.725
	case ActivityExtremelyActive:
		return 1.900
	default:
		return 1.000
	}
}

type FitnessGoal string

const (
	GoalLoseWeight     FitnessGoal = "LW"
	GoalGainWeight     FitnessGoal = "GW"
	GoalMaintainWeight FitnessGoal = "MW"
	GoalDefault        FitnessGoal = "-"
)

func ParseFitnessGoal(code string) FitnessGoal {
	switch code {
	case "LW", "lw":
		return GoalLoseWeight
	case "GW", "gw":
		return GoalGainWeight
	case "MW", "mw":
		return GoalMaintainWeight
	default:
		return GoalDefault
	}
}

func (g FitnessGoal) Display() string {
	switch g {
	case GoalLoseWeight:
		return "Lose Weight"
	case GoalGainWeight:
		return "Gain Weight"
	case GoalMaintainWeight:
		return "Maintain Weight"
	default:
		return "-"
	}
}

// CalorieFactor scales TDEE into target calories: a 20% deficit for weight
// loss, a 10% surplus for weight gain.
func (g FitnessGoal) CalorieFactor() float64 {
	switch g {
	case GoalLoseWeight:
		return 0.8
	case GoalGainWeight:
		return 1.1
	default:
		return 1.0
	}
}

// Profile is a user's physical profile. Weight is not stored here; the most
// recent progress entry on or before the date of interest supplies it.
type Profile struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	User          User       `gorm:"foreignKey:UserID" json:"-"`
	Sex           string     `gorm:"size:2" json:"sex" example:"M"`
	Height        float64    `json:"height" example:"180"`
	DateOfBirth   time.Time  `gorm:"type:date" json:"date_of_birth"`
	ActivityLevel string     `gorm:"size:2" json:"activity_level" example:"MA"`
	FitnessGoal   string     `gorm:"size:2" json:"fitness_goal" example:"LW"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CreatedByID   uuid.UUID  `gorm:"type:uuid" json:"created_by_id"`
	UpdatedByID   *uuid.UUID `gorm:"type:uuid" json:"updated_by_id"`
}

// AgeAt returns whole years lived at the given date, zero when the date of
// birth is in the future.
func (p *Profile) AgeAt(date time.Time) int {
	age := date.Year() - p.DateOfBirth.Year()
	anniversary := p.DateOfBirth.AddDate(age, 0, 0)
	if date.Before(anniversary) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
