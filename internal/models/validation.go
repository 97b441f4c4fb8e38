package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Target input bounds. Weight and per-kg bounds are inclusive; dates must sit
// within a year of today in either direction.
const (
	MinTargetWeight  = 20.0
	MaxTargetWeight  = 500.0
	MinGramsPerKG    = 0.0
	MaxGramsPerKG    = 10.0
	TargetDateWindow = 365
)

// Bounds for the remaining write paths. Weigh-in dates may run a few days
// ahead of today; dates of birth never may.
const (
	MinHeight          = 50.0
	MaxHeight          = 250.0
	DateOfBirthWindow  = 365 * 150
	ProgressDateFuture = 10
	MinNotesLength     = 3
	MaxNotesLength     = 10000
	MaxFoodQuantity    = 1000.0
)

// ValidationError accumulates field-keyed messages so a form can show every
// problem at once instead of failing on the first bad field.
type ValidationError struct {
	FieldErrors map[string][]string `json:"field_errors"`
}

func NewValidationError() *ValidationError {
	return &ValidationError{FieldErrors: map[string][]string{}}
}

func (e *ValidationError) Add(field, message string) {
	e.FieldErrors[field] = append(e.FieldErrors[field], message)
}

func (e *ValidationError) AddNonFieldError(message string) {
	e.Add("non_field_errors", message)
}

func (e *ValidationError) IsEmpty() bool {
	return len(e.FieldErrors) == 0
}

// ErrOrNil returns the accumulated error, or nil when every check passed.
func (e *ValidationError) ErrOrNil() error {
	if e.IsEmpty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	data, err := json.Marshal(e)
	if err != nil {
		return "validation failed"
	}
	return string(data)
}

// ValidateFloat checks an inclusive [min, max] range.
func (e *ValidationError) ValidateFloat(field string, value float64, min, max *float64) {
	if min != nil && value < *min {
		e.Add(field, fmt.Sprintf("must be at least %g", *min))
	}
	if max != nil && value > *max {
		e.Add(field, fmt.Sprintf("must be at most %g", *max))
	}
}

// ValidateDateWindow rejects dates more than daysPast days ago or more than
// daysFuture days ahead of today.
func (e *ValidationError) ValidateDateWindow(field string, date time.Time, daysPast, daysFuture int) {
	today := DateOnly(time.Now().UTC())
	earliest := today.AddDate(0, 0, -daysPast)
	latest := today.AddDate(0, 0, daysFuture)
	d := DateOnly(date)
	if d.Before(earliest) {
		e.Add(field, fmt.Sprintf("must not be more than %d days in the past", daysPast))
	}
	if d.After(latest) {
		e.Add(field, fmt.Sprintf("must not be more than %d days in the future", daysFuture))
	}
}

// Validate applies the shared target input bounds: date within a year either
// way, plausible body weight, per-kg settings between 0 and 10 grams.
func (g DietTargetGramsPerKG) Validate() error {
	errs := NewValidationError()

	minWeight, maxWeight := MinTargetWeight, MaxTargetWeight
	minPerKG, maxPerKG := MinGramsPerKG, MaxGramsPerKG

	errs.ValidateDateWindow("date", g.Date, TargetDateWindow, TargetDateWindow)
	errs.ValidateFloat("weight", g.Weight, &minWeight, &maxWeight)
	errs.ValidateFloat("protein_per_kg", g.ProteinPerKG, &minPerKG, &maxPerKG)
	errs.ValidateFloat("carbohydrate_per_kg", g.CarbohydratePerKG, &minPerKG, &maxPerKG)
	errs.ValidateFloat("fat_per_kg", g.FatPerKG, &minPerKG, &maxPerKG)

	return errs.ErrOrNil()
}

// ValidateProfileTarget applies the profile-path bounds: same date window and
// the same weight range, without per-kg settings.
func ValidateProfileTarget(date time.Time, weightKG float64) error {
	errs := NewValidationError()

	minWeight, maxWeight := MinTargetWeight, MaxTargetWeight
	errs.ValidateDateWindow("date", date, TargetDateWindow, TargetDateWindow)
	errs.ValidateFloat("weight", weightKG, &minWeight, &maxWeight)

	return errs.ErrOrNil()
}

// ValidateProfile applies the profile bounds: a plausible height and a date of
// birth at most 150 years back and not in the future.
func ValidateProfile(height float64, dateOfBirth time.Time) error {
	errs := NewValidationError()

	minHeight, maxHeight := MinHeight, MaxHeight
	errs.ValidateFloat("height", height, &minHeight, &maxHeight)
	errs.ValidateDateWindow("date_of_birth", dateOfBirth, DateOfBirthWindow, 0)

	return errs.ErrOrNil()
}

// ValidateProgress applies the measurement entry bounds. Weight and notes are
// optional and only checked when present.
func ValidateProgress(date time.Time, weightKG *float64, notes string) error {
	errs := NewValidationError()

	errs.ValidateDateWindow("date", date, TargetDateWindow, ProgressDateFuture)
	if weightKG != nil {
		minWeight, maxWeight := MinTargetWeight, MaxTargetWeight
		errs.ValidateFloat("weight_kg", *weightKG, &minWeight, &maxWeight)
	}
	if notes != "" && (len(notes) < MinNotesLength || len(notes) > MaxNotesLength) {
		errs.Add("notes", fmt.Sprintf("must be between %d and %d characters", MinNotesLength, MaxNotesLength))
	}

	return errs.ErrOrNil()
}

// ValidateFoodLog applies the food log bounds: date within a year either way
// and a quantity between zero and a sane upper limit.
func ValidateFoodLog(date time.Time, quantity float64) error {
	errs := NewValidationError()

	minQuantity, maxQuantity := 0.0, MaxFoodQuantity
	errs.ValidateDateWindow("date", date, TargetDateWindow, TargetDateWindow)
	errs.ValidateFloat("quantity", quantity, &minQuantity, &maxQuantity)

	return errs.ErrOrNil()
}
