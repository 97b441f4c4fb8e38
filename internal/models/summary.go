package models

import (
	"time"

	"github.com/google/uuid"
)

// DaySummary is one day of a week/month summary: the nutrient vector plus
// per-kg figures and the body weight behind them. Actual reports whether real
// logged data exists for the date or the row was synthesized by gap filling.
// Day summaries are built per query and never persisted.
type DaySummary struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Date     time.Time `json:"date"`
	Weight   float64   `json:"weight"`

	Energy       float64 `json:"energy"`
	Fat          float64 `json:"fat"`
	Saturates    float64 `json:"saturates"`
	Carbohydrate float64 `json:"carbohydrate"`
	Sugars       float64 `json:"sugars"`
	Fibre        float64 `json:"fibre"`
	Protein      float64 `json:"protein"`
	Salt         float64 `json:"salt"`

	ProteinPct      float64 `json:"protein_pct"`
	CarbohydratePct float64 `json:"carbohydrate_pct"`
	FatPct          float64 `json:"fat_pct"`

	EnergyPerKG       float64 `json:"energy_per_kg"`
	ProteinPerKG      float64 `json:"protein_per_kg"`
	CarbohydratePerKG float64 `json:"carbohydrate_per_kg"`
	FatPerKG          float64 `json:"fat_per_kg"`

	Actual bool `json:"actual"`
}

// Derive fills the percentage and per-kg fields from the absolute amounts.
func (s *DaySummary) Derive() {
	n := Nutrition{
		Energy:       s.Energy,
		Fat:          s.Fat,
		Saturates:    s.Saturates,
		Carbohydrate: s.Carbohydrate,
		Sugars:       s.Sugars,
		Fibre:        s.Fibre,
		Protein:      s.Protein,
		Salt:         s.Salt,
	}
	n.CalculatePercentages()
	s.ProteinPct = n.ProteinPct
	s.CarbohydratePct = n.CarbohydratePct
	s.FatPct = n.FatPct
	s.EnergyPerKG = PerKG(s.Energy, s.Weight)
	s.ProteinPerKG = PerKG(s.Protein, s.Weight)
	s.CarbohydratePerKG = PerKG(s.Carbohydrate, s.Weight)
	s.FatPerKG = PerKG(s.Fat, s.Weight)
}

func (s *DaySummary) add(other *DaySummary) {
	s.Weight += other.Weight
	s.Energy += other.Energy
	s.Fat += other.Fat
	s.Saturates += other.Saturates
	s.Carbohydrate += other.Carbohydrate
	s.Sugars += other.Sugars
	s.Fibre += other.Fibre
	s.Protein += other.Protein
	s.Salt += other.Salt
	s.ProteinPct += other.ProteinPct
	s.CarbohydratePct += other.CarbohydratePct
	s.FatPct += other.FatPct
	s.EnergyPerKG += other.EnergyPerKG
	s.ProteinPerKG += other.ProteinPerKG
	s.CarbohydratePerKG += other.CarbohydratePerKG
	s.FatPerKG += other.FatPerKG
}

func (s *DaySummary) divide(divisor float64) {
	s.Weight /= divisor
	s.Energy /= divisor
	s.Fat /= divisor
	s.Saturates /= divisor
	s.Carbohydrate /= divisor
	s.Sugars /= divisor
	s.Fibre /= divisor
	s.Protein /= divisor
	s.Salt /= divisor
	s.ProteinPct /= divisor
	s.CarbohydratePct /= divisor
	s.FatPct /= divisor
	s.EnergyPerKG /= divisor
	s.ProteinPerKG /= divisor
	s.CarbohydratePerKG /= divisor
	s.FatPerKG /= divisor
}

// PeriodSummary is a dense day-per-date sequence over a range plus the
// arithmetic mean across that sequence.
type PeriodSummary struct {
	Days    []DaySummary `json:"days"`
	Average DaySummary   `json:"average"`
}

// GapFillMode selects what a missing date becomes in a dense series.
type GapFillMode int

const (
	// GapFillZero emits an all-zero row: a day with nothing logged really
	// means nothing was consumed.
	GapFillZero GapFillMode = iota
	// GapFillCarryForward re-dates the most recently emitted row: a target
	// set once keeps applying until superseded.
	GapFillCarryForward
)

// GapPolicy parameterizes BuildDenseSeries. Seed is the most recent actual
// row from before the range start; it fills leading gaps in carry-forward
// mode. Username labels synthesized zero rows.
type GapPolicy struct {
	Mode     GapFillMode
	Seed     *DaySummary
	Username string
}

// BuildDenseSeries turns sparse actual day rows into exactly one row per
// calendar day in [start, end], chronologically ordered. Store ordering is
// never trusted; the walk indexes rows by date. An inverted range yields an
// empty series.
func BuildDenseSeries(days []DaySummary, start, end time.Time, policy GapPolicy) []DaySummary {
	start = DateOnly(start)
	end = DateOnly(end)
	if end.Before(start) {
		return []DaySummary{}
	}

	// Keying by date makes the walk independent of store ordering.
	byDate := make(map[time.Time]DaySummary, len(days))
	for _, day := range days {
		byDate[DateOnly(day.Date)] = day
	}

	var last *DaySummary
	if policy.Mode == GapFillCarryForward && policy.Seed != nil {
		seed := *policy.Seed
		last = &seed
	}

	dense := make([]DaySummary, 0, int(end.Sub(start).Hours()/24)+1)
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		if day, ok := byDate[date]; ok {
			day.Date = date
			dense = append(dense, day)
			carried := day
			last = &carried
			continue
		}

		dense = append(dense, newFiller(policy, last, date))
	}
	return dense
}

// newFiller synthesizes the row for one missing date, fully labeled. Carry
// mode repeats the last emitted row; otherwise the row is zero-valued but
// still carries the user labels known from neighbouring rows.
func newFiller(policy GapPolicy, last *DaySummary, date time.Time) DaySummary {
	var filler DaySummary
	if policy.Mode == GapFillCarryForward && last != nil {
		filler = *last
	} else if last != nil {
		filler.UserID = last.UserID
	} else if policy.Seed != nil {
		filler.UserID = policy.Seed.UserID
	}
	if filler.Username == "" {
		filler.Username = policy.Username
	}
	filler.Date = date
	filler.Actual = false
	return filler
}

// PeriodAverage is the arithmetic mean of every numeric field across the
// dense sequence. Carried-forward days count: the average reflects what the
// state effectively was on every day of the period. The result is dated to
// the range end and never flagged actual. An empty sequence averages to zero.
func PeriodAverage(days []DaySummary, end time.Time) DaySummary {
	average := DaySummary{Date: DateOnly(end), Actual: false}
	if len(days) == 0 {
		return average
	}
	for i := range days {
		average.add(&days[i])
	}
	average.divide(float64(len(days)))
	average.UserID = days[0].UserID
	average.Username = days[0].Username
	return average
}

// DateOnly truncates a timestamp to its calendar day in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
