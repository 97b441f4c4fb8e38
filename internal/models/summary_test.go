package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(date time.Time, energy float64) DaySummary {
	return DaySummary{
		UserID:   uuid.Nil,
		Username: "alice",
		Date:     date,
		Energy:   energy,
		Actual:   true,
	}
}

func TestBuildDenseSeriesZeroFill(t *testing.T) {
	start := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC) // Monday
	end := start.AddDate(0, 0, 6)

	actual := []DaySummary{
		day(start.AddDate(0, 0, 1), 2000),
		day(start.AddDate(0, 0, 4), 1800),
	}

	dense := BuildDenseSeries(actual, start, end, GapPolicy{Mode: GapFillZero, Username: "alice"})

	assert.Len(t, dense, 7)
	for i, d := range dense {
		assert.Equal(t, start.AddDate(0, 0, i), d.Date)
		assert.Equal(t, "alice", d.Username)
	}
	assert.False(t, dense[0].Actual)
	assert.Zero(t, dense[0].Energy)
	assert.True(t, dense[1].Actual)
	assert.InDelta(t, 2000, dense[1].Energy, 0.0001)
	assert.False(t, dense[2].Actual)
	assert.True(t, dense[4].Actual)
	assert.False(t, dense[6].Actual)
	assert.Zero(t, dense[6].Energy)
}

func TestBuildDenseSeriesCarryForward(t *testing.T) {
	start := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)

	actual := []DaySummary{
		day(start, 2200),
		day(start.AddDate(0, 0, 3), 2400),
	}

	dense := BuildDenseSeries(actual, start, end, GapPolicy{Mode: GapFillCarryForward, Username: "alice"})

	assert.Len(t, dense, 7)
	// Day 0 actual, days 1-2 carry 2200, day 3 actual, days 4-6 carry 2400.
	assert.True(t, dense[0].Actual)
	assert.InDelta(t, 2200, dense[1].Energy, 0.0001)
	assert.False(t, dense[1].Actual)
	assert.InDelta(t, 2200, dense[2].Energy, 0.0001)
	assert.True(t, dense[3].Actual)
	for i := 4; i <= 6; i++ {
		assert.InDelta(t, 2400, dense[i].Energy, 0.0001)
		assert.False(t, dense[i].Actual)
		assert.Equal(t, start.AddDate(0, 0, i), dense[i].Date)
	}
}

func TestBuildDenseSeriesCarryForwardSeed(t *testing.T) {
	start := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)

	seed := day(start.AddDate(0, 0, -10), 2100)
	actual := []DaySummary{day(start.AddDate(0, 0, 3), 2500)}

	dense := BuildDenseSeries(actual, start, end, GapPolicy{
		Mode:     GapFillCarryForward,
		Seed:     &seed,
		Username: "alice",
	})

	// Leading gap filled from the seed, re-dated into the range.
	for i := 0; i <= 2; i++ {
		assert.InDelta(t, 2100, dense[i].Energy, 0.0001)
		assert.False(t, dense[i].Actual)
		assert.Equal(t, start.AddDate(0, 0, i), dense[i].Date)
	}
	assert.True(t, dense[3].Actual)
	assert.InDelta(t, 2500, dense[4].Energy, 0.0001)
}

func TestBuildDenseSeriesCarryForwardNoSeedLeadingZeros(t *testing.T) {
	start := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2)

	actual := []DaySummary{day(end, 2500)}

	dense := BuildDenseSeries(actual, start, end, GapPolicy{Mode: GapFillCarryForward, Username: "alice"})

	assert.Zero(t, dense[0].Energy)
	assert.Zero(t, dense[1].Energy)
	assert.Equal(t, "alice", dense[0].Username)
	assert.InDelta(t, 2500, dense[2].Energy, 0.0001)
}

func TestBuildDenseSeriesFillerLabels(t *testing.T) {
	start := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2)

	userID := uuid.New()
	actual := []DaySummary{{UserID: userID, Username: "alice", Date: start, Energy: 2000, Actual: true}}

	dense := BuildDenseSeries(actual, start, end, GapPolicy{Mode: GapFillZero, Username: "alice"})

	// Zero-mode fillers stay zero-valued but carry the full user labels.
	for i := 1; i <= 2; i++ {
		assert.Equal(t, userID, dense[i].UserID)
		assert.Equal(t, "alice", dense[i].Username)
		assert.Zero(t, dense[i].Energy)
		assert.False(t, dense[i].Actual)
	}
}

func TestBuildDenseSeriesUnorderedInput(t *testing.T) {
	start := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2)

	actual := []DaySummary{
		day(end, 1800),
		day(start, 2000),
	}

	dense := BuildDenseSeries(actual, start, end, GapPolicy{Mode: GapFillZero, Username: "alice"})

	assert.InDelta(t, 2000, dense[0].Energy, 0.0001)
	assert.Zero(t, dense[1].Energy)
	assert.InDelta(t, 1800, dense[2].Energy, 0.0001)
}

func TestBuildDenseSeriesInvertedRange(t *testing.T) {
	start := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)

	dense := BuildDenseSeries(nil, start, start.AddDate(0, 0, -1), GapPolicy{Mode: GapFillZero})

	assert.Empty(t, dense)
}

func TestBuildDenseSeriesSingleDay(t *testing.T) {
	start := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)

	dense := BuildDenseSeries(nil, start, start, GapPolicy{Mode: GapFillZero, Username: "alice"})

	assert.Len(t, dense, 1)
	assert.Equal(t, start, dense[0].Date)
	assert.False(t, dense[0].Actual)
}

func TestPeriodAverage(t *testing.T) {
	start := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2)

	days := []DaySummary{
		day(start, 2000),
		day(start.AddDate(0, 0, 1), 2200),
		day(end, 1800),
	}

	average := PeriodAverage(days, end)

	assert.InDelta(t, 2000, average.Energy, 0.0001)
	assert.Equal(t, end, average.Date)
	assert.False(t, average.Actual)
	assert.Equal(t, "alice", average.Username)
}

func TestPeriodAverageCountsFilledDays(t *testing.T) {
	start := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)

	// One logged day of 2000 kcal across a four day window averages 500.
	dense := BuildDenseSeries([]DaySummary{day(start, 2000)}, start, end, GapPolicy{Mode: GapFillZero, Username: "alice"})
	average := PeriodAverage(dense, end)

	assert.InDelta(t, 500, average.Energy, 0.0001)
}

func TestPeriodAverageEmpty(t *testing.T) {
	end := time.Date(2024, 6, 23, 0, 0, 0, 0, time.UTC)

	average := PeriodAverage(nil, end)

	assert.Zero(t, average.Energy)
	assert.Equal(t, end, average.Date)
	assert.False(t, average.Actual)
}

func TestDaySummaryDerive(t *testing.T) {
	s := DaySummary{
		Weight:       80,
		Energy:       2000,
		Protein:      150,
		Carbohydrate: 200,
		Fat:          60,
	}
	s.Derive()

	total := 150*4.0 + 200*4.0 + 60*9.0
	assert.InDelta(t, 150*4.0/total*100, s.ProteinPct, 0.0001)
	assert.InDelta(t, 25, s.EnergyPerKG, 0.0001)
	assert.InDelta(t, 1.875, s.ProteinPerKG, 0.0001)
}

func TestDaySummaryDeriveZeroWeight(t *testing.T) {
	s := DaySummary{Energy: 2000, Protein: 150}
	s.Derive()

	assert.Zero(t, s.EnergyPerKG)
	assert.Zero(t, s.ProteinPerKG)
}
