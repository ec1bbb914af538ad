package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthsFrom(start time.Time, n int) []time.Time {
	months := make([]time.Time, n)
	for i := range months {
		months[i] = start.AddDate(0, i, 0)
	}
	return months
}

func TestNew_LengthMismatch(t *testing.T) {
	_, err := New(monthsFrom(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 3), []float64{1, 2})
	assert.Error(t, err)
}

func TestSeries_Stats(t *testing.T) {
	s := FromValues([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	assert.InDelta(t, 5.0, s.Mean(), 1e-9)
	assert.InDelta(t, 32.0/7.0, s.Variance(), 1e-9)
	assert.Equal(t, 8, s.Len())
}

func TestSeries_Diff(t *testing.T) {
	s := FromValues([]float64{1, 4, 9, 16})
	d := s.Diff()

	assert.Equal(t, []float64{3, 5, 7}, d.Values)
}

func TestSeries_SeasonalDiff(t *testing.T) {
	s := FromValues([]float64{10, 20, 30, 13, 25, 36})
	d := s.SeasonalDiff(3)

	assert.Equal(t, []float64{3, 5, 6}, d.Values)
}

func TestSeries_DiffTooShort(t *testing.T) {
	s := FromValues([]float64{1})
	assert.Equal(t, 0, s.Diff().Len())
}

func TestSeries_ExtendMonths(t *testing.T) {
	start := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	s, err := New(monthsFrom(start, 3), []float64{1, 2, 3})
	require.NoError(t, err)

	future := s.ExtendMonths(2)
	require.Len(t, future, 2)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), future[0])
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), future[1])
}

func TestSeries_DiffKeepsMonthAlignment(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s, err := New(monthsFrom(start, 4), []float64{1, 2, 4, 7})
	require.NoError(t, err)

	d := s.Diff()
	require.Len(t, d.Months, 3)
	assert.Equal(t, start.AddDate(0, 1, 0), d.Months[0])
	assert.Equal(t, s.LastMonth(), d.LastMonth())
}
