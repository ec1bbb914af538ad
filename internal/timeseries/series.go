// Package timeseries holds the monthly count series consumed by the
// forecast model.
package timeseries

import (
	"errors"
	"math"
	"time"
)

// Series is a monthly time series: one value per calendar month.
type Series struct {
	Months []time.Time
	Values []float64
}

// New creates a series from parallel month/value slices.
func New(months []time.Time, values []float64) (*Series, error) {
	if len(months) != len(values) {
		return nil, errors.New("months and values must have the same length")
	}
	return &Series{Months: months, Values: values}, nil
}

// FromValues creates a series without month labels, for diagnostics on
// derived data such as residuals.
func FromValues(values []float64) *Series {
	return &Series{Values: values}
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean returns the arithmetic mean.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Variance returns the sample variance.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Values)-1)
}

// Std returns the sample standard deviation.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Diff returns the first difference of the series.
func (s *Series) Diff() *Series {
	return s.diffBy(1)
}

// SeasonalDiff returns the seasonal difference with period m.
func (s *Series) SeasonalDiff(m int) *Series {
	return s.diffBy(m)
}

func (s *Series) diffBy(lag int) *Series {
	if lag <= 0 || len(s.Values) <= lag {
		return &Series{}
	}
	values := make([]float64, len(s.Values)-lag)
	for i := lag; i < len(s.Values); i++ {
		values[i-lag] = s.Values[i] - s.Values[i-lag]
	}
	var months []time.Time
	if len(s.Months) > lag {
		months = make([]time.Time, len(values))
		copy(months, s.Months[lag:])
	}
	return &Series{Months: months, Values: values}
}

// LastMonth returns the final month label, or the zero time when the
// series has no labels.
func (s *Series) LastMonth() time.Time {
	if len(s.Months) == 0 {
		return time.Time{}
	}
	return s.Months[len(s.Months)-1]
}

// ExtendMonths returns the next n month labels continuing from the last
// observed month.
func (s *Series) ExtendMonths(n int) []time.Time {
	last := s.LastMonth()
	months := make([]time.Time, n)
	for i := range months {
		months[i] = last.AddDate(0, i+1, 0)
	}
	return months
}
