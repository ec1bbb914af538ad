package models

import "time"

// Filter is the normalized dashboard filter applied to every aggregation.
// Empty slices mean "all".
type Filter struct {
	YearFrom      int      `json:"year_from"`
	YearTo        int      `json:"year_to"`
	Neighborhoods []string `json:"neighborhoods,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Weekdays      []string `json:"weekdays,omitempty"`
	HourFrom      int      `json:"hour_from"`
	HourTo        int      `json:"hour_to"`
}

// Summary mirrors the dashboard metrics row.
type Summary struct {
	Total             int64     `json:"total"`
	FirstDate         time.Time `json:"first_date"`
	LastDate          time.Time `json:"last_date"`
	AveragePerDay     float64   `json:"average_per_day"`
	NeighborhoodCount int       `json:"neighborhood_count"`
}

// MonthlyCount is one point of the monthly trend.
type MonthlyCount struct {
	Month time.Time `json:"month"`
	Count int64     `json:"count"`
}

// LabelCount is a generic label/count pair (neighborhood, category, weekday).
type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// HourlyCount is the incident count for one hour of day.
type HourlyCount struct {
	Hour  int   `json:"hour"`
	Count int64 `json:"count"`
}

// HeatmapCell is one weekday x hour intensity cell.
type HeatmapCell struct {
	Weekday string `json:"weekday"`
	Hour    int    `json:"hour"`
	Count   int64  `json:"count"`
}

// FilterOptions lists the distinct values present in the dataset, used to
// populate the dashboard controls.
type FilterOptions struct {
	Years         []int    `json:"years"`
	Neighborhoods []string `json:"neighborhoods"`
	Categories    []string `json:"categories"`
}

// ForecastPoint is one forecasted month with its prediction interval.
type ForecastPoint struct {
	Month    time.Time `json:"month"`
	Forecast float64   `json:"forecast"`
	Lower    float64   `json:"lower"`
	Upper    float64   `json:"upper"`
}

// Forecast is the fitted monthly outlook for citywide totals.
type Forecast struct {
	Model          string           `json:"model"`
	Observations   int              `json:"observations"`
	AIC            float64          `json:"aic"`
	LjungBoxPValue float64          `json:"ljung_box_p_value"`
	History        []*MonthlyCount  `json:"history"`
	Points         []*ForecastPoint `json:"points"`
}

// IngestReport summarizes one loader run.
type IngestReport struct {
	Source      string         `json:"source"`
	RowsRead    int            `json:"rows_read"`
	RowsLoaded  int64          `json:"rows_loaded"`
	RowsDropped int            `json:"rows_dropped"`
	DropReasons map[string]int `json:"drop_reasons,omitempty"`
	StartedAt   time.Time      `json:"started_at"`
	Duration    time.Duration  `json:"duration"`
}
