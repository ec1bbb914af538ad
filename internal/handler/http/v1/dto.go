package v1

// FilterQuery binds the dashboard filter from query parameters. Repeated
// parameters select multiple neighborhoods, categories or weekdays; empty
// means "all".
// @Description Dashboard filter passed as query parameters
type FilterQuery struct {
	YearFrom      int      `form:"year_from" validate:"omitempty,min=2000,max=2100"`
	YearTo        int      `form:"year_to" validate:"omitempty,min=2000,max=2100"`
	Neighborhoods []string `form:"neighborhood"`
	Categories    []string `form:"category"`
	Weekdays      []string `form:"weekday"`
	HourFrom      int      `form:"hour_from,default=0" validate:"min=0,max=23"`
	HourTo        int      `form:"hour_to,default=23" validate:"min=0,max=23"`
}

// SummaryResponse DTO for the dashboard summary row
// @Description Totals for the current filter
type SummaryResponse struct {
	Total             int64   `json:"total"`
	FirstDate         string  `json:"first_date,omitempty"`
	LastDate          string  `json:"last_date,omitempty"`
	AveragePerDay     float64 `json:"average_per_day"`
	NeighborhoodCount int     `json:"neighborhood_count"`
}

// MonthlyCountResponse DTO for one month of the trend line
type MonthlyCountResponse struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// LabelCountResponse DTO for one bar of a ranked bar chart
type LabelCountResponse struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// HourlyCountResponse DTO for one hour of the hourly pattern
type HourlyCountResponse struct {
	Hour  int   `json:"hour"`
	Count int64 `json:"count"`
}

// HeatmapCellResponse DTO for one cell of the weekday by hour heatmap
type HeatmapCellResponse struct {
	Weekday string `json:"weekday"`
	Hour    int    `json:"hour"`
	Count   int64  `json:"count"`
}

// FilterOptionsResponse DTO for the dashboard filter widgets
// @Description Distinct values available for the filter widgets
type FilterOptionsResponse struct {
	Years         []int    `json:"years"`
	Neighborhoods []string `json:"neighborhoods"`
	Categories    []string `json:"categories"`
}

// ForecastPointResponse DTO for one forecast month
type ForecastPointResponse struct {
	Month    string  `json:"month"`
	Forecast float64 `json:"forecast"`
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
}

// ForecastResponse DTO for the citywide monthly forecast
// @Description SARIMA forecast with confidence intervals
type ForecastResponse struct {
	Model          string                   `json:"model"`
	Observations   int                      `json:"observations"`
	AIC            float64                  `json:"aic"`
	LjungBoxPValue float64                  `json:"ljung_box_p_value"`
	History        []*MonthlyCountResponse  `json:"history"`
	Points         []*ForecastPointResponse `json:"points"`
}
