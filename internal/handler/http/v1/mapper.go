package v1

import (
	"github.com/sfdatalab/incident_analytics/internal/models"
)

const monthLayout = "2006-01"

// QueryToFilter converts the bound query DTO into the domain filter.
func QueryToFilter(q FilterQuery) *models.Filter {
	return &models.Filter{
		YearFrom:      q.YearFrom,
		YearTo:        q.YearTo,
		Neighborhoods: q.Neighborhoods,
		Categories:    q.Categories,
		Weekdays:      q.Weekdays,
		HourFrom:      q.HourFrom,
		HourTo:        q.HourTo,
	}
}

func ModelToSummaryResponse(m *models.Summary) *SummaryResponse {
	out := &SummaryResponse{
		Total:             m.Total,
		AveragePerDay:     m.AveragePerDay,
		NeighborhoodCount: m.NeighborhoodCount,
	}
	if !m.FirstDate.IsZero() {
		out.FirstDate = m.FirstDate.Format("2006-01-02")
	}
	if !m.LastDate.IsZero() {
		out.LastDate = m.LastDate.Format("2006-01-02")
	}
	return out
}

func ModelsToMonthlyResponses(counts []*models.MonthlyCount) []*MonthlyCountResponse {
	out := make([]*MonthlyCountResponse, len(counts))
	for i, c := range counts {
		out[i] = &MonthlyCountResponse{Month: c.Month.Format(monthLayout), Count: c.Count}
	}
	return out
}

func ModelsToLabelResponses(counts []*models.LabelCount) []*LabelCountResponse {
	out := make([]*LabelCountResponse, len(counts))
	for i, c := range counts {
		out[i] = &LabelCountResponse{Label: c.Label, Count: c.Count}
	}
	return out
}

func ModelsToHourlyResponses(counts []*models.HourlyCount) []*HourlyCountResponse {
	out := make([]*HourlyCountResponse, len(counts))
	for i, c := range counts {
		out[i] = &HourlyCountResponse{Hour: c.Hour, Count: c.Count}
	}
	return out
}

func ModelsToHeatmapResponses(cells []*models.HeatmapCell) []*HeatmapCellResponse {
	out := make([]*HeatmapCellResponse, len(cells))
	for i, c := range cells {
		out[i] = &HeatmapCellResponse{Weekday: c.Weekday, Hour: c.Hour, Count: c.Count}
	}
	return out
}

func ModelToFilterOptionsResponse(m *models.FilterOptions) *FilterOptionsResponse {
	return &FilterOptionsResponse{
		Years:         m.Years,
		Neighborhoods: m.Neighborhoods,
		Categories:    m.Categories,
	}
}

func ModelToForecastResponse(m *models.Forecast) *ForecastResponse {
	points := make([]*ForecastPointResponse, len(m.Points))
	for i, p := range m.Points {
		points[i] = &ForecastPointResponse{
			Month:    p.Month.Format(monthLayout),
			Forecast: p.Forecast,
			Lower:    p.Lower,
			Upper:    p.Upper,
		}
	}
	return &ForecastResponse{
		Model:          m.Model,
		Observations:   m.Observations,
		AIC:            m.AIC,
		LjungBoxPValue: m.LjungBoxPValue,
		History:        ModelsToMonthlyResponses(m.History),
		Points:         points,
	}
}
