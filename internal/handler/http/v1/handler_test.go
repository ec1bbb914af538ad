package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sfdatalab/incident_analytics/internal/config"
	"github.com/sfdatalab/incident_analytics/internal/models"
	"github.com/sfdatalab/incident_analytics/internal/service"
	"github.com/sfdatalab/incident_analytics/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T, apiKeys ...string) (*mocks.MockAnalyticsService, *mocks.MockForecastService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	analyticsMock := mocks.NewMockAnalyticsService(ctrl)
	forecastMock := mocks.NewMockForecastService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		DataYearFrom: 2018,
		DataYearTo:   2025,
		TopLimit:     10,
		APIKeys:      apiKeys,
	}

	handler := NewHandler(analyticsMock, forecastMock, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return analyticsMock, forecastMock, router
}

func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetSummary_Success(t *testing.T) {
	analyticsMock, _, router := newTestHandler(t)

	analyticsMock.EXPECT().
		Summary(gomock.Any(), gomock.Any()).
		Return(&models.Summary{
			Total:             1500,
			FirstDate:         time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			LastDate:          time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC),
			AveragePerDay:     4.1,
			NeighborhoodCount: 30,
		}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/analytics/summary?year_from=2020&year_to=2020", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1500), resp.Total)
	assert.Equal(t, "2020-01-01", resp.FirstDate)
	assert.Equal(t, 30, resp.NeighborhoodCount)
}

func TestGetSummary_InvalidFilterFromService(t *testing.T) {
	analyticsMock, _, router := newTestHandler(t)

	analyticsMock.EXPECT().
		Summary(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: year range 2024 > 2020", service.ErrInvalidFilter))

	w := makeRequest(router, http.MethodGet, "/api/v1/analytics/summary?year_from=2024&year_to=2020", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSummary_BadHourValidation(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/analytics/summary?hour_from=99", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMonthlyTrend_Success(t *testing.T) {
	analyticsMock, _, router := newTestHandler(t)

	analyticsMock.EXPECT().
		MonthlyTrend(gomock.Any(), gomock.Any()).
		Return([]*models.MonthlyCount{
			{Month: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Count: 100},
			{Month: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), Count: 90},
		}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/analytics/monthly", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []*MonthlyCountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "2023-01", resp[0].Month)
	assert.Equal(t, int64(100), resp[0].Count)
}

func TestGetTopNeighborhoods_PassesFilterAndLimit(t *testing.T) {
	analyticsMock, _, router := newTestHandler(t)

	analyticsMock.EXPECT().
		TopNeighborhoods(gomock.Any(), gomock.Any(), 5).
		DoAndReturn(func(_ interface{}, f *models.Filter, _ int) ([]*models.LabelCount, error) {
			assert.Equal(t, []string{"Mission"}, f.Neighborhoods)
			assert.Equal(t, []string{"Assault", "Robbery"}, f.Categories)
			return []*models.LabelCount{{Label: "Mission", Count: 42}}, nil
		})

	url := "/api/v1/analytics/neighborhoods?limit=5&neighborhood=Mission&category=Assault&category=Robbery"
	w := makeRequest(router, http.MethodGet, url, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []*LabelCountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Mission", resp[0].Label)
}

func TestGetHeatmap_ServiceError(t *testing.T) {
	analyticsMock, _, router := newTestHandler(t)

	analyticsMock.EXPECT().
		Heatmap(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("db down"))

	w := makeRequest(router, http.MethodGet, "/api/v1/analytics/heatmap", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestExportCSV_Success(t *testing.T) {
	analyticsMock, _, router := newTestHandler(t)

	analyticsMock.EXPECT().
		Export(gomock.Any(), gomock.Any()).
		Return([]*models.Incident{
			{
				SourceID:     "1",
				OccurredAt:   time.Date(2023, 6, 15, 22, 30, 0, 0, time.UTC),
				Year:         2023,
				Month:        time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
				Hour:         22,
				Weekday:      "Thursday",
				Category:     "Larceny Theft",
				Neighborhood: "Mission",
				Latitude:     37.7599,
				Longitude:    -122.4148,
				Resolution:   "Open or Active",
			},
		}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/analytics/export", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	body := w.Body.String()
	assert.Contains(t, body, "id,source_id,occurred_at")
	assert.Contains(t, body, "Larceny Theft,Mission")
}

func TestExportCSV_RequiresAPIKeyWhenConfigured(t *testing.T) {
	_, _, router := newTestHandler(t, "secret-key")

	w := makeRequest(router, http.MethodGet, "/api/v1/analytics/export", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExportCSV_AcceptsConfiguredAPIKey(t *testing.T) {
	analyticsMock, _, router := newTestHandler(t, "secret-key")

	analyticsMock.EXPECT().
		Export(gomock.Any(), gomock.Any()).
		Return([]*models.Incident{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/analytics/export", nil,
		map[string]string{"X-API-Key": "secret-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExportCSV_AcceptsBearerToken(t *testing.T) {
	analyticsMock, _, router := newTestHandler(t, "secret-key")

	analyticsMock.EXPECT().
		Export(gomock.Any(), gomock.Any()).
		Return([]*models.Incident{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/analytics/export", nil,
		map[string]string{"Authorization": "Bearer secret-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetForecast_Success(t *testing.T) {
	_, forecastMock, router := newTestHandler(t)

	forecastMock.EXPECT().
		Forecast(gomock.Any(), 3).
		Return(&models.Forecast{
			Model:        "SARIMA(1,1,1)(1,1,1,12)",
			Observations: 84,
			Points: []*models.ForecastPoint{
				{Month: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Forecast: 11000, Lower: 10000, Upper: 12000},
			},
		}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/forecast?steps=3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ForecastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SARIMA(1,1,1)(1,1,1,12)", resp.Model)
	require.Len(t, resp.Points, 1)
	assert.Equal(t, "2025-01", resp.Points[0].Month)
}

func TestGetForecast_NotEnoughData(t *testing.T) {
	_, forecastMock, router := newTestHandler(t)

	forecastMock.EXPECT().
		Forecast(gomock.Any(), 0).
		Return(nil, fmt.Errorf("%w: have 10, need 24", service.ErrNotEnoughData))

	w := makeRequest(router, http.MethodGet, "/api/v1/forecast", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
