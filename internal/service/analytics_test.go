package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sfdatalab/incident_analytics/internal/config"
	"github.com/sfdatalab/incident_analytics/internal/ingest"
	"github.com/sfdatalab/incident_analytics/internal/models"
	"github.com/sfdatalab/incident_analytics/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		DataYearFrom: 2018,
		DataYearTo:   2025,
		TopLimit:     10,
	}
}

func newTestAnalyticsService(t *testing.T) (*analyticsService, *mocks.MockIncidentRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewAnalyticsService(repoMock, testConfig(), logger)
	return svc.(*analyticsService), repoMock
}

func TestNormalizeFilter_NilYieldsWidest(t *testing.T) {
	f, err := NormalizeFilter(nil, testConfig())
	require.NoError(t, err)

	assert.Equal(t, 2018, f.YearFrom)
	assert.Equal(t, 2025, f.YearTo)
	assert.Equal(t, 0, f.HourFrom)
	assert.Equal(t, 23, f.HourTo)
	assert.Empty(t, f.Neighborhoods)
}

func TestNormalizeFilter_ClampsToDataRange(t *testing.T) {
	f, err := NormalizeFilter(&models.Filter{YearFrom: 2000, YearTo: 2099, HourTo: 23}, testConfig())
	require.NoError(t, err)

	assert.Equal(t, 2018, f.YearFrom)
	assert.Equal(t, 2025, f.YearTo)
}

func TestNormalizeFilter_RejectsInvertedYears(t *testing.T) {
	_, err := NormalizeFilter(&models.Filter{YearFrom: 2024, YearTo: 2020, HourTo: 23}, testConfig())
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestNormalizeFilter_RejectsBadHours(t *testing.T) {
	_, err := NormalizeFilter(&models.Filter{HourFrom: 12, HourTo: 3}, testConfig())
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = NormalizeFilter(&models.Filter{HourFrom: -1, HourTo: 23}, testConfig())
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestNormalizeFilter_RejectsUnknownWeekday(t *testing.T) {
	_, err := NormalizeFilter(&models.Filter{HourTo: 23, Weekdays: []string{"Funday"}}, testConfig())
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestNormalizeFilter_SortsAndDedupes(t *testing.T) {
	f, err := NormalizeFilter(&models.Filter{
		HourTo:        23,
		Neighborhoods: []string{"Tenderloin", "Mission", "Tenderloin"},
		Weekdays:      []string{"Friday", "Monday", "Friday"},
	}, testConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"Mission", "Tenderloin"}, f.Neighborhoods)
	assert.Equal(t, []string{"Monday", "Friday"}, f.Weekdays)
}

// Every incident the cleaner lets through must fall inside the widest
// normalized filter, so aggregations with all controls reset sum to the
// unfiltered total.
func TestNormalizeFilter_WidestCoversEverythingIngestLoads(t *testing.T) {
	cfg := testConfig()
	widest, err := NormalizeFilter(nil, cfg)
	require.NoError(t, err)
	require.Empty(t, widest.Neighborhoods)
	require.Empty(t, widest.Categories)
	require.Empty(t, widest.Weekdays)

	cleaner := &ingest.Cleaner{YearFrom: cfg.DataYearFrom, YearTo: cfg.DataYearTo}
	raws := []*ingest.RawRecord{
		{SourceID: "1", Datetime: "2018/01/01 12:05:00 AM", Category: "Larceny Theft", Neighborhood: "Mission", Latitude: "37.75", Longitude: "-122.41"},
		{SourceID: "2", Datetime: "2025-12-31T23:59:59", Category: "Assault", Neighborhood: "Tenderloin", Latitude: "37.78", Longitude: "-122.41"},
		{SourceID: "3", Datetime: "2020-02-29T08:15:00.000", Category: "Robbery", Neighborhood: "Bayview Hunters Point", Latitude: "37.73", Longitude: "-122.39"},
		{SourceID: "4", Datetime: "2023-06-15 14:30:00", Category: "Burglary", Neighborhood: "Outer Mission", Latitude: "37.72", Longitude: "-122.44"},
	}

	for _, raw := range raws {
		inc, reason := cleaner.Clean(raw)
		require.Empty(t, reason, "source %s should survive cleaning", raw.SourceID)

		assert.GreaterOrEqual(t, inc.Year, widest.YearFrom)
		assert.LessOrEqual(t, inc.Year, widest.YearTo)
		assert.GreaterOrEqual(t, inc.Hour, widest.HourFrom)
		assert.LessOrEqual(t, inc.Hour, widest.HourTo)
		assert.GreaterOrEqual(t, models.WeekdayIndex(inc.Weekday), 0)
	}
}

func TestCacheKey_StableAcrossEquivalentFilters(t *testing.T) {
	cfg := testConfig()
	a, err := NormalizeFilter(&models.Filter{HourTo: 23, Neighborhoods: []string{"B", "A"}}, cfg)
	require.NoError(t, err)
	b, err := NormalizeFilter(&models.Filter{HourTo: 23, Neighborhoods: []string{"A", "B", "A"}}, cfg)
	require.NoError(t, err)

	assert.Equal(t, cacheKey("summary", a, 0), cacheKey("summary", b, 0))
	assert.NotEqual(t, cacheKey("summary", a, 0), cacheKey("monthly", a, 0))
}

func TestSummary_CacheMissComputesAndStores(t *testing.T) {
	svc, repoMock := newTestAnalyticsService(t)
	ctx := context.Background()

	expected := &models.Summary{
		Total:             100,
		FirstDate:         time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		LastDate:          time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC),
		NeighborhoodCount: 5,
	}

	repoMock.EXPECT().GetAggregateCache(ctx, gomock.Any()).Return(nil, nil)
	repoMock.EXPECT().Summary(ctx, gomock.Any()).Return(expected, nil)
	repoMock.EXPECT().SetAggregateCache(ctx, gomock.Any(), gomock.Any()).Return(nil)

	summary, err := svc.Summary(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(100), summary.Total)
	// 10 days inclusive.
	assert.InDelta(t, 10.0, summary.AveragePerDay, 1e-9)
}

func TestSummary_CacheHitSkipsRepository(t *testing.T) {
	svc, repoMock := newTestAnalyticsService(t)
	ctx := context.Background()

	cachedSummary := &models.Summary{Total: 7}
	payload, err := json.Marshal(cachedSummary)
	require.NoError(t, err)

	repoMock.EXPECT().GetAggregateCache(ctx, gomock.Any()).Return(payload, nil)

	summary, err := svc.Summary(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), summary.Total)
}

func TestSummary_CacheErrorFallsThrough(t *testing.T) {
	svc, repoMock := newTestAnalyticsService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetAggregateCache(ctx, gomock.Any()).Return(nil, errors.New("redis down"))
	repoMock.EXPECT().Summary(ctx, gomock.Any()).Return(&models.Summary{Total: 3}, nil)
	repoMock.EXPECT().SetAggregateCache(ctx, gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	summary, err := svc.Summary(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.Total)
}

func TestWeekdayPattern_ZeroFillsInCalendarOrder(t *testing.T) {
	svc, repoMock := newTestAnalyticsService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetAggregateCache(ctx, gomock.Any()).Return(nil, nil)
	repoMock.EXPECT().WeekdayCounts(ctx, gomock.Any()).Return([]*models.LabelCount{
		{Label: "Friday", Count: 40},
		{Label: "Monday", Count: 25},
	}, nil)
	repoMock.EXPECT().SetAggregateCache(ctx, gomock.Any(), gomock.Any()).Return(nil)

	counts, err := svc.WeekdayPattern(ctx, nil)
	require.NoError(t, err)
	require.Len(t, counts, 7)

	assert.Equal(t, "Monday", counts[0].Label)
	assert.Equal(t, int64(25), counts[0].Count)
	assert.Equal(t, "Tuesday", counts[1].Label)
	assert.Equal(t, int64(0), counts[1].Count)
	assert.Equal(t, "Friday", counts[4].Label)
	assert.Equal(t, int64(40), counts[4].Count)
	assert.Equal(t, "Sunday", counts[6].Label)
}

func TestHourlyPattern_ZeroFillsAllHours(t *testing.T) {
	svc, repoMock := newTestAnalyticsService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetAggregateCache(ctx, gomock.Any()).Return(nil, nil)
	repoMock.EXPECT().HourlyCounts(ctx, gomock.Any()).Return([]*models.HourlyCount{
		{Hour: 18, Count: 50},
	}, nil)
	repoMock.EXPECT().SetAggregateCache(ctx, gomock.Any(), gomock.Any()).Return(nil)

	counts, err := svc.HourlyPattern(ctx, nil)
	require.NoError(t, err)
	require.Len(t, counts, 24)
	assert.Equal(t, int64(50), counts[18].Count)
	assert.Equal(t, int64(0), counts[0].Count)
}

func TestHeatmap_FullGrid(t *testing.T) {
	svc, repoMock := newTestAnalyticsService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetAggregateCache(ctx, gomock.Any()).Return(nil, nil)
	repoMock.EXPECT().HeatmapCounts(ctx, gomock.Any()).Return([]*models.HeatmapCell{
		{Weekday: "Saturday", Hour: 22, Count: 9},
	}, nil)
	repoMock.EXPECT().SetAggregateCache(ctx, gomock.Any(), gomock.Any()).Return(nil)

	cells, err := svc.Heatmap(ctx, nil)
	require.NoError(t, err)
	require.Len(t, cells, 7*24)

	// Monday hour 0 comes first; Saturday 22 carries the count.
	assert.Equal(t, "Monday", cells[0].Weekday)
	assert.Equal(t, 0, cells[0].Hour)
	assert.Equal(t, int64(9), cells[5*24+22].Count)
}

func TestTopNeighborhoods_LimitDefaultsAndClamps(t *testing.T) {
	svc, repoMock := newTestAnalyticsService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetAggregateCache(ctx, gomock.Any()).Return(nil, nil).Times(2)
	repoMock.EXPECT().SetAggregateCache(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	repoMock.EXPECT().NeighborhoodCounts(ctx, gomock.Any(), 10).Return(nil, nil)
	repoMock.EXPECT().NeighborhoodCounts(ctx, gomock.Any(), 50).Return(nil, nil)

	_, err := svc.TopNeighborhoods(ctx, nil, 0)
	require.NoError(t, err)
	_, err = svc.TopNeighborhoods(ctx, nil, 999)
	require.NoError(t, err)
}

func TestExport_PropagatesRepositoryError(t *testing.T) {
	svc, repoMock := newTestAnalyticsService(t)
	ctx := context.Background()

	repoMock.EXPECT().ListFiltered(ctx, gomock.Any()).Return(nil, errors.New("boom"))

	_, err := svc.Export(ctx, nil)
	assert.Error(t, err)
}
