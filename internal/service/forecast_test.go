package service

import (
	"bytes"
	"context"
	"math"
	"testing"
	"time"

	"github.com/sfdatalab/incident_analytics/internal/config"
	"github.com/sfdatalab/incident_analytics/internal/models"
	"github.com/sfdatalab/incident_analytics/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestForecastService(t *testing.T) (ForecastService, *mocks.MockIncidentRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		ForecastSteps:  6,
		ForecastPeriod: 12,
	}

	return NewForecastService(repoMock, cfg, logger), repoMock
}

// monthlyHistory builds n months of seasonal counts starting January 2018.
func monthlyHistory(n int) []*models.MonthlyCount {
	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	counts := make([]*models.MonthlyCount, n)
	for i := 0; i < n; i++ {
		seasonal := 900 * math.Sin(2*math.Pi*float64(i)/12)
		counts[i] = &models.MonthlyCount{
			Month: start.AddDate(0, i, 0),
			Count: int64(11000 + 15*i + int(seasonal)),
		}
	}
	return counts
}

func TestForecast_Success(t *testing.T) {
	svc, repoMock := newTestForecastService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetAggregateCache(ctx, gomock.Any()).Return(nil, nil)
	repoMock.EXPECT().CitywideMonthly(ctx).Return(monthlyHistory(84), nil)
	repoMock.EXPECT().SetAggregateCache(ctx, gomock.Any(), gomock.Any()).Return(nil)

	forecast, err := svc.Forecast(ctx, 0)
	require.NoError(t, err)

	assert.Equal(t, "SARIMA(1,1,1)(1,1,1,12)", forecast.Model)
	assert.Equal(t, 84, forecast.Observations)
	require.Len(t, forecast.Points, 6)

	// Forecast months continue the history.
	lastHistory := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, lastHistory.AddDate(0, 1, 0), forecast.Points[0].Month)

	for _, p := range forecast.Points {
		assert.GreaterOrEqual(t, p.Forecast, p.Lower)
		assert.LessOrEqual(t, p.Forecast, p.Upper)
		assert.GreaterOrEqual(t, p.Lower, 0.0)
	}
}

func TestForecast_StepsClamped(t *testing.T) {
	svc, repoMock := newTestForecastService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetAggregateCache(ctx, gomock.Any()).Return(nil, nil)
	repoMock.EXPECT().CitywideMonthly(ctx).Return(monthlyHistory(84), nil)
	repoMock.EXPECT().SetAggregateCache(ctx, gomock.Any(), gomock.Any()).Return(nil)

	forecast, err := svc.Forecast(ctx, 999)
	require.NoError(t, err)
	assert.Len(t, forecast.Points, 24)
}

func TestForecast_NotEnoughData(t *testing.T) {
	svc, repoMock := newTestForecastService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetAggregateCache(ctx, gomock.Any()).Return(nil, nil)
	repoMock.EXPECT().CitywideMonthly(ctx).Return(monthlyHistory(12), nil)

	_, err := svc.Forecast(ctx, 6)
	assert.ErrorIs(t, err, ErrNotEnoughData)
}

func TestForecast_ShortSeriesAboveTwoCycles(t *testing.T) {
	svc, repoMock := newTestForecastService(t)
	ctx := context.Background()

	// 36 months clears two seasonal cycles but not the lags the fitted
	// order needs; the caller must still see a not-enough-data error.
	repoMock.EXPECT().GetAggregateCache(ctx, gomock.Any()).Return(nil, nil)
	repoMock.EXPECT().CitywideMonthly(ctx).Return(monthlyHistory(36), nil)

	_, err := svc.Forecast(ctx, 6)
	assert.ErrorIs(t, err, ErrNotEnoughData)
}
