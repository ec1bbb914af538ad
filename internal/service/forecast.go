package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sfdatalab/incident_analytics/internal/config"
	"github.com/sfdatalab/incident_analytics/internal/models"
	"github.com/sfdatalab/incident_analytics/internal/sarima"
	"github.com/sfdatalab/incident_analytics/internal/stats"
	"github.com/sfdatalab/incident_analytics/internal/timeseries"
	"github.com/sirupsen/logrus"
)

// ErrNotEnoughData is returned when the citywide monthly series is too short
// to fit a seasonal model.
var ErrNotEnoughData = fmt.Errorf("not enough observations to fit forecast model")

// minObservations is two full seasonal cycles. The fitted order raises the
// effective floor further; both gates return ErrNotEnoughData.
const minObservations = 24

const (
	forecastConfidence = 0.95
	maxForecastSteps   = 24
	ljungBoxLags       = 10
)

// ForecastService defines the contract for the citywide monthly forecast.
type ForecastService interface {
	Forecast(ctx context.Context, steps int) (*models.Forecast, error)
}

type forecastService struct {
	repo   IncidentRepository
	cfg    *config.Config
	logger *logrus.Logger
}

func NewForecastService(repo IncidentRepository, cfg *config.Config, logger *logrus.Logger) ForecastService {
	return &forecastService{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

// Forecast fits a SARIMA(1,1,1)(1,1,1,m) model on the citywide monthly
// series and predicts the requested number of months ahead with 95%
// intervals. The forecast is always citywide: dashboard filters do not
// apply, the seasonal model needs the full history.
func (s *forecastService) Forecast(ctx context.Context, steps int) (*models.Forecast, error) {
	if steps <= 0 {
		steps = s.cfg.ForecastSteps
	}
	if steps > maxForecastSteps {
		steps = maxForecastSteps
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "forecast",
		"method":  "Forecast",
		"steps":   steps,
	})

	key := cacheKey(fmt.Sprintf("forecast:%d", steps), nil, 0)
	if data, err := s.repo.GetAggregateCache(ctx, key); err != nil {
		log.WithError(err).Warn("Failed to read forecast cache")
	} else if data != nil {
		var out models.Forecast
		if err := json.Unmarshal(data, &out); err == nil {
			return &out, nil
		}
		log.Warn("Discarding undecodable forecast cache entry")
	}

	counts, err := s.repo.CitywideMonthly(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not load monthly series: %w", err)
	}

	order := sarima.Order{P: 1, D: 1, Q: 1, SP: 1, SD: 1, SQ: 1, M: s.cfg.ForecastPeriod}
	need := order.MinObservations()
	if need < minObservations {
		need = minObservations
	}
	if len(counts) < need {
		log.WithField("observations", len(counts)).Warn("Series too short for seasonal model")
		return nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughData, len(counts), need)
	}

	series := seriesFromCounts(counts)

	model := sarima.New(order)
	if err := model.Fit(series); err != nil {
		if errors.Is(err, sarima.ErrSeriesTooShort) {
			log.WithError(err).Warn("Series too short for seasonal model")
			return nil, fmt.Errorf("%w: %v", ErrNotEnoughData, err)
		}
		log.WithError(err).Error("Failed to fit forecast model")
		return nil, fmt.Errorf("service: could not fit forecast model: %w", err)
	}

	forecasts, lower, upper, err := model.PredictWithInterval(steps, forecastConfidence)
	if err != nil {
		return nil, fmt.Errorf("service: could not predict: %w", err)
	}

	future := series.ExtendMonths(steps)
	points := make([]*models.ForecastPoint, 0, steps)
	for i := 0; i < steps; i++ {
		points = append(points, &models.ForecastPoint{
			Month:    future[i],
			Forecast: nonNegative(forecasts[i]),
			Lower:    nonNegative(lower[i]),
			Upper:    nonNegative(upper[i]),
		})
	}

	out := &models.Forecast{
		Model:        order.String(),
		Observations: series.Len(),
		AIC:          model.AIC,
		History:      counts,
		Points:       points,
	}
	if lb := stats.LjungBox(model.Residuals(), ljungBoxLags, countParams(order)); lb != nil {
		out.LjungBoxPValue = lb.PValue
	}

	if data, err := json.Marshal(out); err == nil {
		if err := s.repo.SetAggregateCache(ctx, key, data); err != nil {
			log.WithError(err).Warn("Failed to write forecast cache")
		}
	}

	log.WithFields(logrus.Fields{
		"observations": out.Observations,
		"aic":          out.AIC,
	}).Info("Forecast computed")
	return out, nil
}

func seriesFromCounts(counts []*models.MonthlyCount) *timeseries.Series {
	months := make([]time.Time, len(counts))
	values := make([]float64, len(counts))
	for i, c := range counts {
		months[i] = c.Month
		values[i] = float64(c.Count)
	}
	// Lengths match by construction.
	s, _ := timeseries.New(months, values)
	return s
}

func countParams(o sarima.Order) int {
	return o.P + o.Q + o.SP + o.SQ
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
