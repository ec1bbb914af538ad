package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/sfdatalab/incident_analytics/internal/config"
	"github.com/sfdatalab/incident_analytics/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentRepository defines the contract for incident storage and the
// aggregate cache.
type IncidentRepository interface {
	ReplaceIncidents(ctx context.Context, incidents []*models.Incident) (int64, error)
	Summary(ctx context.Context, f *models.Filter) (*models.Summary, error)
	MonthlyCounts(ctx context.Context, f *models.Filter) ([]*models.MonthlyCount, error)
	NeighborhoodCounts(ctx context.Context, f *models.Filter, limit int) ([]*models.LabelCount, error)
	CategoryCounts(ctx context.Context, f *models.Filter, limit int) ([]*models.LabelCount, error)
	WeekdayCounts(ctx context.Context, f *models.Filter) ([]*models.LabelCount, error)
	HourlyCounts(ctx context.Context, f *models.Filter) ([]*models.HourlyCount, error)
	HeatmapCounts(ctx context.Context, f *models.Filter) ([]*models.HeatmapCell, error)
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
	ListFiltered(ctx context.Context, f *models.Filter) ([]*models.Incident, error)
	CitywideMonthly(ctx context.Context) ([]*models.MonthlyCount, error)
	GetAggregateCache(ctx context.Context, key string) ([]byte, error)
	SetAggregateCache(ctx context.Context, key string, payload []byte) error
	FlushAggregateCache(ctx context.Context) error
}

// AnalyticsService defines the contract for the dashboard aggregations.
type AnalyticsService interface {
	Summary(ctx context.Context, f *models.Filter) (*models.Summary, error)
	MonthlyTrend(ctx context.Context, f *models.Filter) ([]*models.MonthlyCount, error)
	TopNeighborhoods(ctx context.Context, f *models.Filter, limit int) ([]*models.LabelCount, error)
	TopCategories(ctx context.Context, f *models.Filter, limit int) ([]*models.LabelCount, error)
	WeekdayPattern(ctx context.Context, f *models.Filter) ([]*models.LabelCount, error)
	HourlyPattern(ctx context.Context, f *models.Filter) ([]*models.HourlyCount, error)
	Heatmap(ctx context.Context, f *models.Filter) ([]*models.HeatmapCell, error)
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
	Export(ctx context.Context, f *models.Filter) ([]*models.Incident, error)
}

type analyticsService struct {
	repo   IncidentRepository
	cfg    *config.Config
	logger *logrus.Logger
}

func NewAnalyticsService(repo IncidentRepository, cfg *config.Config, logger *logrus.Logger) AnalyticsService {
	return &analyticsService{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

// ErrInvalidFilter is returned when a filter cannot be normalized. Handlers
// map it to a 400 response.
var ErrInvalidFilter = fmt.Errorf("invalid filter")

// NormalizeFilter clamps the filter to the loaded data range and validates
// the multi-selects. A nil filter yields the widest filter.
func NormalizeFilter(f *models.Filter, cfg *config.Config) (*models.Filter, error) {
	out := &models.Filter{
		YearFrom: cfg.DataYearFrom,
		YearTo:   cfg.DataYearTo,
		HourFrom: 0,
		HourTo:   23,
	}
	if f == nil {
		return out, nil
	}

	if f.YearFrom != 0 {
		out.YearFrom = f.YearFrom
	}
	if f.YearTo != 0 {
		out.YearTo = f.YearTo
	}
	if out.YearFrom < cfg.DataYearFrom {
		out.YearFrom = cfg.DataYearFrom
	}
	if out.YearTo > cfg.DataYearTo {
		out.YearTo = cfg.DataYearTo
	}
	if out.YearFrom > out.YearTo {
		return nil, fmt.Errorf("%w: year range %d > %d", ErrInvalidFilter, out.YearFrom, out.YearTo)
	}

	out.HourFrom = f.HourFrom
	out.HourTo = f.HourTo
	if out.HourFrom < 0 || out.HourTo > 23 || out.HourFrom > out.HourTo {
		return nil, fmt.Errorf("%w: hour range %d-%d", ErrInvalidFilter, out.HourFrom, out.HourTo)
	}

	out.Neighborhoods = dedupeSorted(f.Neighborhoods)
	out.Categories = dedupeSorted(f.Categories)

	weekdays := make([]string, 0, len(f.Weekdays))
	seen := make(map[string]bool, len(f.Weekdays))
	for _, w := range f.Weekdays {
		if models.WeekdayIndex(w) < 0 {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidFilter, w)
		}
		if !seen[w] {
			seen[w] = true
			weekdays = append(weekdays, w)
		}
	}
	sort.Slice(weekdays, func(i, j int) bool {
		return models.WeekdayIndex(weekdays[i]) < models.WeekdayIndex(weekdays[j])
	})
	out.Weekdays = weekdays

	return out, nil
}

func dedupeSorted(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func (s *analyticsService) clampLimit(limit int) int {
	if limit <= 0 {
		return s.cfg.TopLimit
	}
	if limit > 50 {
		return 50
	}
	return limit
}

// cacheKey derives a stable key from the operation name and the normalized
// filter. Normalization sorts the multi-selects, so equivalent filters hash
// to the same key.
func cacheKey(op string, f *models.Filter, limit int) string {
	payload, _ := json.Marshal(struct {
		Op     string         `json:"op"`
		Filter *models.Filter `json:"filter"`
		Limit  int            `json:"limit,omitempty"`
	}{op, f, limit})
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// cached runs compute on a cache miss and stores the result. Cache failures
// are logged and swallowed so Redis outages degrade to direct queries.
func cached[T any](ctx context.Context, s *analyticsService, key string, compute func() (T, error)) (T, error) {
	var zero T

	if data, err := s.repo.GetAggregateCache(ctx, key); err != nil {
		s.logger.WithError(err).Warn("Failed to read aggregate cache")
	} else if data != nil {
		var out T
		if err := json.Unmarshal(data, &out); err == nil {
			return out, nil
		}
		s.logger.WithField("key", key).Warn("Discarding undecodable cache entry")
	}

	out, err := compute()
	if err != nil {
		return zero, err
	}

	if data, err := json.Marshal(out); err == nil {
		if err := s.repo.SetAggregateCache(ctx, key, data); err != nil {
			s.logger.WithError(err).Warn("Failed to write aggregate cache")
		}
	}
	return out, nil
}

func (s *analyticsService) Summary(ctx context.Context, f *models.Filter) (*models.Summary, error) {
	nf, err := NormalizeFilter(f, s.cfg)
	if err != nil {
		return nil, err
	}
	return cached(ctx, s, cacheKey("summary", nf, 0), func() (*models.Summary, error) {
		summary, err := s.repo.Summary(ctx, nf)
		if err != nil {
			return nil, fmt.Errorf("service: could not compute summary: %w", err)
		}
		// Average over the actual span of the filtered data, matching
		// the dashboard's per-day metric.
		if summary.Total > 0 && !summary.FirstDate.IsZero() {
			days := summary.LastDate.Sub(summary.FirstDate).Hours()/24 + 1
			summary.AveragePerDay = float64(summary.Total) / days
		}
		return summary, nil
	})
}

func (s *analyticsService) MonthlyTrend(ctx context.Context, f *models.Filter) ([]*models.MonthlyCount, error) {
	nf, err := NormalizeFilter(f, s.cfg)
	if err != nil {
		return nil, err
	}
	return cached(ctx, s, cacheKey("monthly", nf, 0), func() ([]*models.MonthlyCount, error) {
		counts, err := s.repo.MonthlyCounts(ctx, nf)
		if err != nil {
			return nil, fmt.Errorf("service: could not compute monthly trend: %w", err)
		}
		return counts, nil
	})
}

func (s *analyticsService) TopNeighborhoods(ctx context.Context, f *models.Filter, limit int) ([]*models.LabelCount, error) {
	nf, err := NormalizeFilter(f, s.cfg)
	if err != nil {
		return nil, err
	}
	limit = s.clampLimit(limit)
	return cached(ctx, s, cacheKey("neighborhoods", nf, limit), func() ([]*models.LabelCount, error) {
		counts, err := s.repo.NeighborhoodCounts(ctx, nf, limit)
		if err != nil {
			return nil, fmt.Errorf("service: could not compute top neighborhoods: %w", err)
		}
		return counts, nil
	})
}

func (s *analyticsService) TopCategories(ctx context.Context, f *models.Filter, limit int) ([]*models.LabelCount, error) {
	nf, err := NormalizeFilter(f, s.cfg)
	if err != nil {
		return nil, err
	}
	limit = s.clampLimit(limit)
	return cached(ctx, s, cacheKey("categories", nf, limit), func() ([]*models.LabelCount, error) {
		counts, err := s.repo.CategoryCounts(ctx, nf, limit)
		if err != nil {
			return nil, fmt.Errorf("service: could not compute top categories: %w", err)
		}
		return counts, nil
	})
}

// WeekdayPattern returns counts for all seven weekdays in calendar order,
// filling zeroes for weekdays absent from the result.
func (s *analyticsService) WeekdayPattern(ctx context.Context, f *models.Filter) ([]*models.LabelCount, error) {
	nf, err := NormalizeFilter(f, s.cfg)
	if err != nil {
		return nil, err
	}
	return cached(ctx, s, cacheKey("weekdays", nf, 0), func() ([]*models.LabelCount, error) {
		counts, err := s.repo.WeekdayCounts(ctx, nf)
		if err != nil {
			return nil, fmt.Errorf("service: could not compute weekday pattern: %w", err)
		}
		byDay := make(map[string]int64, len(counts))
		for _, c := range counts {
			byDay[c.Label] = c.Count
		}
		out := make([]*models.LabelCount, 0, len(models.WeekdayOrder))
		for _, day := range models.WeekdayOrder {
			out = append(out, &models.LabelCount{Label: day, Count: byDay[day]})
		}
		return out, nil
	})
}

// HourlyPattern returns counts for all 24 hours, filling zeroes.
func (s *analyticsService) HourlyPattern(ctx context.Context, f *models.Filter) ([]*models.HourlyCount, error) {
	nf, err := NormalizeFilter(f, s.cfg)
	if err != nil {
		return nil, err
	}
	return cached(ctx, s, cacheKey("hourly", nf, 0), func() ([]*models.HourlyCount, error) {
		counts, err := s.repo.HourlyCounts(ctx, nf)
		if err != nil {
			return nil, fmt.Errorf("service: could not compute hourly pattern: %w", err)
		}
		byHour := make(map[int]int64, len(counts))
		for _, c := range counts {
			byHour[c.Hour] = c.Count
		}
		out := make([]*models.HourlyCount, 0, 24)
		for h := 0; h < 24; h++ {
			out = append(out, &models.HourlyCount{Hour: h, Count: byHour[h]})
		}
		return out, nil
	})
}

// Heatmap returns the full weekday by hour grid, zero-filled, ordered
// Monday through Sunday then hour.
func (s *analyticsService) Heatmap(ctx context.Context, f *models.Filter) ([]*models.HeatmapCell, error) {
	nf, err := NormalizeFilter(f, s.cfg)
	if err != nil {
		return nil, err
	}
	return cached(ctx, s, cacheKey("heatmap", nf, 0), func() ([]*models.HeatmapCell, error) {
		cells, err := s.repo.HeatmapCounts(ctx, nf)
		if err != nil {
			return nil, fmt.Errorf("service: could not compute heatmap: %w", err)
		}
		type cellKey struct {
			day  string
			hour int
		}
		byCell := make(map[cellKey]int64, len(cells))
		for _, c := range cells {
			byCell[cellKey{c.Weekday, c.Hour}] = c.Count
		}
		out := make([]*models.HeatmapCell, 0, len(models.WeekdayOrder)*24)
		for _, day := range models.WeekdayOrder {
			for h := 0; h < 24; h++ {
				out = append(out, &models.HeatmapCell{
					Weekday: day,
					Hour:    h,
					Count:   byCell[cellKey{day, h}],
				})
			}
		}
		return out, nil
	})
}

func (s *analyticsService) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	return cached(ctx, s, cacheKey("filters", nil, 0), func() (*models.FilterOptions, error) {
		opts, err := s.repo.FilterOptions(ctx)
		if err != nil {
			return nil, fmt.Errorf("service: could not list filter options: %w", err)
		}
		return opts, nil
	})
}

// Export returns the full filtered rows for CSV download. Not cached:
// payloads are large and the handler streams them.
func (s *analyticsService) Export(ctx context.Context, f *models.Filter) ([]*models.Incident, error) {
	nf, err := NormalizeFilter(f, s.cfg)
	if err != nil {
		return nil, err
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "Export",
	})
	incidents, err := s.repo.ListFiltered(ctx, nf)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents for export")
		return nil, fmt.Errorf("service: could not export incidents: %w", err)
	}
	log.WithField("rows", len(incidents)).Info("Export prepared")
	return incidents, nil
}
