package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sfdatalab/incident_analytics/internal/models"
	"github.com/sfdatalab/incident_analytics/internal/service"
)

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// ReplaceIncidents swaps the whole dataset in one transaction: truncate,
// then bulk copy. A failed load never leaves a half-empty table behind.
func (r *IncidentRepository) ReplaceIncidents(ctx context.Context, incidents []*models.Incident) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE incidents"); err != nil {
		return 0, fmt.Errorf("failed to truncate incidents: %w", err)
	}

	rows := make([][]any, len(incidents))
	for i, inc := range incidents {
		rows[i] = []any{
			inc.ID,
			inc.SourceID,
			inc.OccurredAt,
			inc.Year,
			inc.Month,
			inc.Hour,
			inc.Weekday,
			inc.Category,
			inc.Neighborhood,
			inc.Latitude,
			inc.Longitude,
			inc.Resolution,
		}
	}

	copied, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"incidents"},
		[]string{
			"id", "source_id", "occurred_at", "year", "month", "hour",
			"weekday", "category", "neighborhood", "latitude", "longitude",
			"resolution",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy incidents: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit incident load: %w", err)
	}
	return copied, nil
}

// Summary returns the metrics-row aggregates for the filtered view.
func (r *IncidentRepository) Summary(ctx context.Context, f *models.Filter) (*models.Summary, error) {
	where, args := buildWhere(f)
	query := fmt.Sprintf(`
		SELECT
			COUNT(*),
			MIN(occurred_at),
			MAX(occurred_at),
			COUNT(DISTINCT neighborhood)
		FROM incidents
		%s;
	`, where)

	summary := &models.Summary{}
	var first, last *time.Time
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&summary.Total,
		&first,
		&last,
		&summary.NeighborhoodCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	if first != nil {
		summary.FirstDate = *first
	}
	if last != nil {
		summary.LastDate = *last
	}
	return summary, nil
}

// MonthlyCounts returns incidents per calendar month for the filtered view.
func (r *IncidentRepository) MonthlyCounts(ctx context.Context, f *models.Filter) ([]*models.MonthlyCount, error) {
	where, args := buildWhere(f)
	query := fmt.Sprintf(`
		SELECT month, COUNT(*)
		FROM incidents
		%s
		GROUP BY month
		ORDER BY month;
	`, where)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly counts: %w", err)
	}
	defer rows.Close()

	counts := make([]*models.MonthlyCount, 0)
	for rows.Next() {
		mc := &models.MonthlyCount{}
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan monthly count row: %w", err)
		}
		counts = append(counts, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly counts: %w", err)
	}
	return counts, nil
}

// NeighborhoodCounts returns the top neighborhoods by incident count.
func (r *IncidentRepository) NeighborhoodCounts(ctx context.Context, f *models.Filter, limit int) ([]*models.LabelCount, error) {
	return r.labelCounts(ctx, f, "neighborhood", limit)
}

// CategoryCounts returns the top categories by incident count.
func (r *IncidentRepository) CategoryCounts(ctx context.Context, f *models.Filter, limit int) ([]*models.LabelCount, error) {
	return r.labelCounts(ctx, f, "category", limit)
}

// WeekdayCounts returns counts per weekday. Ordering to the canonical
// Monday..Sunday sequence is the service's job.
func (r *IncidentRepository) WeekdayCounts(ctx context.Context, f *models.Filter) ([]*models.LabelCount, error) {
	return r.labelCounts(ctx, f, "weekday", 0)
}

// labelCounts groups the filtered view by a label column. The column name
// is always one of our own identifiers, never user input.
func (r *IncidentRepository) labelCounts(ctx context.Context, f *models.Filter, column string, limit int) ([]*models.LabelCount, error) {
	where, args := buildWhere(f)
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) AS incidents
		FROM incidents
		%s
		GROUP BY %s
		ORDER BY incidents DESC, %s
	`, column, where, column, column)
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s counts: %w", column, err)
	}
	defer rows.Close()

	counts := make([]*models.LabelCount, 0)
	for rows.Next() {
		lc := &models.LabelCount{}
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan %s count row: %w", column, err)
		}
		counts = append(counts, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s counts: %w", column, err)
	}
	return counts, nil
}

// HourlyCounts returns counts per hour of day for the filtered view.
func (r *IncidentRepository) HourlyCounts(ctx context.Context, f *models.Filter) ([]*models.HourlyCount, error) {
	where, args := buildWhere(f)
	query := fmt.Sprintf(`
		SELECT hour, COUNT(*)
		FROM incidents
		%s
		GROUP BY hour
		ORDER BY hour;
	`, where)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get hourly counts: %w", err)
	}
	defer rows.Close()

	counts := make([]*models.HourlyCount, 0)
	for rows.Next() {
		hc := &models.HourlyCount{}
		if err := rows.Scan(&hc.Hour, &hc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan hourly count row: %w", err)
		}
		counts = append(counts, hc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hourly counts: %w", err)
	}
	return counts, nil
}

// HeatmapCounts returns the weekday x hour grid for the filtered view.
func (r *IncidentRepository) HeatmapCounts(ctx context.Context, f *models.Filter) ([]*models.HeatmapCell, error) {
	where, args := buildWhere(f)
	query := fmt.Sprintf(`
		SELECT weekday, hour, COUNT(*)
		FROM incidents
		%s
		GROUP BY weekday, hour
		ORDER BY weekday, hour;
	`, where)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get heatmap counts: %w", err)
	}
	defer rows.Close()

	cells := make([]*models.HeatmapCell, 0)
	for rows.Next() {
		cell := &models.HeatmapCell{}
		if err := rows.Scan(&cell.Weekday, &cell.Hour, &cell.Count); err != nil {
			return nil, fmt.Errorf("failed to scan heatmap row: %w", err)
		}
		cells = append(cells, cell)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating heatmap counts: %w", err)
	}
	return cells, nil
}

// FilterOptions returns the distinct filterable values in the dataset.
func (r *IncidentRepository) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	opts := &models.FilterOptions{}

	rows, err := r.db.Query(ctx, "SELECT DISTINCT year FROM incidents ORDER BY year;")
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct years: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("failed to scan year row: %w", err)
		}
		opts.Years = append(opts.Years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating years: %w", err)
	}

	opts.Neighborhoods, err = r.distinctLabels(ctx, "neighborhood")
	if err != nil {
		return nil, err
	}
	opts.Categories, err = r.distinctLabels(ctx, "category")
	if err != nil {
		return nil, err
	}
	return opts, nil
}

func (r *IncidentRepository) distinctLabels(ctx context.Context, column string) ([]string, error) {
	query := fmt.Sprintf("SELECT DISTINCT %s FROM incidents ORDER BY %s;", column, column)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct %s values: %w", column, err)
	}
	defer rows.Close()

	labels := make([]string, 0)
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", column, err)
		}
		labels = append(labels, label)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s values: %w", column, err)
	}
	return labels, nil
}

// ListFiltered returns the raw filtered rows for the CSV export.
func (r *IncidentRepository) ListFiltered(ctx context.Context, f *models.Filter) ([]*models.Incident, error) {
	where, args := buildWhere(f)
	query := fmt.Sprintf(`
		SELECT
			id, source_id, occurred_at, year, month, hour, weekday,
			category, neighborhood, latitude, longitude, resolution,
			created_at
		FROM incidents
		%s
		ORDER BY occurred_at;
	`, where)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list filtered incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		inc := &models.Incident{}
		err := rows.Scan(
			&inc.ID,
			&inc.SourceID,
			&inc.OccurredAt,
			&inc.Year,
			&inc.Month,
			&inc.Hour,
			&inc.Weekday,
			&inc.Category,
			&inc.Neighborhood,
			&inc.Latitude,
			&inc.Longitude,
			&inc.Resolution,
			&inc.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating filtered incidents: %w", err)
	}
	return incidents, nil
}

// CitywideMonthly returns unfiltered monthly totals, the forecast input.
func (r *IncidentRepository) CitywideMonthly(ctx context.Context) ([]*models.MonthlyCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT month, COUNT(*)
		FROM incidents
		GROUP BY month
		ORDER BY month;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get citywide monthly counts: %w", err)
	}
	defer rows.Close()

	counts := make([]*models.MonthlyCount, 0)
	for rows.Next() {
		mc := &models.MonthlyCount{}
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan citywide monthly row: %w", err)
		}
		counts = append(counts, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating citywide monthly counts: %w", err)
	}
	return counts, nil
}
