package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sfdatalab/incident_analytics/internal/config"
	"github.com/sfdatalab/incident_analytics/internal/ingest"
	"github.com/sfdatalab/incident_analytics/internal/models"
	"github.com/sfdatalab/incident_analytics/internal/webhook"
	"github.com/sirupsen/logrus"
)

// datasetFetchTimeout bounds a single page request against the open data
// API. Pages are 50k rows, so responses can take a while.
const datasetFetchTimeout = 2 * time.Minute

// IngestService defines the contract for replacing the incident dataset.
type IngestService interface {
	LoadCSVFile(ctx context.Context, path string) (*models.IngestReport, error)
	LoadFromAPI(ctx context.Context, limit int) (*models.IngestReport, error)
}

type ingestService struct {
	repo      IncidentRepository
	publisher webhook.Publisher
	cfg       *config.Config
	logger    *logrus.Logger
}

func NewIngestService(repo IncidentRepository, publisher webhook.Publisher, cfg *config.Config, logger *logrus.Logger) IngestService {
	return &ingestService{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

// LoadCSVFile cleans a local dataset export and replaces the incident table
// with its contents.
func (s *ingestService) LoadCSVFile(ctx context.Context, path string) (*models.IngestReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "ingest",
		"method":  "LoadCSVFile",
		"path":    path,
	})
	log.Info("Loading dataset from CSV file")
	started := time.Now()

	cleaner := s.cleaner()
	incidents, report, err := cleaner.ParseCSVFile(path)
	if err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("service: could not parse csv: %w", err)
	}

	return s.replace(ctx, log, "csv:"+path, incidents, report, started)
}

// LoadFromAPI fetches the dataset from the open data API and replaces the
// incident table with its contents.
func (s *ingestService) LoadFromAPI(ctx context.Context, limit int) (*models.IngestReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "ingest",
		"method":  "LoadFromAPI",
		"limit":   limit,
	})
	log.Info("Loading dataset from open data API")
	started := time.Now()

	client := ingest.NewSocrataClient(s.cfg.DatasetURL, datasetFetchTimeout)
	incidents, report, err := client.FetchAndClean(ctx, s.cleaner(), limit)
	if err != nil {
		log.WithError(err).Error("Failed to fetch dataset from API")
		return nil, fmt.Errorf("service: could not fetch dataset: %w", err)
	}

	return s.replace(ctx, log, "api:"+s.cfg.DatasetURL, incidents, report, started)
}

func (s *ingestService) cleaner() *ingest.Cleaner {
	return &ingest.Cleaner{
		YearFrom: s.cfg.DataYearFrom,
		YearTo:   s.cfg.DataYearTo,
	}
}

// replace swaps the dataset in one transaction, flushes stale aggregates
// and announces the refresh.
func (s *ingestService) replace(ctx context.Context, log *logrus.Entry, source string, incidents []*models.Incident, report *ingest.Report, started time.Time) (*models.IngestReport, error) {
	if len(incidents) == 0 {
		return nil, fmt.Errorf("service: no rows survived cleaning (%d read, %d dropped)", report.RowsRead, report.Dropped())
	}

	copied, err := s.repo.ReplaceIncidents(ctx, incidents)
	if err != nil {
		log.WithError(err).Error("Failed to replace incident dataset")
		return nil, fmt.Errorf("service: could not replace dataset: %w", err)
	}

	if err := s.repo.FlushAggregateCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to flush aggregate cache after reload")
	}

	out := &models.IngestReport{
		Source:      source,
		RowsRead:    report.RowsRead,
		RowsLoaded:  copied,
		RowsDropped: report.Dropped(),
		DropReasons: report.DropReasons,
		StartedAt:   started,
		Duration:    time.Since(started),
	}

	event := webhook.Event{
		Type:        webhook.EventDatasetRefreshed,
		Source:      source,
		RowsLoaded:  out.RowsLoaded,
		RowsDropped: out.RowsDropped,
		DropReasons: out.DropReasons,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish dataset refresh event")
	}

	log.WithFields(logrus.Fields{
		"rows_read":    out.RowsRead,
		"rows_loaded":  out.RowsLoaded,
		"rows_dropped": out.RowsDropped,
		"duration":     out.Duration.String(),
	}).Info("Dataset replaced")
	return out, nil
}
