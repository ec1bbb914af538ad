package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/sfdatalab/incident_analytics/internal/config"
	"github.com/sfdatalab/incident_analytics/internal/models"
	"github.com/sfdatalab/incident_analytics/internal/repository"
	"github.com/sfdatalab/incident_analytics/internal/service"
	"github.com/sfdatalab/incident_analytics/internal/webhook"
	"github.com/sfdatalab/incident_analytics/pkg/logger"
	"github.com/sfdatalab/incident_analytics/pkg/postgres"
	redisclient "github.com/sfdatalab/incident_analytics/pkg/redis"
	"github.com/sirupsen/logrus"
)

// loaderEnv wires the ingest service from the environment, mirroring the
// server bootstrap minus HTTP.
type loaderEnv struct {
	cfg     *config.Config
	log     *logrus.Logger
	ingest  service.IngestService
	cleanup func()
}

func newLoaderEnv(ctx context.Context, opts *RootOptions) (*loaderEnv, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := cfg.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}
	log := logger.New(logLevel)

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	repo := repository.NewIncidentRepository(dbpool, redisClient, cfg.CacheTTL)
	publisher := webhook.NewRedisPublisher(redisClient)
	ingestService := service.NewIngestService(repo, publisher, cfg, log)

	return &loaderEnv{
		cfg:    cfg,
		log:    log,
		ingest: ingestService,
		cleanup: func() {
			redisClient.Close()
			dbpool.Close()
		},
	}, nil
}

// printReport renders the ingest report as an aligned table on stdout.
func printReport(report *models.IngestReport) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "source:\t%s\n", report.Source)
	fmt.Fprintf(w, "rows read:\t%d\n", report.RowsRead)
	fmt.Fprintf(w, "rows loaded:\t%d\n", report.RowsLoaded)
	fmt.Fprintf(w, "rows dropped:\t%d\n", report.RowsDropped)
	for reason, n := range report.DropReasons {
		fmt.Fprintf(w, "  %s:\t%d\n", reason, n)
	}
	fmt.Fprintf(w, "duration:\t%s\n", report.Duration.Round(time.Millisecond))
	w.Flush()
}
