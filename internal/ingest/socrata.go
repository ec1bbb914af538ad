package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sfdatalab/incident_analytics/internal/models"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPageSize     = 50000
	defaultFetchWorkers = 4
)

// socrataRecord is one row of the DataSF JSON API. Socrata serializes every
// field as a string.
type socrataRecord struct {
	RowID        string `json:"row_id"`
	Datetime     string `json:"incident_datetime"`
	Category     string `json:"incident_category"`
	Neighborhood string `json:"analysis_neighborhood"`
	Latitude     string `json:"latitude"`
	Longitude    string `json:"longitude"`
	Resolution   string `json:"resolution"`
}

// SocrataClient fetches incident records from the DataSF Socrata API.
type SocrataClient struct {
	baseURL    string
	httpClient *http.Client
	pageSize   int
	workers    int
}

// NewSocrataClient creates a client for the given dataset endpoint.
func NewSocrataClient(baseURL string, timeout time.Duration) *SocrataClient {
	return &SocrataClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		pageSize:   defaultPageSize,
		workers:    defaultFetchWorkers,
	}
}

// FetchAndClean downloads up to limit records, page by page, and runs them
// through the cleaner. Pages are fetched concurrently; record order is not
// preserved, which is fine since every consumer aggregates.
func (s *SocrataClient) FetchAndClean(ctx context.Context, cleaner *Cleaner, limit int) ([]*models.Incident, *Report, error) {
	if limit < 1 {
		return nil, nil, fmt.Errorf("fetch limit must be positive, got %d", limit)
	}

	pageSize := s.pageSize
	if pageSize > limit {
		pageSize = limit
	}
	pages := (limit + pageSize - 1) / pageSize

	results := make([][]*socrataRecord, pages)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for page := 0; page < pages; page++ {
		g.Go(func() error {
			offset := page * pageSize
			size := pageSize
			if offset+size > limit {
				size = limit - offset
			}
			records, err := s.fetchPage(gctx, offset, size)
			if err != nil {
				return fmt.Errorf("failed to fetch page at offset %d: %w", offset, err)
			}
			results[page] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	report := newReport()
	incidents := make([]*models.Incident, 0)

	for _, page := range results {
		for _, rec := range page {
			report.RowsRead++
			raw := &RawRecord{
				SourceID:     rec.RowID,
				Datetime:     rec.Datetime,
				Category:     rec.Category,
				Neighborhood: rec.Neighborhood,
				Latitude:     rec.Latitude,
				Longitude:    rec.Longitude,
				Resolution:   rec.Resolution,
			}
			incident, reason := cleaner.Clean(raw)
			if reason != "" {
				report.drop(reason)
				continue
			}
			incidents = append(incidents, incident)
		}
	}

	return incidents, report, nil
}

func (s *SocrataClient) fetchPage(ctx context.Context, offset, limit int) ([]*socrataRecord, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset URL: %w", err)
	}
	q := u.Query()
	q.Set("$limit", strconv.Itoa(limit))
	q.Set("$offset", strconv.Itoa(offset))
	q.Set("$order", "row_id")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset API returned status %d", resp.StatusCode)
	}

	var records []*socrataRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return records, nil
}
