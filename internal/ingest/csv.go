package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sfdatalab/incident_analytics/internal/models"
)

// Source column names as they appear in DataSF CSV exports. Matching is
// case-insensitive after trimming, so both "Incident Datetime" and
// "incident_datetime" headers work.
const (
	colRowID        = "row id"
	colDatetime     = "incident datetime"
	colCategory     = "incident category"
	colNeighborhood = "analysis neighborhood"
	colLatitude     = "latitude"
	colLongitude    = "longitude"
	colResolution   = "resolution"
)

// ParseCSVFile loads and cleans a DataSF incident CSV export from disk.
func (c *Cleaner) ParseCSVFile(path string) ([]*models.Incident, *Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer file.Close()

	return c.ParseCSV(file)
}

// ParseCSV reads the incident CSV from r, applying the cleaning rules row
// by row. Rows that fail a rule are counted in the report, not returned.
func (c *Cleaner) ParseCSV(r io.Reader) ([]*models.Incident, *Report, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	idx := indexHeader(header)
	if idx[colDatetime] < 0 || idx[colCategory] < 0 || idx[colNeighborhood] < 0 {
		return nil, nil, fmt.Errorf("csv is missing required columns (datetime, category, neighborhood)")
	}

	report := newReport()
	incidents := make([]*models.Incident, 0)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		report.RowsRead++

		raw := &RawRecord{
			SourceID:     field(record, idx[colRowID]),
			Datetime:     field(record, idx[colDatetime]),
			Category:     field(record, idx[colCategory]),
			Neighborhood: field(record, idx[colNeighborhood]),
			Latitude:     field(record, idx[colLatitude]),
			Longitude:    field(record, idx[colLongitude]),
			Resolution:   field(record, idx[colResolution]),
		}

		incident, reason := c.Clean(raw)
		if reason != "" {
			report.drop(reason)
			continue
		}
		incidents = append(incidents, incident)
	}

	return incidents, report, nil
}

// indexHeader maps the known source columns to their positions, -1 when absent.
func indexHeader(header []string) map[string]int {
	idx := map[string]int{
		colRowID:        -1,
		colDatetime:     -1,
		colCategory:     -1,
		colNeighborhood: -1,
		colLatitude:     -1,
		colLongitude:    -1,
		colResolution:   -1,
	}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		name = strings.ReplaceAll(name, "_", " ")
		if _, known := idx[name]; known {
			idx[name] = i
		}
	}
	return idx
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}
