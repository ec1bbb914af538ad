package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sfdatalab/incident_analytics/internal/models"
)

// Drop reasons reported per ingest run.
const (
	DropBadDatetime         = "bad_datetime"
	DropMissingNeighborhood = "missing_neighborhood"
	DropUnknownNeighborhood = "unknown_neighborhood"
	DropMissingCategory     = "missing_category"
	DropMissingLocation     = "missing_location"
	DropOutOfRange          = "out_of_year_range"
)

// datetimeFormats are tried in order when parsing the incident datetime.
// DataSF CSV exports use the first form, the Socrata API the second.
var datetimeFormats = []string{
	"2006/01/02 03:04:05 PM",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02 15:04:05",
}

// RawRecord is one source row before cleaning, all fields as strings.
type RawRecord struct {
	SourceID     string
	Datetime     string
	Category     string
	Neighborhood string
	Latitude     string
	Longitude    string
	Resolution   string
}

// Report accumulates drop reasons during cleaning.
type Report struct {
	RowsRead    int
	DropReasons map[string]int
}

func newReport() *Report {
	return &Report{DropReasons: make(map[string]int)}
}

func (r *Report) drop(reason string) {
	r.DropReasons[reason]++
}

// Dropped returns the total number of dropped rows.
func (r *Report) Dropped() int {
	total := 0
	for _, n := range r.DropReasons {
		total += n
	}
	return total
}

// Cleaner applies the ingest cleaning rules and converts raw source rows
// into incident models.
type Cleaner struct {
	YearFrom int
	YearTo   int
}

// Clean validates a raw record and returns the incident model, or an empty
// drop reason string when the row passes. Hour and weekday are derived from
// the parsed timestamp rather than trusted from the source.
func (c *Cleaner) Clean(raw *RawRecord) (*models.Incident, string) {
	occurredAt, ok := parseDatetime(raw.Datetime)
	if !ok {
		return nil, DropBadDatetime
	}

	neighborhood := strings.TrimSpace(raw.Neighborhood)
	if neighborhood == "" {
		return nil, DropMissingNeighborhood
	}
	if !IsAnalysisNeighborhood(neighborhood) {
		return nil, DropUnknownNeighborhood
	}

	category := strings.TrimSpace(raw.Category)
	if category == "" {
		return nil, DropMissingCategory
	}

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(raw.Latitude), 64)
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(raw.Longitude), 64)
	if latErr != nil || lonErr != nil {
		return nil, DropMissingLocation
	}

	year := occurredAt.Year()
	if year < c.YearFrom || year > c.YearTo {
		return nil, DropOutOfRange
	}

	return &models.Incident{
		ID:           uuid.New(),
		SourceID:     strings.TrimSpace(raw.SourceID),
		OccurredAt:   occurredAt,
		Year:         year,
		Month:        time.Date(year, occurredAt.Month(), 1, 0, 0, 0, 0, time.UTC),
		Hour:         occurredAt.Hour(),
		Weekday:      occurredAt.Weekday().String(),
		Category:     category,
		Neighborhood: neighborhood,
		Latitude:     lat,
		Longitude:    lon,
		Resolution:   strings.TrimSpace(raw.Resolution),
	}, ""
}

func parseDatetime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, format := range datetimeFormats {
		if ts, err := time.Parse(format, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
