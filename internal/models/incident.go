package models

import (
	"time"

	"github.com/google/uuid"
)

// Incident is a single SFPD incident report record. Records are immutable
// once loaded; year, month, hour and weekday are derived from OccurredAt at
// ingest time so every aggregation is a plain GROUP BY over indexed columns.
type Incident struct {
	ID           uuid.UUID `json:"id"`
	SourceID     string    `json:"source_id"`
	OccurredAt   time.Time `json:"occurred_at"`
	Year         int       `json:"year"`
	Month        time.Time `json:"month"`
	Hour         int       `json:"hour"`
	Weekday      string    `json:"weekday"`
	Category     string    `json:"category"`
	Neighborhood string    `json:"neighborhood"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Resolution   string    `json:"resolution"`
	CreatedAt    time.Time `json:"created_at"`
}
