package ingest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func socrataResponse(offset, limit int) []*socrataRecord {
	records := make([]*socrataRecord, 0, limit)
	for i := 0; i < limit; i++ {
		records = append(records, &socrataRecord{
			RowID:        strconv.Itoa(offset + i),
			Datetime:     "2023-06-15T22:30:00",
			Category:     "Larceny Theft",
			Neighborhood: "Mission",
			Latitude:     "37.7599",
			Longitude:    "-122.4148",
			Resolution:   "Open or Active",
		})
	}
	return records
}

func TestFetchAndClean_SinglePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("$limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("$offset"))
		assert.Equal(t, "row_id", r.URL.Query().Get("$order"))
		_ = json.NewEncoder(w).Encode(socrataResponse(offset, limit))
	}))
	defer server.Close()

	client := NewSocrataClient(server.URL, 5*time.Second)
	incidents, report, err := client.FetchAndClean(context.Background(), testCleaner(), 100)
	require.NoError(t, err)

	assert.Len(t, incidents, 100)
	assert.Equal(t, 100, report.RowsRead)
	assert.Equal(t, 0, report.Dropped())
}

func TestFetchAndClean_Paginates(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		limit, _ := strconv.Atoi(r.URL.Query().Get("$limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("$offset"))
		_ = json.NewEncoder(w).Encode(socrataResponse(offset, limit))
	}))
	defer server.Close()

	client := NewSocrataClient(server.URL, 5*time.Second)
	client.pageSize = 40

	incidents, _, err := client.FetchAndClean(context.Background(), testCleaner(), 100)
	require.NoError(t, err)

	assert.Len(t, incidents, 100)
	assert.Equal(t, int32(3), requests.Load())
}

func TestFetchAndClean_DropsDirtyRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		records := socrataResponse(0, 2)
		records[1].Neighborhood = ""
		_ = json.NewEncoder(w).Encode(records)
	}))
	defer server.Close()

	client := NewSocrataClient(server.URL, 5*time.Second)
	incidents, report, err := client.FetchAndClean(context.Background(), testCleaner(), 2)
	require.NoError(t, err)

	assert.Len(t, incidents, 1)
	assert.Equal(t, 1, report.DropReasons[DropMissingNeighborhood])
}

func TestFetchAndClean_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewSocrataClient(server.URL, 5*time.Second)
	_, _, err := client.FetchAndClean(context.Background(), testCleaner(), 10)
	assert.Error(t, err)
}

func TestFetchAndClean_InvalidLimit(t *testing.T) {
	client := NewSocrataClient("http://localhost:1", time.Second)
	_, _, err := client.FetchAndClean(context.Background(), testCleaner(), 0)
	assert.Error(t, err)
}
