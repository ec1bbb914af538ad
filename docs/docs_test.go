package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var filterParamNames = []string{
	"year_from", "year_to", "neighborhood", "category", "weekday",
	"hour_from", "hour_to",
}

// Every endpoint that binds the dashboard filter must declare its query
// parameters, otherwise Swagger UI renders them parameterless.
func TestSwaggerSpec_FilterEndpointsDeclareParameters(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var spec struct {
		Paths map[string]map[string]struct {
			Parameters []struct {
				Name string `json:"name"`
				In   string `json:"in"`
			} `json:"parameters"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))

	filterPaths := []string{
		"/analytics/summary",
		"/analytics/monthly",
		"/analytics/neighborhoods",
		"/analytics/categories",
		"/analytics/hourly",
		"/analytics/weekdays",
		"/analytics/heatmap",
		"/analytics/export",
	}
	for _, path := range filterPaths {
		get, ok := spec.Paths[path]["get"]
		require.True(t, ok, "missing GET %s", path)

		names := make(map[string]bool, len(get.Parameters))
		for _, p := range get.Parameters {
			assert.Equal(t, "query", p.In, "%s parameter %s", path, p.Name)
			names[p.Name] = true
		}
		for _, want := range filterParamNames {
			assert.True(t, names[want], "%s is missing parameter %s", path, want)
		}
	}

	for _, path := range []string{"/analytics/neighborhoods", "/analytics/categories"} {
		get := spec.Paths[path]["get"]
		found := false
		for _, p := range get.Parameters {
			if p.Name == "limit" {
				found = true
			}
		}
		assert.True(t, found, "%s is missing parameter limit", path)
	}

	forecast, ok := spec.Paths["/forecast"]["get"]
	require.True(t, ok)
	require.Len(t, forecast.Parameters, 1)
	assert.Equal(t, "steps", forecast.Parameters[0].Name)
}
