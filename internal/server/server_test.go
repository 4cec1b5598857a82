package server_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pdx-civic/zonelookup/internal/geocoding"
	"github.com/pdx-civic/zonelookup/internal/models"
	"github.com/pdx-civic/zonelookup/internal/server"
	"github.com/pdx-civic/zonelookup/internal/zoning"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLookupService is a func-backed server.LookupService for testing.
type fakeLookupService struct {
	lookupFunc   func(ctx context.Context, address string) (*models.LookupReport, error)
	buildingFunc func(ctx context.Context, lat, lon float64) *models.BuildingInfo
	taxlotFunc   func(ctx context.Context, lat, lon float64) *models.Feature
}

func (f *fakeLookupService) Lookup(ctx context.Context, address string) (*models.LookupReport, error) {
	return f.lookupFunc(ctx, address)
}

func (f *fakeLookupService) LookupBuilding(ctx context.Context, lat, lon float64) *models.BuildingInfo {
	if f.buildingFunc == nil {
		return nil
	}
	return f.buildingFunc(ctx, lat, lon)
}

func (f *fakeLookupService) LookupTaxlot(ctx context.Context, lat, lon float64) *models.Feature {
	if f.taxlotFunc == nil {
		return nil
	}
	return f.taxlotFunc(ctx, lat, lon)
}

func newTestServer(svc server.LookupService) *server.Server {
	return server.New(slog.Default(), svc, prometheus.NewRegistry(), 0)
}

func doLookup(t *testing.T, srv *server.Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Lookup(t *testing.T) {
	sampleReport := &models.LookupReport{
		InputAddress:   "935 NE 33RD AVE, Portland, OR",
		MatchedAddress: "935, Northeast 33rd Avenue, Portland, Oregon",
		Location:       models.Location{Latitude: 45.5352, Longitude: -122.6301},
		Zoning: models.ZoningResult{
			BaseZone: "R5",
			Source:   "Portland Maps - Zoning Code",
			Raw:      map[string]any{"ZONE": "R5"},
		},
	}

	t.Run("missing address parameter", func(t *testing.T) {
		svc := &fakeLookupService{
			lookupFunc: func(_ context.Context, _ string) (*models.LookupReport, error) {
				t.Fatal("lookup should not be called without an address")
				return nil, nil
			},
		}

		rec := doLookup(t, newTestServer(svc), "/api/v1/lookup")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "address query parameter is required")
	})

	t.Run("geocoder miss maps to 404", func(t *testing.T) {
		svc := &fakeLookupService{
			lookupFunc: func(_ context.Context, _ string) (*models.LookupReport, error) {
				return nil, geocoding.ErrNoMatch
			},
		}

		rec := doLookup(t, newTestServer(svc), "/api/v1/lookup?address=nowhere")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("no zoning data maps to 404", func(t *testing.T) {
		svc := &fakeLookupService{
			lookupFunc: func(_ context.Context, _ string) (*models.LookupReport, error) {
				return nil, zoning.ErrNoZoningData
			},
		}

		rec := doLookup(t, newTestServer(svc), "/api/v1/lookup?address=somewhere")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("transport failure maps to 502", func(t *testing.T) {
		svc := &fakeLookupService{
			lookupFunc: func(_ context.Context, _ string) (*models.LookupReport, error) {
				return nil, assert.AnError
			},
		}

		rec := doLookup(t, newTestServer(svc), "/api/v1/lookup?address=somewhere")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("successful lookup aggregates building and taxlot", func(t *testing.T) {
		name := "Laurelhurst Studios"
		svc := &fakeLookupService{
			lookupFunc: func(_ context.Context, address string) (*models.LookupReport, error) {
				assert.Equal(t, "935 NE 33RD AVE, Portland, OR", address)
				return sampleReport, nil
			},
			buildingFunc: func(_ context.Context, lat, lon float64) *models.BuildingInfo {
				assert.InEpsilon(t, 45.5352, lat, 0.0001)
				assert.InEpsilon(t, -122.6301, lon, 0.0001)
				return &models.BuildingInfo{Name: &name}
			},
			taxlotFunc: func(_ context.Context, _, _ float64) *models.Feature {
				return &models.Feature{Attributes: map[string]any{"TAXLOT": "1S1E36AB"}}
			},
		}

		rec := doLookup(t, newTestServer(svc), "/api/v1/lookup?address=935+NE+33RD+AVE%2C+Portland%2C+OR")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp struct {
			Report   *models.LookupReport `json:"report"`
			Building *models.BuildingInfo `json:"building"`
			Taxlot   map[string]any       `json:"taxlot"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Report)
		assert.Equal(t, "935 NE 33RD AVE, Portland, OR", resp.Report.InputAddress)
		assert.Equal(t, "R5", resp.Report.Zoning.BaseZone)
		require.NotNil(t, resp.Building)
		assert.Equal(t, name, *resp.Building.Name)
		assert.Equal(t, "1S1E36AB", resp.Taxlot["TAXLOT"])
	})

	t.Run("building absence thins the response body", func(t *testing.T) {
		svc := &fakeLookupService{
			lookupFunc: func(_ context.Context, _ string) (*models.LookupReport, error) {
				return sampleReport, nil
			},
		}

		rec := doLookup(t, newTestServer(svc), "/api/v1/lookup?address=somewhere")

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.NotContains(t, body, `"building"`)
		assert.NotContains(t, body, `"taxlot"`)
	})
}

func TestServer_Health(t *testing.T) {
	svc := &fakeLookupService{}
	rec := doLookup(t, newTestServer(svc), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	svc := &fakeLookupService{}
	rec := doLookup(t, newTestServer(svc), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
}
