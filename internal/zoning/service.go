// Package zoning looks up municipal zoning and building attributes for a
// street address by chaining a geocoder and PortlandMaps feature layers.
package zoning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pdx-civic/zonelookup/internal/arcgis"
	"github.com/pdx-civic/zonelookup/internal/geocoding"
	"github.com/pdx-civic/zonelookup/internal/metrics"
	"github.com/pdx-civic/zonelookup/internal/models"
)

// FeatureQuerier is the feature-service query surface the service depends
// on. It is implemented by arcgis.Client.
type FeatureQuerier interface {
	QueryPoint(ctx context.Context, endpoint string, lat, lon float64) (*models.Feature, error)
	QueryFirst(ctx context.Context, endpoints []string, lat, lon float64) (*models.Feature, bool)
}

// ErrNoZoningData is returned when the zoning layer query succeeds but
// carries no feature at the geocoded point.
var ErrNoZoningData = errors.New("no zoning data found for this location")

// Service sequences geocode, zoning query and attribute extraction for one
// lookup. All state is per-call; the service itself holds only collaborators.
type Service struct {
	log      *slog.Logger       // Logger for logging service activities
	geocoder geocoding.Provider // Geocoding provider for address resolution
	gis      FeatureQuerier     // Feature-service client for spatial queries
	metrics  *metrics.Metrics   // Metrics for tracking upstream calls
}

// NewService creates a new lookup Service from its collaborators.
func NewService(log *slog.Logger, geocoder geocoding.Provider, gis FeatureQuerier, m *metrics.Metrics) *Service {
	return &Service{
		log:      log,
		geocoder: geocoder,
		gis:      gis,
		metrics:  m,
	}
}

// Lookup geocodes the address and queries the zoning layer at the resulting
// point. A geocoder miss fails fast before any spatial query is made. The
// zoning query is strict: transport failures propagate and an empty feature
// set surfaces as ErrNoZoningData.
func (s *Service) Lookup(ctx context.Context, address string) (*models.LookupReport, error) {
	start := time.Now()
	location, err := s.geocoder.Geocode(ctx, address)
	s.metrics.RequestSeconds.WithLabelValues("geocoder").Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.LookupsProcessed.WithLabelValues("failure").Inc()
		if !errors.Is(err, geocoding.ErrNoMatch) {
			s.metrics.UpstreamErrors.Inc()
		}
		return nil, fmt.Errorf("geocode address: %w", err)
	}

	s.log.InfoContext(ctx, "Address geocoded",
		"address", address, "lat", location.Latitude, "lon", location.Longitude)

	start = time.Now()
	feature, err := s.gis.QueryPoint(ctx, ZoningLayerURL, location.Latitude, location.Longitude)
	s.metrics.RequestSeconds.WithLabelValues("zoning").Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.LookupsProcessed.WithLabelValues("failure").Inc()
		if errors.Is(err, arcgis.ErrNoFeatures) {
			return nil, ErrNoZoningData
		}
		s.metrics.UpstreamErrors.Inc()
		return nil, fmt.Errorf("query zoning layer: %w", err)
	}

	s.metrics.LookupsProcessed.WithLabelValues("success").Inc()

	return &models.LookupReport{
		InputAddress:   address,
		MatchedAddress: location.MatchedAddress,
		Location:       *location,
		Zoning:         ExtractZoning(feature),
	}, nil
}

// LookupBuilding queries the building footprints layer at the given point in
// tolerant mode. Absence of building data is a valid outcome reported as
// nil; no error is ever returned.
func (s *Service) LookupBuilding(ctx context.Context, lat, lon float64) *models.BuildingInfo {
	start := time.Now()
	feature, found := s.gis.QueryFirst(ctx, []string{BuildingLayerURL}, lat, lon)
	s.metrics.RequestSeconds.WithLabelValues("building").Observe(time.Since(start).Seconds())
	if !found {
		s.log.DebugContext(ctx, "No building data at location", "lat", lat, "lon", lon)
		return nil
	}

	return ExtractBuilding(feature)
}

// LookupTaxlot queries the candidate taxlot layers at the given point in
// tolerant mode, returning the first feature found or nil.
func (s *Service) LookupTaxlot(ctx context.Context, lat, lon float64) *models.Feature {
	start := time.Now()
	feature, found := s.gis.QueryFirst(ctx, TaxlotLayerURLs, lat, lon)
	s.metrics.RequestSeconds.WithLabelValues("taxlot").Observe(time.Since(start).Seconds())
	if !found {
		s.log.DebugContext(ctx, "No taxlot data at location", "lat", lat, "lon", lon)
		return nil
	}

	return feature
}
