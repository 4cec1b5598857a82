package geocoding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pdx-civic/zonelookup/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider is a struct that holds the client for the Google Maps API
// and a logger. It is used as an alternative to the default Nominatim
// provider when an API key is configured.
type GoogleProvider struct {
	client GoogleAPIClient // client is the Google Maps API client
	log    *slog.Logger    // log is the logger for logging operations
}

// GoogleAPIClient is the subset of the Google Maps client used for
// geocoding. It allows for easy mocking in tests.
type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// NewGoogleProvider initializes a new GoogleProvider with the given Google
// Maps API client and logger.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Geocode takes a context and an address string as input, and returns the
// geographical coordinates and formatted address of the provided address
// using the Google Maps Geocoding API. An empty response is reported as
// ErrNoMatch; transport failures are wrapped and returned as-is.
func (gp *GoogleProvider) Geocode(ctx context.Context, address string) (*models.Location, error) {
	gp.log.DebugContext(ctx, "Geocoding using Google Maps", "address", address)

	req := maps.GeocodingRequest{Address: address}
	geocodeResponse, err := gp.client.Geocode(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}

	if len(geocodeResponse) == 0 {
		return nil, ErrNoMatch
	}
	coords := geocodeResponse[0].Geometry.Location

	return &models.Location{
		Latitude:       coords.Lat,
		Longitude:      coords.Lng,
		MatchedAddress: geocodeResponse[0].FormattedAddress,
	}, nil
}
