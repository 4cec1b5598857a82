// Package arcgis implements point-intersection queries against ArcGIS map
// feature services, with a strict single-endpoint mode and a tolerant
// multi-endpoint fallback mode.
package arcgis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pdx-civic/zonelookup/internal/models"
)

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client queries ArcGIS feature-service layer endpoints. Every query uses
// the same fixed parameter shape: a WGS84 point geometry, an intersects
// spatial relation, all output fields and a JSON response.
type Client struct {
	client HTTPClient   // HTTP client for making requests
	log    *slog.Logger // Logger for logging operations
}

// ErrNoFeatures is returned by QueryPoint when the layer responds
// successfully but contains no feature at the queried point.
var ErrNoFeatures = errors.New("no features found at this location")

// queryResponse represents the JSON response of a feature-service query.
// ArcGIS reports service-level failures in-band via the error object.
type queryResponse struct {
	Features []models.Feature `json:"features"`
	Error    *serviceError    `json:"error"`
}

type serviceError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewClient creates a feature-service client. The timeout bounds each
// query attempt; both strict and tolerant queries use the same bound.
func NewClient(timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NewClientWithHTTP creates a feature-service client with a custom HTTP
// client. Useful for testing with mocked HTTP clients.
func NewClientWithHTTP(client HTTPClient, log *slog.Logger) *Client {
	return &Client{client: client, log: log}
}

// QueryPoint issues a strict point-intersection query against a single layer
// endpoint. Transport failures, non-2xx statuses, malformed JSON and in-band
// service errors are all propagated; an empty feature set is reported as
// ErrNoFeatures.
func (c *Client) QueryPoint(ctx context.Context, endpoint string, lat, lon float64) (*models.Feature, error) {
	reqURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layer endpoint: %w", err)
	}

	query := reqURL.Query()
	query.Set("geometry", strconv.FormatFloat(lon, 'f', -1, 64)+","+strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("geometryType", "esriGeometryPoint")
	query.Set("inSR", "4326")
	query.Set("spatialRel", "esriSpatialRelIntersects")
	query.Set("outFields", "*")
	query.Set("where", "1=1")
	query.Set("f", "json")
	reqURL.RawQuery = query.Encode()

	c.log.DebugContext(ctx, "Querying feature layer", "url", reqURL.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute layer query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.ErrorContext(ctx, "Feature service error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("feature service returned status %d: %s", resp.StatusCode, string(body))
	}

	var result queryResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode feature service response: %w", err)
	}

	if result.Error != nil {
		return nil, fmt.Errorf("feature service returned error %d: %s", result.Error.Code, result.Error.Message)
	}

	if len(result.Features) == 0 {
		return nil, ErrNoFeatures
	}

	return &result.Features[0], nil
}

// QueryFirst issues tolerant point-intersection queries against an ordered
// list of candidate endpoints for the same logical layer. It returns the
// first feature found from the first endpoint that has one. Failures and
// empty result sets are converted to absence at this single boundary: the
// next endpoint is tried and no error is ever returned.
func (c *Client) QueryFirst(ctx context.Context, endpoints []string, lat, lon float64) (*models.Feature, bool) {
	for _, endpoint := range endpoints {
		feature, err := c.QueryPoint(ctx, endpoint, lat, lon)
		if err != nil {
			c.log.DebugContext(ctx, "Tolerant layer query missed, trying next endpoint",
				"endpoint", endpoint, "error", err)
			continue
		}
		return feature, true
	}

	return nil, false
}
