package geocoding

import (
	"context"
	"errors"
	"net/http"

	"github.com/pdx-civic/zonelookup/internal/models"
)

// Provider is an interface that defines a method for geocoding an address.
// The Geocode method takes a context and an address string as input, and
// returns the matched location and an error if any occurs.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.Location, error)
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ErrNoMatch is returned when the geocoding service finds no location for
// the given address. It is distinct from transport failures, which are
// wrapped and propagated as-is.
var ErrNoMatch = errors.New("address could not be geocoded")
