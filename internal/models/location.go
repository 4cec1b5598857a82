package models

// Location represents a geocoded address: the geographical point plus the
// normalized address text the geocoding service matched against.
type Location struct {
	Latitude       float64 `json:"latitude"`        // Latitude of the geocoded point.
	Longitude      float64 `json:"longitude"`       // Longitude of the geocoded point.
	MatchedAddress string  `json:"matched_address"` // MatchedAddress is the normalized address returned by the geocoder.
}
