package models

// LookupReport aggregates the result of a full address lookup. It is
// constructed once per lookup and never mutated afterwards.
type LookupReport struct {
	InputAddress   string       `json:"input_address"`   // InputAddress is the caller's address string, verbatim.
	MatchedAddress string       `json:"matched_address"` // MatchedAddress is the address the geocoder resolved.
	Location       Location     `json:"location"`
	Zoning         ZoningResult `json:"zoning"`
}
