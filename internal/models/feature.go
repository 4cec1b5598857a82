package models

// Feature represents a single GIS record returned by a feature-service query.
// Attribute keys and value types are layer specific.
type Feature struct {
	Attributes map[string]any `json:"attributes"`
}
