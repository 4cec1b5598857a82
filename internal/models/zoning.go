package models

// ZoningResult is a read-only view over a zoning layer feature. Raw carries
// every attribute of the underlying feature so that report rendering can read
// fields that are not explicitly modeled here.
type ZoningResult struct {
	BaseZone     string         `json:"base_zone"`     // BaseZone is the base zone code, e.g. "R5".
	OverlayZones string         `json:"overlay_zones"` // OverlayZones is the overlay zone code(s), if any.
	PlanDistrict string         `json:"plan_district"` // PlanDistrict is the plan district code, if any.
	Source       string         `json:"source"`        // Source names the dataset the result came from.
	Raw          map[string]any `json:"raw_attributes"`
}
