package models

// BuildingInfo holds the building footprint attributes for a location.
// Every field is optional: a nil pointer means the layer did not carry a
// value for that attribute.
type BuildingInfo struct {
	Name               *string  `json:"name,omitempty"`
	Address            *string  `json:"address,omitempty"`
	BuildingID         *string  `json:"building_id,omitempty"`
	YearBuilt          *int     `json:"year_built,omitempty"`
	BuildingType       *string  `json:"building_type,omitempty"`
	PredominantUse     *string  `json:"predominant_use,omitempty"`
	SquareFootage      *float64 `json:"square_footage,omitempty"`
	Stories            *int     `json:"stories,omitempty"`
	ResidentialUnits   *int     `json:"residential_units,omitempty"`
	OccupancyCapacity  *int     `json:"occupancy_capacity,omitempty"`
	ADAAccessible      *string  `json:"ada_accessible,omitempty"`
	AverageHeight      *float64 `json:"average_height,omitempty"`
	MaximumHeight      *float64 `json:"maximum_height,omitempty"`
	MinimumHeight      *float64 `json:"minimum_height,omitempty"`
	RoofElevation      *float64 `json:"roof_elevation,omitempty"`
	StructureType      *string  `json:"structure_type,omitempty"`
	StructureCondition *string  `json:"structure_condition,omitempty"`
}
