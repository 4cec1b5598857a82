package zoning

import (
	"fmt"
	"strconv"

	"github.com/pdx-civic/zonelookup/internal/models"
)

// ExtractZoning maps a raw zoning feature into a ZoningResult. It is a pure
// projection: all raw attributes are passed through for report rendering.
//
// The layer schema carries the overlay and plan district codes under the
// OVRLY and PLDIST keys; those are the keys read here and in the report
// renderer.
func ExtractZoning(feature *models.Feature) models.ZoningResult {
	attrs := feature.Attributes
	return models.ZoningResult{
		BaseZone:     attrText(attrs, "ZONE"),
		OverlayZones: attrText(attrs, "OVRLY"),
		PlanDistrict: attrText(attrs, "PLDIST"),
		Source:       zoningSource,
		Raw:          attrs,
	}
}

// ExtractBuilding projects the building footprint attributes into a
// BuildingInfo. No transformation is applied; attributes the layer did not
// populate stay nil.
func ExtractBuilding(feature *models.Feature) *models.BuildingInfo {
	attrs := feature.Attributes
	return &models.BuildingInfo{
		Name:               strAttr(attrs, "BLDG_NAME"),
		Address:            strAttr(attrs, "BLDG_ADDR"),
		BuildingID:         strAttr(attrs, "BLDG_ID"),
		YearBuilt:          intAttr(attrs, "YEAR_BUILT"),
		BuildingType:       strAttr(attrs, "BLDG_TYPE"),
		PredominantUse:     strAttr(attrs, "BLDG_USE"),
		SquareFootage:      floatAttr(attrs, "BLDG_SQFT"),
		Stories:            intAttr(attrs, "NUM_STORY"),
		ResidentialUnits:   intAttr(attrs, "UNITS_RES"),
		OccupancyCapacity:  intAttr(attrs, "OCCUP_CAP"),
		ADAAccessible:      strAttr(attrs, "ADA_ACCESS"),
		AverageHeight:      floatAttr(attrs, "AVG_HEIGHT"),
		MaximumHeight:      floatAttr(attrs, "MAX_HEIGHT"),
		MinimumHeight:      floatAttr(attrs, "MIN_HEIGHT"),
		RoofElevation:      floatAttr(attrs, "ROOF_ELEV"),
		StructureType:      strAttr(attrs, "STRUC_TYPE"),
		StructureCondition: strAttr(attrs, "STRUC_COND"),
	}
}

// attrText renders an attribute value as text, or "" when absent or null.
func attrText(attrs map[string]any, key string) string {
	value, ok := attrs[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// strAttr returns a pointer to the attribute's text form, or nil when the
// attribute is absent or null.
func strAttr(attrs map[string]any, key string) *string {
	value, ok := attrs[key]
	if !ok || value == nil {
		return nil
	}
	text := attrText(attrs, key)
	return &text
}

// intAttr returns the attribute as an int. JSON numbers decode as float64;
// numeric strings are parsed as a fallback.
func intAttr(attrs map[string]any, key string) *int {
	value, ok := attrs[key]
	if !ok || value == nil {
		return nil
	}
	switch v := value.(type) {
	case float64:
		n := int(v)
		return &n
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}

// floatAttr returns the attribute as a float64, or nil when absent, null or
// not numeric.
func floatAttr(attrs map[string]any, key string) *float64 {
	value, ok := attrs[key]
	if !ok || value == nil {
		return nil
	}
	switch v := value.(type) {
	case float64:
		return &v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}
