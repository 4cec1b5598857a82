// Package report renders lookup results as deterministic plain-text reports.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pdx-civic/zonelookup/internal/models"
)

// noValue marks attributes the upstream layer did not populate. It is kept
// stable so reports stay byte-identical for identical inputs.
const noValue = "n/a"

// labelWidth is the left-aligned label column width in attribute listings.
const labelWidth = 25

// FormatZoningReport renders the full zoning report for one lookup.
// The ADDRESS LOOKUP section echoes the caller's input address verbatim.
func FormatZoningReport(r *models.LookupReport) string {
	zoning := r.Zoning
	attrs := zoning.Raw
	lines := []string{
		"ADDRESS LOOKUP",
		"  Input Address   : " + r.InputAddress,
		"  Matched Address : " + orMarker(r.MatchedAddress),
		"",
		"LOCATION",
		"  Latitude  : " + formatCoord(r.Location.Latitude),
		"  Longitude : " + formatCoord(r.Location.Longitude),
		"",
		"ZONING SUMMARY",
		fmt.Sprintf("  Base Zone       : %s (%s)", orMarker(zoning.BaseZone), rawText(attrs, "ZONE_DESC")),
		fmt.Sprintf("  Overlay Zone    : %s (%s)", orMarker(zoning.OverlayZones), rawText(attrs, "OVRLY_DESC")),
		fmt.Sprintf("  Plan District   : %s (%s)", orMarker(zoning.PlanDistrict), rawText(attrs, "PLDIST_DESC")),
		"  Map Label       : " + rawText(attrs, "MAPLABEL"),
		"",
		"COMPREHENSIVE PLAN",
		fmt.Sprintf("  Designation     : %s (%s)", rawText(attrs, "CMP"), rawText(attrs, "CMP_DESC")),
		"",
		"DATA SOURCE",
		"  " + zoning.Source,
	}
	return strings.Join(lines, "\n")
}

// FormatBuildingReport renders the building attributes as fixed-width
// label/value rows. A nil BuildingInfo renders an explicit no-data line.
func FormatBuildingReport(b *models.BuildingInfo) string {
	lines := []string{"BUILDING INFORMATION"}
	if b == nil {
		lines = append(lines, "  (No building info found for this location)")
		return strings.Join(lines, "\n")
	}

	rows := []struct {
		label string
		value string
	}{
		{"Building Name", strVal(b.Name)},
		{"Building Address", strVal(b.Address)},
		{"Building ID", strVal(b.BuildingID)},
		{"Year Built", intVal(b.YearBuilt)},
		{"Building Type", strVal(b.BuildingType)},
		{"Predominant Use", strVal(b.PredominantUse)},
		{"Square Footage", floatVal(b.SquareFootage)},
		{"Number of Stories", intVal(b.Stories)},
		{"Residential Units", intVal(b.ResidentialUnits)},
		{"Total Occupancy", intVal(b.OccupancyCapacity)},
		{"ADA Accessible", strVal(b.ADAAccessible)},
		{"Average Height", floatVal(b.AverageHeight)},
		{"Maximum Height", floatVal(b.MaximumHeight)},
		{"Minimum Height", floatVal(b.MinimumHeight)},
		{"Roof Elevation", floatVal(b.RoofElevation)},
		{"Structure Type", strVal(b.StructureType)},
		{"Structure Condition", strVal(b.StructureCondition)},
	}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("  %-*s: %s", labelWidth, row.label, row.value))
	}
	return strings.Join(lines, "\n")
}

// FormatTaxlotReport renders the raw taxlot attributes in key order. A nil
// feature renders an explicit no-data line.
func FormatTaxlotReport(f *models.Feature) string {
	lines := []string{"TAXLOT INFORMATION"}
	if f == nil || len(f.Attributes) == 0 {
		lines = append(lines, "  (No taxlot info found for this location)")
		return strings.Join(lines, "\n")
	}

	keys := make([]string, 0, len(f.Attributes))
	for key := range f.Attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("  %-*s: %s", labelWidth, key, rawText(f.Attributes, key)))
	}
	return strings.Join(lines, "\n")
}

// rawText renders a raw attribute value, or the no-value marker when the key
// is absent or null.
func rawText(attrs map[string]any, key string) string {
	value, ok := attrs[key]
	if !ok || value == nil {
		return noValue
	}
	switch v := value.(type) {
	case string:
		return orMarker(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orMarker(s string) string {
	if s == "" {
		return noValue
	}
	return s
}

func strVal(p *string) string {
	if p == nil {
		return noValue
	}
	return orMarker(*p)
}

func intVal(p *int) string {
	if p == nil {
		return noValue
	}
	return strconv.Itoa(*p)
}

func floatVal(p *float64) string {
	if p == nil {
		return noValue
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
