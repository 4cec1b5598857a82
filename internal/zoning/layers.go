package zoning

// PortlandMaps open-data feature-service layer endpoints.
const (
	// ZoningLayerURL is the zoning code layer, queried in strict mode.
	ZoningLayerURL = "https://www.portlandmaps.com/od/rest/services/COP_OpenData_ZoningCode/MapServer/16/query"

	// BuildingLayerURL is the building footprints layer, queried in tolerant mode.
	BuildingLayerURL = "https://www.portlandmaps.com/od/rest/services/COP_OpenData_Property/MapServer/184/query"
)

// TaxlotLayerURLs are the candidate taxlot layer endpoints, tried in order.
// The layer has moved between IDs across service revisions, so both are probed.
var TaxlotLayerURLs = []string{
	"https://www.portlandmaps.com/od/rest/services/COP_OpenData_Property/MapServer/1272/query",
	"https://www.portlandmaps.com/od/rest/services/COP_OpenData_Property/MapServer/47/query",
}

// zoningSource labels the dataset zoning results come from.
const zoningSource = "Portland Maps - Zoning Code"
