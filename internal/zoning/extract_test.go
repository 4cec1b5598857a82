package zoning_test

import (
	"testing"

	"github.com/pdx-civic/zonelookup/internal/models"
	"github.com/pdx-civic/zonelookup/internal/zoning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractZoning(t *testing.T) {
	t.Run("maps known keys and passes raw attributes through", func(t *testing.T) {
		feature := &models.Feature{Attributes: map[string]any{
			"ZONE":      "R5",
			"ZONE_DESC": "Residential 5,000",
			"OVRLY":     "a",
			"PLDIST":    nil,
			"MAPLABEL":  "R5a",
		}}

		result := zoning.ExtractZoning(feature)

		assert.Equal(t, "R5", result.BaseZone)
		assert.Equal(t, "a", result.OverlayZones)
		assert.Empty(t, result.PlanDistrict)
		assert.Equal(t, "Portland Maps - Zoning Code", result.Source)
		assert.Equal(t, feature.Attributes, result.Raw)
	})

	t.Run("numeric attribute values render as text", func(t *testing.T) {
		feature := &models.Feature{Attributes: map[string]any{
			"ZONE": float64(12),
		}}

		result := zoning.ExtractZoning(feature)

		assert.Equal(t, "12", result.BaseZone)
	})
}

func TestExtractBuilding(t *testing.T) {
	t.Run("projects populated attributes", func(t *testing.T) {
		feature := &models.Feature{Attributes: map[string]any{
			"BLDG_NAME":  "Laurelhurst Studios",
			"BLDG_ADDR":  "935 NE 33RD AVE",
			"BLDG_ID":    float64(118204),
			"YEAR_BUILT": float64(1925),
			"BLDG_TYPE":  "Commercial",
			"BLDG_SQFT":  12850.5,
			"NUM_STORY":  float64(2),
			"UNITS_RES":  float64(0),
			"ADA_ACCESS": "No",
			"AVG_HEIGHT": 24.3,
			"STRUC_COND": nil,
		}}

		info := zoning.ExtractBuilding(feature)

		require.NotNil(t, info)
		require.NotNil(t, info.Name)
		assert.Equal(t, "Laurelhurst Studios", *info.Name)
		require.NotNil(t, info.BuildingID)
		assert.Equal(t, "118204", *info.BuildingID)
		require.NotNil(t, info.YearBuilt)
		assert.Equal(t, 1925, *info.YearBuilt)
		require.NotNil(t, info.SquareFootage)
		assert.InEpsilon(t, 12850.5, *info.SquareFootage, 0.0001)
		require.NotNil(t, info.Stories)
		assert.Equal(t, 2, *info.Stories)
		require.NotNil(t, info.ResidentialUnits)
		assert.Equal(t, 0, *info.ResidentialUnits)
		require.NotNil(t, info.ADAAccessible)
		assert.Equal(t, "No", *info.ADAAccessible)
		require.NotNil(t, info.AverageHeight)
		assert.InEpsilon(t, 24.3, *info.AverageHeight, 0.0001)
	})

	t.Run("absent and null attributes stay nil", func(t *testing.T) {
		feature := &models.Feature{Attributes: map[string]any{
			"BLDG_NAME":  nil,
			"YEAR_BUILT": "not-a-year",
		}}

		info := zoning.ExtractBuilding(feature)

		require.NotNil(t, info)
		assert.Nil(t, info.Name)
		assert.Nil(t, info.Address)
		assert.Nil(t, info.YearBuilt)
		assert.Nil(t, info.StructureCondition)
	})

	t.Run("numeric strings parse into numeric fields", func(t *testing.T) {
		feature := &models.Feature{Attributes: map[string]any{
			"YEAR_BUILT": "1925",
			"BLDG_SQFT":  "12850.5",
		}}

		info := zoning.ExtractBuilding(feature)

		require.NotNil(t, info.YearBuilt)
		assert.Equal(t, 1925, *info.YearBuilt)
		require.NotNil(t, info.SquareFootage)
		assert.InEpsilon(t, 12850.5, *info.SquareFootage, 0.0001)
	})
}
