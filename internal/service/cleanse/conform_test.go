package cleanse

import (
	"testing"
	"time"

	"github.com/stock-ahora/api-dwh/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocations(t *testing.T) {
	raws := []models.RawLocation{
		{CustomerID: "AW-00011000", Country: "DE"},
		{CustomerID: "AW-00011001", Country: "US"},
		{CustomerID: "AW-00011002", Country: "usa"},
		{CustomerID: "AW-00011003", Country: ""},
		{CustomerID: "AW-00011004", Country: "  Chile "},
	}

	cleaned, stats := Locations(raws)

	require.Len(t, cleaned, 5)
	assert.Equal(t, "AW00011000", cleaned[0].CustomerKey)
	assert.Equal(t, "Germany", cleaned[0].Country)
	assert.Equal(t, "United States", cleaned[1].Country)
	assert.Equal(t, "United States", cleaned[2].Country)
	assert.Equal(t, "n/a", cleaned[3].Country)
	assert.Equal(t, "Chile", cleaned[4].Country)
	assert.Equal(t, int64(5), stats.Out)
}

func TestDemographics(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("saca el prefijo del origen cuando viene", func(t *testing.T) {
		raws := []models.RawDemographic{
			{CustomerID: "DMGAW00011000"},
			{CustomerID: "AW00011001"},
		}

		cleaned, _ := Demographics(raws, today)

		require.Len(t, cleaned, 2)
		assert.Equal(t, "AW00011000", cleaned[0].CustomerKey)
		assert.Equal(t, "AW00011001", cleaned[1].CustomerKey)
	})

	t.Run("anula fechas de nacimiento futuras", func(t *testing.T) {
		raws := []models.RawDemographic{
			{CustomerID: "A", BirthDate: date(1990, 4, 20)},
			{CustomerID: "B", BirthDate: date(2030, 1, 1)},
		}

		cleaned, _ := Demographics(raws, today)

		require.Len(t, cleaned, 2)
		assert.NotNil(t, cleaned[0].BirthDate)
		assert.Nil(t, cleaned[1].BirthDate)
	})

	t.Run("normaliza el texto de genero", func(t *testing.T) {
		raws := []models.RawDemographic{
			{CustomerID: "A", Gender: "f"},
			{CustomerID: "B", Gender: "FEMALE"},
			{CustomerID: "C", Gender: "male"},
			{CustomerID: "D", Gender: "M"},
			{CustomerID: "E", Gender: "otro"},
		}

		cleaned, _ := Demographics(raws, today)

		assert.Equal(t, "Female", cleaned[0].Gender)
		assert.Equal(t, "Female", cleaned[1].Gender)
		assert.Equal(t, "Male", cleaned[2].Gender)
		assert.Equal(t, "Male", cleaned[3].Gender)
		assert.Equal(t, "n/a", cleaned[4].Gender)
	})
}

func TestCategories(t *testing.T) {
	raws := []models.RawCategory{
		{CategoryID: "BK_R1", Category: "Bikes", Subcategory: "Road", Maintenance: true},
	}

	cleaned, stats := Categories(raws)

	require.Len(t, cleaned, 1)
	assert.Equal(t, models.CleanCategory{CategoryID: "BK_R1", Category: "Bikes", Subcategory: "Road", Maintenance: true}, cleaned[0])
	assert.Equal(t, int64(1), stats.In)
}
