package cleanse

import (
	"testing"
	"time"

	"github.com/stock-ahora/api-dwh/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestProducts(t *testing.T) {
	t.Run("separa categoria y key limpia del product_key", func(t *testing.T) {
		raws := []models.RawProduct{
			{ProductID: int64Ptr(10), ProductKey: "BK-R1-12345", Name: "Bicicleta Ruta"},
		}

		cleaned, _ := Products(raws)

		require.Len(t, cleaned, 1)
		assert.Equal(t, "BK_R1", cleaned[0].CategoryID)
		assert.Equal(t, "12345", cleaned[0].ProductKey)
	})

	t.Run("costo nulo queda en cero y expande linea", func(t *testing.T) {
		raws := []models.RawProduct{
			{ProductID: int64Ptr(1), ProductKey: "BK-M1-00001", Cost: nil, LineCode: "M"},
			{ProductID: int64Ptr(2), ProductKey: "BK-R1-00002", Cost: floatPtr(120.5), LineCode: "R"},
			{ProductID: int64Ptr(3), ProductKey: "AC-S1-00003", LineCode: "s"},
			{ProductID: int64Ptr(4), ProductKey: "BK-T1-00004", LineCode: "T"},
			{ProductID: int64Ptr(5), ProductKey: "AC-X1-00005", LineCode: "Z"},
		}

		cleaned, _ := Products(raws)

		require.Len(t, cleaned, 5)
		assert.Equal(t, 0.0, cleaned[0].Cost)
		assert.Equal(t, "Mountain", cleaned[0].Line)
		assert.Equal(t, 120.5, cleaned[1].Cost)
		assert.Equal(t, "Road", cleaned[1].Line)
		assert.Equal(t, "Other Sales", cleaned[2].Line)
		assert.Equal(t, "Touring", cleaned[3].Line)
		assert.Equal(t, "n/a", cleaned[4].Line)
	})

	t.Run("deriva intervalos de vigencia por version", func(t *testing.T) {
		raws := []models.RawProduct{
			{ProductID: int64Ptr(1), ProductKey: "BK-R1-12345", StartDate: date(2020, 1, 1)},
			{ProductID: int64Ptr(1), ProductKey: "BK-R1-12345", StartDate: date(2021, 7, 15)},
			{ProductID: int64Ptr(1), ProductKey: "BK-R1-12345", StartDate: date(2023, 3, 1)},
			{ProductID: int64Ptr(2), ProductKey: "AC-H1-99999", StartDate: date(2022, 5, 10)},
		}

		cleaned, _ := Products(raws)

		require.Len(t, cleaned, 4)

		// versiones de la misma key, en orden de entrada (ya ordenadas por fecha)
		require.NotNil(t, cleaned[0].EndDate)
		assert.Equal(t, time.Date(2021, 7, 14, 0, 0, 0, 0, time.UTC), *cleaned[0].EndDate)
		require.NotNil(t, cleaned[1].EndDate)
		assert.Equal(t, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC), *cleaned[1].EndDate)
		assert.Nil(t, cleaned[2].EndDate)

		// key con una sola version queda vigente
		assert.Nil(t, cleaned[3].EndDate)
	})

	t.Run("a lo mas una version vigente por key aunque vengan desordenadas", func(t *testing.T) {
		raws := []models.RawProduct{
			{ProductID: int64Ptr(1), ProductKey: "BK-R1-12345", StartDate: date(2023, 3, 1)},
			{ProductID: int64Ptr(1), ProductKey: "BK-R1-12345", StartDate: date(2020, 1, 1)},
		}

		cleaned, _ := Products(raws)

		active := 0
		for _, p := range cleaned {
			if p.EndDate == nil {
				active++
			}
		}
		assert.Equal(t, 1, active)

		// la mas antigua cierra el dia antes del start de la mas nueva
		for _, p := range cleaned {
			if p.EndDate != nil {
				assert.Equal(t, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC), *p.EndDate)
			}
		}
	})

	t.Run("descarta y cuenta filas sin product_id", func(t *testing.T) {
		raws := []models.RawProduct{
			{ProductID: nil, ProductKey: "BK-R1-00000"},
			{ProductID: int64Ptr(1), ProductKey: "BK-R1-11111"},
		}

		cleaned, stats := Products(raws)

		assert.Len(t, cleaned, 1)
		assert.Equal(t, int64(1), stats.Dropped)
	})
}
