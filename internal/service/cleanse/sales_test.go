package cleanse

import (
	"testing"
	"time"

	"github.com/stock-ahora/api-dwh/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesLines(t *testing.T) {
	t.Run("convierte fechas AAAAMMDD validas", func(t *testing.T) {
		raws := []models.RawSalesLine{
			{OrderNumber: "SO1", OrderDate: 20230115, ShipDate: 20230120, DueDate: 20230125, Quantity: 1, Price: floatPtr(10), Amount: floatPtr(10)},
		}

		cleaned, _ := SalesLines(raws)

		require.Len(t, cleaned, 1)
		require.NotNil(t, cleaned[0].OrderDate)
		assert.Equal(t, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), *cleaned[0].OrderDate)
		assert.Equal(t, time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC), *cleaned[0].ShipDate)
		assert.Equal(t, time.Date(2023, 1, 25, 0, 0, 0, 0, time.UTC), *cleaned[0].DueDate)
	})

	t.Run("fecha cero o con largo distinto de 8 queda nula sin error", func(t *testing.T) {
		raws := []models.RawSalesLine{
			{OrderNumber: "SO2", OrderDate: 0, ShipDate: 2023011, DueDate: 202301155, Quantity: 1, Price: floatPtr(1), Amount: floatPtr(1)},
			{OrderNumber: "SO3", OrderDate: 20231350, Quantity: 1, Price: floatPtr(1), Amount: floatPtr(1)}, // mes 13
		}

		cleaned, _ := SalesLines(raws)

		require.Len(t, cleaned, 2)
		assert.Nil(t, cleaned[0].OrderDate)
		assert.Nil(t, cleaned[0].ShipDate)
		assert.Nil(t, cleaned[0].DueDate)
		assert.Nil(t, cleaned[1].OrderDate)
	})

	t.Run("repara monto inconsistente con cantidad por precio", func(t *testing.T) {
		raws := []models.RawSalesLine{
			{OrderNumber: "SO4", Quantity: 3, Price: floatPtr(10), Amount: floatPtr(999)},
		}

		cleaned, _ := SalesLines(raws)

		require.Len(t, cleaned, 1)
		assert.Equal(t, 30.0, cleaned[0].Amount)
	})

	t.Run("repara monto nulo o negativo con el precio original", func(t *testing.T) {
		raws := []models.RawSalesLine{
			{OrderNumber: "SO5", Quantity: 2, Price: floatPtr(-4), Amount: nil},
			{OrderNumber: "SO6", Quantity: 2, Price: floatPtr(4), Amount: floatPtr(-8)},
		}

		cleaned, _ := SalesLines(raws)

		require.Len(t, cleaned, 2)
		// el precio entra en valor absoluto
		assert.Equal(t, 8.0, cleaned[0].Amount)
		assert.Equal(t, 8.0, cleaned[1].Amount)
	})

	t.Run("deriva precio desde el monto ya reparado", func(t *testing.T) {
		raws := []models.RawSalesLine{
			{OrderNumber: "SO7", Quantity: 5, Price: nil, Amount: floatPtr(100)},
		}

		cleaned, _ := SalesLines(raws)

		require.Len(t, cleaned, 1)
		assert.Equal(t, 100.0, cleaned[0].Amount)
		require.NotNil(t, cleaned[0].Price)
		assert.Equal(t, 20.0, *cleaned[0].Price)
	})

	t.Run("cantidad cero deja el precio nulo, no divide", func(t *testing.T) {
		raws := []models.RawSalesLine{
			{OrderNumber: "SO8", Quantity: 0, Price: nil, Amount: floatPtr(50)},
		}

		cleaned, _ := SalesLines(raws)

		require.Len(t, cleaned, 1)
		assert.Nil(t, cleaned[0].Price)
	})

	t.Run("monto y precio nulos quedan en cero y cero", func(t *testing.T) {
		raws := []models.RawSalesLine{
			{OrderNumber: "SO9", Quantity: 4, Price: nil, Amount: nil},
		}

		cleaned, _ := SalesLines(raws)

		require.Len(t, cleaned, 1)
		assert.Equal(t, 0.0, cleaned[0].Amount)
		require.NotNil(t, cleaned[0].Price)
		assert.Equal(t, 0.0, *cleaned[0].Price)
	})
}
