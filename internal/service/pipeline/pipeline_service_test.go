package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stock-ahora/api-dwh/internal/models"
	"github.com/stock-ahora/api-dwh/internal/repository"
	"github.com/stock-ahora/api-dwh/internal/service/eventservice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func int64Ptr(v int64) *int64 { return &v }

func floatPtr(v float64) *float64 { return &v }

func testSnapshot() repository.Snapshot {
	return repository.Snapshot{
		Customers: []models.RawCustomer{
			{CustomerID: int64Ptr(100), CustomerKey: "AW00011000", FirstName: " Ana ", Gender: "F", MaritalStatus: "S", CreatedDate: date(2020, 1, 1)},
			{CustomerID: int64Ptr(100), CustomerKey: "AW00011000", FirstName: "Ana", Gender: "", MaritalStatus: "S", CreatedDate: date(2021, 1, 1)},
			{CustomerID: int64Ptr(200), CustomerKey: "AW00011001", FirstName: "Bruno", Gender: "M", MaritalStatus: "M", CreatedDate: date(2019, 1, 1)},
			{CustomerID: nil, FirstName: "Sin Id"},
		},
		Products: []models.RawProduct{
			{ProductID: int64Ptr(1), ProductKey: "BK-R1-12345", Name: "Ruta 1", Cost: floatPtr(500), LineCode: "R", StartDate: date(2020, 1, 1)},
			{ProductID: int64Ptr(1), ProductKey: "BK-R1-12345", Name: "Ruta 1 v2", Cost: floatPtr(550), LineCode: "R", StartDate: date(2022, 1, 1)},
		},
		SalesLines: []models.RawSalesLine{
			{OrderNumber: "SO1", ProductKey: "12345", CustomerID: 100, OrderDate: 20230110, Quantity: 3, Price: floatPtr(10), Amount: floatPtr(999)},
			{OrderNumber: "SO2", ProductKey: "desconocido", CustomerID: 300, OrderDate: 0, Quantity: 1, Price: floatPtr(5), Amount: floatPtr(5)},
		},
		Locations: []models.RawLocation{
			{CustomerID: "AW-00011000", Country: "DE"},
		},
		Demographics: []models.RawDemographic{
			{CustomerID: "DMGAW00011000", BirthDate: date(1990, 5, 5), Gender: "FEMALE"},
		},
		Categories: []models.RawCategory{
			{CategoryID: "BK_R1", Category: "Bikes", Subcategory: "Road"},
		},
	}
}

func newTestService(snap repository.Snapshot, warehouse *repository.MemoryWarehouseRepo) *pipelineService {
	return &pipelineService{
		extracts:  repository.NewMemoryExtractRepo(snap),
		warehouse: warehouse,
		events:    eventservice.NoopPublisher{},
		now:       func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestPipelineRun(t *testing.T) {
	t.Run("corrida completa deja capa limpia, dimensiones y contadores", func(t *testing.T) {
		warehouse := repository.NewMemoryWarehouseRepo()
		svc := newTestService(testSnapshot(), warehouse)

		run, err := svc.Run(context.Background(), "test")

		require.NoError(t, err)
		assert.Equal(t, models.RunStatusFinished, run.Status)

		// cleansing: dedup de clientes + fila sin id descartada
		assert.Equal(t, int64(4), run.RawCustomers)
		assert.Equal(t, int64(2), run.CleanCustomers)
		assert.Equal(t, int64(1), run.DroppedCustomers)

		// dimensional: solo la version vigente del producto
		require.Len(t, warehouse.Dims.Products, 1)
		assert.Equal(t, "Ruta 1 v2", warehouse.Dims.Products[0].Name)
		assert.Equal(t, "Bikes", warehouse.Dims.Products[0].Category)

		// cliente con genero reconciliado desde el demografico
		require.Len(t, warehouse.Dims.Customers, 2)
		ana := warehouse.Dims.Customers[0]
		assert.Equal(t, int64(100), ana.CustomerID)
		assert.Equal(t, "Female", ana.Gender)
		assert.Equal(t, "Germany", ana.Country)

		// hechos: monto reparado y lookup sin resolver conservado
		require.Len(t, warehouse.Dims.Facts, 2)
		assert.Equal(t, 30.0, warehouse.Dims.Facts[0].Amount)
		assert.NotNil(t, warehouse.Dims.Facts[0].ProductSK)
		assert.Nil(t, warehouse.Dims.Facts[1].ProductSK)
		assert.Nil(t, warehouse.Dims.Facts[1].CustomerSK)
		assert.Equal(t, int64(1), run.UnresolvedProducts)
		assert.Equal(t, int64(1), run.UnresolvedCustomers)
	})

	t.Run("dos corridas del mismo snapshot dan salida identica", func(t *testing.T) {
		first := repository.NewMemoryWarehouseRepo()
		_, err := newTestService(testSnapshot(), first).Run(context.Background(), "test")
		require.NoError(t, err)

		second := repository.NewMemoryWarehouseRepo()
		_, err = newTestService(testSnapshot(), second).Run(context.Background(), "test")
		require.NoError(t, err)

		assert.Equal(t, first.Clean, second.Clean)
		assert.Equal(t, first.Dims, second.Dims)
	})

	t.Run("coleccion cruda ausente aborta y marca la corrida fallida", func(t *testing.T) {
		snap := testSnapshot()
		snap.Categories = nil
		warehouse := repository.NewMemoryWarehouseRepo()
		svc := newTestService(snap, warehouse)

		run, err := svc.Run(context.Background(), "test")

		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrMissingCollection)
		assert.Equal(t, models.RunStatusFailed, run.Status)

		stored, getErr := warehouse.GetRun(run.ID)
		require.NoError(t, getErr)
		assert.Equal(t, models.RunStatusFailed, stored.Status)
		assert.Contains(t, stored.Error, "category")
	})
}
