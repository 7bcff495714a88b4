package repository

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stock-ahora/api-dwh/internal/models"
	"gorm.io/gorm"
)

const insertBatchSize = 500

// CleanSet agrupa la salida completa del motor de cleansing.
type CleanSet struct {
	Customers    []models.CleanCustomer
	Products     []models.CleanProduct
	SalesLines   []models.CleanSalesLine
	Locations    []models.CleanLocation
	Demographics []models.CleanDemographic
	Categories   []models.CleanCategory
}

// DimensionalSet agrupa las tres proyecciones analíticas.
type DimensionalSet struct {
	Customers []models.DimCustomer
	Products  []models.DimProduct
	Facts     []models.FactSales
}

type WarehouseRepo interface {
	// Replace reescribe la capa limpia y la dimensional en una sola
	// transacción: o queda el snapshot nuevo completo o queda el anterior.
	Replace(clean CleanSet, dims DimensionalSet) error

	CreateRun(run *models.PipelineRun) error
	UpdateRun(run *models.PipelineRun) error
	GetRun(id uuid.UUID) (models.PipelineRun, error)
	ListRuns(page, size int) ([]models.PipelineRun, int64, error)
}

type warehouseRepo struct {
	db *gorm.DB
}

func NewWarehouseRepo(db *gorm.DB) WarehouseRepo {
	return &warehouseRepo{db: db}
}

func (r *warehouseRepo) Replace(clean CleanSet, dims DimensionalSet) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		tables := []interface{}{
			&models.FactSales{}, &models.DimProduct{}, &models.DimCustomer{},
			&models.CleanSalesLine{}, &models.CleanProduct{}, &models.CleanCustomer{},
			&models.CleanLocation{}, &models.CleanDemographic{}, &models.CleanCategory{},
		}
		for _, table := range tables {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
				return errors.Wrap(err, "vaciando tabla destino")
			}
		}

		if err := createAll(tx, clean, dims); err != nil {
			return err
		}
		return nil
	})
}

func createAll(tx *gorm.DB, clean CleanSet, dims DimensionalSet) error {
	inserts := []struct {
		name string
		rows interface{}
		size int
	}{
		{"clean_customer", clean.Customers, len(clean.Customers)},
		{"clean_product", clean.Products, len(clean.Products)},
		{"clean_sales_line", clean.SalesLines, len(clean.SalesLines)},
		{"clean_location", clean.Locations, len(clean.Locations)},
		{"clean_demographic", clean.Demographics, len(clean.Demographics)},
		{"clean_category", clean.Categories, len(clean.Categories)},
		{"dim_customer", dims.Customers, len(dims.Customers)},
		{"dim_product", dims.Products, len(dims.Products)},
		{"fact_sales", dims.Facts, len(dims.Facts)},
	}
	for _, ins := range inserts {
		if ins.size == 0 {
			continue
		}
		if err := tx.CreateInBatches(ins.rows, insertBatchSize).Error; err != nil {
			return errors.Wrapf(err, "insertando %s", ins.name)
		}
	}
	return nil
}

func (r *warehouseRepo) CreateRun(run *models.PipelineRun) error {
	return r.db.Create(run).Error
}

func (r *warehouseRepo) UpdateRun(run *models.PipelineRun) error {
	return r.db.Save(run).Error
}

func (r *warehouseRepo) GetRun(id uuid.UUID) (models.PipelineRun, error) {
	var run models.PipelineRun
	err := r.db.First(&run, "id = ?", id).Error
	return run, err
}

func (r *warehouseRepo) ListRuns(page, size int) ([]models.PipelineRun, int64, error) {
	offset := (page - 1) * size

	var total int64
	if err := r.db.Model(&models.PipelineRun{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var runs []models.PipelineRun
	if err := r.db.
		Order("started_at DESC").
		Limit(size).
		Offset(offset).
		Find(&runs).Error; err != nil {
		return nil, 0, err
	}
	return runs, total, nil
}
