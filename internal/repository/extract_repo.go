package repository

import (
	"github.com/pkg/errors"
	"github.com/stock-ahora/api-dwh/internal/models"
	"gorm.io/gorm"
)

// ErrMissingCollection es el único error estructural del pipeline: sin una
// colección cruda completa no hay modelo dimensional que construir.
var ErrMissingCollection = errors.New("raw collection missing or empty")

// Snapshot es el set completo de extractos crudos de una corrida.
type Snapshot struct {
	Customers    []models.RawCustomer
	Products     []models.RawProduct
	SalesLines   []models.RawSalesLine
	Locations    []models.RawLocation
	Demographics []models.RawDemographic
	Categories   []models.RawCategory
}

type ExtractRepo interface {
	LoadSnapshot() (*Snapshot, error)
}

type extractRepo struct {
	db *gorm.DB
}

func NewExtractRepo(db *gorm.DB) ExtractRepo {
	return &extractRepo{db: db}
}

// LoadSnapshot lee las seis tablas de staging. Una tabla vacía se trata
// como colección ausente y aborta la corrida.
func (r *extractRepo) LoadSnapshot() (*Snapshot, error) {
	snap := &Snapshot{}

	if err := r.db.Order("row_id").Find(&snap.Customers).Error; err != nil {
		return nil, errors.Wrap(err, "leyendo stg_customer")
	}
	if err := r.db.Order("row_id").Find(&snap.Products).Error; err != nil {
		return nil, errors.Wrap(err, "leyendo stg_product")
	}
	if err := r.db.Order("row_id").Find(&snap.SalesLines).Error; err != nil {
		return nil, errors.Wrap(err, "leyendo stg_sales_line")
	}
	if err := r.db.Order("row_id").Find(&snap.Locations).Error; err != nil {
		return nil, errors.Wrap(err, "leyendo stg_location")
	}
	if err := r.db.Order("row_id").Find(&snap.Demographics).Error; err != nil {
		return nil, errors.Wrap(err, "leyendo stg_demographic")
	}
	if err := r.db.Order("row_id").Find(&snap.Categories).Error; err != nil {
		return nil, errors.Wrap(err, "leyendo stg_category")
	}

	if missing := snap.MissingCollections(); len(missing) > 0 {
		return nil, errors.Wrapf(ErrMissingCollection, "%v", missing)
	}
	return snap, nil
}

// MissingCollections lista los tipos de registro sin filas en el snapshot.
func (s *Snapshot) MissingCollections() []string {
	var missing []string
	if len(s.Customers) == 0 {
		missing = append(missing, "customer")
	}
	if len(s.Products) == 0 {
		missing = append(missing, "product")
	}
	if len(s.SalesLines) == 0 {
		missing = append(missing, "sales_line")
	}
	if len(s.Locations) == 0 {
		missing = append(missing, "location")
	}
	if len(s.Demographics) == 0 {
		missing = append(missing, "demographic")
	}
	if len(s.Categories) == 0 {
		missing = append(missing, "category")
	}
	return missing
}
