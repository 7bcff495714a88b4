package dimension

import (
	"sort"

	"github.com/stock-ahora/api-dwh/internal/models"
)

// BuildProductDim proyecta solo las versiones vigentes (end_date NULL) y
// les pega la categoría por category_id. Surrogate keys ordenadas por
// (start_date, product_key) ascendente.
func BuildProductDim(
	products []models.CleanProduct,
	categories []models.CleanCategory,
) []models.DimProduct {
	categoryByID := make(map[string]models.CleanCategory, len(categories))
	for _, c := range categories {
		categoryByID[c.CategoryID] = c
	}

	active := make([]models.CleanProduct, 0, len(products))
	for _, p := range products {
		if p.EndDate == nil {
			active = append(active, p)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		a, b := active[i], active[j]
		switch {
		case a.StartDate == nil && b.StartDate != nil:
			return true
		case a.StartDate != nil && b.StartDate == nil:
			return false
		case a.StartDate != nil && b.StartDate != nil && !a.StartDate.Equal(*b.StartDate):
			return a.StartDate.Before(*b.StartDate)
		default:
			return a.ProductKey < b.ProductKey
		}
	})

	dim := make([]models.DimProduct, 0, len(active))
	for i, p := range active {
		row := models.DimProduct{
			ProductSK:  int64(i + 1),
			ProductID:  p.ProductID,
			ProductKey: p.ProductKey,
			Name:       p.Name,
			CategoryID: p.CategoryID,
			Cost:       p.Cost,
			Line:       p.Line,
			StartDate:  p.StartDate,
		}
		if cat, ok := categoryByID[p.CategoryID]; ok {
			row.Category = cat.Category
			row.Subcategory = cat.Subcategory
			row.Maintenance = cat.Maintenance
		}
		dim = append(dim, row)
	}
	return dim
}
