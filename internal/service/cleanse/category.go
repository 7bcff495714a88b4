package cleanse

import (
	"github.com/stock-ahora/api-dwh/internal/models"
)

// Categories es passthrough: se copia para completar el set conformado.
func Categories(raws []models.RawCategory) ([]models.CleanCategory, Stats) {
	cleaned := make([]models.CleanCategory, 0, len(raws))
	for _, raw := range raws {
		cleaned = append(cleaned, models.CleanCategory{
			CategoryID:  raw.CategoryID,
			Category:    raw.Category,
			Subcategory: raw.Subcategory,
			Maintenance: raw.Maintenance,
		})
	}
	return cleaned, Stats{In: int64(len(raws)), Out: int64(len(cleaned))}
}
