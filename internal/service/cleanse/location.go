package cleanse

import (
	"strings"

	"github.com/stock-ahora/api-dwh/internal/models"
)

// Locations saca los separadores del customer_id (viene como "AW-00011000")
// y normaliza el país a su nombre completo.
func Locations(raws []models.RawLocation) ([]models.CleanLocation, Stats) {
	stats := Stats{In: int64(len(raws))}

	cleaned := make([]models.CleanLocation, 0, len(raws))
	for _, raw := range raws {
		cleaned = append(cleaned, models.CleanLocation{
			CustomerKey: strings.ReplaceAll(strings.TrimSpace(raw.CustomerID), "-", ""),
			Country:     normalizeCountry(raw.Country),
		})
	}

	stats.Out = int64(len(cleaned))
	return cleaned, stats
}

func normalizeCountry(country string) string {
	trimmed := strings.TrimSpace(country)
	switch strings.ToUpper(trimmed) {
	case "DE":
		return "Germany"
	case "US", "USA":
		return "United States"
	case "":
		return unknownValue
	default:
		return trimmed
	}
}
