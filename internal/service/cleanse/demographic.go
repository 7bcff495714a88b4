package cleanse

import (
	"strings"
	"time"

	"github.com/stock-ahora/api-dwh/internal/models"
)

// El origen demográfico antepone este token al customer_key.
const demographicKeyPrefix = "DMG"

// Demographics saca el prefijo del origen, invalida fechas de nacimiento
// futuras respecto a la fecha de referencia de la corrida y normaliza el
// texto de género.
func Demographics(raws []models.RawDemographic, today time.Time) ([]models.CleanDemographic, Stats) {
	stats := Stats{In: int64(len(raws))}

	cleaned := make([]models.CleanDemographic, 0, len(raws))
	for _, raw := range raws {
		birthDate := raw.BirthDate
		if birthDate != nil && birthDate.After(today) {
			birthDate = nil
		}
		cleaned = append(cleaned, models.CleanDemographic{
			CustomerKey: strings.TrimPrefix(strings.TrimSpace(raw.CustomerID), demographicKeyPrefix),
			BirthDate:   birthDate,
			Gender:      normalizeGenderText(raw.Gender),
		})
	}

	stats.Out = int64(len(cleaned))
	return cleaned, stats
}

func normalizeGenderText(gender string) string {
	switch strings.ToUpper(strings.TrimSpace(gender)) {
	case "F", "FEMALE":
		return "Female"
	case "M", "MALE":
		return "Male"
	default:
		return unknownValue
	}
}
