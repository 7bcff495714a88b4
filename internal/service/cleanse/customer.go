package cleanse

import (
	"sort"
	"strings"

	"github.com/stock-ahora/api-dwh/internal/models"
)

var maritalStatusByCode = map[string]string{
	"S": "Single",
	"M": "Married",
}

var genderByCode = map[string]string{
	"F": "Female",
	"M": "Male",
}

// Customers deja exactamente una fila por customer_id: la de fecha de
// creación más reciente. Con fechas iguales gana la última fila del
// snapshot (el scan sobreescribe con >=), regla deliberada para que la
// corrida sea determinista. Filas sin customer_id se descartan y se cuentan.
func Customers(raws []models.RawCustomer) ([]models.CleanCustomer, Stats) {
	stats := Stats{In: int64(len(raws))}

	latest := make(map[int64]models.RawCustomer)
	for _, raw := range raws {
		if raw.CustomerID == nil {
			stats.Dropped++
			continue
		}
		id := *raw.CustomerID
		current, exists := latest[id]
		if !exists || !createdAfter(current, raw) {
			latest[id] = raw
		}
	}

	ids := make([]int64, 0, len(latest))
	for id := range latest {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	cleaned := make([]models.CleanCustomer, 0, len(ids))
	for _, id := range ids {
		raw := latest[id]
		cleaned = append(cleaned, models.CleanCustomer{
			CustomerID:    id,
			CustomerKey:   strings.TrimSpace(raw.CustomerKey),
			FirstName:     strings.TrimSpace(raw.FirstName),
			LastName:      strings.TrimSpace(raw.LastName),
			MaritalStatus: expandCode(raw.MaritalStatus, maritalStatusByCode),
			Gender:        expandCode(raw.Gender, genderByCode),
			CreatedDate:   raw.CreatedDate,
		})
	}

	stats.Out = int64(len(cleaned))
	return cleaned, stats
}

// createdAfter reporta si la fila current es estrictamente más reciente que
// candidate. Una fecha nula pierde contra cualquier fecha.
func createdAfter(current, candidate models.RawCustomer) bool {
	if current.CreatedDate == nil {
		return false
	}
	if candidate.CreatedDate == nil {
		return true
	}
	return current.CreatedDate.After(*candidate.CreatedDate)
}
