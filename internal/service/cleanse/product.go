package cleanse

import (
	"sort"
	"strings"
	"time"

	"github.com/stock-ahora/api-dwh/internal/models"
)

// El product_key de staging trae la categoría como prefijo fijo,
// ej "BK-R1-12345" => categoría "BK_R1", key limpia "12345".
const categoryPrefixLen = 5

var productLineByCode = map[string]string{
	"M": "Mountain",
	"R": "Road",
	"S": "Other Sales",
	"T": "Touring",
}

// Products normaliza cada versión de producto y deriva el intervalo de
// vigencia estilo SCD tipo 2: ordenadas las versiones de una key por
// start_date, el end_date de cada una es el start_date de la siguiente
// menos un día; la última queda con end_date NULL (vigente).
func Products(raws []models.RawProduct) ([]models.CleanProduct, Stats) {
	stats := Stats{In: int64(len(raws))}

	cleaned := make([]models.CleanProduct, 0, len(raws))
	for _, raw := range raws {
		if raw.ProductID == nil {
			stats.Dropped++
			continue
		}
		categoryID, productKey := splitProductKey(raw.ProductKey)
		cost := 0.0
		if raw.Cost != nil {
			cost = *raw.Cost
		}
		cleaned = append(cleaned, models.CleanProduct{
			ProductID:  *raw.ProductID,
			ProductKey: productKey,
			CategoryID: categoryID,
			Name:       strings.TrimSpace(raw.Name),
			Cost:       cost,
			Line:       expandCode(raw.LineCode, productLineByCode),
			StartDate:  raw.StartDate,
		})
	}

	deriveEndDates(cleaned)

	stats.Out = int64(len(cleaned))
	return cleaned, stats
}

// splitProductKey separa el prefijo de categoría del resto de la key.
// El separador '-' del prefijo se reemplaza por '_' para calzar con los
// ids de la tabla de categorías.
func splitProductKey(key string) (categoryID, productKey string) {
	key = strings.TrimSpace(key)
	if len(key) <= categoryPrefixLen {
		return strings.ReplaceAll(key, "-", "_"), ""
	}
	categoryID = strings.ReplaceAll(key[:categoryPrefixLen], "-", "_")
	productKey = strings.TrimPrefix(key[categoryPrefixLen:], "-")
	return categoryID, productKey
}

// deriveEndDates hace el scan con lookahead por partición de product_key.
// Muta los elementos del slice recibido.
func deriveEndDates(products []models.CleanProduct) {
	byKey := make(map[string][]int)
	for i, p := range products {
		byKey[p.ProductKey] = append(byKey[p.ProductKey], i)
	}

	for _, indexes := range byKey {
		sort.SliceStable(indexes, func(a, b int) bool {
			return startBefore(products[indexes[a]].StartDate, products[indexes[b]].StartDate)
		})
		for pos := 0; pos < len(indexes)-1; pos++ {
			next := products[indexes[pos+1]].StartDate
			if next == nil {
				continue
			}
			end := next.AddDate(0, 0, -1)
			products[indexes[pos]].EndDate = &end
		}
		// la última versión queda vigente: EndDate nil
	}
}

// startBefore ordena start_dates con NULL primero, así una versión sin
// fecha nunca queda como la vigente por delante de una fechada.
func startBefore(a, b *time.Time) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return a.Before(*b)
}
