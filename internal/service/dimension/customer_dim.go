// Package dimension arma las proyecciones analíticas a partir de la capa
// limpia: dim_customer, dim_product y fact_sales. No deduplica nada, eso
// ya lo hizo cleanse; acá solo hay joins y asignación de surrogate keys.
package dimension

import (
	"sort"

	"github.com/stock-ahora/api-dwh/internal/models"
)

const unknownValue = "n/a"

// BuildCustomerDim hace left join de clientes limpios contra demografía y
// ubicación por customer_key. Las surrogate keys son densas, ordenadas por
// customer_id ascendente, estables entre corridas del mismo snapshot.
func BuildCustomerDim(
	customers []models.CleanCustomer,
	demographics []models.CleanDemographic,
	locations []models.CleanLocation,
) []models.DimCustomer {
	demoByKey := make(map[string]models.CleanDemographic, len(demographics))
	for _, d := range demographics {
		demoByKey[d.CustomerKey] = d
	}
	locationByKey := make(map[string]models.CleanLocation, len(locations))
	for _, l := range locations {
		locationByKey[l.CustomerKey] = l
	}

	ordered := make([]models.CleanCustomer, len(customers))
	copy(ordered, customers)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].CustomerID < ordered[j].CustomerID
	})

	dim := make([]models.DimCustomer, 0, len(ordered))
	for i, c := range ordered {
		row := models.DimCustomer{
			CustomerSK:    int64(i + 1),
			CustomerID:    c.CustomerID,
			CustomerKey:   c.CustomerKey,
			FirstName:     c.FirstName,
			LastName:      c.LastName,
			Country:       unknownValue,
			MaritalStatus: c.MaritalStatus,
			Gender:        c.Gender,
			CreatedDate:   c.CreatedDate,
		}

		demo, hasDemo := demoByKey[c.CustomerKey]
		if hasDemo {
			row.BirthDate = demo.BirthDate
		}
		// el género del origen de clientes manda; el demográfico solo
		// rellena cuando el primero vino desconocido
		if row.Gender == unknownValue && hasDemo && demo.Gender != "" {
			row.Gender = demo.Gender
		}

		if loc, ok := locationByKey[c.CustomerKey]; ok && loc.Country != "" {
			row.Country = loc.Country
		}

		dim = append(dim, row)
	}
	return dim
}
