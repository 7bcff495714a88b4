package dimension

import (
	"github.com/stock-ahora/api-dwh/internal/models"
)

// FactStats cuenta lookups que no resolvieron, para auditoría.
type FactStats struct {
	Rows                int64
	UnresolvedProducts  int64
	UnresolvedCustomers int64
}

// BuildSalesFacts resuelve las surrogate keys de cada línea de venta
// contra las dimensiones recién construidas. Un lookup que no resuelve
// deja la SK en NULL y la fila se conserva, nunca se descarta.
func BuildSalesFacts(
	lines []models.CleanSalesLine,
	productDim []models.DimProduct,
	customerDim []models.DimCustomer,
) ([]models.FactSales, FactStats) {
	productSKByKey := make(map[string]int64, len(productDim))
	for _, p := range productDim {
		productSKByKey[p.ProductKey] = p.ProductSK
	}
	customerSKByID := make(map[int64]int64, len(customerDim))
	for _, c := range customerDim {
		customerSKByID[c.CustomerID] = c.CustomerSK
	}

	stats := FactStats{Rows: int64(len(lines))}
	facts := make([]models.FactSales, 0, len(lines))
	for _, line := range lines {
		fact := models.FactSales{
			OrderNumber: line.OrderNumber,
			OrderDate:   line.OrderDate,
			ShipDate:    line.ShipDate,
			DueDate:     line.DueDate,
			Amount:      line.Amount,
			Quantity:    line.Quantity,
			Price:       line.Price,
		}
		if sk, ok := productSKByKey[line.ProductKey]; ok {
			fact.ProductSK = &sk
		} else {
			stats.UnresolvedProducts++
		}
		if sk, ok := customerSKByID[line.CustomerID]; ok {
			fact.CustomerSK = &sk
		} else {
			stats.UnresolvedCustomers++
		}
		facts = append(facts, fact)
	}
	return facts, stats
}
