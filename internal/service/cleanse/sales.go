package cleanse

import (
	"math"
	"strconv"
	"time"

	"github.com/stock-ahora/api-dwh/internal/models"
)

// SalesLines valida las tres fechas numéricas y repara monto y precio.
// El orden de reparación importa: primero el monto usando el precio
// original, después el precio usando el monto ya corregido.
func SalesLines(raws []models.RawSalesLine) ([]models.CleanSalesLine, Stats) {
	stats := Stats{In: int64(len(raws))}

	cleaned := make([]models.CleanSalesLine, 0, len(raws))
	for _, raw := range raws {
		amount := repairAmount(raw.Amount, raw.Price, raw.Quantity)
		price := repairPrice(raw.Price, amount, raw.Quantity)

		cleaned = append(cleaned, models.CleanSalesLine{
			OrderNumber: raw.OrderNumber,
			ProductKey:  raw.ProductKey,
			CustomerID:  raw.CustomerID,
			OrderDate:   dateFromInt(raw.OrderDate),
			ShipDate:    dateFromInt(raw.ShipDate),
			DueDate:     dateFromInt(raw.DueDate),
			Amount:      amount,
			Quantity:    raw.Quantity,
			Price:       price,
		})
	}

	stats.Out = int64(len(cleaned))
	return cleaned, stats
}

// dateFromInt convierte un entero AAAAMMDD en fecha. Cero, largo distinto
// de 8 dígitos o fecha de calendario inválida => NULL, nunca error.
func dateFromInt(value int64) *time.Time {
	if value <= 0 {
		return nil
	}
	digits := strconv.FormatInt(value, 10)
	if len(digits) != 8 {
		return nil
	}
	parsed, err := time.Parse("20060102", digits)
	if err != nil {
		return nil
	}
	parsed = parsed.UTC()
	return &parsed
}

// repairAmount devuelve el monto de venta corregido: si el monto viene
// nulo, <= 0 o no calza con cantidad * |precio|, se recalcula con el
// precio ORIGINAL de la fila.
func repairAmount(amount, price *float64, quantity int64) float64 {
	if price == nil {
		if amount == nil || *amount <= 0 {
			return 0
		}
		return *amount
	}
	expected := float64(quantity) * math.Abs(*price)
	if amount == nil || *amount <= 0 || *amount != expected {
		return expected
	}
	return *amount
}

// repairPrice deriva el precio desde el monto ya reparado cuando viene
// nulo o <= 0. División por cero => NULL.
func repairPrice(price *float64, amount float64, quantity int64) *float64 {
	if price != nil && *price > 0 {
		return price
	}
	if quantity == 0 {
		return nil
	}
	derived := amount / float64(quantity)
	return &derived
}
