// Package cleanse transforma los registros de staging en la capa limpia.
// Cada transformación es una función pura sobre su propio slice, sin
// dependencias entre tipos, así el pipeline puede correrlas en paralelo.
package cleanse

import (
	"strings"
)

const unknownValue = "n/a"

// Stats cuenta filas de entrada, de salida y filas descartadas por
// identidad de negocio nula. El descarte tiene que ser observable.
type Stats struct {
	In      int64
	Out     int64
	Dropped int64
}

// expandCode mapea un código de origen a su texto completo, ignorando
// mayúsculas y espacios alrededor. Código desconocido => "n/a".
func expandCode(code string, mapping map[string]string) string {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if full, ok := mapping[normalized]; ok {
		return full
	}
	return unknownValue
}
