package utils

import (
	"fmt"
	"strconv"
)

func ConverToint(str string) (int, error) {
	value, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("error al convertir a entero: %w", err)
	}
	return value, nil
}
