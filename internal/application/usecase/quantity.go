package usecase

import "github.com/shopspring/decimal"

// maxQuantityScale precisión máxima de cantidades de stock y recetas.
const maxQuantityScale = 3

// validScale verifica que d no tenga más de `scale` decimales significativos.
func validScale(d decimal.Decimal, scale int32) bool {
	return d.Equal(d.Round(scale))
}
