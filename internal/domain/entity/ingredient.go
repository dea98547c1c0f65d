package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient representa una materia prima en stock consumida por recetas.
// Stock solo se muta a través del ajuste de stock (nunca se sobreescribe
// directamente) para conservar la relación antes/después auditable.
// CostPrice es el costo por unidad de medida; nil significa "sin costo
// registrado", distinto de costo cero.
type Ingredient struct {
	ID                string
	Name              string
	UnitID            string
	Stock             decimal.Decimal // cantidad en existencia, nunca negativa, máx. 3 decimales
	LowStockThreshold decimal.Decimal // umbral de alerta, solo informativo
	CostPrice         *decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLowStock indica si el stock actual está en o por debajo del umbral.
func (i *Ingredient) IsLowStock() bool {
	return i.LowStockThreshold.IsPositive() && i.Stock.LessThanOrEqual(i.LowStockThreshold)
}
