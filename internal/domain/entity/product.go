package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product artículo vendible del menú. Puede tener una receta asociada que
// describe su producción; el precio de venta es independiente del costo
// estimado de la receta.
type Product struct {
	ID        string
	Name      string
	Category  string
	Price     decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
