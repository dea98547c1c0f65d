package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovement registro auditable de un ajuste de stock sobre un ingrediente.
// Delta es la cantidad firmada aplicada; PreviousStock y NewStock conservan
// la relación antes/después.
type StockMovement struct {
	ID            string
	IngredientID  string
	Delta         decimal.Decimal
	PreviousStock decimal.Decimal
	NewStock      decimal.Decimal
	Reason        string
	CreatedBy     string
	CreatedAt     time.Time
}
