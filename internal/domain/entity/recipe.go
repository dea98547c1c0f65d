package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe lista ordenada de pares ingrediente-cantidad que describe cómo
// producir un producto. Invariante: al menos un item.
// EstimatedCost es derivado, no autoritativo: se recalcula en cada lectura
// a partir de los items y el costo vigente de cada ingrediente.
type Recipe struct {
	ID          string
	Name        string
	Description string
	Notes       string
	ProductID   *string // producto asociado, opcional
	Items       []RecipeItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecipeItem línea de una receta. Pertenece en exclusiva a su receta padre;
// en una actualización el conjunto de items se reemplaza completo.
type RecipeItem struct {
	IngredientID string
	Quantity     decimal.Decimal // > 0, máx. 3 decimales
	Notes        string
	Position     int // orden dentro de la receta
}
