package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/never130/isidro-gourmet/internal/domain"
)

// RecipeItemInput par ingrediente-cantidad de una receta, ya validado en
// el borde (cantidad > 0, máx. 3 decimales).
type RecipeItemInput struct {
	IngredientID string
	Quantity     decimal.Decimal
}

// CostLookup resuelve el costo unitario de un ingrediente por ID.
// Un valor nil significa "ingrediente existe pero sin costo registrado"
// (contribuye 0 al total); una clave ausente significa que el ingrediente
// no existe y es un error de integridad.
type CostLookup map[string]*decimal.Decimal

// ItemCost costo de una línea de receta, para mostrar por renglón.
type ItemCost struct {
	IngredientID string
	Quantity     decimal.Decimal
	UnitCost     decimal.Decimal // 0 si el costo no está registrado
	Cost         decimal.Decimal // UnitCost * Quantity
}

// RecipeCostEstimate costo total estimado de producir una unidad de la
// receta, más el desglose por línea. Total == suma de PerItem[i].Cost.
type RecipeCostEstimate struct {
	Total   decimal.Decimal
	PerItem []ItemCost
}

// EstimateRecipeCost calcula el costo estimado de una receta a partir de sus
// items y el costo unitario vigente de cada ingrediente.
//
// Reglas:
//   - items vacío → domain.ErrInvalidRecipe (nunca un total 0 silencioso).
//   - ingrediente ausente del lookup → domain.ErrUnknownIngredient.
//   - costo nil (sin registrar) → contribuye 0, no es un error.
//
// Función pura y determinista: mismos inputs producen siempre el mismo total.
func EstimateRecipeCost(items []RecipeItemInput, costs CostLookup) (RecipeCostEstimate, error) {
	if len(items) == 0 {
		return RecipeCostEstimate{}, domain.ErrInvalidRecipe
	}

	perItem := make([]ItemCost, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		costPrice, ok := costs[it.IngredientID]
		if !ok {
			return RecipeCostEstimate{}, domain.ErrUnknownIngredient
		}
		unitCost := decimal.Zero
		if costPrice != nil {
			unitCost = *costPrice
		}
		lineCost := unitCost.Mul(it.Quantity)
		total = total.Add(lineCost)
		perItem = append(perItem, ItemCost{
			IngredientID: it.IngredientID,
			Quantity:     it.Quantity,
			UnitCost:     unitCost,
			Cost:         lineCost,
		})
	}
	return RecipeCostEstimate{Total: total, PerItem: perItem}, nil
}
