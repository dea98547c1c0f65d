package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/never130/isidro-gourmet/internal/domain"
	"github.com/never130/isidro-gourmet/internal/domain/inventory"
)

func costPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// EstimateRecipeCost
// ──────────────────────────────────────────────────────────────────────────────

// Un item con costo 3.50 y cantidad 2 → total 7.00.
func TestEstimateRecipeCost_UnItem(t *testing.T) {
	items := []inventory.RecipeItemInput{{IngredientID: "harina", Quantity: dec("2")}}
	costs := inventory.CostLookup{"harina": costPtr("3.50")}

	est, err := inventory.EstimateRecipeCost(items, costs)
	require.NoError(t, err)

	assert.True(t, dec("7.00").Equal(est.Total), "total debe ser 7.00, fue %s", est.Total)
	require.Len(t, est.PerItem, 1)
	assert.True(t, dec("7.00").Equal(est.PerItem[0].Cost))
	assert.True(t, dec("3.50").Equal(est.PerItem[0].UnitCost))
}

// Un ingrediente con costo nil contribuye exactamente 0, no es error.
func TestEstimateRecipeCost_CostoNilContribuyeCero(t *testing.T) {
	items := []inventory.RecipeItemInput{
		{IngredientID: "harina", Quantity: dec("2")},
		{IngredientID: "sal", Quantity: dec("1")},
	}
	costs := inventory.CostLookup{
		"harina": costPtr("3.50"),
		"sal":    nil, // existe, sin costo registrado
	}

	est, err := inventory.EstimateRecipeCost(items, costs)
	require.NoError(t, err)

	assert.True(t, dec("7.00").Equal(est.Total))
	require.Len(t, est.PerItem, 2)
	assert.True(t, est.PerItem[1].Cost.IsZero(), "línea sin costo debe valer 0")
}

// items vacío → ErrInvalidRecipe, nunca un 0 silencioso.
func TestEstimateRecipeCost_SinItems_Rechazado(t *testing.T) {
	_, err := inventory.EstimateRecipeCost(nil, inventory.CostLookup{})
	assert.ErrorIs(t, err, domain.ErrInvalidRecipe)

	_, err = inventory.EstimateRecipeCost([]inventory.RecipeItemInput{}, inventory.CostLookup{})
	assert.ErrorIs(t, err, domain.ErrInvalidRecipe)
}

// Ingrediente ausente del lookup (no existe) → ErrUnknownIngredient,
// distinto de "existe con costo nil".
func TestEstimateRecipeCost_IngredienteDesconocido(t *testing.T) {
	items := []inventory.RecipeItemInput{{IngredientID: "trufa", Quantity: dec("1")}}

	_, err := inventory.EstimateRecipeCost(items, inventory.CostLookup{})
	assert.ErrorIs(t, err, domain.ErrUnknownIngredient)
}

// Idempotencia: dos llamadas con el mismo input producen el mismo total.
func TestEstimateRecipeCost_Idempotente(t *testing.T) {
	items := []inventory.RecipeItemInput{
		{IngredientID: "a", Quantity: dec("1.333")},
		{IngredientID: "b", Quantity: dec("0.5")},
	}
	costs := inventory.CostLookup{"a": costPtr("12.99"), "b": costPtr("0.07")}

	est1, err1 := inventory.EstimateRecipeCost(items, costs)
	est2, err2 := inventory.EstimateRecipeCost(items, costs)
	require.NoError(t, err1)
	require.NoError(t, err2)

	assert.True(t, est1.Total.Equal(est2.Total), "mismo input debe producir el mismo total")
}

// El total siempre es la suma exacta de los costos por línea.
func TestEstimateRecipeCost_TotalEsSumaDeLineas(t *testing.T) {
	items := []inventory.RecipeItemInput{
		{IngredientID: "a", Quantity: dec("2.125")},
		{IngredientID: "b", Quantity: dec("3")},
		{IngredientID: "c", Quantity: dec("0.001")},
	}
	costs := inventory.CostLookup{
		"a": costPtr("1.99"),
		"b": nil,
		"c": costPtr("450"),
	}

	est, err := inventory.EstimateRecipeCost(items, costs)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, line := range est.PerItem {
		sum = sum.Add(line.Cost)
	}
	diff := est.Total.Sub(sum).Abs()
	assert.True(t, diff.LessThanOrEqual(dec("0.000001")),
		"total (%s) debe igualar la suma de líneas (%s)", est.Total, sum)
}
