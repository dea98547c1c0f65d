package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/never130/isidro-gourmet/internal/domain"
	"github.com/never130/isidro-gourmet/internal/domain/inventory"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeStockAdjustment — casos felices por modo
// ──────────────────────────────────────────────────────────────────────────────

// ADD: stock=10, amount=5 → delta +5, newStock 15.
func TestComputeStockAdjustment_AddSumaAlStock(t *testing.T) {
	res, err := inventory.ComputeStockAdjustment(dec("10"), inventory.ModeAdd, dec("5"))
	require.NoError(t, err)

	assert.True(t, dec("5").Equal(res.Delta), "delta debe ser +5, fue %s", res.Delta)
	assert.True(t, dec("15").Equal(res.NewStock), "newStock debe ser 15, fue %s", res.NewStock)
}

// SUBTRACT dentro del stock disponible → newStock = stock - amount ≥ 0.
func TestComputeStockAdjustment_SubtractRestaDelStock(t *testing.T) {
	res, err := inventory.ComputeStockAdjustment(dec("10"), inventory.ModeSubtract, dec("4"))
	require.NoError(t, err)

	assert.True(t, dec("-4").Equal(res.Delta))
	assert.True(t, dec("6").Equal(res.NewStock))
	assert.False(t, res.NewStock.IsNegative())
}

// SET_TOTAL: stock=10, amount=7 → delta -3, newStock exactamente 7.
func TestComputeStockAdjustment_SetTotalFijaElTotal(t *testing.T) {
	res, err := inventory.ComputeStockAdjustment(dec("10"), inventory.ModeSetTotal, dec("7"))
	require.NoError(t, err)

	assert.True(t, dec("-3").Equal(res.Delta), "delta debe ser amount - currentStock")
	assert.True(t, dec("7").Equal(res.NewStock), "newStock debe ser exactamente amount")
}

// SET_TOTAL por encima del stock actual produce delta positivo.
func TestComputeStockAdjustment_SetTotalHaciaArriba(t *testing.T) {
	res, err := inventory.ComputeStockAdjustment(dec("2.5"), inventory.ModeSetTotal, dec("9"))
	require.NoError(t, err)

	assert.True(t, dec("6.5").Equal(res.Delta))
	assert.True(t, dec("9").Equal(res.NewStock))
}

// La precisión de 3 decimales se conserva sin redondeo.
func TestComputeStockAdjustment_ConservaTresDecimales(t *testing.T) {
	res, err := inventory.ComputeStockAdjustment(dec("0.125"), inventory.ModeAdd, dec("0.375"))
	require.NoError(t, err)

	assert.True(t, dec("0.5").Equal(res.NewStock))
	assert.Equal(t, "0.375", res.Delta.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeStockAdjustment — rechazos
// ──────────────────────────────────────────────────────────────────────────────

// Restar más de lo disponible → ErrInvalidAdjustment (el stock nunca queda negativo).
func TestComputeStockAdjustment_SubtractMayorAlStock_Rechazado(t *testing.T) {
	_, err := inventory.ComputeStockAdjustment(dec("10"), inventory.ModeSubtract, dec("15"))
	assert.ErrorIs(t, err, domain.ErrInvalidAdjustment)
}

// Restar exactamente el stock deja cero, que sí es válido.
func TestComputeStockAdjustment_SubtractTodoElStock_DejaCero(t *testing.T) {
	res, err := inventory.ComputeStockAdjustment(dec("10"), inventory.ModeSubtract, dec("10"))
	require.NoError(t, err)
	assert.True(t, res.NewStock.IsZero())
}

// amount ≤ 0 es ErrInvalidInput en cualquier modo.
func TestComputeStockAdjustment_AmountNoPositivo_Rechazado(t *testing.T) {
	for _, mode := range []inventory.AdjustmentMode{inventory.ModeAdd, inventory.ModeSubtract, inventory.ModeSetTotal} {
		_, err := inventory.ComputeStockAdjustment(dec("10"), mode, decimal.Zero)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "amount=0 en modo %s", mode)

		_, err = inventory.ComputeStockAdjustment(dec("10"), mode, dec("-1"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "amount=-1 en modo %s", mode)
	}
}

// Modo desconocido → ErrInvalidInput.
func TestComputeStockAdjustment_ModoInvalido_Rechazado(t *testing.T) {
	_, err := inventory.ComputeStockAdjustment(dec("10"), inventory.AdjustmentMode("MULTIPLY"), dec("2"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Propiedad: para todo stock ≥ 0 y amount > 0, ADD siempre da stock + amount.
func TestComputeStockAdjustment_PropiedadAdd(t *testing.T) {
	cases := []struct{ stock, amount string }{
		{"0", "0.001"},
		{"1.5", "2.25"},
		{"999999", "0.333"},
		{"0.001", "0.001"},
	}
	for _, c := range cases {
		res, err := inventory.ComputeStockAdjustment(dec(c.stock), inventory.ModeAdd, dec(c.amount))
		require.NoError(t, err, "stock=%s amount=%s", c.stock, c.amount)
		assert.True(t, dec(c.stock).Add(dec(c.amount)).Equal(res.NewStock))
		assert.True(t, dec(c.amount).Equal(res.Delta))
	}
}
