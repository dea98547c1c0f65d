package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/never130/isidro-gourmet/internal/domain"
)

// AdjustmentMode modo de ajuste de stock solicitado por el usuario.
type AdjustmentMode string

// Modos soportados: sumar, restar o fijar el total resultante.
const (
	ModeAdd      AdjustmentMode = "ADD"
	ModeSubtract AdjustmentMode = "SUBTRACT"
	ModeSetTotal AdjustmentMode = "SET_TOTAL"
)

// Valid indica si el modo es uno de los soportados.
func (m AdjustmentMode) Valid() bool {
	return m == ModeAdd || m == ModeSubtract || m == ModeSetTotal
}

// StockAdjustment resultado de un ajuste: Delta es la cantidad firmada que
// la capa de persistencia debe aplicar (y auditar) y NewStock el valor que
// queda escrito en el ingrediente.
type StockAdjustment struct {
	Delta    decimal.Decimal
	NewStock decimal.Decimal
}

// ComputeStockAdjustment traduce la intención del usuario (modo + cantidad)
// al delta firmado y al stock resultante, validando factibilidad.
//
//	ADD:       delta = +amount
//	SUBTRACT:  delta = -amount
//	SET_TOTAL: delta = amount - currentStock (puede ser positivo o negativo)
//
// amount debe ser estrictamente positivo (domain.ErrInvalidInput) y el stock
// resultante nunca puede quedar negativo (domain.ErrInvalidAdjustment), sin
// importar el modo. No tiene efectos secundarios: el caller persiste el
// resultado como una única actualización atómica por ingrediente.
// La precisión decimal se conserva tal cual (máx. 3 decimales por contrato
// de los DTOs); aquí no se redondea.
func ComputeStockAdjustment(currentStock decimal.Decimal, mode AdjustmentMode, amount decimal.Decimal) (StockAdjustment, error) {
	if !mode.Valid() {
		return StockAdjustment{}, domain.ErrInvalidInput
	}
	if !amount.IsPositive() {
		return StockAdjustment{}, domain.ErrInvalidInput
	}

	var delta decimal.Decimal
	switch mode {
	case ModeAdd:
		delta = amount
	case ModeSubtract:
		delta = amount.Neg()
	case ModeSetTotal:
		delta = amount.Sub(currentStock)
	}

	newStock := currentStock.Add(delta)
	if newStock.IsNegative() {
		return StockAdjustment{}, domain.ErrInvalidAdjustment
	}
	return StockAdjustment{Delta: delta, NewStock: newStock}, nil
}
