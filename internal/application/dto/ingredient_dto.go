package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIngredientRequest entrada para crear un ingrediente.
// StockQuantity y LowStockThreshold deben ser ≥ 0 con máx. 3 decimales;
// CostPrice es opcional (ausente = sin costo registrado).
type CreateIngredientRequest struct {
	Name              string           `json:"name" validate:"required,min=1,max=200"`
	UnitID            string           `json:"unit_id" validate:"required,uuid4"`
	StockQuantity     decimal.Decimal  `json:"stock_quantity"`
	LowStockThreshold decimal.Decimal  `json:"low_stock_threshold"`
	CostPrice         *decimal.Decimal `json:"cost_price,omitempty"`
}

// UpdateIngredientRequest entrada para actualizar un ingrediente.
// El stock no se actualiza por aquí: solo vía ajuste de stock.
type UpdateIngredientRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	UnitID            *string          `json:"unit_id" validate:"omitempty,uuid4"`
	LowStockThreshold *decimal.Decimal `json:"low_stock_threshold"`
	CostPrice         *decimal.Decimal `json:"cost_price"`
	ClearCostPrice    bool             `json:"clear_cost_price,omitempty"` // true = dejar el costo sin registrar
}

// AdjustStockRequest body para POST /api/ingredients/{id}/adjust-stock.
// Mode: ADD | SUBTRACT | SET_TOTAL. Amount siempre > 0: para ADD/SUBTRACT es
// la magnitud a aplicar, para SET_TOTAL el total deseado.
type AdjustStockRequest struct {
	Mode   string          `json:"mode" validate:"required,oneof=ADD SUBTRACT SET_TOTAL"`
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason" validate:"max=300"`
}

// AdjustStockResponse resultado del ajuste persistido.
type AdjustStockResponse struct {
	IngredientID  string          `json:"ingredient_id"`
	Delta         decimal.Decimal `json:"delta"`
	PreviousStock decimal.Decimal `json:"previous_stock"`
	NewStock      decimal.Decimal `json:"new_stock"`
}

// IngredientResponse salida de un ingrediente.
type IngredientResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	UnitID            string           `json:"unit_id"`
	Stock             decimal.Decimal  `json:"stock"`
	LowStockThreshold decimal.Decimal  `json:"low_stock_threshold"`
	CostPrice         *decimal.Decimal `json:"cost_price"`
	LowStock          bool             `json:"low_stock"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// IngredientListResponse lista paginada de ingredientes.
type IngredientListResponse struct {
	Items []IngredientResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// StockMovementResponse registro de auditoría de un ajuste.
type StockMovementResponse struct {
	ID            string          `json:"id"`
	IngredientID  string          `json:"ingredient_id"`
	Delta         decimal.Decimal `json:"delta"`
	PreviousStock decimal.Decimal `json:"previous_stock"`
	NewStock      decimal.Decimal `json:"new_stock"`
	Reason        string          `json:"reason,omitempty"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}
