package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemDto línea de pedido en requests. Quantity > 0.
type OrderItemDto struct {
	ProductID string          `json:"product_id" validate:"required,uuid4"`
	Quantity  decimal.Decimal `json:"quantity"`
	Notes     string          `json:"notes" validate:"max=300"`
}

// CreateOrderRequest entrada para crear un pedido (mínimo un item).
type CreateOrderRequest struct {
	Table        string         `json:"table" validate:"max=50"`
	CustomerName string         `json:"customer_name" validate:"max=200"`
	Notes        string         `json:"notes" validate:"max=1000"`
	Items        []OrderItemDto `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest body para PATCH /api/orders/{id}/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDIENTE EN_PREPARACION ENTREGADO CANCELADO"`
}

// PayOrderRequest body para POST /api/orders/{id}/pay.
type PayOrderRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=EFECTIVO TARJETA TRANSFERENCIA"`
}

// OrderItemResponse línea de pedido en respuestas (snapshot de producto).
type OrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    decimal.Decimal `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Notes       string          `json:"notes,omitempty"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string              `json:"id"`
	Number        int                 `json:"number"`
	Table         string              `json:"table,omitempty"`
	CustomerName  string              `json:"customer_name,omitempty"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	Total         decimal.Decimal     `json:"total"`
	Notes         string              `json:"notes,omitempty"`
	CreatedBy     string              `json:"created_by"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	PaidAt        *time.Time          `json:"paid_at,omitempty"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
