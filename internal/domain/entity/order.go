package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido.
const (
	OrderStatusPendiente     = "PENDIENTE"
	OrderStatusEnPreparacion = "EN_PREPARACION"
	OrderStatusEntregado     = "ENTREGADO"
	OrderStatusPagado        = "PAGADO"
	OrderStatusCancelado     = "CANCELADO"
)

// Métodos de pago aceptados.
const (
	PaymentCash     = "EFECTIVO"
	PaymentCard     = "TARJETA"
	PaymentTransfer = "TRANSFERENCIA"
)

// Order pedido del restaurante. Total es la suma de los subtotales de los
// items; los items guardan nombre y precio unitario como snapshot al momento
// de crear el pedido.
type Order struct {
	ID            string
	Number        int // consecutivo por día
	Table         string
	CustomerName  string
	Status        string
	PaymentMethod string // vacío hasta que el pedido se cobra
	Items         []OrderItem
	Total         decimal.Decimal
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	PaidAt        *time.Time
}

// OrderItem línea de pedido. Subtotal = UnitPrice * Quantity.
type OrderItem struct {
	ProductID   string
	ProductName string // snapshot del nombre al crear el pedido
	UnitPrice   decimal.Decimal
	Quantity    decimal.Decimal
	Subtotal    decimal.Decimal
	Notes       string
}

// CanTransitionTo valida la máquina de estados del pedido:
// PENDIENTE → EN_PREPARACION → ENTREGADO → PAGADO; CANCELADO es terminal
// y solo alcanzable antes del pago.
func (o *Order) CanTransitionTo(next string) bool {
	switch o.Status {
	case OrderStatusPendiente:
		return next == OrderStatusEnPreparacion || next == OrderStatusCancelado
	case OrderStatusEnPreparacion:
		return next == OrderStatusEntregado || next == OrderStatusCancelado
	case OrderStatusEntregado:
		return next == OrderStatusPagado || next == OrderStatusCancelado
	default:
		return false
	}
}
