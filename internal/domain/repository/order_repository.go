package repository

import (
	"time"

	"github.com/never130/isidro-gourmet/internal/domain/entity"
)

// OrderFilter filtros del listado de pedidos.
type OrderFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// OrderRepository puerto de persistencia para Order y sus items.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List(filter OrderFilter) ([]*entity.Order, error)
	UpdateStatus(order *entity.Order) error
	// NextNumber devuelve el siguiente consecutivo de pedido del día.
	// Llamar dentro de la transacción de creación.
	NextNumber(day time.Time) (int, error)
}
