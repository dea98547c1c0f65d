package repository

import (
	"github.com/shopspring/decimal"

	"github.com/never130/isidro-gourmet/internal/domain/entity"
)

// IngredientRepository define el puerto de persistencia para Ingredient (DIP).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y solo tiene sentido dentro
// de una transacción; UpdateStock es la única vía de escritura del stock.
type IngredientRepository interface {
	Create(ing *entity.Ingredient) error
	GetByID(id string) (*entity.Ingredient, error)
	GetForUpdate(id string) (*entity.Ingredient, error)
	List(search string, limit, offset int) ([]*entity.Ingredient, error)
	ListLowStock() ([]*entity.Ingredient, error)
	Update(ing *entity.Ingredient) error
	UpdateStock(id string, stock decimal.Decimal) error
	// GetCostsByIDs devuelve el costo unitario por ingrediente para los IDs
	// pedidos. Los IDs inexistentes no aparecen en el mapa; un costo sin
	// registrar aparece como nil.
	GetCostsByIDs(ids []string) (map[string]*decimal.Decimal, error)
	CountByUnit(unitID string) (int, error)
	Delete(id string) error
}
