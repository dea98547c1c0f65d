package repository

import "github.com/never130/isidro-gourmet/internal/domain/entity"

// StockMovementRepository puerto de persistencia para el historial de
// ajustes de stock.
type StockMovementRepository interface {
	Create(mov *entity.StockMovement) error
	ListByIngredient(ingredientID string, limit, offset int) ([]*entity.StockMovement, error)
}
