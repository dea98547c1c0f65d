package repository

import "github.com/never130/isidro-gourmet/internal/domain/entity"

// RecipeRepository puerto de persistencia para Recipe y sus items.
// ReplaceItems borra e inserta el conjunto completo (el contrato de
// actualización es reemplazo total, no patch incremental) y debe ejecutarse
// dentro de una transacción.
type RecipeRepository interface {
	Create(recipe *entity.Recipe) error
	GetByID(id string) (*entity.Recipe, error)
	List(limit, offset int) ([]*entity.Recipe, error)
	Update(recipe *entity.Recipe) error
	ReplaceItems(recipeID string, items []entity.RecipeItem) error
	Delete(id string) error
}
