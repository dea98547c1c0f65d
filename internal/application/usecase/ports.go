package usecase

import (
	"context"

	"github.com/never130/isidro-gourmet/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ajuste de
// stock (fila de ingrediente + registro de auditoría) y para las escrituras
// multi-tabla de recetas y pedidos.
type TxRunner interface {
	// RunStock transacción del ajuste de stock de un ingrediente.
	RunStock(ctx context.Context, fn func(
		ingRepo repository.IngredientRepository,
		movRepo repository.StockMovementRepository,
	) error) error

	// RunRecipe transacción de creación/actualización de una receta y sus items.
	RunRecipe(ctx context.Context, fn func(
		recipeRepo repository.RecipeRepository,
		ingRepo repository.IngredientRepository,
	) error) error

	// RunOrder transacción de creación de un pedido y sus items.
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}
