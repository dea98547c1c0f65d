package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/never130/isidro-gourmet/internal/application/dto"
	"github.com/never130/isidro-gourmet/internal/domain"
	"github.com/never130/isidro-gourmet/internal/domain/entity"
	"github.com/never130/isidro-gourmet/internal/domain/inventory"
	"github.com/never130/isidro-gourmet/internal/domain/repository"
)

// RecipeUseCase CRUD de recetas y cálculo de costo estimado.
// El costo nunca se almacena: se recalcula en cada lectura con el costo
// vigente de cada ingrediente, vía el estimador de dominio.
type RecipeUseCase struct {
	repo     repository.RecipeRepository
	ingRepo  repository.IngredientRepository
	txRunner TxRunner
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(repo repository.RecipeRepository, ingRepo repository.IngredientRepository, txRunner TxRunner) *RecipeUseCase {
	return &RecipeUseCase{repo: repo, ingRepo: ingRepo, txRunner: txRunner}
}

// validateItems valida el invariante estructural de la receta: al menos un
// item, cantidades > 0 con máx. 3 decimales y todos los ingredientes existentes.
func (uc *RecipeUseCase) validateItems(ingRepo repository.IngredientRepository, items []dto.RecipeItemDto) ([]entity.RecipeItem, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidRecipe
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if !it.Quantity.IsPositive() || !validScale(it.Quantity, maxQuantityScale) {
			return nil, domain.ErrInvalidInput
		}
		ids = append(ids, it.IngredientID)
	}
	costs, err := ingRepo.GetCostsByIDs(ids)
	if err != nil {
		return nil, err
	}
	out := make([]entity.RecipeItem, 0, len(items))
	for i, it := range items {
		if _, ok := costs[it.IngredientID]; !ok {
			return nil, domain.ErrUnknownIngredient
		}
		out = append(out, entity.RecipeItem{
			IngredientID: it.IngredientID,
			Quantity:     it.Quantity,
			Notes:        it.Notes,
			Position:     i,
		})
	}
	return out, nil
}

// Create crea una receta con su conjunto de items, todo en una transacción.
func (uc *RecipeUseCase) Create(ctx context.Context, in dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	var created *entity.Recipe
	err := uc.txRunner.RunRecipe(ctx, func(
		recipeRepo repository.RecipeRepository,
		ingRepo repository.IngredientRepository,
	) error {
		items, err := uc.validateItems(ingRepo, in.Items)
		if err != nil {
			return err
		}
		now := time.Now()
		recipe := &entity.Recipe{
			ID:          uuid.New().String(),
			Name:        in.Name,
			Description: in.Description,
			Notes:       in.Notes,
			ProductID:   in.ProductID,
			Items:       items,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := recipeRepo.Create(recipe); err != nil {
			return err
		}
		created = recipe
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(created)
}

// GetByID obtiene una receta con su costo estimado recalculado.
func (uc *RecipeUseCase) GetByID(id string) (*dto.RecipeResponse, error) {
	recipe, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, nil
	}
	return uc.toResponse(recipe)
}

// List lista recetas con paginación, cada una con su costo recalculado.
func (uc *RecipeUseCase) List(limit, offset int) (*dto.RecipeListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecipeResponse, 0, len(list))
	for _, r := range list {
		resp, err := uc.toResponse(r)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.RecipeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza una receta. Si vienen items, el conjunto se reemplaza
// completo (contrato de reemplazo total) dentro de la misma transacción.
func (uc *RecipeUseCase) Update(ctx context.Context, id string, in dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	var updated *entity.Recipe
	err := uc.txRunner.RunRecipe(ctx, func(
		recipeRepo repository.RecipeRepository,
		ingRepo repository.IngredientRepository,
	) error {
		recipe, err := recipeRepo.GetByID(id)
		if err != nil {
			return err
		}
		if recipe == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			recipe.Name = *in.Name
		}
		if in.Description != nil {
			recipe.Description = *in.Description
		}
		if in.Notes != nil {
			recipe.Notes = *in.Notes
		}
		if in.ProductID != nil {
			recipe.ProductID = in.ProductID
		}
		if in.Items != nil {
			items, err := uc.validateItems(ingRepo, in.Items)
			if err != nil {
				return err
			}
			if err := recipeRepo.ReplaceItems(id, items); err != nil {
				return err
			}
			recipe.Items = items
		}
		recipe.UpdatedAt = time.Now()
		if err := recipeRepo.Update(recipe); err != nil {
			return err
		}
		updated = recipe
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(updated)
}

// EstimateCost desglose de costo de una receta (GET /api/recipes/{id}/cost).
func (uc *RecipeUseCase) EstimateCost(id string) (*dto.RecipeCostResponse, error) {
	recipe, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, nil
	}
	est, lines, err := uc.estimate(recipe)
	if err != nil {
		return nil, err
	}
	return &dto.RecipeCostResponse{
		RecipeID:  recipe.ID,
		TotalCost: est.Total.Round(2),
		Items:     lines,
	}, nil
}

// Delete elimina una receta y sus items.
func (uc *RecipeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// estimate ejecuta el estimador de dominio con el costo vigente de cada
// ingrediente de la receta.
func (uc *RecipeUseCase) estimate(recipe *entity.Recipe) (inventory.RecipeCostEstimate, []dto.RecipeItemResponse, error) {
	ids := make([]string, 0, len(recipe.Items))
	inputs := make([]inventory.RecipeItemInput, 0, len(recipe.Items))
	for _, it := range recipe.Items {
		ids = append(ids, it.IngredientID)
		inputs = append(inputs, inventory.RecipeItemInput{IngredientID: it.IngredientID, Quantity: it.Quantity})
	}
	costs, err := uc.ingRepo.GetCostsByIDs(ids)
	if err != nil {
		return inventory.RecipeCostEstimate{}, nil, err
	}
	est, err := inventory.EstimateRecipeCost(inputs, inventory.CostLookup(costs))
	if err != nil {
		return inventory.RecipeCostEstimate{}, nil, err
	}
	lines := make([]dto.RecipeItemResponse, 0, len(est.PerItem))
	for i, line := range est.PerItem {
		lines = append(lines, dto.RecipeItemResponse{
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			Notes:        recipe.Items[i].Notes,
			UnitCost:     line.UnitCost.Round(2),
			Cost:         line.Cost.Round(2),
		})
	}
	return est, lines, nil
}

func (uc *RecipeUseCase) toResponse(recipe *entity.Recipe) (*dto.RecipeResponse, error) {
	est, lines, err := uc.estimate(recipe)
	if err != nil {
		return nil, err
	}
	return &dto.RecipeResponse{
		ID:            recipe.ID,
		Name:          recipe.Name,
		Description:   recipe.Description,
		Notes:         recipe.Notes,
		ProductID:     recipe.ProductID,
		Items:         lines,
		EstimatedCost: est.Total.Round(2),
		CreatedAt:     recipe.CreatedAt,
		UpdatedAt:     recipe.UpdatedAt,
	}, nil
}
