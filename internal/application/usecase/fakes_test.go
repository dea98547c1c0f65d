package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/never130/isidro-gourmet/internal/domain/entity"
	"github.com/never130/isidro-gourmet/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso (sin DB)
// ──────────────────────────────────────────────────────────────────────────────

type fakeIngredientRepo struct {
	ingredients map[string]*entity.Ingredient
}

func newFakeIngredientRepo(ings ...*entity.Ingredient) *fakeIngredientRepo {
	m := make(map[string]*entity.Ingredient, len(ings))
	for _, ing := range ings {
		m[ing.ID] = ing
	}
	return &fakeIngredientRepo{ingredients: m}
}

func (f *fakeIngredientRepo) Create(ing *entity.Ingredient) error {
	f.ingredients[ing.ID] = ing
	return nil
}

func (f *fakeIngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	return f.ingredients[id], nil
}

func (f *fakeIngredientRepo) GetForUpdate(id string) (*entity.Ingredient, error) {
	ing, ok := f.ingredients[id]
	if !ok {
		return nil, nil
	}
	// Devuelve una copia, como el repo real que escanea una fila nueva:
	// mutaciones posteriores vía UpdateStock no deben aliasar este puntero.
	copia := *ing
	return &copia, nil
}

func (f *fakeIngredientRepo) List(search string, limit, offset int) ([]*entity.Ingredient, error) {
	var out []*entity.Ingredient
	for _, ing := range f.ingredients {
		out = append(out, ing)
	}
	return out, nil
}

func (f *fakeIngredientRepo) ListLowStock() ([]*entity.Ingredient, error) {
	var out []*entity.Ingredient
	for _, ing := range f.ingredients {
		if ing.IsLowStock() {
			out = append(out, ing)
		}
	}
	return out, nil
}

func (f *fakeIngredientRepo) Update(ing *entity.Ingredient) error {
	f.ingredients[ing.ID] = ing
	return nil
}

func (f *fakeIngredientRepo) UpdateStock(id string, stock decimal.Decimal) error {
	f.ingredients[id].Stock = stock
	return nil
}

func (f *fakeIngredientRepo) GetCostsByIDs(ids []string) (map[string]*decimal.Decimal, error) {
	costs := make(map[string]*decimal.Decimal, len(ids))
	for _, id := range ids {
		if ing, ok := f.ingredients[id]; ok {
			costs[id] = ing.CostPrice
		}
	}
	return costs, nil
}

func (f *fakeIngredientRepo) CountByUnit(unitID string) (int, error) {
	count := 0
	for _, ing := range f.ingredients {
		if ing.UnitID == unitID {
			count++
		}
	}
	return count, nil
}

func (f *fakeIngredientRepo) Delete(id string) error {
	delete(f.ingredients, id)
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(mov *entity.StockMovement) error {
	f.movements = append(f.movements, mov)
	return nil
}

func (f *fakeMovementRepo) ListByIngredient(ingredientID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range f.movements {
		if m.IngredientID == ingredientID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeRecipeRepo struct {
	recipes map[string]*entity.Recipe
}

func newFakeRecipeRepo(recipes ...*entity.Recipe) *fakeRecipeRepo {
	m := make(map[string]*entity.Recipe, len(recipes))
	for _, r := range recipes {
		m[r.ID] = r
	}
	return &fakeRecipeRepo{recipes: m}
}

func (f *fakeRecipeRepo) Create(recipe *entity.Recipe) error {
	f.recipes[recipe.ID] = recipe
	return nil
}

func (f *fakeRecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	return f.recipes[id], nil
}

func (f *fakeRecipeRepo) List(limit, offset int) ([]*entity.Recipe, error) {
	var out []*entity.Recipe
	for _, r := range f.recipes {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRecipeRepo) Update(recipe *entity.Recipe) error {
	f.recipes[recipe.ID] = recipe
	return nil
}

func (f *fakeRecipeRepo) ReplaceItems(recipeID string, items []entity.RecipeItem) error {
	f.recipes[recipeID].Items = items
	return nil
}

func (f *fakeRecipeRepo) Delete(id string) error {
	delete(f.recipes, id)
	return nil
}

type fakeUnitRepo struct {
	units map[string]*entity.UnitOfMeasure
}

func newFakeUnitRepo(units ...*entity.UnitOfMeasure) *fakeUnitRepo {
	m := make(map[string]*entity.UnitOfMeasure, len(units))
	for _, u := range units {
		m[u.ID] = u
	}
	return &fakeUnitRepo{units: m}
}

func (f *fakeUnitRepo) Create(unit *entity.UnitOfMeasure) error {
	f.units[unit.ID] = unit
	return nil
}

func (f *fakeUnitRepo) GetByID(id string) (*entity.UnitOfMeasure, error) {
	return f.units[id], nil
}

func (f *fakeUnitRepo) List() ([]*entity.UnitOfMeasure, error) {
	var out []*entity.UnitOfMeasure
	for _, u := range f.units {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUnitRepo) Update(unit *entity.UnitOfMeasure) error {
	f.units[unit.ID] = unit
	return nil
}

func (f *fakeUnitRepo) Delete(id string) error {
	delete(f.units, id)
	return nil
}

// fakeTxRunner ejecuta los callbacks sin transacción real, sobre los mismos
// fakes en memoria.
type fakeTxRunner struct {
	ing     *fakeIngredientRepo
	mov     *fakeMovementRepo
	recipes *fakeRecipeRepo
}

func (f *fakeTxRunner) RunStock(ctx context.Context, fn func(
	ingRepo repository.IngredientRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(f.ing, f.mov)
}

func (f *fakeTxRunner) RunRecipe(ctx context.Context, fn func(
	recipeRepo repository.RecipeRepository,
	ingRepo repository.IngredientRepository,
) error) error {
	return fn(f.recipes, f.ing)
}

func (f *fakeTxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(nil, nil)
}
