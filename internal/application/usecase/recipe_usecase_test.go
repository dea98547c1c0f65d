package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/never130/isidro-gourmet/internal/application/dto"
	"github.com/never130/isidro-gourmet/internal/application/usecase"
	"github.com/never130/isidro-gourmet/internal/domain"
	"github.com/never130/isidro-gourmet/internal/domain/entity"
)

func costPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func buildRecipeUC(ings []*entity.Ingredient, recipes ...*entity.Recipe) (*usecase.RecipeUseCase, *fakeRecipeRepo) {
	ingRepo := newFakeIngredientRepo(ings...)
	recipeRepo := newFakeRecipeRepo(recipes...)
	tx := &fakeTxRunner{ing: ingRepo, recipes: recipeRepo}
	return usecase.NewRecipeUseCase(recipeRepo, ingRepo, tx), recipeRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// EstimateCost — costo recalculado con el costo vigente
// ──────────────────────────────────────────────────────────────────────────────

func TestEstimateCost_SumaCostoDeItems(t *testing.T) {
	ings := []*entity.Ingredient{
		{ID: "ing-1", Name: "Harina", CostPrice: costPtr("2.50")},
		{ID: "ing-2", Name: "Azúcar", CostPrice: costPtr("1.00")},
	}
	recipe := &entity.Recipe{ID: "rec-1", Items: []entity.RecipeItem{
		{IngredientID: "ing-1", Quantity: dec("2")},
		{IngredientID: "ing-2", Quantity: dec("3")},
	}}
	uc, _ := buildRecipeUC(ings, recipe)

	out, err := uc.EstimateCost("rec-1")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.TotalCost.Equal(dec("8")), "2*2.50 + 3*1.00 = 8.00, obtuvo %s", out.TotalCost)
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].Cost.Equal(dec("5")))
	assert.True(t, out.Items[1].Cost.Equal(dec("3")))
}

func TestEstimateCost_IngredienteSinCostoAportaCero(t *testing.T) {
	ings := []*entity.Ingredient{
		{ID: "ing-1", CostPrice: costPtr("4.00")},
		{ID: "ing-2", CostPrice: nil}, // sin costo registrado
	}
	recipe := &entity.Recipe{ID: "rec-1", Items: []entity.RecipeItem{
		{IngredientID: "ing-1", Quantity: dec("1")},
		{IngredientID: "ing-2", Quantity: dec("10")},
	}}
	uc, _ := buildRecipeUC(ings, recipe)

	out, err := uc.EstimateCost("rec-1")
	require.NoError(t, err)

	assert.True(t, out.TotalCost.Equal(dec("4")),
		"el item sin costo aporta 0, no invalida la estimación")
	assert.True(t, out.Items[1].Cost.IsZero())
}

func TestEstimateCost_RecetaInexistente_DevuelveNil(t *testing.T) {
	uc, _ := buildRecipeUC(nil)

	out, err := uc.EstimateCost("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update — invariantes estructurales
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateRecipe_SinItems_Falla(t *testing.T) {
	uc, _ := buildRecipeUC(nil)

	_, err := uc.Create(context.Background(), dto.CreateRecipeRequest{Name: "Vacía"})
	assert.ErrorIs(t, err, domain.ErrInvalidRecipe)
}

func TestCreateRecipe_IngredienteDesconocido_Falla(t *testing.T) {
	uc, _ := buildRecipeUC([]*entity.Ingredient{{ID: "ing-1", CostPrice: costPtr("1")}})

	_, err := uc.Create(context.Background(), dto.CreateRecipeRequest{
		Name: "Torta",
		Items: []dto.RecipeItemDto{
			{IngredientID: "ing-1", Quantity: dec("1")},
			{IngredientID: "fantasma", Quantity: dec("1")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrUnknownIngredient)
}

func TestCreateRecipe_CantidadNoPositiva_Falla(t *testing.T) {
	uc, _ := buildRecipeUC([]*entity.Ingredient{{ID: "ing-1"}})

	_, err := uc.Create(context.Background(), dto.CreateRecipeRequest{
		Name:  "Torta",
		Items: []dto.RecipeItemDto{{IngredientID: "ing-1", Quantity: dec("0")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateRecipe_ConservaOrdenDeItems(t *testing.T) {
	ings := []*entity.Ingredient{{ID: "ing-1"}, {ID: "ing-2"}, {ID: "ing-3"}}
	uc, repo := buildRecipeUC(ings)

	out, err := uc.Create(context.Background(), dto.CreateRecipeRequest{
		Name: "Milanesa",
		Items: []dto.RecipeItemDto{
			{IngredientID: "ing-3", Quantity: dec("1")},
			{IngredientID: "ing-1", Quantity: dec("2")},
			{IngredientID: "ing-2", Quantity: dec("3")},
		},
	})
	require.NoError(t, err)

	saved := repo.recipes[out.ID]
	require.Len(t, saved.Items, 3)
	assert.Equal(t, "ing-3", saved.Items[0].IngredientID, "el orden del request se conserva")
	assert.Equal(t, 0, saved.Items[0].Position)
	assert.Equal(t, 2, saved.Items[2].Position)
}

func TestUpdateRecipe_ItemsReemplazanConjuntoCompleto(t *testing.T) {
	ings := []*entity.Ingredient{{ID: "ing-1"}, {ID: "ing-2"}}
	recipe := &entity.Recipe{ID: "rec-1", Name: "Original", Items: []entity.RecipeItem{
		{IngredientID: "ing-1", Quantity: dec("5"), Position: 0},
	}}
	uc, repo := buildRecipeUC(ings, recipe)

	_, err := uc.Update(context.Background(), "rec-1", dto.UpdateRecipeRequest{
		Items: []dto.RecipeItemDto{{IngredientID: "ing-2", Quantity: dec("1")}},
	})
	require.NoError(t, err)

	saved := repo.recipes["rec-1"]
	require.Len(t, saved.Items, 1, "los items anteriores no sobreviven al reemplazo")
	assert.Equal(t, "ing-2", saved.Items[0].IngredientID)
}

func TestUpdateRecipe_Inexistente_Falla(t *testing.T) {
	uc, _ := buildRecipeUC(nil)

	name := "Nueva"
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateRecipeRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
