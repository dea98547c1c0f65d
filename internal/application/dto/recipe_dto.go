package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeItemDto línea de receta en requests. Quantity debe ser > 0 con
// máx. 3 decimales.
type RecipeItemDto struct {
	IngredientID string          `json:"ingredient_id" validate:"required,uuid4"`
	Quantity     decimal.Decimal `json:"quantity"`
	Notes        string          `json:"notes" validate:"max=300"`
}

// CreateRecipeRequest entrada para crear una receta (mínimo un item).
type CreateRecipeRequest struct {
	Name        string          `json:"name" validate:"max=200"`
	Description string          `json:"description" validate:"max=1000"`
	Notes       string          `json:"notes" validate:"max=1000"`
	ProductID   *string         `json:"product_id" validate:"omitempty,uuid4"`
	Items       []RecipeItemDto `json:"items" validate:"required,min=1,dive"`
}

// UpdateRecipeRequest entrada para actualizar una receta. Items reemplaza
// el conjunto completo de líneas.
type UpdateRecipeRequest struct {
	Name        *string         `json:"name" validate:"omitempty,max=200"`
	Description *string         `json:"description" validate:"omitempty,max=1000"`
	Notes       *string         `json:"notes" validate:"omitempty,max=1000"`
	ProductID   *string         `json:"product_id" validate:"omitempty,uuid4"`
	Items       []RecipeItemDto `json:"items" validate:"omitempty,min=1,dive"`
}

// RecipeItemResponse línea de receta en respuestas, con su costo calculado.
type RecipeItemResponse struct {
	IngredientID string          `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Notes        string          `json:"notes,omitempty"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Cost         decimal.Decimal `json:"cost"`
}

// RecipeResponse salida de una receta con su costo estimado vigente
// (recalculado, no almacenado).
type RecipeResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name,omitempty"`
	Description   string               `json:"description,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	ProductID     *string              `json:"product_id,omitempty"`
	Items         []RecipeItemResponse `json:"items"`
	EstimatedCost decimal.Decimal      `json:"estimated_cost"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// RecipeListResponse lista paginada de recetas.
type RecipeListResponse struct {
	Items []RecipeResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// RecipeCostResponse desglose de costo de GET /api/recipes/{id}/cost.
type RecipeCostResponse struct {
	RecipeID  string               `json:"recipe_id"`
	TotalCost decimal.Decimal      `json:"total_cost"`
	Items     []RecipeItemResponse `json:"items"`
}
