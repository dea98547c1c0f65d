package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/never130/isidro-gourmet/internal/domain"
	"github.com/never130/isidro-gourmet/internal/domain/entity"
	"github.com/never130/isidro-gourmet/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación del puerto RecipeRepository sobre PostgreSQL.
// Los items viven en recipe_items y pertenecen en exclusiva a su receta;
// ReplaceItems borra e inserta el conjunto completo dentro de la tx.
type RecipeRepo struct {
	q Querier
}

func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

func (r *RecipeRepo) Create(recipe *entity.Recipe) error {
	query := `
		INSERT INTO recipes (id, name, description, notes, product_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		recipe.ID, recipe.Name, recipe.Description, recipe.Notes,
		recipe.ProductID, recipe.CreatedAt, recipe.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert recipe: %w", err)
	}
	return r.insertItems(recipe.ID, recipe.Items)
}

func (r *RecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	var recipe entity.Recipe
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, description, notes, product_id, created_at, updated_at FROM recipes WHERE id = $1`,
		id).Scan(&recipe.ID, &recipe.Name, &recipe.Description, &recipe.Notes,
		&recipe.ProductID, &recipe.CreatedAt, &recipe.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	items, err := r.loadItems(id)
	if err != nil {
		return nil, err
	}
	recipe.Items = items
	return &recipe, nil
}

func (r *RecipeRepo) List(limit, offset int) ([]*entity.Recipe, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, description, notes, product_id, created_at, updated_at
		 FROM recipes ORDER BY name ASC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Recipe
	for rows.Next() {
		var recipe entity.Recipe
		if err := rows.Scan(&recipe.ID, &recipe.Name, &recipe.Description, &recipe.Notes,
			&recipe.ProductID, &recipe.CreatedAt, &recipe.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, &recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, recipe := range list {
		items, err := r.loadItems(recipe.ID)
		if err != nil {
			return nil, err
		}
		recipe.Items = items
	}
	return list, nil
}

func (r *RecipeRepo) Update(recipe *entity.Recipe) error {
	query := `
		UPDATE recipes
		SET name = $2, description = $3, notes = $4, product_id = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		recipe.ID, recipe.Name, recipe.Description, recipe.Notes,
		recipe.ProductID, recipe.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update recipe: %w", err)
	}
	return nil
}

// ReplaceItems reemplaza el conjunto completo de items de la receta.
// Ejecutar dentro de una transacción junto con Update.
func (r *RecipeRepo) ReplaceItems(recipeID string, items []entity.RecipeItem) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM recipe_items WHERE recipe_id = $1`, recipeID)
	if err != nil {
		return fmt.Errorf("delete recipe items: %w", err)
	}
	return r.insertItems(recipeID, items)
}

func (r *RecipeRepo) Delete(id string) error {
	// recipe_items tiene ON DELETE CASCADE sobre recipe_id.
	_, err := r.q.Exec(context.Background(), `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

func (r *RecipeRepo) insertItems(recipeID string, items []entity.RecipeItem) error {
	for _, item := range items {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO recipe_items (recipe_id, position, ingredient_id, quantity, notes)
			 VALUES ($1, $2, $3, $4, $5)`,
			recipeID, item.Position, item.IngredientID, item.Quantity, item.Notes)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrUnknownIngredient
			}
			return fmt.Errorf("insert recipe item: %w", err)
		}
	}
	return nil
}

func (r *RecipeRepo) loadItems(recipeID string) ([]entity.RecipeItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT ingredient_id, quantity, notes, position
		 FROM recipe_items WHERE recipe_id = $1 ORDER BY position ASC`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("load recipe items: %w", err)
	}
	defer rows.Close()

	var items []entity.RecipeItem
	for rows.Next() {
		var item entity.RecipeItem
		if err := rows.Scan(&item.IngredientID, &item.Quantity, &item.Notes, &item.Position); err != nil {
			return nil, fmt.Errorf("scan recipe item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
