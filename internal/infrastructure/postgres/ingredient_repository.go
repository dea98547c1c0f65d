package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/never130/isidro-gourmet/internal/domain"
	"github.com/never130/isidro-gourmet/internal/domain/entity"
	"github.com/never130/isidro-gourmet/internal/domain/repository"
	"github.com/never130/isidro-gourmet/pkg/textutil"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implementación del puerto IngredientRepository sobre
// PostgreSQL (usable con pool o tx). La columna name_normalized guarda el
// nombre sin acentos y en minúsculas para búsquedas en español.
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador de persistencia para
// ingredientes. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

const ingredientColumns = `id, name, unit_id, stock, low_stock_threshold, cost_price, created_at, updated_at`

// Create persiste un nuevo ingrediente.
func (r *IngredientRepo) Create(ing *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (id, name, name_normalized, unit_id, stock, low_stock_threshold, cost_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.Name, textutil.Normalize(ing.Name), ing.UnitID,
		ing.Stock, ing.LowStockThreshold, ing.CostPrice, ing.CreatedAt, ing.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un ingrediente por ID.
func (r *IngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get ingredient")
}

// GetForUpdate obtiene un ingrediente bloqueando su fila (SELECT FOR UPDATE)
// para evitar condiciones de carrera en ajustes concurrentes. Solo tiene
// sentido dentro de una transacción.
func (r *IngredientRepo) GetForUpdate(id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get ingredient for update")
}

// List lista ingredientes con búsqueda opcional por nombre (insensible a
// acentos) y paginación.
func (r *IngredientRepo) List(search string, limit, offset int) ([]*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients`
	args := []any{}
	if search != "" {
		query += ` WHERE name_normalized LIKE '%' || $1 || '%'`
		args = append(args, textutil.Normalize(search))
	}
	query += fmt.Sprintf(` ORDER BY name ASC LIMIT %d OFFSET %d`, limit, offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListLowStock lista ingredientes en o por debajo de su umbral de alerta.
func (r *IngredientRepo) ListLowStock() ([]*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + `
		FROM ingredients
		WHERE low_stock_threshold > 0 AND stock <= low_stock_threshold
		ORDER BY stock / low_stock_threshold ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Update actualiza los datos del ingrediente. No toca la columna stock:
// esa solo se escribe vía UpdateStock desde el ajuste transaccional.
func (r *IngredientRepo) Update(ing *entity.Ingredient) error {
	query := `
		UPDATE ingredients
		SET name = $2, name_normalized = $3, unit_id = $4, low_stock_threshold = $5, cost_price = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.Name, textutil.Normalize(ing.Name), ing.UnitID,
		ing.LowStockThreshold, ing.CostPrice, ing.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update ingredient: %w", err)
	}
	return nil
}

// UpdateStock escribe el nuevo stock (única vía de escritura de la columna).
func (r *IngredientRepo) UpdateStock(id string, stock decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE ingredients SET stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update ingredient stock: %w", err)
	}
	return nil
}

// GetCostsByIDs devuelve el costo unitario por ingrediente. IDs inexistentes
// no aparecen en el mapa; costo sin registrar aparece como nil.
func (r *IngredientRepo) GetCostsByIDs(ids []string) (map[string]*decimal.Decimal, error) {
	if len(ids) == 0 {
		return map[string]*decimal.Decimal{}, nil
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT id, cost_price FROM ingredients WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get ingredient costs: %w", err)
	}
	defer rows.Close()
	costs := make(map[string]*decimal.Decimal, len(ids))
	for rows.Next() {
		var id string
		var cost *decimal.Decimal
		if err := rows.Scan(&id, &cost); err != nil {
			return nil, fmt.Errorf("scan ingredient cost: %w", err)
		}
		costs[id] = cost
	}
	return costs, rows.Err()
}

// CountByUnit cuenta los ingredientes que referencian una unidad de medida.
func (r *IngredientRepo) CountByUnit(unitID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM ingredients WHERE unit_id = $1`, unitID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count ingredients by unit: %w", err)
	}
	return count, nil
}

// Delete elimina un ingrediente por ID. Si alguna receta lo referencia,
// la FK lo impide y se mapea a ErrConflict.
func (r *IngredientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete ingredient: %w", err)
	}
	return nil
}

func (r *IngredientRepo) scanOne(row pgx.Row, op string) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	err := row.Scan(&ing.ID, &ing.Name, &ing.UnitID, &ing.Stock,
		&ing.LowStockThreshold, &ing.CostPrice, &ing.CreatedAt, &ing.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &ing, nil
}

func (r *IngredientRepo) scanMany(rows pgx.Rows) ([]*entity.Ingredient, error) {
	var list []*entity.Ingredient
	for rows.Next() {
		var ing entity.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.UnitID, &ing.Stock,
			&ing.LowStockThreshold, &ing.CostPrice, &ing.CreatedAt, &ing.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, &ing)
	}
	return list, rows.Err()
}
