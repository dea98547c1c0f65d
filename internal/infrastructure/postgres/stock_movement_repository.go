package postgres

import (
	"context"
	"fmt"

	"github.com/never130/isidro-gourmet/internal/domain/entity"
	"github.com/never130/isidro-gourmet/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del puerto StockMovementRepository.
// Los movimientos son inmutables: solo inserciones y lecturas.
type StockMovementRepo struct {
	q Querier
}

func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

func (r *StockMovementRepo) Create(mov *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, ingredient_id, delta, previous_stock, new_stock, reason, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.IngredientID, mov.Delta, mov.PreviousStock,
		mov.NewStock, mov.Reason, mov.CreatedBy, mov.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

func (r *StockMovementRepo) ListByIngredient(ingredientID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, ingredient_id, delta, previous_stock, new_stock, reason, created_by, created_at
		FROM stock_movements
		WHERE ingredient_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ingredientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var mov entity.StockMovement
		if err := rows.Scan(&mov.ID, &mov.IngredientID, &mov.Delta, &mov.PreviousStock,
			&mov.NewStock, &mov.Reason, &mov.CreatedBy, &mov.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &mov)
	}
	return list, rows.Err()
}
