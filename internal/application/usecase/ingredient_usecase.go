package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/never130/isidro-gourmet/internal/domain"
	"github.com/never130/isidro-gourmet/internal/domain/entity"
	"github.com/never130/isidro-gourmet/internal/domain/inventory"
	"github.com/never130/isidro-gourmet/internal/domain/repository"
	"github.com/never130/isidro-gourmet/internal/application/dto"
)

// IngredientUseCase CRUD de ingredientes y ajuste transaccional de stock.
// El stock nunca se escribe directo desde Update: solo vía AdjustStock, que
// calcula el delta con la regla de dominio y deja registro de auditoría.
type IngredientUseCase struct {
	repo     repository.IngredientRepository
	unitRepo repository.UnitRepository
	movRepo  repository.StockMovementRepository
	txRunner TxRunner
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(
	repo repository.IngredientRepository,
	unitRepo repository.UnitRepository,
	movRepo repository.StockMovementRepository,
	txRunner TxRunner,
) *IngredientUseCase {
	return &IngredientUseCase{repo: repo, unitRepo: unitRepo, movRepo: movRepo, txRunner: txRunner}
}

// Create crea un ingrediente. El stock inicial entra como valor directo
// (no hay historia previa que auditar).
func (uc *IngredientUseCase) Create(in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	if in.StockQuantity.IsNegative() || in.LowStockThreshold.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if !validScale(in.StockQuantity, maxQuantityScale) || !validScale(in.LowStockThreshold, maxQuantityScale) {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice != nil && in.CostPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	unit, err := uc.unitRepo.GetByID(in.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	ing := &entity.Ingredient{
		ID:                uuid.New().String(),
		Name:              in.Name,
		UnitID:            in.UnitID,
		Stock:             in.StockQuantity,
		LowStockThreshold: in.LowStockThreshold,
		CostPrice:         in.CostPrice,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ing); err != nil {
		return nil, err
	}
	return toIngredientResponse(ing), nil
}

// GetByID obtiene un ingrediente por ID.
func (uc *IngredientUseCase) GetByID(id string) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, nil
	}
	return toIngredientResponse(ing), nil
}

// List lista ingredientes con búsqueda por nombre (insensible a acentos) y paginación.
func (uc *IngredientUseCase) List(search string, limit, offset int) (*dto.IngredientListResponse, error) {
	list, err := uc.repo.List(search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IngredientResponse, 0, len(list))
	for _, ing := range list {
		items = append(items, *toIngredientResponse(ing))
	}
	return &dto.IngredientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListLowStock lista los ingredientes en o por debajo de su umbral de alerta.
func (uc *IngredientUseCase) ListLowStock() ([]dto.IngredientResponse, error) {
	list, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	items := make([]dto.IngredientResponse, 0, len(list))
	for _, ing := range list {
		items = append(items, *toIngredientResponse(ing))
	}
	return items, nil
}

// Update actualiza los datos del ingrediente. No toca el stock.
func (uc *IngredientUseCase) Update(id string, in dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, nil
	}
	if in.Name != nil {
		ing.Name = *in.Name
	}
	if in.UnitID != nil {
		unit, err := uc.unitRepo.GetByID(*in.UnitID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, domain.ErrNotFound
		}
		ing.UnitID = *in.UnitID
	}
	if in.LowStockThreshold != nil {
		if in.LowStockThreshold.IsNegative() || !validScale(*in.LowStockThreshold, maxQuantityScale) {
			return nil, domain.ErrInvalidInput
		}
		ing.LowStockThreshold = *in.LowStockThreshold
	}
	// "sin costo" y "costo cero" son estados distintos: limpiar requiere flag explícito.
	if in.ClearCostPrice {
		ing.CostPrice = nil
	} else if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ing.CostPrice = in.CostPrice
	}
	ing.UpdatedAt = time.Now()
	if err := uc.repo.Update(ing); err != nil {
		return nil, err
	}
	return toIngredientResponse(ing), nil
}

// AdjustStock aplica un ajuste de stock de forma transaccional:
// bloquea la fila del ingrediente (SELECT FOR UPDATE), recalcula el delta
// en el servidor a partir del stock leído bajo el lock (nunca confía en un
// delta calculado por el cliente), persiste el nuevo stock y guarda el
// movimiento de auditoría. Commit o Rollback completos.
func (uc *IngredientUseCase) AdjustStock(ctx context.Context, id, userID string, in dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	mode := inventory.AdjustmentMode(in.Mode)
	if !mode.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if !validScale(in.Amount, maxQuantityScale) {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.AdjustStockResponse
	err := uc.txRunner.RunStock(ctx, func(
		ingRepo repository.IngredientRepository,
		movRepo repository.StockMovementRepository,
	) error {
		ing, err := ingRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if ing == nil {
			return domain.ErrNotFound
		}
		adj, err := inventory.ComputeStockAdjustment(ing.Stock, mode, in.Amount)
		if err != nil {
			return err
		}
		if err := ingRepo.UpdateStock(id, adj.NewStock); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			IngredientID:  id,
			Delta:         adj.Delta,
			PreviousStock: ing.Stock,
			NewStock:      adj.NewStock,
			Reason:        in.Reason,
			CreatedBy:     userID,
			CreatedAt:     time.Now(),
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		out = &dto.AdjustStockResponse{
			IngredientID:  id,
			Delta:         adj.Delta,
			PreviousStock: ing.Stock,
			NewStock:      adj.NewStock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Movements historial de ajustes de un ingrediente.
func (uc *IngredientUseCase) Movements(id string, limit, offset int) ([]dto.StockMovementResponse, error) {
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	movs, err := uc.movRepo.ListByIngredient(id, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.StockMovementResponse{
			ID:            m.ID,
			IngredientID:  m.IngredientID,
			Delta:         m.Delta,
			PreviousStock: m.PreviousStock,
			NewStock:      m.NewStock,
			Reason:        m.Reason,
			CreatedBy:     m.CreatedBy,
			CreatedAt:     m.CreatedAt,
		})
	}
	return out, nil
}

// Delete elimina un ingrediente por ID.
func (uc *IngredientUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toIngredientResponse(ing *entity.Ingredient) *dto.IngredientResponse {
	if ing == nil {
		return nil
	}
	var cost *decimal.Decimal
	if ing.CostPrice != nil {
		c := ing.CostPrice.Round(2)
		cost = &c
	}
	return &dto.IngredientResponse{
		ID:                ing.ID,
		Name:              ing.Name,
		UnitID:            ing.UnitID,
		Stock:             ing.Stock,
		LowStockThreshold: ing.LowStockThreshold,
		CostPrice:         cost,
		LowStock:          ing.IsLowStock(),
		CreatedAt:         ing.CreatedAt,
		UpdatedAt:         ing.UpdatedAt,
	}
}
