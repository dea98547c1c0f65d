package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/never130/isidro-gourmet/internal/application/dto"
	"github.com/never130/isidro-gourmet/internal/domain"
	"github.com/never130/isidro-gourmet/internal/domain/entity"
	"github.com/never130/isidro-gourmet/internal/domain/repository"
)

// OrderUseCase creación y ciclo de vida de pedidos. La creación es
// transaccional: consecutivo del día + pedido + items en un solo Commit.
// Los items guardan nombre y precio del producto como snapshot, así un
// cambio de precio posterior no altera pedidos ya tomados.
type OrderUseCase struct {
	repo        repository.OrderRepository
	productRepo repository.ProductRepository
	txRunner    TxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, productRepo repository.ProductRepository, txRunner TxRunner) *OrderUseCase {
	return &OrderUseCase{repo: repo, productRepo: productRepo, txRunner: txRunner}
}

// Create crea un pedido en estado PENDIENTE con el total calculado
// servidor-side a partir de los precios vigentes.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	var created *entity.Order
	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error {
		now := time.Now()
		items := make([]entity.OrderItem, 0, len(in.Items))
		total := decimal.Zero
		for _, it := range in.Items {
			if !it.Quantity.IsPositive() || !validScale(it.Quantity, maxQuantityScale) {
				return domain.ErrInvalidInput
			}
			product, err := productRepo.GetByID(it.ProductID)
			if err != nil {
				return err
			}
			if product == nil || !product.Active {
				return domain.ErrNotFound
			}
			subtotal := product.Price.Mul(it.Quantity)
			items = append(items, entity.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				UnitPrice:   product.Price,
				Quantity:    it.Quantity,
				Subtotal:    subtotal,
				Notes:       it.Notes,
			})
			total = total.Add(subtotal)
		}
		number, err := orderRepo.NextNumber(now)
		if err != nil {
			return err
		}
		order := &entity.Order{
			ID:           uuid.New().String(),
			Number:       number,
			Table:        in.Table,
			CustomerName: in.CustomerName,
			Status:       entity.OrderStatusPendiente,
			Items:        items,
			Total:        total,
			Notes:        in.Notes,
			CreatedBy:    userID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(created), nil
}

// GetByID obtiene un pedido por ID.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List lista pedidos con filtros de estado y fechas.
func (uc *OrderUseCase) List(filter repository.OrderFilter) (*dto.OrderListResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// UpdateStatus avanza el pedido en su máquina de estados. Transiciones
// fuera de orden devuelven domain.ErrInvalidTransition.
func (uc *OrderUseCase) UpdateStatus(id, next string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if !order.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}
	order.Status = next
	order.UpdatedAt = time.Now()
	if err := uc.repo.UpdateStatus(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Pay cobra un pedido ENTREGADO: registra método de pago, marca PAGADO y
// sella PaidAt. Solo los pedidos pagados cuentan para reportes de ventas.
func (uc *OrderUseCase) Pay(id string, in dto.PayOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if !order.CanTransitionTo(entity.OrderStatusPagado) {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	order.Status = entity.OrderStatusPagado
	order.PaymentMethod = in.PaymentMethod
	order.PaidAt = &now
	order.UpdatedAt = now
	if err := uc.repo.UpdateStatus(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Cancel cancela un pedido no pagado.
func (uc *OrderUseCase) Cancel(id string) (*dto.OrderResponse, error) {
	return uc.UpdateStatus(id, entity.OrderStatusCancelado)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Subtotal:    it.Subtotal.Round(2),
			Notes:       it.Notes,
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		Number:        o.Number,
		Table:         o.Table,
		CustomerName:  o.CustomerName,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		Items:         items,
		Total:         o.Total.Round(2),
		Notes:         o.Notes,
		CreatedBy:     o.CreatedBy,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		PaidAt:        o.PaidAt,
	}
}
