package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/never130/isidro-gourmet/internal/domain"
	"github.com/never130/isidro-gourmet/internal/domain/entity"
	"github.com/never130/isidro-gourmet/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Los items guardan snapshot de nombre y precio del producto al momento de
// crear el pedido.
type OrderRepo struct {
	q Querier
}

func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, number, table_name, customer_name, status, payment_method, total, notes, created_by, created_at, updated_at, paid_at`

func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, number, table_name, customer_name, status, payment_method, total, notes, created_by, created_at, updated_at, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Number, order.Table, order.CustomerName, order.Status,
		nullIfEmpty(order.PaymentMethod), order.Total, order.Notes,
		order.CreatedBy, order.CreatedAt, order.UpdatedAt, order.PaidAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	for i, item := range order.Items {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO order_items (order_id, position, product_id, product_name, unit_price, quantity, subtotal, notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			order.ID, i, item.ProductID, item.ProductName,
			item.UnitPrice, item.Quantity, item.Subtotal, item.Notes)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	var order entity.Order
	var paymentMethod *string
	err := r.q.QueryRow(context.Background(),
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id).Scan(
		&order.ID, &order.Number, &order.Table, &order.CustomerName, &order.Status,
		&paymentMethod, &order.Total, &order.Notes, &order.CreatedBy,
		&order.CreatedAt, &order.UpdatedAt, &order.PaidAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if paymentMethod != nil {
		order.PaymentMethod = *paymentMethod
	}
	items, err := r.loadItems(id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *OrderRepo) List(filter repository.OrderFilter) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	args := []any{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(` AND created_at >= $%d`, len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(` AND created_at < $%d`, len(args))
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d OFFSET %d`, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		var order entity.Order
		var paymentMethod *string
		if err := rows.Scan(&order.ID, &order.Number, &order.Table, &order.CustomerName,
			&order.Status, &paymentMethod, &order.Total, &order.Notes, &order.CreatedBy,
			&order.CreatedAt, &order.UpdatedAt, &order.PaidAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if paymentMethod != nil {
			order.PaymentMethod = *paymentMethod
		}
		list = append(list, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, order := range list {
		items, err := r.loadItems(order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}
	return list, nil
}

// UpdateStatus persiste el estado, método de pago y fecha de pago del pedido.
// La validez de la transición la decide el dominio antes de llamar.
func (r *OrderRepo) UpdateStatus(order *entity.Order) error {
	query := `
		UPDATE orders
		SET status = $2, payment_method = $3, paid_at = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Status, nullIfEmpty(order.PaymentMethod), order.PaidAt, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// NextNumber devuelve el siguiente consecutivo de pedido del día indicado.
// Llamar dentro de la transacción de creación para evitar duplicados.
func (r *OrderRepo) NextNumber(day time.Time) (int, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	var next int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(number), 0) + 1 FROM orders WHERE created_at >= $1 AND created_at < $2`,
		start, end).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next order number: %w", err)
	}
	return next, nil
}

func (r *OrderRepo) loadItems(orderID string) ([]entity.OrderItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT product_id, product_name, unit_price, quantity, subtotal, notes
		 FROM order_items WHERE order_id = $1 ORDER BY position ASC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.UnitPrice,
			&item.Quantity, &item.Subtotal, &item.Notes); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
