package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/never130/isidro-gourmet/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para reportes de ventas.
// Todas filtran por pedidos en estado PAGADO dentro del período.
type ReportRepo struct {
	q Querier
}

func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetSalesSummary devuelve totales globales del período: pedidos cobrados,
// ingreso bruto y unidades vendidas.
func (r *ReportRepo) GetSalesSummary(ctx context.Context, start, end time.Time) (repository.SalesSummaryResult, error) {
	query := `
		SELECT
			COUNT(DISTINCT o.id),
			COALESCE(SUM(oi.subtotal), 0),
			COALESCE(SUM(oi.quantity), 0)
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.status = 'PAGADO' AND o.paid_at >= $1 AND o.paid_at < $2`

	var result repository.SalesSummaryResult
	err := r.q.QueryRow(ctx, query, start, end).Scan(
		&result.OrderCount, &result.GrossRevenue, &result.UnitsSold)
	if err != nil {
		return repository.SalesSummaryResult{}, fmt.Errorf("sales summary: %w", err)
	}
	return result, nil
}

// GetSalesByDay devuelve las ventas agregadas por día del período, solo los
// días con al menos un pedido cobrado.
func (r *ReportRepo) GetSalesByDay(ctx context.Context, start, end time.Time) ([]repository.DaySalesResult, error) {
	query := `
		SELECT
			DATE_TRUNC('day', paid_at) AS day,
			COUNT(*),
			COALESCE(SUM(total), 0)
		FROM orders
		WHERE status = 'PAGADO' AND paid_at >= $1 AND paid_at < $2
		GROUP BY day
		ORDER BY day ASC`

	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales by day: %w", err)
	}
	defer rows.Close()

	var results []repository.DaySalesResult
	for rows.Next() {
		var day repository.DaySalesResult
		if err := rows.Scan(&day.Day, &day.OrderCount, &day.Revenue); err != nil {
			return nil, fmt.Errorf("scan day sales: %w", err)
		}
		results = append(results, day)
	}
	return results, rows.Err()
}

// GetTopProducts devuelve los productos más vendidos del período ordenados
// por ingreso descendente.
func (r *ReportRepo) GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.ProductSalesResult, error) {
	query := `
		SELECT
			oi.product_id,
			oi.product_name,
			COALESCE(SUM(oi.quantity), 0),
			COALESCE(SUM(oi.subtotal), 0) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = 'PAGADO' AND o.paid_at >= $1 AND o.paid_at < $2
		GROUP BY oi.product_id, oi.product_name
		ORDER BY revenue DESC
		LIMIT $3`

	rows, err := r.q.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductSalesResult
	for rows.Next() {
		var p repository.ProductSalesResult
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.UnitsSold, &p.Revenue); err != nil {
			return nil, fmt.Errorf("scan product sales: %w", err)
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// GetSalesByPaymentMethod devuelve el ingreso del período desglosado por
// método de pago.
func (r *ReportRepo) GetSalesByPaymentMethod(ctx context.Context, start, end time.Time) (map[string]decimal.Decimal, error) {
	query := `
		SELECT payment_method, COALESCE(SUM(total), 0)
		FROM orders
		WHERE status = 'PAGADO' AND paid_at >= $1 AND paid_at < $2 AND payment_method IS NOT NULL
		GROUP BY payment_method`

	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales by payment method: %w", err)
	}
	defer rows.Close()

	results := make(map[string]decimal.Decimal)
	for rows.Next() {
		var method string
		var total decimal.Decimal
		if err := rows.Scan(&method, &total); err != nil {
			return nil, fmt.Errorf("scan payment method sales: %w", err)
		}
		results[method] = total
	}
	return results, rows.Err()
}
