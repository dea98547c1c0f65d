package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummaryResult totales globales de ventas de un período.
type SalesSummaryResult struct {
	OrderCount   int
	GrossRevenue decimal.Decimal
	UnitsSold    decimal.Decimal
}

// DaySalesResult ventas agregadas de un día.
type DaySalesResult struct {
	Day        time.Time
	OrderCount int
	Revenue    decimal.Decimal
}

// ProductSalesResult ventas agregadas por producto.
type ProductSalesResult struct {
	ProductID   string
	ProductName string
	UnitsSold   decimal.Decimal
	Revenue     decimal.Decimal
}

// ReportRepository consultas de solo lectura para reportes de ventas.
// Solo cuentan pedidos en estado PAGADO.
type ReportRepository interface {
	GetSalesSummary(ctx context.Context, start, end time.Time) (SalesSummaryResult, error)
	GetSalesByDay(ctx context.Context, start, end time.Time) ([]DaySalesResult, error)
	GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]ProductSalesResult, error)
	GetSalesByPaymentMethod(ctx context.Context, start, end time.Time) (map[string]decimal.Decimal, error)
}
