package dto

import "github.com/shopspring/decimal"

// SalesReportRequest query params del reporte de ventas (fechas YYYY-MM-DD).
type SalesReportRequest struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	TopN      int    `query:"top_n"`
}

// PeriodDTO período reportado.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// DaySalesDTO ventas de un día.
type DaySalesDTO struct {
	Day        string          `json:"day"`
	OrderCount int             `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// ProductSalesDTO ranking de un producto por ingresos.
type ProductSalesDTO struct {
	Rank        int             `json:"rank"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitsSold   decimal.Decimal `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
	RevenuePct  decimal.Decimal `json:"revenue_pct"`
}

// PaymentMethodSalesDTO ingresos por método de pago.
type PaymentMethodSalesDTO struct {
	Method  string          `json:"method"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SalesReportDTO reporte completo de ventas de un período.
// Solo cuentan pedidos PAGADOS.
type SalesReportDTO struct {
	Period          PeriodDTO               `json:"period"`
	Currency        string                  `json:"currency"`
	OrderCount      int                     `json:"order_count"`
	GrossRevenue    decimal.Decimal         `json:"gross_revenue"`
	AverageTicket   decimal.Decimal         `json:"average_ticket"`
	UnitsSold       decimal.Decimal         `json:"units_sold"`
	SalesByDay      []DaySalesDTO           `json:"sales_by_day"`
	TopProducts     []ProductSalesDTO       `json:"top_products"`
	ByPaymentMethod []PaymentMethodSalesDTO `json:"by_payment_method"`
}
