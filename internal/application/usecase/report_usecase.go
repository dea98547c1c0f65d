package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/never130/isidro-gourmet/internal/application/dto"
	"github.com/never130/isidro-gourmet/internal/domain/repository"
)

const (
	defaultTopN = 10
	maxTopN     = 100
)

var hundred = decimal.NewFromInt(100)

// SalesReportPDFGenerator puerto de generación del PDF del reporte.
type SalesReportPDFGenerator interface {
	GenerateSalesReportPDF(ctx context.Context, report *dto.SalesReportDTO, businessName string) ([]byte, error)
}

// ReportUseCase arma el reporte de ventas de un período: totales globales,
// ventas por día, ranking de productos y desglose por método de pago.
// Solo cuentan pedidos en estado PAGADO.
type ReportUseCase struct {
	reportRepo   repository.ReportRepository
	settingsRepo repository.SettingsRepository
	pdfGenerator SalesReportPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	reportRepo repository.ReportRepository,
	settingsRepo repository.SettingsRepository,
	pdfGenerator SalesReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, settingsRepo: settingsRepo, pdfGenerator: pdfGenerator}
}

// GetSalesReport genera el reporte del período pedido.
func (uc *ReportUseCase) GetSalesReport(ctx context.Context, req dto.SalesReportRequest) (*dto.SalesReportDTO, error) {
	start, end, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	topN := req.TopN
	if topN <= 0 {
		topN = defaultTopN
	}
	if topN > maxTopN {
		topN = maxTopN
	}

	summary, err := uc.reportRepo.GetSalesSummary(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("reporte: resumen: %w", err)
	}
	byDay, err := uc.reportRepo.GetSalesByDay(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("reporte: ventas por día: %w", err)
	}
	topProducts, err := uc.reportRepo.GetTopProducts(ctx, start, end, topN)
	if err != nil {
		return nil, fmt.Errorf("reporte: top productos: %w", err)
	}
	byMethod, err := uc.reportRepo.GetSalesByPaymentMethod(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("reporte: métodos de pago: %w", err)
	}

	currency := "ARS"
	if settings, err := uc.settingsRepo.Get(); err == nil && settings != nil {
		currency = settings.Currency
	}

	avgTicket := decimal.Zero
	if summary.OrderCount > 0 {
		avgTicket = summary.GrossRevenue.Div(decimal.NewFromInt(int64(summary.OrderCount))).Round(2)
	}

	days := make([]dto.DaySalesDTO, 0, len(byDay))
	for _, d := range byDay {
		days = append(days, dto.DaySalesDTO{
			Day:        d.Day.Format("2006-01-02"),
			OrderCount: d.OrderCount,
			Revenue:    d.Revenue.Round(2),
		})
	}

	ranking := make([]dto.ProductSalesDTO, 0, len(topProducts))
	for i, p := range topProducts {
		pct := decimal.Zero
		if summary.GrossRevenue.IsPositive() {
			pct = p.Revenue.Div(summary.GrossRevenue).Mul(hundred).Round(2)
		}
		ranking = append(ranking, dto.ProductSalesDTO{
			Rank:        i + 1,
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			UnitsSold:   p.UnitsSold,
			Revenue:     p.Revenue.Round(2),
			RevenuePct:  pct,
		})
	}

	methods := make([]dto.PaymentMethodSalesDTO, 0, len(byMethod))
	for _, method := range []string{"EFECTIVO", "TARJETA", "TRANSFERENCIA"} {
		if revenue, ok := byMethod[method]; ok {
			methods = append(methods, dto.PaymentMethodSalesDTO{Method: method, Revenue: revenue.Round(2)})
		}
	}

	return &dto.SalesReportDTO{
		Period: dto.PeriodDTO{
			StartDate: start.Format("2006-01-02"),
			EndDate:   end.Format("2006-01-02"),
		},
		Currency:        currency,
		OrderCount:      summary.OrderCount,
		GrossRevenue:    summary.GrossRevenue.Round(2),
		AverageTicket:   avgTicket,
		UnitsSold:       summary.UnitsSold,
		SalesByDay:      days,
		TopProducts:     ranking,
		ByPaymentMethod: methods,
	}, nil
}

// GetSalesReportPDF genera el reporte y lo renderiza como PDF.
func (uc *ReportUseCase) GetSalesReportPDF(ctx context.Context, req dto.SalesReportRequest) ([]byte, error) {
	report, err := uc.GetSalesReport(ctx, req)
	if err != nil {
		return nil, err
	}
	businessName := "Isidro Gourmet"
	if settings, err := uc.settingsRepo.Get(); err == nil && settings != nil && settings.BusinessName != "" {
		businessName = settings.BusinessName
	}
	return uc.pdfGenerator.GenerateSalesReportPDF(ctx, report, businessName)
}

// parsePeriod convierte los strings de fecha en time.Time; aplica valores
// por defecto si están vacíos (mes actual hasta hoy).
func parsePeriod(startStr, endStr string) (start, end time.Time, err error) {
	now := time.Now()

	if endStr == "" {
		end = now
	} else {
		end, err = time.ParseInLocation("2006-01-02", endStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("end_date inválido: %w", err)
		}
		end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second) // inclusive hasta el final del día
	}

	if startStr == "" {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	} else {
		start, err = time.ParseInLocation("2006-01-02", startStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("start_date inválido: %w", err)
		}
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date no puede ser posterior a end_date")
	}
	return start, end, nil
}
