// Package pdf implementa la generación del reporte de ventas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Período del reporte         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Pedidos / Ingreso bruto / Ticket promedio          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Día | Pedidos | Ingresos                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Producto | Unidades | Ingresos | % del total     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESGLOSE: ingresos por método de pago                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/never130/isidro-gourmet/internal/application/dto"
	"github.com/never130/isidro-gourmet/internal/application/usecase"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.SalesReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.SalesReportPDFGenerator usando
// Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateSalesReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSalesReportPDF(
	_ context.Context,
	report *dto.SalesReportDTO,
	businessName string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ventas", true).
		WithAuthor(businessName, true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(report, businessName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Resumen global
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Ventas por día
	m.AddRows(sectionTitleRow("Ventas por día"))
	m.AddRows(daysHeaderRow())
	for _, r := range dayRows(report.SalesByDay) {
		m.AddRows(r)
	}

	// Productos más vendidos
	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("Productos más vendidos"))
	m.AddRows(productsHeaderRow())
	for _, r := range productRows(report.TopProducts) {
		m.AddRows(r)
	}

	// Desglose por método de pago
	m.AddRows(line.NewRow(2))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("Ingresos por método de pago"))
	for _, r := range paymentMethodRows(report.ByPaymentMethod) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y período del reporte (der).
func headerRow(report *dto.SalesReportDTO, businessName string) core.Row {
	periodo := fmt.Sprintf("%s a %s", report.Period.StartDate, report.Period.EndDate)

	return row.New(18).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de ventas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New(periodo, props.Text{
				Size: 9, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales globales del período en tres columnas.
func summaryRow(report *dto.SalesReportDTO) core.Row {
	return row.New(16).Add(
		summaryCol("Pedidos cobrados", fmt.Sprintf("%d", report.OrderCount)),
		summaryCol("Ingreso bruto", money(report.GrossRevenue.String(), report.Currency)),
		summaryCol("Ticket promedio", money(report.AverageTicket.String(), report.Currency)),
	)
}

func summaryCol(label, value string) core.Col {
	return col.New(4).Add(
		text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
		text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 6, Color: colorPrimary}),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
		),
	)
}

func daysHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell(4, "Día"),
		headerCell(4, "Pedidos"),
		headerCell(4, "Ingresos"),
	)
}

func dayRows(days []dto.DaySalesDTO) []core.Row {
	rows := make([]core.Row, 0, len(days))
	for _, d := range days {
		rows = append(rows, row.New(5).Add(
			bodyCell(4, d.Day),
			bodyCell(4, fmt.Sprintf("%d", d.OrderCount)),
			bodyCell(4, d.Revenue.String()),
		))
	}
	return rows
}

func productsHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell(1, "#"),
		headerCell(5, "Producto"),
		headerCell(2, "Unidades"),
		headerCell(2, "Ingresos"),
		headerCell(2, "% total"),
	)
}

func productRows(products []dto.ProductSalesDTO) []core.Row {
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, row.New(5).Add(
			bodyCell(1, fmt.Sprintf("%d", p.Rank)),
			bodyCell(5, p.ProductName),
			bodyCell(2, p.UnitsSold.String()),
			bodyCell(2, p.Revenue.String()),
			bodyCell(2, p.RevenuePct.String()+"%"),
		))
	}
	return rows
}

func paymentMethodRows(methods []dto.PaymentMethodSalesDTO) []core.Row {
	rows := make([]core.Row, 0, len(methods))
	for _, m := range methods {
		rows = append(rows, row.New(5).Add(
			bodyCell(6, m.Method),
			bodyCell(6, m.Revenue.String()),
		))
	}
	return rows
}

func headerCell(size int, label string) core.Col {
	return col.New(size).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
	)
}

func bodyCell(size int, value string) core.Col {
	return col.New(size).Add(
		text.New(value, props.Text{Size: 8}),
	)
}

func money(amount, currency string) string {
	return fmt.Sprintf("%s %s", currency, amount)
}
