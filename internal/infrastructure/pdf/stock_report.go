// Package pdf dibuja el reporte de stock con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación / última actualización │
//	│  KPIs: stock total | costo | facturación | lucro             │
//	│  TABLA: Produto | Atual | Mín | Desej | Status | Custo | Lucro│
//	│  SUGERENCIAS: prioridad, faltante y costo estimado           │
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

	"github.com/jhoicas/lord-inventory/internal/application/export"
	"github.com/jhoicas/lord-inventory/internal/domain/entity"
	"github.com/jhoicas/lord-inventory/internal/domain/inventory"
	"github.com/jhoicas/lord-inventory/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorDanger  = &props.Color{Red: 192, Green: 57, Blue: 43}
	colorWarning = &props.Color{Red: 211, Green: 132, Blue: 0}
	colorOK      = &props.Color{Red: 39, Green: 134, Blue: 74}
)

var _ export.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa export.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	fmt *money.Formatter
}

// NewMarotoReportGenerator construye el generador con los formatos del locale.
func NewMarotoReportGenerator(f *money.Formatter) *MarotoReportGenerator {
	return &MarotoReportGenerator{fmt: f}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(_ context.Context, r export.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.kpiRow(r.Global))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.productRows(r)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(g.suggestionRows(r.Plan)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) headerRow(r export.StockReport) core.Row {
	updated := "—"
	if !r.LastUpdated.IsZero() {
		updated = r.LastUpdated.Format("02/01/2006 15:04")
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(r.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d produtos", r.Global.ProductCount), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Gerado em "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Última atualização "+updated, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func (g *MarotoReportGenerator) kpiRow(gm inventory.GlobalMetrics) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5, Align: align.Center}),
		)
	}
	return row.New(14).Add(
		kpi("ESTOQUE TOTAL", g.fmt.Number(gm.TotalStock)),
		kpi("CUSTO TOTAL", g.fmt.Currency(gm.TotalCost)),
		kpi("FATURAMENTO", g.fmt.Currency(gm.TotalRevenue)),
		kpi("LUCRO", g.fmt.Currency(gm.TotalProfit)),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Produto", 3, align.Left),
		h("Atual", 1, align.Right),
		h("Mín.", 1, align.Right),
		h("Desej.", 1, align.Right),
		h("Status", 2, align.Center),
		h("Custo Total", 2, align.Right),
		h("Lucro", 2, align.Right),
	)
}

func statusColor(s entity.StockStatus) *props.Color {
	switch s {
	case entity.StatusDanger:
		return colorDanger
	case entity.StatusWarning:
		return colorWarning
	default:
		return colorOK
	}
}

func (g *MarotoReportGenerator) productRows(r export.StockReport) []core.Row {
	cell := func(v string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(v, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	rows := make([]core.Row, 0, len(r.Products))
	for i, p := range r.Products {
		m := r.Metrics[i]
		rows = append(rows, row.New(7).Add(
			cell(p.Name, 3, align.Left),
			cell(g.fmt.Number(m.CurrentStock), 1, align.Right),
			cell(g.fmt.Number(p.Min), 1, align.Right),
			cell(g.fmt.Number(p.Des), 1, align.Right),
			col.New(2).Add(text.New(m.Status.Label(), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: statusColor(m.Status),
			})),
			cell(g.fmt.Currency(m.TotalCost), 2, align.Right),
			cell(g.fmt.Currency(m.Profit), 2, align.Right),
		))
	}
	return rows
}

func (g *MarotoReportGenerator) suggestionRows(plan inventory.PurchasePlan) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("SUGESTÕES DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	if len(plan.Suggestions) == 0 {
		return append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Nenhum produto abaixo do nível desejável.", props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	for _, s := range plan.Suggestions {
		rows = append(rows, row.New(6).Add(
			col.New(5).Add(text.New(s.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(s.Action, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Color: priorityColor(s.Priority),
			})),
			col.New(2).Add(text.New("Faltam "+g.fmt.Number(s.Missing), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(g.fmt.Currency(s.EstimatedCost), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return append(rows, row.New(8).Add(
		col.New(8),
		col.New(2).Add(text.New("Total estimado:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2})),
		col.New(2).Add(text.New(g.fmt.Currency(plan.EstimatedTotalCost), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	))
}

func priorityColor(p entity.Priority) *props.Color {
	if p == entity.PriorityHigh {
		return colorDanger
	}
	return colorWarning
}
