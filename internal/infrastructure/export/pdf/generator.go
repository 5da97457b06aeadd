// Package pdf genera los reportes descargables en PDF usando Maroto v2.
//
// Layout de la página A4 del estado de resultados:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la empresa  │  Título + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Concepto | Monto                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  UTILIDAD NETA + Margen                                     │
//	└─────────────────────────────────────────────────────────────┘
//
// Los listados (gastos, facturas, órdenes, recibos) comparten un layout
// tabular genérico de cabeceras + filas de texto ya formateado.
package pdf

import (
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

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

func newDocument(title, author string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
	return maroto.New(cfg)
}

// headerRows: empresa (izq) y título + fecha del reporte (der).
func headerRows(companyName, title, date string) []core.Row {
	return []core.Row{
		row.New(16).Add(
			col.New(7).Add(
				text.New(companyName, props.Text{
					Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
				}),
			),
			col.New(5).Add(
				text.New(title, props.Text{
					Style: fontstyle.Bold, Size: 10, Align: align.Right,
					Color: colorPrimary, Top: 1,
				}),
				text.New("Fecha: "+date, props.Text{
					Size: 8, Align: align.Right, Top: 8, Color: colorGray,
				}),
			),
		),
		line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}),
	}
}

// ProfitLossPDF genera el estado de resultados y devuelve sus bytes.
func ProfitLossPDF(report *dto.ProfitLossDTO, companyName, currencyCode, date string) ([]byte, error) {
	m := newDocument("Estado de resultados", companyName)

	for _, r := range headerRows(companyName, "ESTADO DE RESULTADOS", date) {
		m.AddRows(r)
	}

	item := func(label string, amount string, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(8).Add(
			col.New(7).Add(text.New(label, props.Text{
				Style: style, Size: 9, Top: 2, Left: 1,
			})),
			col.New(5).Add(text.New(amount, props.Text{
				Style: style, Size: 9, Align: align.Right, Top: 2, Right: 1,
			})),
		)
	}

	m.AddRows(item("Ingresos totales", money.Format(currencyCode, report.TotalRevenue), false))
	m.AddRows(item("Gastos totales", money.Format(currencyCode, report.TotalExpenses), false))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(item("Utilidad bruta", money.Format(currencyCode, report.GrossProfit), false))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(row.New(12).Add(
		col.New(7).Add(text.New("UTILIDAD NETA", props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3, Left: 1,
		})),
		col.New(5).Add(text.New(money.Format(currencyCode, report.NetProfit), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 3, Right: 1,
		})),
	))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Margen de utilidad: %s%%", report.ProfitMargin.StringFixed(2)), props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 1, Right: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar estado de resultados: %w", err)
	}
	return doc.GetBytes(), nil
}

// RecordListPDF genera un listado tabular genérico. Las celdas llegan ya
// formateadas: este layout no sabe de monedas ni de fechas.
func RecordListPDF(title, companyName, date string, headers []string, rows [][]string) ([]byte, error) {
	m := newDocument(title, companyName)

	for _, r := range headerRows(companyName, title, date) {
		m.AddRows(r)
	}

	widths := columnWidths(len(headers))

	headerCols := make([]core.Col, 0, len(headers))
	for i, h := range headers {
		headerCols = append(headerCols, col.New(widths[i]).Add(
			text.New(h, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary,
				Top: 2, Left: 1,
			}),
		))
	}
	m.AddRows(row.New(8).Add(headerCols...))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	for _, cells := range rows {
		rowCols := make([]core.Col, 0, len(cells))
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			rowCols = append(rowCols, col.New(widths[i]).Add(
				text.New(cell, props.Text{Size: 8, Top: 1, Left: 1}),
			))
		}
		m.AddRows(row.New(7).Add(rowCols...))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar listado %q: %w", title, err)
	}
	return doc.GetBytes(), nil
}

// columnWidths reparte las 12 columnas de la grilla de Maroto entre n celdas;
// el resto de la división va a la primera columna.
func columnWidths(n int) []int {
	if n <= 0 {
		return nil
	}
	if n > 12 {
		n = 12
	}
	base := 12 / n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
	}
	widths[0] += 12 - base*n
	return widths
}
