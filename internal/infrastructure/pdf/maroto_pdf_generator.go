// Package pdf genera el reporte de gasto por categoría en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + selección  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Tipo | Total | %                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Tipo | Productos | Total | %             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL GENERAL                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/precios-api/internal/application/analytics"
	"github.com/jhoicas/precios-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

var typeLabels = map[string]string{
	"alimento": "Alimentos",
	"limpieza": "Limpieza",
	"otros":    "Otros",
	"all":      "Todos los tipos",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analytics.SpendReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

var _ analytics.SpendReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador. author se escribe en los metadatos.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: nonEmpty(author, "precios-api")}
}

// GenerateSpendPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSpendPDF(ctx context.Context, report *dto.SpendReportResponse) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de gasto por categoría", true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("RESUMEN POR TIPO"))
	m.AddRows(typeHeaderRow())
	m.AddRows(typeRows(report.ByType)...)
	m.AddRows(line.NewRow(3))

	m.AddRows(sectionTitle("GASTO POR CATEGORÍA"))
	m.AddRows(tableHeaderRow())
	if len(report.Categories) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin productos activos para esta selección.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	m.AddRows(tableDetailRows(report.Categories)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y selección (izq), fecha de generación (der).
func headerRow(report *dto.SpendReportResponse) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE GASTO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Selección: "+typeLabel(report.Selection), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorWhite, Top: 2, Left: 1, Right: 1,
	}))
}

func typeHeaderRow() core.Row {
	return row.New(8).Add(
		headerCell("Tipo", 6, align.Left),
		headerCell("Total", 4, align.Right),
		headerCell("%", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func typeRows(types []dto.TypeSpendDTO) []core.Row {
	rows := make([]core.Row, 0, len(types))
	for _, t := range types {
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(typeLabel(t.Type), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(money(t.Total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(percent(t.Percentage), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

// tableHeaderRow: cabecera de la tabla de categorías.
func tableHeaderRow() core.Row {
	return row.New(8).Add(
		headerCell("Categoría", 5, align.Left),
		headerCell("Tipo", 2, align.Left),
		headerCell("Productos", 1, align.Center),
		headerCell("Total", 2, align.Right),
		headerCell("%", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por categoría, con filas alternas sombreadas.
func tableDetailRows(categories []dto.CategorySpendDTO) []core.Row {
	result := make([]core.Row, 0, len(categories))
	for i, c := range categories {
		r := row.New(7).Add(
			col.New(5).Add(text.New(c.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(typeLabel(c.Type), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprint(c.ProductCount), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(money(c.Total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(percent(c.Percentage), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

// totalsRow: total general alineado a la derecha.
func totalsRow(report *dto.SpendReportResponse) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL GENERAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(money(report.GrandTotal), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func typeLabel(t string) string {
	return nonEmpty(typeLabels[t], t)
}

// money formatea con separador de miles "." y decimales ",".
// Ej: 1234567.5 → "$1.234.567,50"
func money(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	out := "$" + formatMoney(intPart) + "," + frac
	if d.IsNegative() {
		return "-" + out
	}
	return out
}

func percent(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1) + "%"
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
