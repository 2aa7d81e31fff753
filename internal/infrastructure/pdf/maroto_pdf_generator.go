// Package pdf genera el informe de Einnahmen en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Einnahmen-Übersicht  │  Zeitraum + Erstellt am      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Kunde | Gerät | Zeitraum | Miete | Zusatz |     │
//	│         Einnahmen | Kosten | Marge                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUMME: totales de cada columna                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

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

	"github.com/jhoicas/mietpark-admin/internal/application/dto"
	"github.com/jhoicas/mietpark-admin/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa revenue.PDFRenderer usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{now: time.Now}
}

// RevenuePDF genera el PDF del informe y devuelve sus bytes.
func (g *MarotoPDFGenerator) RevenuePDF(report *dto.RevenueReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Einnahmen-Übersicht", true).
		WithAuthor("Mietpark Admin", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(report.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Keine Vermietungen im Zeitraum.", props.Text{Size: 8, Top: 2, Color: colorGray}),
		)))
	}
	for _, r := range tableRows(report.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report.Totals))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y rango + fecha de emisión (der).
func headerRow(report *dto.RevenueReport, now time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Einnahmen-Übersicht", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d Vermietungen", len(report.Rows)), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Zeitraum: %s – %s", format.Date(report.From.Time), format.Date(report.To.Time)), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Erstellt am "+format.Date(now), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla (12 columnas de la rejilla).
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a,
			Color: colorPrimary, Top: 2, Left: 0.5, Right: 0.5,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Left),
		h("Kunde", 2, align.Left),
		h("Gerät", 2, align.Left),
		h("Zeitraum", 2, align.Left),
		h("Miete", 1, align.Right),
		h("Zusatz", 1, align.Right),
		h("Einnahmen", 1, align.Right),
		h("Kosten", 1, align.Right),
		h("Marge", 1, align.Right),
	)
}

// tableRows: una fila por alquiler.
func tableRows(rows []dto.RevenueRow) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7, Align: a, Top: 1, Left: 0.5, Right: 0.5}))
	}
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			cell(fmt.Sprintf("%d", r.RentalID), 1, align.Left),
			cell(r.CustomerName, 2, align.Left),
			cell(r.DeviceLabel, 2, align.Left),
			cell(period(r), 2, align.Left),
			cell(format.Money(r.Rent), 1, align.Right),
			cell(format.Money(r.Positions), 1, align.Right),
			cell(format.Money(r.Revenue), 1, align.Right),
			cell(format.Money(r.Cost), 1, align.Right),
			marginCol(r.Margin, false),
		))
	}
	return result
}

// totalsRow: fila "Summe" en negrita.
func totalsRow(t dto.RevenueTotals) core.Row {
	bold := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Top: 1, Left: 0.5, Right: 0.5,
		}))
	}
	return row.New(8).Add(
		bold("Summe", 7, align.Left),
		bold(format.Money(t.Rent), 1, align.Right),
		bold(format.Money(t.Positions), 1, align.Right),
		bold(format.Money(t.Revenue), 1, align.Right),
		bold(format.Money(t.Cost), 1, align.Right),
		marginCol(t.Margin, true),
	)
}

// marginCol pinta en rojo las márgenes negativas.
func marginCol(m decimal.Decimal, bold bool) core.Col {
	p := props.Text{Size: 7, Align: align.Right, Top: 1, Left: 0.5, Right: 0.5}
	if bold {
		p.Style = fontstyle.Bold
	}
	if format.Negative(m) {
		p.Color = colorRed
	}
	return col.New(1).Add(text.New(format.Money(m), p))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func period(r dto.RevenueRow) string {
	if r.To == nil || r.To.IsZero() {
		return format.Date(r.From.Time) + " – offen"
	}
	return format.Date(r.From.Time) + " – " + format.Date(r.To.Time)
}
