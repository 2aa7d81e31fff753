// Package xlsx exporta el informe de Einnahmen a una hoja de cálculo.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/mietpark-admin/internal/application/dto"
)

const sheetName = "Einnahmen"

// moneyFormat formato numérico de Excel para importes en euros.
var moneyFormat = `#,##0.00 "€";[Red]-#,##0.00 "€"`

var headers = []string{
	"Vermietung", "Kunde", "Gerät", "Von", "Bis", "Status",
	"Tage", "Miete", "Zusatzposten", "Einnahmen", "Kosten", "Marge",
}

// RevenueExporter implementa revenue.SheetRenderer con excelize.
type RevenueExporter struct{}

// NewRevenueExporter construye el exportador.
func NewRevenueExporter() *RevenueExporter { return &RevenueExporter{} }

// RevenueXLSX escribe una fila por alquiler y la fila "Summe" al final.
// Los importes se guardan como números para que la hoja pueda recalcular.
func (e *RevenueExporter) RevenueXLSX(report *dto.RevenueReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFormat})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	boldMoney, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &moneyFormat})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	if err := f.SetCellValue(sheetName, "A1",
		fmt.Sprintf("Einnahmen %s bis %s", report.From.String(), report.To.String())); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", bold); err != nil {
		return nil, err
	}

	const headerRow = 3
	for i, h := range headers {
		if err := f.SetCellValue(sheetName, cell(i+1, headerRow), h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheetName, cell(1, headerRow), cell(len(headers), headerRow), bold); err != nil {
		return nil, err
	}

	rowIdx := headerRow + 1
	for _, r := range report.Rows {
		to := ""
		if r.To != nil {
			to = r.To.String()
		}
		values := []any{
			r.RentalID, r.CustomerName, r.DeviceLabel, r.From.String(), to, string(r.Status),
			r.RentalDays,
			r.Rent.InexactFloat64(), r.Positions.InexactFloat64(), r.Revenue.InexactFloat64(),
			r.Cost.InexactFloat64(), r.Margin.InexactFloat64(),
		}
		if err := f.SetSheetRow(sheetName, cell(1, rowIdx), &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", r.RentalID, err)
		}
		if err := f.SetCellStyle(sheetName, cell(8, rowIdx), cell(12, rowIdx), money); err != nil {
			return nil, err
		}
		rowIdx++
	}

	t := report.Totals
	totals := []any{
		"Summe", "", "", "", "", "", "",
		t.Rent.InexactFloat64(), t.Positions.InexactFloat64(), t.Revenue.InexactFloat64(),
		t.Cost.InexactFloat64(), t.Margin.InexactFloat64(),
	}
	if err := f.SetSheetRow(sheetName, cell(1, rowIdx), &totals); err != nil {
		return nil, fmt.Errorf("xlsx: fila de totales: %w", err)
	}
	if err := f.SetCellStyle(sheetName, cell(1, rowIdx), cell(7, rowIdx), bold); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, cell(8, rowIdx), cell(12, rowIdx), boldMoney); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(sheetName, "B", "C", 28); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "D", "E", 12); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "H", "L", 14); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
