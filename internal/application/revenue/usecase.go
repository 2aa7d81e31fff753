// Package revenue construye la vista de Einnahmen: alquileres que tocan un
// rango de fechas, cada uno con su Abrechnung, más la fila de totales.
package revenue

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/mietpark-admin/internal/application/dto"
	"github.com/jhoicas/mietpark-admin/internal/application/form"
	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/internal/domain/repository"
	"github.com/jhoicas/mietpark-admin/pkg/logger"
)

// Directory resuelve nombres de clientes y equipos (id → etiqueta).
type Directory interface {
	Customers(ctx context.Context) ([]entity.Customer, error)
	Devices(ctx context.Context) ([]entity.Device, error)
}

// PDFRenderer genera el informe de Einnahmen en PDF.
type PDFRenderer interface {
	RevenuePDF(report *dto.RevenueReport) ([]byte, error)
}

// SheetRenderer genera el informe de Einnahmen en XLSX.
type SheetRenderer interface {
	RevenueXLSX(report *dto.RevenueReport) ([]byte, error)
}

// UseCase agrega alquileres y Abrechnungen. Las Abrechnungen se piden en
// paralelo con un máximo de concurrency peticiones simultáneas.
type UseCase struct {
	directory   Directory
	rentals     repository.RentalRepository
	reports     repository.ReportRepository
	pdf         PDFRenderer
	sheet       SheetRenderer
	concurrency int
	log         *logger.Logger
	today       func() entity.Date
}

// NewUseCase construye el caso de uso. concurrency < 1 se trata como 1.
func NewUseCase(
	directory Directory,
	rentals repository.RentalRepository,
	reports repository.ReportRepository,
	pdf PDFRenderer,
	sheet SheetRenderer,
	concurrency int,
	log *logger.Logger,
) *UseCase {
	if concurrency < 1 {
		concurrency = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		directory:   directory,
		rentals:     rentals,
		reports:     reports,
		pdf:         pdf,
		sheet:       sheet,
		concurrency: concurrency,
		log:         log.Named("einnahmen"),
		today:       entity.Today,
	}
}

// SetToday reemplaza el reloj (tests).
func (uc *UseCase) SetToday(fn func() entity.Date) { uc.today = fn }

// Report valida el rango (vacío = 2025-01-01 .. hoy) y construye el informe.
func (uc *UseCase) Report(ctx context.Context, in form.RangeDraft) (*dto.RevenueReport, error) {
	from, to, err := in.Validate(uc.today())
	if err != nil {
		return nil, err
	}
	return uc.Build(ctx, from, to)
}

// Build ejecuta la agregación para [from, to]:
//  1. clientes y equipos → índices de nombres
//  2. todos los alquileres, filtrados por solapamiento (bis nulo = abierto)
//  3. una Abrechnung por alquiler, en paralelo, unidas por id
//  4. suma exacta de las filas
func (uc *UseCase) Build(ctx context.Context, from, to entity.Date) (*dto.RevenueReport, error) {
	start := time.Now()

	var (
		customers map[int64]string
		devices   map[int64]string
		rentals   []entity.Rental
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		customers = uc.customerNames(gctx)
		return nil
	})
	g.Go(func() error {
		devices = uc.deviceLabels(gctx)
		return nil
	})
	g.Go(func() error {
		var err error
		rentals, err = uc.rentals.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("einnahmen: vermietungen: %w", err)
	}

	selected := Overlapping(rentals, from, to)
	rows := make([]dto.RevenueRow, len(selected))

	fetch, fctx := errgroup.WithContext(ctx)
	fetch.SetLimit(uc.concurrency)
	for i, r := range selected {
		fetch.Go(func() error {
			s, err := uc.reports.Settlement(fctx, r.ID)
			if err != nil {
				return fmt.Errorf("abrechnung %d: %w", r.ID, err)
			}
			rows[i] = buildRow(r, *s, customers, devices)
			return nil
		})
	}
	if err := fetch.Wait(); err != nil {
		return nil, fmt.Errorf("einnahmen: %w", err)
	}

	uc.log.Debug().
		Str("von", from.String()).
		Str("bis", to.String()).
		Int("vermietungen", len(rows)).
		Dur("duration", time.Since(start)).
		Msg("informe de einnahmen")

	return &dto.RevenueReport{From: from, To: to, Rows: rows, Totals: Totals(rows)}, nil
}

// Overlapping devuelve los alquileres con von <= to && (bis ?? 9999-12-31) >= from,
// ordenados por id ascendente.
func Overlapping(rentals []entity.Rental, from, to entity.Date) []entity.Rental {
	out := make([]entity.Rental, 0, len(rentals))
	for _, r := range rentals {
		if r.Overlaps(from, to) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Totals suma exacta (decimal) de cada columna.
func Totals(rows []dto.RevenueRow) dto.RevenueTotals {
	t := dto.RevenueTotals{
		Rent:      decimal.Zero,
		Positions: decimal.Zero,
		Revenue:   decimal.Zero,
		Cost:      decimal.Zero,
		Margin:    decimal.Zero,
	}
	for _, r := range rows {
		t.Rent = t.Rent.Add(r.Rent)
		t.Positions = t.Positions.Add(r.Positions)
		t.Revenue = t.Revenue.Add(r.Revenue)
		t.Cost = t.Cost.Add(r.Cost)
		t.Margin = t.Margin.Add(r.Margin)
	}
	return t
}

func buildRow(r entity.Rental, s entity.Settlement, customers, devices map[int64]string) dto.RevenueRow {
	customer, ok := customers[r.CustomerID]
	if !ok {
		customer = entity.CustomerFallbackName(r.CustomerID)
	}
	device, ok := devices[r.DeviceID]
	if !ok {
		device = entity.DeviceFallbackLabel(r.DeviceID)
	}
	return dto.RevenueRow{
		RentalID:     r.ID,
		CustomerName: customer,
		DeviceLabel:  device,
		From:         r.From,
		To:           r.To,
		Status:       r.Status,
		RentalDays:   s.RentalDays,
		Rent:         s.RentTotal,
		Positions:    s.PositionsTotal,
		Revenue:      s.Revenue,
		Cost:         s.CostTotal,
		Margin:       s.Margin,
	}
}

func (uc *UseCase) customerNames(ctx context.Context) map[int64]string {
	out := map[int64]string{}
	items, err := uc.directory.Customers(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("kunden no disponibles; se usan etiquetas por id")
		return out
	}
	for _, c := range items {
		out[c.ID] = c.Name
	}
	return out
}

func (uc *UseCase) deviceLabels(ctx context.Context) map[int64]string {
	out := map[int64]string{}
	items, err := uc.directory.Devices(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("geraete no disponibles; se usan etiquetas por id")
		return out
	}
	for _, d := range items {
		out[d.ID] = d.Label()
	}
	return out
}

// ── Exportación ──────────────────────────────────────────────────────────────

// ExportPDF construye el informe del rango y lo renderiza en PDF.
func (uc *UseCase) ExportPDF(ctx context.Context, in form.RangeDraft) ([]byte, error) {
	rep, err := uc.Report(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.pdf.RevenuePDF(rep)
}

// ExportXLSX construye el informe del rango y lo renderiza en XLSX.
func (uc *UseCase) ExportXLSX(ctx context.Context, in form.RangeDraft) ([]byte, error) {
	rep, err := uc.Report(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.sheet.RevenueXLSX(rep)
}
