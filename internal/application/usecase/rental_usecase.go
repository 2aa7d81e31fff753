package usecase

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/mietpark-admin/internal/application/dto"
	"github.com/jhoicas/mietpark-admin/internal/application/form"
	"github.com/jhoicas/mietpark-admin/internal/application/listing"
	"github.com/jhoicas/mietpark-admin/internal/domain"
	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/internal/domain/repository"
	"github.com/jhoicas/mietpark-admin/internal/infrastructure/cache"
	"github.com/jhoicas/mietpark-admin/pkg/logger"
)

// RentalUseCase casos de uso de Vermietungen, posiciones y Rechnungen.
type RentalUseCase struct {
	repo     repository.RentalRepository
	invoices repository.InvoiceRepository
	reports  repository.ReportRepository
	lookups  *LookupService
	cache    *cache.QueryCache
	log      *logger.Logger
}

// NewRentalUseCase construye el caso de uso.
func NewRentalUseCase(
	repo repository.RentalRepository,
	invoices repository.InvoiceRepository,
	reports repository.ReportRepository,
	lookups *LookupService,
	c *cache.QueryCache,
	log *logger.Logger,
) *RentalUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &RentalUseCase{
		repo:     repo,
		invoices: invoices,
		reports:  reports,
		lookups:  lookups,
		cache:    c,
		log:      log.Named("vermietungen"),
	}
}

// List todos los alquileres (id descendente) con nombres resueltos.
func (uc *RentalUseCase) List(ctx context.Context) ([]dto.RentalRow, error) {
	rentals, err := uc.lookups.Rentals(ctx)
	if err != nil {
		return nil, err
	}
	names := uc.lookups.Names(ctx, false)
	rows := make([]dto.RentalRow, 0, len(rentals))
	for _, r := range rentals {
		rows = append(rows, toRentalRow(r, names))
	}
	return rows, nil
}

func toRentalRow(r entity.Rental, names Names) dto.RentalRow {
	return dto.RentalRow{
		Rental:       r,
		DeviceLabel:  names.Device(r.DeviceID),
		CustomerName: names.Customer(r.CustomerID),
	}
}

// Detail alquiler seleccionado con sus facturas y su Abrechnung. Las facturas se
// buscan por el número "<id>" (coincidencia parcial en el backend).
func (uc *RentalUseCase) Detail(ctx context.Context, id int64) (*dto.RentalDetail, error) {
	rentals, err := uc.lookups.Rentals(ctx)
	if err != nil {
		return nil, err
	}
	rental, ok := listing.New(rentals, -1).Find(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	detail := &dto.RentalDetail{Row: toRentalRow(rental, uc.lookups.Names(ctx, false))}
	var g errgroup.Group
	g.Go(func() error {
		invoices, err := uc.Invoices(ctx, id)
		if err != nil {
			uc.log.Warn().Err(err).Int64("vermietung_id", id).Msg("rechnungen no disponibles")
			detail.InvoicesError = err.Error()
			return nil
		}
		detail.Invoices = invoices
		return nil
	})
	g.Go(func() error {
		s, err := uc.reports.Settlement(ctx, id)
		if err != nil {
			uc.log.Warn().Err(err).Int64("vermietung_id", id).Msg("abrechnung no disponible")
			detail.SettlementError = err.Error()
			return nil
		}
		detail.Settlement = s
		return nil
	})
	_ = g.Wait()
	return detail, nil
}

// Invoices GET /rechnungen/suche?nummer=<id> (cacheado por alquiler).
func (uc *RentalUseCase) Invoices(ctx context.Context, rentalID int64) ([]entity.Invoice, error) {
	l, err := cache.Get(ctx, uc.cache, invoiceKey(rentalID), func(ctx context.Context) (listing.List[entity.Invoice], error) {
		items, err := uc.invoices.SearchByNumber(ctx, strconv.FormatInt(rentalID, 10))
		return listing.New(items, -1), err
	})
	return l.Items, err
}

// Create valida el borrador y crea el alquiler en estado RESERVIERT.
func (uc *RentalUseCase) Create(ctx context.Context, in form.RentalDraft) (*entity.Rental, error) {
	r, err := in.Validate()
	if err != nil {
		return nil, err
	}
	saved, err := uc.repo.Create(ctx, r)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(keyRentals)
	return saved, nil
}

// Start pone el alquiler en OFFEN; el backend mueve el equipo a KUNDE.
func (uc *RentalUseCase) Start(ctx context.Context, id int64) (*entity.Rental, error) {
	saved, err := uc.repo.Start(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.applyRental(*saved)
	return saved, nil
}

// Close cierra el alquiler (bis vacío = hoy); el backend devuelve el equipo al Mietpark.
func (uc *RentalUseCase) Close(ctx context.Context, id int64, in form.CloseDraft) (*entity.Rental, error) {
	end, err := in.Validate()
	if err != nil {
		return nil, err
	}
	saved, err := uc.repo.Close(ctx, id, end)
	if err != nil {
		return nil, err
	}
	uc.applyRental(*saved)
	return saved, nil
}

// applyRental reemplaza el alquiler en la lista cacheada. El estado de los
// equipos lo cambió el backend, así que sus páginas se invalidan.
func (uc *RentalUseCase) applyRental(saved entity.Rental) {
	cache.Patch(uc.cache, keyRentals, func(l listing.List[entity.Rental]) listing.List[entity.Rental] {
		next, _ := l.Replace(saved)
		return next
	})
	uc.cache.Invalidate(keyDevices)
}

// AddPosition añade una posición adicional (montaje, repuesto...).
func (uc *RentalUseCase) AddPosition(ctx context.Context, rentalID int64, in form.PositionDraft) (*entity.RentalPosition, error) {
	p, err := in.Validate(rentalID)
	if err != nil {
		return nil, err
	}
	return uc.repo.AddPosition(ctx, p)
}

// CreateInvoice crea una Rechnung; un número repetido vuelve como 400 del backend.
func (uc *RentalUseCase) CreateInvoice(ctx context.Context, rentalID int64, in form.InvoiceDraft) (*entity.Invoice, error) {
	inv, err := in.Validate(rentalID)
	if err != nil {
		return nil, err
	}
	saved, err := uc.invoices.Create(ctx, inv)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(keyInvoices)
	return saved, nil
}

// SetInvoicePaid cambia "bezahlt" y reemplaza la factura por id en las listas cacheadas.
func (uc *RentalUseCase) SetInvoicePaid(ctx context.Context, invoiceID int64, paid bool) (*entity.Invoice, error) {
	saved, err := uc.invoices.SetPaid(ctx, invoiceID, paid)
	if err != nil {
		return nil, err
	}
	cache.PatchPrefix(uc.cache, keyInvoices, func(l listing.List[entity.Invoice]) listing.List[entity.Invoice] {
		next, _ := l.Replace(*saved)
		return next
	})
	return saved, nil
}
