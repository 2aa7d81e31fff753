package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/mietpark-admin/internal/application/dto"
	"github.com/jhoicas/mietpark-admin/internal/application/form"
	"github.com/jhoicas/mietpark-admin/internal/application/listing"
	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/internal/domain/repository"
	"github.com/jhoicas/mietpark-admin/internal/infrastructure/cache"
	"github.com/jhoicas/mietpark-admin/pkg/logger"
)

// AvailableDeviceLimit límite del selector de equipos del formulario de alquiler.
const AvailableDeviceLimit = 500

// DeviceUseCase casos de uso de Geräte.
type DeviceUseCase struct {
	repo        repository.DeviceRepository
	maintenance repository.MaintenanceRepository
	reports     repository.ReportRepository
	lookups     *LookupService
	cache       *cache.QueryCache
	log         *logger.Logger
	now         func() time.Time
}

// NewDeviceUseCase construye el caso de uso.
func NewDeviceUseCase(
	repo repository.DeviceRepository,
	maintenance repository.MaintenanceRepository,
	reports repository.ReportRepository,
	lookups *LookupService,
	c *cache.QueryCache,
	log *logger.Logger,
) *DeviceUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DeviceUseCase{
		repo:        repo,
		maintenance: maintenance,
		reports:     reports,
		lookups:     lookups,
		cache:       c,
		log:         log.Named("geraete"),
		now:         time.Now,
	}
}

// ── Listado ──────────────────────────────────────────────────────────────────

// Page carga una página filtrada (20 por página) y el total con el mismo filtro.
// Son dos llamadas independientes en paralelo; el backend no garantiza que
// coincidan si los datos cambian entre ambas.
func (uc *DeviceUseCase) Page(ctx context.Context, q dto.DevicePageQuery) (*dto.DevicePage, error) {
	q.Normalize()
	filter, err := form.ParseDeviceFilter(q.Status, q.Location)
	if err != nil {
		return nil, err
	}

	key := devicePageKey(string(filter.Status), string(filter.Location), q.Page)
	page, err := cache.Get(ctx, uc.cache, key, func(ctx context.Context) (listing.List[entity.Device], error) {
		var (
			items []entity.Device
			total int
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			items, err = uc.repo.List(gctx, filter, q.Skip(), dto.DevicePageSize)
			return err
		})
		g.Go(func() error {
			var err error
			total, err = uc.repo.Count(gctx, filter)
			return err
		})
		if err := g.Wait(); err != nil {
			return listing.List[entity.Device]{}, err
		}
		return listing.New(items, total), nil
	})
	if err != nil {
		return nil, fmt.Errorf("geraete: página %d: %w", q.Page, err)
	}

	return &dto.DevicePage{
		Rows:     uc.rows(ctx, page.Items),
		Page:     dto.NewPageResponse(q.Page, page.Total),
		Status:   string(filter.Status),
		Location: string(filter.Location),
	}, nil
}

// rows resuelve firma, mietpark y ocupante actual. Los fallos de las listas
// auxiliares solo dejan nombres vacíos.
func (uc *DeviceUseCase) rows(ctx context.Context, devices []entity.Device) []dto.DeviceRow {
	names := uc.lookups.Names(ctx, true)

	var occupants map[int64]entity.Rental
	var ambiguous map[int64]bool
	if hasCustomerSited(devices) {
		rentals, err := uc.lookups.Rentals(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Msg("vermietungen no disponibles para el ocupante actual")
		}
		occupants, ambiguous = entity.CurrentOccupants(rentals)
	}

	rows := make([]dto.DeviceRow, 0, len(devices))
	for _, d := range devices {
		row := dto.DeviceRow{
			Device:      d,
			CompanyName: names.Company(d.CompanyID),
			ParkName:    names.Park(d.ParkID),
		}
		if d.Location == entity.LocationCustomer {
			if r, ok := occupants[d.ID]; ok {
				row.Occupant = names.Customer(r.CustomerID)
				row.OccupantRentalID = r.ID
			}
			if ambiguous[d.ID] {
				row.Ambiguous = true
				uc.log.Warn().Int64("geraet_id", d.ID).Msg("varias vermietungen OFFEN para el mismo equipo")
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func hasCustomerSited(devices []entity.Device) bool {
	for _, d := range devices {
		if d.Location == entity.LocationCustomer {
			return true
		}
	}
	return false
}

// Available equipos VERFUEGBAR para el selector del formulario de alquiler. Sin caché.
func (uc *DeviceUseCase) Available(ctx context.Context) ([]entity.Device, error) {
	return uc.repo.List(ctx, entity.DeviceFilter{Status: entity.DeviceStatusAvailable}, 0, AvailableDeviceLimit)
}

// ── CRUD ─────────────────────────────────────────────────────────────────────

// Get GET /geraete/{id}.
func (uc *DeviceUseCase) Get(ctx context.Context, id int64) (*entity.Device, error) {
	return uc.repo.GetByID(ctx, id)
}

// Create valida y crea; invalida todas las páginas cacheadas.
func (uc *DeviceUseCase) Create(ctx context.Context, in form.DeviceDraft) (*entity.Device, error) {
	d, err := in.Validate()
	if err != nil {
		return nil, err
	}
	saved, err := uc.repo.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(keyDevices)
	return saved, nil
}

// Update aplica el equipo guardado a las páginas cacheadas. Un filtro cuya
// pertenencia cambia (o no se conoce el estado anterior) pierde sus páginas.
func (uc *DeviceUseCase) Update(ctx context.Context, id int64, in form.DeviceDraft) (*entity.Device, error) {
	d, err := in.Validate()
	if err != nil {
		return nil, err
	}
	saved, err := uc.repo.Update(ctx, id, d)
	if err != nil {
		return nil, err
	}

	previous, known := uc.cachedDevice(saved.ID)
	replace := func(l listing.List[entity.Device]) listing.List[entity.Device] {
		next, _ := l.Replace(*saved)
		return next
	}
	for _, f := range uc.cachedFilters() {
		is := f.Matches(*saved)
		switch {
		case !known || f.Matches(previous) != is:
			uc.cache.Invalidate(devicePagesKey(f))
		case is:
			cache.PatchPrefix(uc.cache, devicePagesKey(f), replace)
		}
	}
	cache.Patch(uc.cache, keyDevicesAll, replace)
	return saved, nil
}

// Delete borra el equipo. En cada filtro, la página que lo contiene pierde
// esa fila (total - 1) y el resto de páginas del filtro se descartan.
// Un 409 (equipo con referencias) deja la caché intacta.
func (uc *DeviceUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	previous, known := uc.cachedDevice(id)
	for _, f := range uc.cachedFilters() {
		if known && !f.Matches(previous) {
			continue
		}
		keys := uc.cache.KeysWithPrefix(devicePagesKey(f))
		holder := ""
		for _, key := range keys {
			if l, ok := cache.Peek[listing.List[entity.Device]](uc.cache, key); ok {
				if _, found := l.Find(id); found {
					holder = key
					break
				}
			}
		}
		if holder == "" {
			uc.cache.Invalidate(devicePagesKey(f))
			continue
		}
		cache.Patch(uc.cache, holder, func(l listing.List[entity.Device]) listing.List[entity.Device] {
			next, _ := l.Remove(id)
			return next
		})
		others := make([]string, 0, len(keys)-1)
		for _, key := range keys {
			if key != holder {
				others = append(others, key)
			}
		}
		uc.cache.Remove(others...)
	}
	cache.Patch(uc.cache, keyDevicesAll, func(l listing.List[entity.Device]) listing.List[entity.Device] {
		next, _ := l.Remove(id)
		return next
	})
	return nil
}

// cachedDevice busca el equipo en cualquier lista cacheada.
func (uc *DeviceUseCase) cachedDevice(id int64) (entity.Device, bool) {
	for _, key := range uc.cache.KeysWithPrefix(keyDevices) {
		if l, ok := cache.Peek[listing.List[entity.Device]](uc.cache, key); ok {
			if d, found := l.Find(id); found {
				return d, true
			}
		}
	}
	return entity.Device{}, false
}

// cachedFilters filtros con al menos una página en caché.
func (uc *DeviceUseCase) cachedFilters() []entity.DeviceFilter {
	seen := make(map[entity.DeviceFilter]bool)
	var out []entity.DeviceFilter
	for _, key := range uc.cache.KeysWithPrefix(keyDevicePages) {
		if f, ok := parseDevicePageKey(key); ok && !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// ── Detalle ──────────────────────────────────────────────────────────────────

// Detail carga el equipo (obligatorio) y después, de forma independiente,
// historial de alquileres, finanzas y mantenimientos. Cada parte que falle
// queda vacía con su mensaje de error.
func (uc *DeviceUseCase) Detail(ctx context.Context, id int64) (*dto.DeviceDetail, error) {
	device, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.DeviceDetail{Device: *device}
	var g errgroup.Group
	g.Go(func() error {
		names := uc.lookups.Names(ctx, true)
		detail.CompanyName = names.Company(device.CompanyID)
		detail.ParkName = names.Park(device.ParkID)

		rentals, err := uc.lookups.Rentals(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Int64("geraet_id", id).Msg("historial no disponible")
			detail.RentalsError = err.Error()
			return nil
		}
		for _, r := range rentals {
			if r.DeviceID == id {
				detail.Rentals = append(detail.Rentals, dto.RentalRow{
					Rental:       r,
					DeviceLabel:  device.Label(),
					CustomerName: names.Customer(r.CustomerID),
				})
			}
		}
		return nil
	})
	g.Go(func() error {
		f, err := uc.reports.DeviceFinance(ctx, id, nil, nil)
		if err != nil {
			uc.log.Warn().Err(err).Int64("geraet_id", id).Msg("finanzas no disponibles")
			detail.FinanceError = err.Error()
			return nil
		}
		summary := dto.NewFinanceSummary(*f)
		detail.Finance = &summary
		return nil
	})
	g.Go(func() error {
		items, err := uc.maintenanceList(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Int64("geraet_id", id).Msg("wartungen no disponibles")
			detail.MaintenanceError = err.Error()
			return nil
		}
		for _, m := range items {
			if m.DeviceID == id {
				detail.Maintenance = append(detail.Maintenance, m)
			}
		}
		return nil
	})
	_ = g.Wait()
	return detail, nil
}

func (uc *DeviceUseCase) maintenanceList(ctx context.Context) ([]entity.Maintenance, error) {
	return cache.Get(ctx, uc.cache, keyMaintenance, uc.maintenance.ListMaintenance)
}

// ── Wartung / Zählerstand ────────────────────────────────────────────────────

// AddMaintenance registra una Wartung para el equipo.
func (uc *DeviceUseCase) AddMaintenance(ctx context.Context, deviceID int64, in form.MaintenanceDraft) (*entity.Maintenance, error) {
	m, err := in.Validate(deviceID)
	if err != nil {
		return nil, err
	}
	saved, err := uc.maintenance.CreateMaintenance(ctx, m)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(keyMaintenance)
	return saved, nil
}

// RecordMeterReading registra un Zählerstand. El stundenzähler del equipo no cambia.
func (uc *DeviceUseCase) RecordMeterReading(ctx context.Context, deviceID int64, in form.MeterDraft) (*entity.MeterReading, error) {
	r, err := in.Validate(deviceID, uc.now())
	if err != nil {
		return nil, err
	}
	return uc.maintenance.CreateMeterReading(ctx, r)
}
