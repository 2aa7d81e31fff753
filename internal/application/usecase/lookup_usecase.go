package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/mietpark-admin/internal/application/listing"
	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/internal/domain/repository"
	"github.com/jhoicas/mietpark-admin/internal/infrastructure/cache"
	"github.com/jhoicas/mietpark-admin/pkg/logger"
)

// LookupService listas completas (clientes, firmas, mietparks, equipos, alquileres)
// compartidas por todas las vistas a través de la caché.
type LookupService struct {
	cache     *cache.QueryCache
	companies repository.CompanyRepository
	parks     repository.RentalParkRepository
	customers repository.CustomerRepository
	devices   repository.DeviceRepository
	rentals   repository.RentalRepository
	log       *logger.Logger
}

// NewLookupService construye el servicio.
func NewLookupService(
	c *cache.QueryCache,
	companies repository.CompanyRepository,
	parks repository.RentalParkRepository,
	customers repository.CustomerRepository,
	devices repository.DeviceRepository,
	rentals repository.RentalRepository,
	log *logger.Logger,
) *LookupService {
	if log == nil {
		log = logger.Nop()
	}
	return &LookupService{
		cache:     c,
		companies: companies,
		parks:     parks,
		customers: customers,
		devices:   devices,
		rentals:   rentals,
		log:       log.Named("lookups"),
	}
}

// Companies GET /firmen (cacheado).
func (s *LookupService) Companies(ctx context.Context) ([]entity.Company, error) {
	l, err := cache.Get(ctx, s.cache, keyCompanies, func(ctx context.Context) (listing.List[entity.Company], error) {
		items, err := s.companies.List(ctx)
		return listing.New(items, -1), err
	})
	return l.Items, err
}

// Parks GET /mietparks (cacheado).
func (s *LookupService) Parks(ctx context.Context) ([]entity.RentalPark, error) {
	l, err := cache.Get(ctx, s.cache, keyParks, func(ctx context.Context) (listing.List[entity.RentalPark], error) {
		items, err := s.parks.List(ctx)
		return listing.New(items, -1), err
	})
	return l.Items, err
}

// Customers GET /kunden (cacheado).
func (s *LookupService) Customers(ctx context.Context) ([]entity.Customer, error) {
	l, err := cache.Get(ctx, s.cache, keyCustomers, func(ctx context.Context) (listing.List[entity.Customer], error) {
		items, err := s.customers.List(ctx)
		return listing.New(items, -1), err
	})
	return l.Items, err
}

// Devices todos los equipos (skip 0, limit 10000) para resolver etiquetas.
func (s *LookupService) Devices(ctx context.Context) ([]entity.Device, error) {
	l, err := cache.Get(ctx, s.cache, keyDevicesAll, func(ctx context.Context) (listing.List[entity.Device], error) {
		items, err := s.devices.List(ctx, entity.DeviceFilter{}, 0, lookupDeviceSize)
		return listing.New(items, -1), err
	})
	return l.Items, err
}

// Rentals GET /vermietungen (cacheado, orden del backend: id descendente).
func (s *LookupService) Rentals(ctx context.Context) ([]entity.Rental, error) {
	l, err := cache.Get(ctx, s.cache, keyRentals, func(ctx context.Context) (listing.List[entity.Rental], error) {
		items, err := s.rentals.List(ctx)
		return listing.New(items, -1), err
	})
	return l.Items, err
}

// Refresh descarta y vuelve a cargar todas las listas. Lo usa el job de reconciliación.
func (s *LookupService) Refresh(ctx context.Context) error {
	s.cache.Invalidate(keyCompanies, keyParks, keyCustomers, keyDevices, keyRentals, keyInvoices, keyMaintenance)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { _, err := s.Companies(gctx); return wrap("firmen", err) })
	g.Go(func() error { _, err := s.Parks(gctx); return wrap("mietparks", err) })
	g.Go(func() error { _, err := s.Customers(gctx); return wrap("kunden", err) })
	g.Go(func() error { _, err := s.Devices(gctx); return wrap("geraete", err) })
	g.Go(func() error { _, err := s.Rentals(gctx); return wrap("vermietungen", err) })
	if err := g.Wait(); err != nil {
		return fmt.Errorf("lookups: refresco: %w", err)
	}
	s.log.Debug().Msg("listas recargadas")
	return nil
}

// Names índices id → etiqueta. Un fallo deja el índice vacío y se registra;
// las etiquetas caen entonces en "Kunde #id" / "Gerät #id".
type Names struct {
	Customers map[int64]string
	Devices   map[int64]string
	Companies map[int64]string
	Parks     map[int64]string
}

// Customer nombre del cliente o "Kunde #id".
func (n Names) Customer(id int64) string {
	if name, ok := n.Customers[id]; ok {
		return name
	}
	return entity.CustomerFallbackName(id)
}

// Device etiqueta del equipo o "Gerät #id".
func (n Names) Device(id int64) string {
	if label, ok := n.Devices[id]; ok {
		return label
	}
	return entity.DeviceFallbackLabel(id)
}

// Company nombre de la firma o "".
func (n Names) Company(id int64) string { return n.Companies[id] }

// Park nombre del mietpark o "".
func (n Names) Park(id *int64) string {
	if id == nil {
		return ""
	}
	return n.Parks[*id]
}

// Names carga en paralelo clientes y equipos (y firmas/mietparks si withSites).
func (s *LookupService) Names(ctx context.Context, withSites bool) Names {
	n := Names{
		Customers: map[int64]string{},
		Devices:   map[int64]string{},
		Companies: map[int64]string{},
		Parks:     map[int64]string{},
	}
	var g errgroup.Group
	g.Go(func() error {
		items, err := s.Customers(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("kunden no disponibles")
			return nil
		}
		for _, c := range items {
			n.Customers[c.ID] = c.Name
		}
		return nil
	})
	g.Go(func() error {
		items, err := s.Devices(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("geraete no disponibles")
			return nil
		}
		for _, d := range items {
			n.Devices[d.ID] = d.Label()
		}
		return nil
	})
	if withSites {
		g.Go(func() error {
			items, err := s.Companies(ctx)
			if err != nil {
				s.log.Warn().Err(err).Msg("firmen no disponibles")
				return nil
			}
			for _, c := range items {
				n.Companies[c.ID] = c.Name
			}
			return nil
		})
		g.Go(func() error {
			items, err := s.Parks(ctx)
			if err != nil {
				s.log.Warn().Err(err).Msg("mietparks no disponibles")
				return nil
			}
			for _, p := range items {
				n.Parks[p.ID] = p.Name
			}
			return nil
		})
	}
	_ = g.Wait()
	return n
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}
