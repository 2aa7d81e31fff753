package repository

import (
	"context"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// DeviceRepository define el puerto hacia /geraete.
// List y Count aceptan el mismo filtro; son dos llamadas independientes.
type DeviceRepository interface {
	List(ctx context.Context, filter entity.DeviceFilter, skip, limit int) ([]entity.Device, error)
	Count(ctx context.Context, filter entity.DeviceFilter) (int, error)
	GetByID(ctx context.Context, id int64) (*entity.Device, error)
	Create(ctx context.Context, d entity.Device) (*entity.Device, error)
	Update(ctx context.Context, id int64, d entity.Device) (*entity.Device, error)
	Delete(ctx context.Context, id int64) error
}

// MaintenanceRepository define el puerto hacia /wartungen y /zaehlerstaende.
type MaintenanceRepository interface {
	ListMaintenance(ctx context.Context) ([]entity.Maintenance, error)
	CreateMaintenance(ctx context.Context, m entity.Maintenance) (*entity.Maintenance, error)
	CreateMeterReading(ctx context.Context, r entity.MeterReading) (*entity.MeterReading, error)
}
