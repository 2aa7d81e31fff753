package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/internal/domain/repository"
)

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

// MaintenanceRepo implementación sobre /wartungen y /zaehlerstaende.
type MaintenanceRepo struct {
	c *Client
}

// NewMaintenanceRepository construye el adaptador.
func NewMaintenanceRepository(c *Client) *MaintenanceRepo {
	return &MaintenanceRepo{c: c}
}

// ListMaintenance GET /wartungen (todas, ordenadas por fecha desc).
func (r *MaintenanceRepo) ListMaintenance(ctx context.Context) ([]entity.Maintenance, error) {
	var out []entity.Maintenance
	if err := r.c.get(ctx, "/wartungen", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMaintenance POST /wartungen.
func (r *MaintenanceRepo) CreateMaintenance(ctx context.Context, in entity.Maintenance) (*entity.Maintenance, error) {
	in.ID = 0
	var out entity.Maintenance
	if err := r.c.do(ctx, http.MethodPost, "/wartungen", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMeterReading POST /zaehlerstaende.
func (r *MaintenanceRepo) CreateMeterReading(ctx context.Context, in entity.MeterReading) (*entity.MeterReading, error) {
	in.ID = 0
	var out entity.MeterReading
	if err := r.c.do(ctx, http.MethodPost, "/zaehlerstaende", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
