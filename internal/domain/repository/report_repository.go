package repository

import (
	"context"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// ReportRepository define las consultas de lectura de /berichte. Los cálculos los hace el backend.
type ReportRepository interface {
	Utilization(ctx context.Context, q entity.UtilizationQuery) (*entity.UtilizationReport, error)
	Settlement(ctx context.Context, rentalID int64) (*entity.Settlement, error)
	// DeviceFinance acepta from/to nil para "sin límite".
	DeviceFinance(ctx context.Context, deviceID int64, from, to *entity.Date) (*entity.DeviceFinance, error)
}

// HealthChecker consulta GET /health del backend.
type HealthChecker interface {
	Health(ctx context.Context) error
}
