package repository

import (
	"context"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// RentalRepository define el puerto hacia /vermietungen y /vermietung-positionen.
type RentalRepository interface {
	List(ctx context.Context) ([]entity.Rental, error)
	Create(ctx context.Context, r entity.Rental) (*entity.Rental, error)
	Start(ctx context.Context, id int64) (*entity.Rental, error)
	// Close cierra el alquiler; end nil deja que el backend use la fecha de hoy.
	Close(ctx context.Context, id int64, end *entity.Date) (*entity.Rental, error)
	AddPosition(ctx context.Context, p entity.RentalPosition) (*entity.RentalPosition, error)
}
