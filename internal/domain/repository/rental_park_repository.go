package repository

import (
	"context"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// RentalParkRepository define el puerto hacia /mietparks.
type RentalParkRepository interface {
	List(ctx context.Context) ([]entity.RentalPark, error)
	Create(ctx context.Context, p entity.RentalPark) (*entity.RentalPark, error)
	Update(ctx context.Context, id int64, p entity.RentalPark) (*entity.RentalPark, error)
	Delete(ctx context.Context, id int64) error
}
