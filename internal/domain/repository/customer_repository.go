package repository

import (
	"context"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// CustomerRepository define el puerto hacia /kunden. El backend no expone borrado.
type CustomerRepository interface {
	List(ctx context.Context) ([]entity.Customer, error)
	Create(ctx context.Context, c entity.Customer) (*entity.Customer, error)
	Update(ctx context.Context, id int64, c entity.Customer) (*entity.Customer, error)
}
