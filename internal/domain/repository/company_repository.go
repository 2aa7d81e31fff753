package repository

import (
	"context"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// CompanyRepository define el puerto hacia /firmen.
// La implementación vive en infrastructure/backend.
type CompanyRepository interface {
	List(ctx context.Context) ([]entity.Company, error)
	Create(ctx context.Context, c entity.Company) (*entity.Company, error)
	Update(ctx context.Context, id int64, c entity.Company) (*entity.Company, error)
	Delete(ctx context.Context, id int64) error
}
