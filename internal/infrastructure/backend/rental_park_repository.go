package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/internal/domain/repository"
)

var _ repository.RentalParkRepository = (*RentalParkRepo)(nil)

// RentalParkRepo implementación de RentalParkRepository sobre /mietparks.
type RentalParkRepo struct {
	c *Client
}

// NewRentalParkRepository construye el adaptador.
func NewRentalParkRepository(c *Client) *RentalParkRepo {
	return &RentalParkRepo{c: c}
}

func (r *RentalParkRepo) List(ctx context.Context) ([]entity.RentalPark, error) {
	var out []entity.RentalPark
	if err := r.c.get(ctx, "/mietparks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RentalParkRepo) Create(ctx context.Context, in entity.RentalPark) (*entity.RentalPark, error) {
	in.ID = 0
	var out entity.RentalPark
	if err := r.c.do(ctx, http.MethodPost, "/mietparks", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RentalParkRepo) Update(ctx context.Context, id int64, in entity.RentalPark) (*entity.RentalPark, error) {
	in.ID = 0
	var out entity.RentalPark
	if err := r.c.do(ctx, http.MethodPut, idPath("/mietparks", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RentalParkRepo) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, idPath("/mietparks", id), nil, nil, nil)
}
