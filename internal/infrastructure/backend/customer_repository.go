package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre /kunden.
type CustomerRepo struct {
	c *Client
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(c *Client) *CustomerRepo {
	return &CustomerRepo{c: c}
}

// List GET /kunden.
func (r *CustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	var out []entity.Customer
	if err := r.c.get(ctx, "/kunden", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST /kunden.
func (r *CustomerRepo) Create(ctx context.Context, in entity.Customer) (*entity.Customer, error) {
	in.ID = 0
	var out entity.Customer
	if err := r.c.do(ctx, http.MethodPost, "/kunden", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT /kunden/{id}.
func (r *CustomerRepo) Update(ctx context.Context, id int64, in entity.Customer) (*entity.Customer, error) {
	in.ID = 0
	var out entity.Customer
	if err := r.c.do(ctx, http.MethodPut, idPath("/kunden", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
