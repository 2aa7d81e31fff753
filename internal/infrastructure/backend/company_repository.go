package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository sobre /firmen.
type CompanyRepo struct {
	c *Client
}

// NewCompanyRepository construye el adaptador.
func NewCompanyRepository(c *Client) *CompanyRepo {
	return &CompanyRepo{c: c}
}

// List GET /firmen.
func (r *CompanyRepo) List(ctx context.Context) ([]entity.Company, error) {
	var out []entity.Company
	if err := r.c.get(ctx, "/firmen", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST /firmen.
func (r *CompanyRepo) Create(ctx context.Context, in entity.Company) (*entity.Company, error) {
	in.ID = 0
	var out entity.Company
	if err := r.c.do(ctx, http.MethodPost, "/firmen", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT /firmen/{id}.
func (r *CompanyRepo) Update(ctx context.Context, id int64, in entity.Company) (*entity.Company, error) {
	in.ID = 0
	var out entity.Company
	if err := r.c.do(ctx, http.MethodPut, idPath("/firmen", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete DELETE /firmen/{id}.
func (r *CompanyRepo) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, idPath("/firmen", id), nil, nil, nil)
}
