package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/internal/domain/repository"
)

var _ repository.RentalRepository = (*RentalRepo)(nil)

// RentalRepo implementación de RentalRepository sobre /vermietungen.
type RentalRepo struct {
	c *Client
}

// NewRentalRepository construye el adaptador.
func NewRentalRepository(c *Client) *RentalRepo {
	return &RentalRepo{c: c}
}

// List GET /vermietungen (orden id desc en el backend).
func (r *RentalRepo) List(ctx context.Context) ([]entity.Rental, error) {
	var out []entity.Rental
	if err := r.c.get(ctx, "/vermietungen", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST /vermietungen.
func (r *RentalRepo) Create(ctx context.Context, in entity.Rental) (*entity.Rental, error) {
	in.ID = 0
	var out entity.Rental
	if err := r.c.do(ctx, http.MethodPost, "/vermietungen", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Start POST /vermietungen/{id}/starten (sin cuerpo).
func (r *RentalRepo) Start(ctx context.Context, id int64) (*entity.Rental, error) {
	var out entity.Rental
	if err := r.c.do(ctx, http.MethodPost, idPath("/vermietungen", id)+"/starten", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Close POST /vermietungen/{id}/schliessen[?bis=YYYY-MM-DD] (sin cuerpo).
func (r *RentalRepo) Close(ctx context.Context, id int64, end *entity.Date) (*entity.Rental, error) {
	var q url.Values
	if end != nil && !end.IsZero() {
		q = url.Values{"bis": []string{end.String()}}
	}
	var out entity.Rental
	if err := r.c.do(ctx, http.MethodPost, idPath("/vermietungen", id)+"/schliessen", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddPosition POST /vermietung-positionen.
func (r *RentalRepo) AddPosition(ctx context.Context, in entity.RentalPosition) (*entity.RentalPosition, error) {
	in.ID = 0
	var out entity.RentalPosition
	if err := r.c.do(ctx, http.MethodPost, "/vermietung-positionen", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
