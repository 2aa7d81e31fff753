package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre /rechnungen.
type InvoiceRepo struct {
	c *Client
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(c *Client) *InvoiceRepo {
	return &InvoiceRepo{c: c}
}

// SearchByNumber GET /rechnungen/suche?nummer=
func (r *InvoiceRepo) SearchByNumber(ctx context.Context, number string) ([]entity.Invoice, error) {
	var out []entity.Invoice
	q := url.Values{"nummer": []string{number}}
	if err := r.c.get(ctx, "/rechnungen/suche", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST /rechnungen. Un número repetido devuelve 400.
func (r *InvoiceRepo) Create(ctx context.Context, in entity.Invoice) (*entity.Invoice, error) {
	in.ID = 0
	var out entity.Invoice
	if err := r.c.do(ctx, http.MethodPost, "/rechnungen", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetPaid PATCH /rechnungen/{id}/bezahlt?bezahlt=true|false (sin cuerpo).
func (r *InvoiceRepo) SetPaid(ctx context.Context, id int64, paid bool) (*entity.Invoice, error) {
	q := url.Values{"bezahlt": []string{strconv.FormatBool(paid)}}
	var out entity.Invoice
	if err := r.c.do(ctx, http.MethodPatch, idPath("/rechnungen", id)+"/bezahlt", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
