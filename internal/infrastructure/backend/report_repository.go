package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/internal/domain/repository"
)

var (
	_ repository.ReportRepository = (*ReportRepo)(nil)
	_ repository.HealthChecker    = (*Client)(nil)
)

// ReportRepo implementación de ReportRepository sobre /berichte.
type ReportRepo struct {
	c *Client
}

// NewReportRepository construye el adaptador.
func NewReportRepository(c *Client) *ReportRepo {
	return &ReportRepo{c: c}
}

// Utilization POST /berichte/auslastung.
func (r *ReportRepo) Utilization(ctx context.Context, q entity.UtilizationQuery) (*entity.UtilizationReport, error) {
	var out entity.UtilizationReport
	if err := r.c.do(ctx, http.MethodPost, "/berichte/auslastung", nil, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Settlement GET /berichte/vermietungen/{id}/abrechnung.
func (r *ReportRepo) Settlement(ctx context.Context, rentalID int64) (*entity.Settlement, error) {
	var out entity.Settlement
	if err := r.c.get(ctx, idPath("/berichte/vermietungen", rentalID)+"/abrechnung", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeviceFinance GET /berichte/geraete/{id}/finanzen[?von=&bis=].
func (r *ReportRepo) DeviceFinance(ctx context.Context, deviceID int64, from, to *entity.Date) (*entity.DeviceFinance, error) {
	q := url.Values{}
	if from != nil && !from.IsZero() {
		q.Set("von", from.String())
	}
	if to != nil && !to.IsZero() {
		q.Set("bis", to.String())
	}
	var out entity.DeviceFinance
	if err := r.c.get(ctx, idPath("/berichte/geraete", deviceID)+"/finanzen", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
