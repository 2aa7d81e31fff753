package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/internal/domain/repository"
)

var _ repository.DeviceRepository = (*DeviceRepo)(nil)

// DeviceRepo implementación de DeviceRepository sobre /geraete.
type DeviceRepo struct {
	c *Client
}

// NewDeviceRepository construye el adaptador.
func NewDeviceRepository(c *Client) *DeviceRepo {
	return &DeviceRepo{c: c}
}

// List GET /geraete?status=&standort_typ=&skip=&limit=
// skip y limit se envían siempre; los filtros solo si están definidos.
func (r *DeviceRepo) List(ctx context.Context, filter entity.DeviceFilter, skip, limit int) ([]entity.Device, error) {
	q := filterQuery(filter)
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))

	var out []entity.Device
	if err := r.c.get(ctx, "/geraete", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count GET /geraete/count con los mismos filtros que List.
// El backend responde un número JSON; se acepta también {"count": n}.
func (r *DeviceRepo) Count(ctx context.Context, filter entity.DeviceFilter) (int, error) {
	var raw json.RawMessage
	if err := r.c.get(ctx, "/geraete/count", filterQuery(filter), &raw); err != nil {
		return 0, err
	}
	return decodeCount(raw)
}

// GetByID GET /geraete/{id}.
func (r *DeviceRepo) GetByID(ctx context.Context, id int64) (*entity.Device, error) {
	var out entity.Device
	if err := r.c.get(ctx, idPath("/geraete", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create POST /geraete.
func (r *DeviceRepo) Create(ctx context.Context, in entity.Device) (*entity.Device, error) {
	in.ID = 0
	var out entity.Device
	if err := r.c.do(ctx, http.MethodPost, "/geraete", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT /geraete/{id}.
func (r *DeviceRepo) Update(ctx context.Context, id int64, in entity.Device) (*entity.Device, error) {
	in.ID = 0
	var out entity.Device
	if err := r.c.do(ctx, http.MethodPut, idPath("/geraete", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete DELETE /geraete/{id}. Con referencias el backend responde 409.
func (r *DeviceRepo) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, idPath("/geraete", id), nil, nil, nil)
}

func filterQuery(f entity.DeviceFilter) url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Location != "" {
		q.Set("standort_typ", string(f.Location))
	}
	return q
}

func decodeCount(raw json.RawMessage) (int, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var wrapped struct {
		Count *int `json:"count"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil || wrapped.Count == nil {
		return 0, fmt.Errorf("backend: respuesta de conteo inesperada: %s", raw)
	}
	return *wrapped.Count, nil
}
