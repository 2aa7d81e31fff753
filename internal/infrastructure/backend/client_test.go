package backend_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mietpark-admin/internal/domain"
	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/internal/infrastructure/backend"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend falso: registra cada petición y responde lo configurado por ruta.
// ──────────────────────────────────────────────────────────────────────────────

type recorded struct {
	Method      string
	Path        string
	RawQuery    string
	ContentType string
	Body        string
}

type fakeBackend struct {
	mu       sync.Mutex
	requests []recorded
	routes   map[string]func(w http.ResponseWriter, r *http.Request)
}

func newFakeBackend(t *testing.T) (*fakeBackend, *backend.Client) {
	t.Helper()
	fb := &fakeBackend{routes: map[string]func(http.ResponseWriter, *http.Request){}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fb.mu.Lock()
		fb.requests = append(fb.requests, recorded{
			Method:      r.Method,
			Path:        r.URL.Path,
			RawQuery:    r.URL.RawQuery,
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(body),
		})
		h, ok := fb.routes[r.Method+" "+r.URL.Path]
		fb.mu.Unlock()
		if !ok {
			http.Error(w, `{"detail":"Not Found"}`, http.StatusNotFound)
			return
		}
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return fb, backend.NewClient(srv.URL, 5*time.Second, nil)
}

func (fb *fakeBackend) on(method, path string, status int, body string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.routes[method+" "+path] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (fb *fakeBackend) last(t *testing.T) recorded {
	t.Helper()
	fb.mu.Lock()
	defer fb.mu.Unlock()
	require.NotEmpty(t, fb.requests, "no se registró ninguna petición")
	return fb.requests[len(fb.requests)-1]
}

func (fb *fakeBackend) count() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return len(fb.requests)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contrato de cabeceras
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_GetSinContentType(t *testing.T) {
	fb, c := newFakeBackend(t)
	fb.on(http.MethodGet, "/firmen", http.StatusOK, `[{"id":1,"name":"ACME"}]`)

	list, err := backend.NewCompanyRepository(c).List(t.Context())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ACME", list[0].Name)

	req := fb.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Empty(t, req.ContentType, "las GET no llevan Content-Type")
}

func TestClient_PostConCuerpoEnviaJSON(t *testing.T) {
	fb, c := newFakeBackend(t)
	fb.on(http.MethodPost, "/firmen", http.StatusOK, `{"id":9,"name":"Neu GmbH","ust_id":"DE123"}`)

	saved, err := backend.NewCompanyRepository(c).Create(t.Context(), entity.Company{Name: "Neu GmbH", TaxID: "DE123"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), saved.ID)

	req := fb.last(t)
	assert.Equal(t, "application/json", req.ContentType)
	assert.JSONEq(t, `{"name":"Neu GmbH","ust_id":"DE123"}`, req.Body)
}

func TestClient_PostSinCuerpoNoEnviaContentType(t *testing.T) {
	fb, c := newFakeBackend(t)
	fb.on(http.MethodPost, "/vermietungen/4/starten", http.StatusOK,
		`{"id":4,"geraet_id":1,"kunde_id":2,"von":"2025-01-01","bis":null,"satz_wert":0,"satz_einheit":"MONATLICH","status":"OFFEN"}`)

	r, err := backend.NewRentalRepository(c).Start(t.Context(), 4)
	require.NoError(t, err)
	assert.Equal(t, entity.RentalOpen, r.Status)

	req := fb.last(t)
	assert.Empty(t, req.ContentType)
	assert.Empty(t, req.Body)
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_No2xxDevuelveAPIError(t *testing.T) {
	fb, c := newFakeBackend(t)
	fb.on(http.MethodDelete, "/geraete/3", http.StatusConflict, `{"detail":"Gerät hat Referenzen"}`)

	err := backend.NewDeviceRepository(c).Delete(t.Context(), 3)
	require.Error(t, err)

	var apiErr *backend.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Conflict", apiErr.StatusText)
	assert.Contains(t, apiErr.Body, "Gerät hat Referenzen")
	assert.Equal(t, `DELETE /geraete/3 409 Conflict: {"detail":"Gerät hat Referenzen"}`, apiErr.Error())
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestClient_404EsErrNotFound(t *testing.T) {
	_, c := newFakeBackend(t)

	_, err := backend.NewDeviceRepository(c).GetByID(t.Context(), 77)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_BackendCaidoEsErrBackendUnavailable(t *testing.T) {
	c := backend.NewClient("http://127.0.0.1:1", time.Second, nil)

	err := c.Health(t.Context())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestClient_Health(t *testing.T) {
	fb, c := newFakeBackend(t)
	fb.on(http.MethodGet, "/health", http.StatusOK, `{"status":"ok"}`)

	require.NoError(t, c.Health(t.Context()))
	assert.Equal(t, 1, fb.count())
}

// Los importes decimales viajan como números JSON.
func TestClient_DecimalesComoNumeros(t *testing.T) {
	fb, c := newFakeBackend(t)
	fb.on(http.MethodPost, "/vermietung-positionen", http.StatusOK, `{"id":1,"vermietung_id":2,"typ":"MONTAGE","menge":1,"vk_einzelpreis":99.5,"kosten_intern":40}`)

	_, err := backend.NewRentalRepository(c).AddPosition(t.Context(), entity.RentalPosition{
		RentalID:     2,
		Type:         entity.PositionAssembly,
		Quantity:     mustDecimal(t, "1"),
		UnitPrice:    mustDecimal(t, "99.5"),
		InternalCost: mustDecimal(t, "40"),
	})
	require.NoError(t, err)

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(fb.last(t).Body), &sent))
	assert.Equal(t, 99.5, sent["vk_einzelpreis"])
	assert.Equal(t, "MONTAGE", sent["typ"])
}
