package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mietpark-admin/internal/application/revenue"
	"github.com/jhoicas/mietpark-admin/internal/application/usecase"
	"github.com/jhoicas/mietpark-admin/internal/infrastructure/backend"
	"github.com/jhoicas/mietpark-admin/internal/infrastructure/cache"
	"github.com/jhoicas/mietpark-admin/internal/infrastructure/pdf"
	"github.com/jhoicas/mietpark-admin/internal/infrastructure/xlsx"
	apphttp "github.com/jhoicas/mietpark-admin/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend falso y app completa
// ──────────────────────────────────────────────────────────────────────────────

type recorded struct {
	Method   string
	Path     string
	RawQuery string
	Body     string
}

// fakeBackend responde por "METHOD /ruta"; lo no registrado devuelve 404.
type fakeBackend struct {
	mu       sync.Mutex
	routes   map[string]func(http.ResponseWriter, *http.Request)
	requests []recorded
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

// find peticiones que cumplen method y path.
func (fb *fakeBackend) find(method, path string) []recorded {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	var out []recorded
	for _, r := range fb.requests {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (fb *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	fb.mu.Lock()
	fb.requests = append(fb.requests, recorded{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Body:     string(body),
	})
	h, ok := fb.routes[r.Method+" "+r.URL.Path]
	fb.mu.Unlock()
	if !ok {
		http.Error(w, `{"detail":"Not Found"}`, http.StatusNotFound)
		return
	}
	h(w, r)
}

// newTestApp monta la app igual que cmd/admin, contra un backend falso.
func newTestApp(t *testing.T) (*fiber.App, *fakeBackend) {
	t.Helper()
	fb := &fakeBackend{routes: map[string]func(http.ResponseWriter, *http.Request){}}
	srv := httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(srv.Close)
	return buildApp(t, srv.URL), fb
}

func buildApp(t *testing.T, baseURL string) *fiber.App {
	t.Helper()
	client := backend.NewClient(baseURL, 2*time.Second, nil)

	companies := backend.NewCompanyRepository(client)
	parks := backend.NewRentalParkRepository(client)
	customers := backend.NewCustomerRepository(client)
	devices := backend.NewDeviceRepository(client)
	rentals := backend.NewRentalRepository(client)
	invoices := backend.NewInvoiceRepository(client)
	reports := backend.NewReportRepository(client)
	maintenance := backend.NewMaintenanceRepository(client)

	qc := cache.New(time.Minute)
	lookups := usecase.NewLookupService(qc, companies, parks, customers, devices, rentals, nil)

	views, err := apphttp.LoadViews()
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(views, nil)})
	app.Use(apphttp.RequestID())
	app.Use(apphttp.RequestLogger(nil))
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:    "mietpark-admin-test",
		DeviceUC:   usecase.NewDeviceUseCase(devices, maintenance, reports, lookups, qc, nil),
		RentalUC:   usecase.NewRentalUseCase(rentals, invoices, reports, lookups, qc, nil),
		CompanyUC:  usecase.NewCompanyUseCase(companies, lookups, qc),
		ParkUC:     usecase.NewRentalParkUseCase(parks, lookups, qc),
		CustomerUC: usecase.NewCustomerUseCase(customers, lookups, qc),
		ReportUC:   usecase.NewReportUseCase(reports, lookups),
		RevenueUC: revenue.NewUseCase(lookups, rentals, reports,
			pdf.NewMarotoPDFGenerator(), xlsx.NewRevenueExporter(), 2, nil),
		Lookups: lookups,
		Backend: client,
		Views:   views,
	})
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, string(body)
}

func postForm(path string, values string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func postJSON(path string, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
