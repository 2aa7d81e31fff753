package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mietpark-admin/internal/application/dto"
	apphttp "github.com/jhoicas/mietpark-admin/internal/interfaces/http"
)

const (
	deviceJSON = `{"id":1,"name":"Bagger K1","kategorie":"Bagger","status":"VERFUEGBAR","standort_typ":"MIETPARK","stundenzähler":120.5,"firma_id":1,"mietpark_id":1}`
	rentalJSON = `{"id":5,"geraet_id":1,"kunde_id":2,"von":"2025-01-01","bis":null,"satz_wert":100,"satz_einheit":"MONATLICH","status":"OFFEN"}`
)

// ──────────────────────────────────────────────────────────────────────────────
// Health y middlewares
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_BackendOK(t *testing.T) {
	app, fb := newTestApp(t)
	fb.on(http.MethodGet, "/health", http.StatusOK, `{"status":"ok"}`)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, "ok", out["backend"])
}

func TestHealth_BackendCaido(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	app := buildApp(t, srv.URL)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, body, "degraded")
}

func TestRoot_RedirigeAGeraete(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/geraete", resp.Header.Get("Location"))
}

func TestRequestID_SeRespetaSiEsUUID(t *testing.T) {
	app, fb := newTestApp(t)
	fb.on(http.MethodGet, "/health", http.StatusOK, `{}`)
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, id)
	resp, _ := do(t, app, req)
	assert.Equal(t, id, resp.Header.Get(apphttp.HeaderRequestID))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "kein-uuid")
	resp, _ = do(t, app, req)
	got := resp.Header.Get(apphttp.HeaderRequestID)
	assert.NotEqual(t, "kein-uuid", got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestRutaDesconocida_PaginaDeError(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/gibt-es-nicht", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Seite nicht gefunden.")
}

// ──────────────────────────────────────────────────────────────────────────────
// Geräte
// ──────────────────────────────────────────────────────────────────────────────

func TestAPIGeraete_EnviaFiltroAlBackend(t *testing.T) {
	app, fb := newTestApp(t)
	fb.on(http.MethodGet, "/geraete", http.StatusOK, `[`+deviceJSON+`]`)
	fb.on(http.MethodGet, "/geraete/count", http.StatusOK, `1`)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/geraete?status=VERFUEGBAR", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))

	var page dto.DevicePage
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "Bagger K1", page.Rows[0].Device.Name)
	assert.Equal(t, 1, page.Page.Total)

	var filtered []url.Values
	for _, r := range fb.find(http.MethodGet, "/geraete") {
		q, err := url.ParseQuery(r.RawQuery)
		require.NoError(t, err)
		if q.Has("status") {
			filtered = append(filtered, q)
		}
	}
	require.Len(t, filtered, 1)
	assert.Equal(t, url.Values{"status": {"VERFUEGBAR"}, "skip": {"0"}, "limit": {"20"}}, filtered[0])
}

func TestAPIGeraete_PaginaEnormeNoDesbordaSkip(t *testing.T) {
	app, fb := newTestApp(t)
	fb.on(http.MethodGet, "/geraete", http.StatusOK, `[]`)
	fb.on(http.MethodGet, "/geraete/count", http.StatusOK, `0`)

	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/api/geraete?page=9223372036854775807", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pages int
	for _, r := range fb.find(http.MethodGet, "/geraete") {
		q, err := url.ParseQuery(r.RawQuery)
		require.NoError(t, err)
		if q.Get("limit") != "20" {
			continue
		}
		pages++
		skip, err := strconv.Atoi(q.Get("skip"))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, skip, 0)
	}
	assert.Equal(t, 1, pages)
}

func TestAPIGeraete_FiltroInvalido(t *testing.T) {
	app, fb := newTestApp(t)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/geraete?status=KAPUTT", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "VALIDATION")
	assert.Empty(t, fb.find(http.MethodGet, "/geraete"))
}

func TestAPIGeraetDetail_NoExiste(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/geraete/77", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestGeraetePagina_MuestraEquipos(t *testing.T) {
	app, fb := newTestApp(t)
	fb.on(http.MethodGet, "/geraete", http.StatusOK, `[`+deviceJSON+`]`)
	fb.on(http.MethodGet, "/geraete/count", http.StatusOK, `{"count":1}`)
	fb.on(http.MethodGet, "/mietparks", http.StatusOK, `[{"id":1,"name":"Park Nord"}]`)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/geraete", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "Bagger K1")
	assert.Contains(t, body, "Park Nord")
	assert.Contains(t, body, "Seite 1 / 1")
}

func TestGeraetePagina_BackendCaidoMuestraError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	app := buildApp(t, srv.URL)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/geraete", nil))
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, "Laden fehlgeschlagen.")
	assert.Contains(t, body, "Keine Geräte gefunden.")
}

func TestGeraetLoeschen_ConflictoDelBackend(t *testing.T) {
	app, fb := newTestApp(t)
	fb.on(http.MethodDelete, "/geraete/3", http.StatusConflict, `{"detail":"Gerät hat Vermietungen"}`)
	fb.on(http.MethodGet, "/geraete", http.StatusOK, `[]`)
	fb.on(http.MethodGet, "/geraete/count", http.StatusOK, `0`)

	resp, body := do(t, app, postForm("/geraete/3/loeschen", "zurueck=%2Fgeraete"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, "Löschen fehlgeschlagen.")
}

func TestGeraetLoeschen_RedirigeAlListado(t *testing.T) {
	app, fb := newTestApp(t)
	fb.on(http.MethodDelete, "/geraete/3", http.StatusNoContent, ``)

	resp, _ := do(t, app, postForm("/geraete/3/loeschen", "zurueck=%2Fgeraete%3Fpage%3D2"))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/geraete?page=2", resp.Header.Get("Location"))
}

func TestGeraetAnlegen_ValidacionNoLlegaAlBackend(t *testing.T) {
	app, fb := newTestApp(t)
	fb.on(http.MethodGet, "/geraete", http.StatusOK, `[]`)
	fb.on(http.MethodGet, "/geraete/count", http.StatusOK, `0`)

	form := url.Values{"name": {"Kran"}, "status": {"VERFUEGBAR"}, "standort_typ": {"MIETPARK"}}
	resp, body := do(t, app, postForm("/geraete", form.Encode()))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Bitte eine Firma wählen.")
	assert.Empty(t, fb.find(http.MethodPost, "/geraete"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Vermietungen
// ──────────────────────────────────────────────────────────────────────────────

func TestVermietungen_SeleccionSinRechnungen(t *testing.T) {
	app, fb := newTestApp(t)
	fb.on(http.MethodGet, "/vermietungen", http.StatusOK, `[`+rentalJSON+`]`)
	fb.on(http.MethodGet, "/rechnungen/suche", http.StatusOK, `[]`)
	fb.on(http.MethodGet, "/kunden", http.StatusOK, `[{"id":2,"name":"Bau GmbH"}]`)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/vermietungen?id=5", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Keine Rechnungen gefunden.")
	assert.Contains(t, body, "Bau GmbH")

	searches := fb.find(http.MethodGet, "/rechnungen/suche")
	require.Len(t, searches, 1)
	assert.Equal(t, "nummer=5", searches[0].RawQuery)
}

func TestVermietungen_SinSeleccion(t *testing.T) {
	app, fb := newTestApp(t)
	fb.on(http.MethodGet, "/vermietungen", http.StatusOK, `[]`)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/vermietungen", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Bitte Vermietung auswählen.")
}

func TestVermietungStarten_RedirigeALaSeleccion(t *testing.T) {
	app, fb := newTestApp(t)
	fb.on(http.MethodPost, "/vermietungen/5/starten", http.StatusOK, rentalJSON)

	resp, _ := do(t, app, postForm("/vermietungen/5/starten", ""))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/vermietungen?id=5", resp.Header.Get("Location"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Stammdaten
// ──────────────────────────────────────────────────────────────────────────────

func TestStammdaten_NombreVacioNoLlegaAlBackend(t *testing.T) {
	app, fb := newTestApp(t)
	fb.on(http.MethodGet, "/firmen", http.StatusOK, `[]`)

	resp, body := do(t, app, postForm("/stammdaten/firmen", "name=++&adresse=X"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Name ist Pflicht.")
	assert.Empty(t, fb.find(http.MethodPost, "/firmen"))
}

func TestStammdaten_KundenNoSeBorran(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := do(t, app, postForm("/stammdaten/kunden/1/loeschen", ""))
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestStammdaten_PestanaDesconocida(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/stammdaten?tab=lager", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Berichte y Einnahmen
// ──────────────────────────────────────────────────────────────────────────────

func TestAPIAuslastung_Calcula(t *testing.T) {
	app, fb := newTestApp(t)
	fb.on(http.MethodPost, "/berichte/auslastung", http.StatusOK,
		`{"items":[{"geraet_id":1,"tage_gesamt":31,"tage_vermietet":10,"auslastung_prozent":32.3}],"flotte_auslastung_prozent":32.3}`)
	fb.on(http.MethodGet, "/geraete", http.StatusOK, `[`+deviceJSON+`]`)

	resp, body := do(t, app, postJSON("/api/berichte/auslastung", `{"von":"2025-01-01","bis":"2025-01-31","geraet_id":null}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.UtilizationView
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "Bagger K1", out.Rows[0].DeviceLabel)
	assert.InDelta(t, 32.3, out.FleetPercent, 0.001)

	calls := fb.find(http.MethodPost, "/berichte/auslastung")
	require.Len(t, calls, 1)
	assert.JSONEq(t, `{"von":"2025-01-01","bis":"2025-01-31","geraet_id":null}`, calls[0].Body)
}

func TestAPIAuslastung_RangoInvertido(t *testing.T) {
	app, fb := newTestApp(t)

	resp, body := do(t, app, postJSON("/api/berichte/auslastung", `{"von":"2025-02-01","bis":"2025-01-01"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "VALIDATION")
	assert.Empty(t, fb.find(http.MethodPost, "/berichte/auslastung"))
}

func TestBerichte_SinParametrosSoloFormulario(t *testing.T) {
	app, fb := newTestApp(t)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/berichte", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "2025-01-01")
	assert.Empty(t, fb.find(http.MethodPost, "/berichte/auslastung"))
}

func TestEinnahmenXLSX_Descarga(t *testing.T) {
	app, fb := newTestApp(t)
	fb.on(http.MethodGet, "/vermietungen", http.StatusOK, `[]`)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/einnahmen.xlsx?von=2025-01-01&bis=2025-01-31", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="einnahmen.xlsx"`)
	assert.NotEmpty(t, body)
}

func TestEinnahmenPagina_EnlacesDeExportacion(t *testing.T) {
	app, fb := newTestApp(t)
	fb.on(http.MethodGet, "/vermietungen", http.StatusOK, `[]`)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/einnahmen?von=2025-01-01&bis=2025-01-31", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `/einnahmen.pdf?bis=2025-01-31&amp;von=2025-01-01`)
}
