package http

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mietpark-admin/internal/application/dto"
	"github.com/jhoicas/mietpark-admin/internal/application/form"
	"github.com/jhoicas/mietpark-admin/internal/application/usecase"
	"github.com/jhoicas/mietpark-admin/internal/domain"
	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/pkg/logger"
)

// DeviceHandler páginas /geraete y /geraete/:id y su API JSON.
type DeviceHandler struct {
	uc      *usecase.DeviceUseCase
	lookups *usecase.LookupService
	views   *Views
	log     *logger.Logger
}

// NewDeviceHandler construye el handler inyectando el caso de uso.
func NewDeviceHandler(uc *usecase.DeviceUseCase, lookups *usecase.LookupService, views *Views, log *logger.Logger) *DeviceHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &DeviceHandler{uc: uc, lookups: lookups, views: views, log: log.Named("geraete_http")}
}

type deviceModal struct {
	Open  bool
	ID    int64 // 0 = alta
	Draft form.DeviceDraft
	Error string
}

type devicesPage struct {
	PageData
	List       *dto.DevicePage
	Back       string
	Statuses   []entity.DeviceStatus
	Locations  []entity.LocationKind
	Units      []entity.RateUnit
	Categories []string
	Companies  []entity.Company
	Parks      []entity.RentalPark
	Modal      deviceModal
	Confirm    *entity.Device
}

type deviceDetailPage struct {
	PageData
	Detail               *dto.DeviceDetail
	Maintenance          form.MaintenanceDraft
	MaintenanceFormError string
	Meter                form.MeterDraft
	MeterFormError       string
}

// ── Listado ──────────────────────────────────────────────────────────────────

// List GET /geraete (?page=&status=&standort_typ=&neu=1&bearbeiten=&loeschen=).
func (h *DeviceHandler) List(c *fiber.Ctx) error {
	var q dto.DevicePageQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültige Parameter.")
	}
	view, status := h.load(c, q)
	ctx := c.UserContext()

	if id, ok := form.ParseID(c.Query("bearbeiten")); ok {
		d, err := h.uc.Get(ctx, id)
		if err != nil {
			view.Error = formError(err, "Gerät konnte nicht geladen werden.")
		} else {
			view.Modal = deviceModal{Open: true, ID: id, Draft: form.DeviceDraftFrom(*d)}
		}
	} else if c.Query("neu") != "" {
		view.Modal = deviceModal{Open: true, Draft: form.NewDeviceDraft()}
	}

	if id, ok := form.ParseID(c.Query("loeschen")); ok {
		d, err := h.uc.Get(ctx, id)
		if err != nil {
			view.Error = formError(err, "Gerät konnte nicht geladen werden.")
		} else {
			view.Confirm = d
		}
	}
	return h.views.Render(c, status, "geraete.html", view)
}

// load página filtrada más firmas y mietparks para el formulario. Un fallo del
// listado se muestra en la página con una lista vacía.
func (h *DeviceHandler) load(c *fiber.Ctx, q dto.DevicePageQuery) (devicesPage, int) {
	ctx := c.UserContext()
	q.Normalize()
	view := devicesPage{
		PageData:   newPageData(c, "Geräte", "geraete"),
		Statuses:   entity.DeviceStatuses,
		Locations:  entity.LocationKinds,
		Units:      entity.RateUnits,
		Categories: entity.DeviceCategories,
	}
	status := fiber.StatusOK

	list, err := h.uc.Page(ctx, q)
	if err != nil {
		status, _ = errorStatus(err)
		view.Error = formError(err, "Laden fehlgeschlagen.")
		list = &dto.DevicePage{Page: dto.NewPageResponse(q.Page, 0), Status: q.Status, Location: q.Location}
	}
	view.List = list
	view.Back = pageURL(list.Status, list.Location, list.Page.Page)

	if view.Companies, err = h.lookups.Companies(ctx); err != nil {
		h.log.Warn().Err(err).Msg("firmen no disponibles para el formulario")
	}
	if view.Parks, err = h.lookups.Parks(ctx); err != nil {
		h.log.Warn().Err(err).Msg("mietparks no disponibles para el formulario")
	}
	return view, status
}

// ── Alta / edición / borrado ─────────────────────────────────────────────────

// Create POST /geraete.
func (h *DeviceHandler) Create(c *fiber.Ctx) error {
	var draft form.DeviceDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültiges Formular.")
	}
	back := backURL(c, "/geraete")
	if _, err := h.uc.Create(c.UserContext(), draft); err != nil {
		return h.reopen(c, back, deviceModal{Open: true, Draft: draft}, err)
	}
	return c.Redirect(back, fiber.StatusSeeOther)
}

// Update POST /geraete/:id.
func (h *DeviceHandler) Update(c *fiber.Ctx) error {
	id, ok := form.ParseID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültige Geräte-ID.")
	}
	var draft form.DeviceDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültiges Formular.")
	}
	back := backURL(c, "/geraete")
	if _, err := h.uc.Update(c.UserContext(), id, draft); err != nil {
		return h.reopen(c, back, deviceModal{Open: true, ID: id, Draft: draft}, err)
	}
	return c.Redirect(back, fiber.StatusSeeOther)
}

// Delete POST /geraete/:id/loeschen (tras la confirmación).
func (h *DeviceHandler) Delete(c *fiber.Ctx) error {
	id, ok := form.ParseID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültige Geräte-ID.")
	}
	back := backURL(c, "/geraete")
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		view, _ := h.load(c, pageQueryOf(back))
		view.Error = formError(err, "Löschen fehlgeschlagen.")
		status, _ := errorStatus(err)
		return h.views.Render(c, status, "geraete.html", view)
	}
	return c.Redirect(back, fiber.StatusSeeOther)
}

// reopen vuelve a pintar el listado con el modal abierto y el mensaje inline.
func (h *DeviceHandler) reopen(c *fiber.Ctx, back string, modal deviceModal, err error) error {
	view, _ := h.load(c, pageQueryOf(back))
	modal.Error = formError(err, "Speichern fehlgeschlagen.")
	view.Modal = modal
	status, _ := errorStatus(err)
	return h.views.Render(c, status, "geraete.html", view)
}

// ── Detalle ──────────────────────────────────────────────────────────────────

// Detail GET /geraete/:id.
func (h *DeviceHandler) Detail(c *fiber.Ctx) error {
	id, ok := form.ParseID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültige Geräte-ID.")
	}
	return h.renderDetail(c, id, fiber.StatusOK, nil)
}

func (h *DeviceHandler) renderDetail(c *fiber.Ctx, id int64, status int, patch func(*deviceDetailPage)) error {
	detail, err := h.uc.Detail(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Gerät nicht gefunden.")
		}
		code, _ := errorStatus(err)
		return fiber.NewError(code, "Gerät konnte nicht geladen werden. "+err.Error())
	}

	view := deviceDetailPage{
		PageData:    newPageData(c, detail.Device.Name, "geraete"),
		Detail:      detail,
		Maintenance: form.MaintenanceDraft{Date: entity.Today().String()},
	}
	if patch != nil {
		patch(&view)
	}
	return h.views.Render(c, status, "geraet_detail.html", view)
}

// AddMaintenance POST /geraete/:id/wartungen.
func (h *DeviceHandler) AddMaintenance(c *fiber.Ctx) error {
	id, ok := form.ParseID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültige Geräte-ID.")
	}
	var draft form.MaintenanceDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültiges Formular.")
	}
	if _, err := h.uc.AddMaintenance(c.UserContext(), id, draft); err != nil {
		status, _ := errorStatus(err)
		return h.renderDetail(c, id, status, func(v *deviceDetailPage) {
			v.Maintenance = draft
			v.MaintenanceFormError = formError(err, "Speichern fehlgeschlagen.")
		})
	}
	return c.Redirect("/geraete/"+strconv.FormatInt(id, 10), fiber.StatusSeeOther)
}

// RecordMeterReading POST /geraete/:id/zaehlerstaende.
func (h *DeviceHandler) RecordMeterReading(c *fiber.Ctx) error {
	id, ok := form.ParseID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültige Geräte-ID.")
	}
	var draft form.MeterDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültiges Formular.")
	}
	if _, err := h.uc.RecordMeterReading(c.UserContext(), id, draft); err != nil {
		status, _ := errorStatus(err)
		return h.renderDetail(c, id, status, func(v *deviceDetailPage) {
			v.Meter = draft
			v.MeterFormError = formError(err, "Speichern fehlgeschlagen.")
		})
	}
	return c.Redirect("/geraete/"+strconv.FormatInt(id, 10), fiber.StatusSeeOther)
}

// ── API JSON ─────────────────────────────────────────────────────────────────

// APIList godoc
// @Summary      Listar equipos (20 por página)
// @Tags         geraete
// @Produce      json
// @Param        page          query  int     false  "Página"  default(1)
// @Param        status        query  string  false  "VERFUEGBAR, VERMIETET, WARTUNG, AUSGEMUSTERT"
// @Param        standort_typ  query  string  false  "MIETPARK, KUNDE"
// @Success      200  {object}  dto.DevicePage
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/geraete [get]
func (h *DeviceHandler) APIList(c *fiber.Ctx) error {
	var q dto.DevicePageQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "Ungültige Parameter."})
	}
	out, err := h.uc.Page(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// APIDetail godoc
// @Summary      Detalle de un equipo (historial, finanzas, mantenimientos)
// @Tags         geraete
// @Produce      json
// @Param        id   path  int  true  "ID del equipo"
// @Success      200  {object}  dto.DeviceDetail
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/geraete/{id} [get]
func (h *DeviceHandler) APIDetail(c *fiber.Ctx) error {
	id, ok := form.ParseID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "Ungültige Geräte-ID."})
	}
	out, err := h.uc.Detail(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

// backURL destino del redirect tras un POST: el campo "zurueck" si es una ruta
// local bajo prefix.
func backURL(c *fiber.Ctx, prefix string) string {
	back := c.FormValue("zurueck")
	if strings.HasPrefix(back, prefix) && !strings.HasPrefix(back, "//") {
		return back
	}
	return prefix
}

// pageQueryOf recupera filtros y página de una URL de listado.
func pageQueryOf(back string) dto.DevicePageQuery {
	u, err := url.Parse(back)
	if err != nil {
		return dto.DevicePageQuery{Page: 1}
	}
	q := u.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	return dto.DevicePageQuery{Page: page, Status: q.Get("status"), Location: q.Get("standort_typ")}
}
