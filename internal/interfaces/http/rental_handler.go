package http

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mietpark-admin/internal/application/dto"
	"github.com/jhoicas/mietpark-admin/internal/application/form"
	"github.com/jhoicas/mietpark-admin/internal/application/usecase"
	"github.com/jhoicas/mietpark-admin/internal/domain"
	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/pkg/logger"
)

// RentalHandler página /vermietungen: lista, selección, acciones y facturas.
type RentalHandler struct {
	uc      *usecase.RentalUseCase
	devices *usecase.DeviceUseCase
	lookups *usecase.LookupService
	views   *Views
	log     *logger.Logger
}

// NewRentalHandler construye el handler.
func NewRentalHandler(
	uc *usecase.RentalUseCase,
	devices *usecase.DeviceUseCase,
	lookups *usecase.LookupService,
	views *Views,
	log *logger.Logger,
) *RentalHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &RentalHandler{uc: uc, devices: devices, lookups: lookups, views: views, log: log.Named("vermietungen_http")}
}

type rentalModal struct {
	Open      bool
	Draft     form.RentalDraft
	Error     string
	Devices   []entity.Device
	Customers []entity.Customer
}

type rentalsPage struct {
	PageData
	Rows          []dto.RentalRow
	SelectedID    int64
	Selected      *dto.RentalDetail
	SelectedError string
	ActionError   string
	Close         form.CloseDraft
	Position      form.PositionDraft
	Invoice       form.InvoiceDraft
	PositionTypes []entity.PositionType
	Units         []entity.RateUnit
	Modal         rentalModal
}

// List GET /vermietungen (?id=<seleccionada>&neu=1).
func (h *RentalHandler) List(c *fiber.Ctx) error {
	id, _ := form.ParseID(c.Query("id"))
	view, status := h.load(c, id)
	if c.Query("neu") != "" {
		h.openModal(c, &view, form.NewRentalDraft(entity.Today()), "")
	}
	return h.views.Render(c, status, "vermietungen.html", view)
}

func (h *RentalHandler) load(c *fiber.Ctx, selected int64) (rentalsPage, int) {
	ctx := c.UserContext()
	view := rentalsPage{
		PageData:      newPageData(c, "Vermietungen", "vermietungen"),
		SelectedID:    selected,
		PositionTypes: entity.PositionTypes,
		Units:         entity.RateUnits,
		Position:      form.NewPositionDraft(),
	}
	status := fiber.StatusOK

	rows, err := h.uc.List(ctx)
	if err != nil {
		status, _ = errorStatus(err)
		view.Error = formError(err, "Laden fehlgeschlagen.")
	}
	view.Rows = rows

	if selected > 0 {
		detail, err := h.uc.Detail(ctx, selected)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			view.SelectedError = "Vermietung nicht gefunden."
		case err != nil:
			view.SelectedError = formError(err, "Laden fehlgeschlagen.")
		default:
			view.Selected = detail
		}
		view.Invoice = form.InvoiceDraft{
			Number: fmt.Sprintf("R-%d", selected),
			Date:   entity.Today().String(),
		}
	}
	return view, status
}

// openModal carga los equipos VERFUEGBAR y los clientes para el modal de alta.
func (h *RentalHandler) openModal(c *fiber.Ctx, view *rentalsPage, draft form.RentalDraft, msg string) {
	ctx := c.UserContext()
	modal := rentalModal{Open: true, Draft: draft, Error: msg}

	devices, err := h.devices.Available(ctx)
	if err != nil {
		h.log.Warn().Err(err).Msg("geräte disponibles no cargados")
		if modal.Error == "" {
			modal.Error = formError(err, "Geräte konnten nicht geladen werden.")
		}
	}
	customers, err := h.lookups.Customers(ctx)
	if err != nil {
		h.log.Warn().Err(err).Msg("kunden no cargados")
		if modal.Error == "" {
			modal.Error = formError(err, "Kunden konnten nicht geladen werden.")
		}
	}
	modal.Devices, modal.Customers = devices, customers
	view.Modal = modal
}

// Create POST /vermietungen.
func (h *RentalHandler) Create(c *fiber.Ctx) error {
	var draft form.RentalDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültiges Formular.")
	}
	saved, err := h.uc.Create(c.UserContext(), draft)
	if err != nil {
		view, _ := h.load(c, 0)
		h.openModal(c, &view, draft, formError(err, "Fehler beim Anlegen der Vermietung."))
		status, _ := errorStatus(err)
		return h.views.Render(c, status, "vermietungen.html", view)
	}
	return c.Redirect(rentalURL(saved.ID), fiber.StatusSeeOther)
}

// Start POST /vermietungen/:id/starten.
func (h *RentalHandler) Start(c *fiber.Ctx) error {
	id, ok := form.ParseID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültige Vermietungs-ID.")
	}
	return h.action(c, id, "Starten fehlgeschlagen.", nil, func(ctx context.Context) error {
		_, err := h.uc.Start(ctx, id)
		return err
	})
}

// Close POST /vermietungen/:id/schliessen (bis opcional).
func (h *RentalHandler) Close(c *fiber.Ctx) error {
	id, ok := form.ParseID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültige Vermietungs-ID.")
	}
	var draft form.CloseDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültiges Formular.")
	}
	keep := func(v *rentalsPage) { v.Close = draft }
	return h.action(c, id, "Schließen fehlgeschlagen.", keep, func(ctx context.Context) error {
		_, err := h.uc.Close(ctx, id, draft)
		return err
	})
}

// AddPosition POST /vermietungen/:id/positionen.
func (h *RentalHandler) AddPosition(c *fiber.Ctx) error {
	id, ok := form.ParseID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültige Vermietungs-ID.")
	}
	var draft form.PositionDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültiges Formular.")
	}
	keep := func(v *rentalsPage) { v.Position = draft }
	return h.action(c, id, "Speichern fehlgeschlagen.", keep, func(ctx context.Context) error {
		_, err := h.uc.AddPosition(ctx, id, draft)
		return err
	})
}

// CreateInvoice POST /vermietungen/:id/rechnungen.
func (h *RentalHandler) CreateInvoice(c *fiber.Ctx) error {
	id, ok := form.ParseID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültige Vermietungs-ID.")
	}
	var draft form.InvoiceDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültiges Formular.")
	}
	keep := func(v *rentalsPage) { v.Invoice = draft }
	return h.action(c, id, "Fehler beim Anlegen.", keep, func(ctx context.Context) error {
		_, err := h.uc.CreateInvoice(ctx, id, draft)
		return err
	})
}

// SetInvoicePaid POST /rechnungen/:id/bezahlt (bezahlt=true|false, vermietung_id).
func (h *RentalHandler) SetInvoicePaid(c *fiber.Ctx) error {
	invoiceID, ok := form.ParseID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültige Rechnungs-ID.")
	}
	rentalID, _ := form.ParseID(c.FormValue("vermietung_id"))
	paid := c.FormValue("bezahlt") == "true"
	return h.action(c, rentalID, "Speichern fehlgeschlagen.", nil, func(ctx context.Context) error {
		_, err := h.uc.SetInvoicePaid(ctx, invoiceID, paid)
		return err
	})
}

// action ejecuta run y redirige a la Vermietung; si falla, vuelve a pintar la
// página con el error junto a las acciones.
func (h *RentalHandler) action(c *fiber.Ctx, rentalID int64, fallback string, keep func(*rentalsPage), run func(context.Context) error) error {
	if err := run(c.UserContext()); err != nil {
		view, _ := h.load(c, rentalID)
		view.ActionError = formError(err, fallback)
		if keep != nil {
			keep(&view)
		}
		status, _ := errorStatus(err)
		return h.views.Render(c, status, "vermietungen.html", view)
	}
	return c.Redirect(rentalURL(rentalID), fiber.StatusSeeOther)
}

func rentalURL(id int64) string {
	if id <= 0 {
		return "/vermietungen"
	}
	return "/vermietungen?id=" + strconv.FormatInt(id, 10)
}

// APIList godoc
// @Summary      Listar alquileres con nombres de equipo y cliente
// @Tags         vermietungen
// @Produce      json
// @Success      200  {array}   dto.RentalRow
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/vermietungen [get]
func (h *RentalHandler) APIList(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
