package http

import (
	"context"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mietpark-admin/internal/application/form"
	"github.com/jhoicas/mietpark-admin/internal/application/listing"
	"github.com/jhoicas/mietpark-admin/internal/application/usecase"
	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// Pestañas de /stammdaten.
const (
	tabCompanies = "firmen"
	tabParks     = "mietparks"
	tabCustomers = "kunden"
)

// MasterDataHandler página /stammdaten: Firmen, Mietparks y Kunden.
type MasterDataHandler struct {
	companies *usecase.CompanyUseCase
	parks     *usecase.RentalParkUseCase
	customers *usecase.CustomerUseCase
	views     *Views
}

// NewMasterDataHandler construye el handler.
func NewMasterDataHandler(
	companies *usecase.CompanyUseCase,
	parks *usecase.RentalParkUseCase,
	customers *usecase.CustomerUseCase,
	views *Views,
) *MasterDataHandler {
	return &MasterDataHandler{companies: companies, parks: parks, customers: customers, views: views}
}

// masterDraft campos comunes de los tres formularios (Mietparks no usa ust_id).
type masterDraft struct {
	Name    string `form:"name"`
	TaxID   string `form:"ust_id"`
	Address string `form:"adresse"`
}

// masterRow fila genérica de la tabla.
type masterRow struct {
	ID      int64
	Name    string
	TaxID   string
	Address string
}

// GetID implementa listing.Identifiable.
func (r masterRow) GetID() int64 { return r.ID }

type masterModal struct {
	Open  bool
	ID    int64
	Draft masterDraft
	Error string
}

type masterDataPage struct {
	PageData
	Tab       string
	Heading   string
	HasTaxID  bool
	CanDelete bool
	Rows      []masterRow
	Modal     masterModal
	Confirm   *masterRow
}

// Page GET /stammdaten?tab=firmen|mietparks|kunden (&neu=1, &bearbeiten=, &loeschen=).
func (h *MasterDataHandler) Page(c *fiber.Ctx) error {
	tab := c.Query("tab", tabCompanies)
	view, status, err := h.load(c, tab)
	if err != nil {
		return err
	}

	index := listing.Index(view.Rows)
	if id, ok := form.ParseID(c.Query("bearbeiten")); ok {
		if row, found := index[id]; found {
			view.Modal = masterModal{Open: true, ID: id, Draft: masterDraft{Name: row.Name, TaxID: row.TaxID, Address: row.Address}}
		}
	} else if c.Query("neu") != "" {
		view.Modal = masterModal{Open: true}
	}
	if id, ok := form.ParseID(c.Query("loeschen")); ok && view.CanDelete {
		if row, found := index[id]; found {
			view.Confirm = &row
		}
	}
	return h.views.Render(c, status, "stammdaten.html", view)
}

func (h *MasterDataHandler) load(c *fiber.Ctx, tab string) (masterDataPage, int, error) {
	ctx := c.UserContext()
	view := masterDataPage{PageData: newPageData(c, "Stammdaten", "stammdaten"), Tab: tab}

	var err error
	switch tab {
	case tabCompanies:
		view.Heading, view.HasTaxID, view.CanDelete = "Firmen", true, true
		var items []entity.Company
		items, err = h.companies.List(ctx)
		for _, it := range items {
			view.Rows = append(view.Rows, masterRow{ID: it.ID, Name: it.Name, TaxID: it.TaxID, Address: it.Address})
		}
	case tabParks:
		view.Heading, view.CanDelete = "Mietparks", true
		var items []entity.RentalPark
		items, err = h.parks.List(ctx)
		for _, it := range items {
			view.Rows = append(view.Rows, masterRow{ID: it.ID, Name: it.Name, Address: it.Address})
		}
	case tabCustomers:
		view.Heading, view.HasTaxID = "Kunden", true
		var items []entity.Customer
		items, err = h.customers.List(ctx)
		for _, it := range items {
			view.Rows = append(view.Rows, masterRow{ID: it.ID, Name: it.Name, TaxID: it.TaxID, Address: it.Address})
		}
	default:
		return view, 0, fiber.NewError(fiber.StatusNotFound, "Unbekannter Bereich.")
	}

	status := fiber.StatusOK
	if err != nil {
		status, _ = errorStatus(err)
		view.Error = formError(err, "Laden fehlgeschlagen.")
	}
	return view, status, nil
}

// Create POST /stammdaten/:tab.
func (h *MasterDataHandler) Create(c *fiber.Ctx) error {
	return h.submit(c, 0)
}

// Update POST /stammdaten/:tab/:id.
func (h *MasterDataHandler) Update(c *fiber.Ctx) error {
	id, ok := form.ParseID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültige ID.")
	}
	return h.submit(c, id)
}

func (h *MasterDataHandler) submit(c *fiber.Ctx, id int64) error {
	tab := c.Params("tab")
	var draft masterDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültiges Formular.")
	}
	if err := h.save(c.UserContext(), tab, id, draft); err != nil {
		view, _, lerr := h.load(c, tab)
		if lerr != nil {
			return lerr
		}
		view.Modal = masterModal{Open: true, ID: id, Draft: draft, Error: formError(err, "Speichern fehlgeschlagen.")}
		status, _ := errorStatus(err)
		return h.views.Render(c, status, "stammdaten.html", view)
	}
	return c.Redirect(tabURL(tab), fiber.StatusSeeOther)
}

func (h *MasterDataHandler) save(ctx context.Context, tab string, id int64, in masterDraft) error {
	var err error
	switch tab {
	case tabCompanies:
		d := form.CompanyDraft{Name: in.Name, TaxID: in.TaxID, Address: in.Address}
		if id == 0 {
			_, err = h.companies.Create(ctx, d)
		} else {
			_, err = h.companies.Update(ctx, id, d)
		}
	case tabParks:
		d := form.ParkDraft{Name: in.Name, Address: in.Address}
		if id == 0 {
			_, err = h.parks.Create(ctx, d)
		} else {
			_, err = h.parks.Update(ctx, id, d)
		}
	case tabCustomers:
		d := form.CustomerDraft{Name: in.Name, Address: in.Address, TaxID: in.TaxID}
		if id == 0 {
			_, err = h.customers.Create(ctx, d)
		} else {
			_, err = h.customers.Update(ctx, id, d)
		}
	default:
		return fiber.NewError(fiber.StatusNotFound, "Unbekannter Bereich.")
	}
	return err
}

// Delete POST /stammdaten/:tab/:id/loeschen. Kunden no se borran.
func (h *MasterDataHandler) Delete(c *fiber.Ctx) error {
	tab := c.Params("tab")
	id, ok := form.ParseID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültige ID.")
	}

	ctx := c.UserContext()
	var err error
	switch tab {
	case tabCompanies:
		err = h.companies.Delete(ctx, id)
	case tabParks:
		err = h.parks.Delete(ctx, id)
	default:
		return fiber.NewError(fiber.StatusMethodNotAllowed, "Löschen ist hier nicht möglich.")
	}
	if err != nil {
		view, _, lerr := h.load(c, tab)
		if lerr != nil {
			return lerr
		}
		view.Error = formError(err, "Löschen fehlgeschlagen.")
		status, _ := errorStatus(err)
		return h.views.Render(c, status, "stammdaten.html", view)
	}
	return c.Redirect(tabURL(tab), fiber.StatusSeeOther)
}

func tabURL(tab string) string {
	return "/stammdaten?" + url.Values{"tab": {tab}}.Encode()
}

// rowURL enlace a una acción sobre una fila (bearbeiten, loeschen).
func rowURL(tab, action string, id int64) string {
	return "/stammdaten?" + url.Values{"tab": {tab}, action: {strconv.FormatInt(id, 10)}}.Encode()
}
