package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mietpark-admin/internal/application/dto"
	"github.com/jhoicas/mietpark-admin/internal/application/form"
	"github.com/jhoicas/mietpark-admin/internal/application/usecase"
	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// ReportHandler página /berichte (Auslastung).
type ReportHandler struct {
	uc    *usecase.ReportUseCase
	views *Views
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, views *Views) *ReportHandler {
	return &ReportHandler{uc: uc, views: views}
}

type reportsPage struct {
	PageData
	Draft form.UtilizationDraft
	View  *dto.UtilizationView
}

// Page GET /berichte. Sin von/bis solo se muestra el formulario con el rango
// por defecto; "Berechnen" envía el formulario.
func (h *ReportHandler) Page(c *fiber.Ctx) error {
	var draft form.UtilizationDraft
	if err := c.QueryParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültige Parameter.")
	}
	view := reportsPage{PageData: newPageData(c, "Berichte", "berichte"), Draft: draft}

	if draft.From == "" && draft.To == "" {
		view.Draft.From = form.RevenueDefaultFrom.String()
		view.Draft.To = entity.Today().String()
		return h.views.Render(c, fiber.StatusOK, "berichte.html", view)
	}

	out, err := h.uc.Utilization(c.UserContext(), draft)
	if err != nil {
		status, _ := errorStatus(err)
		view.Error = formError(err, "Laden fehlgeschlagen.")
		return h.views.Render(c, status, "berichte.html", view)
	}
	view.View = out
	return h.views.Render(c, fiber.StatusOK, "berichte.html", view)
}

// APIUtilization godoc
// @Summary      Auslastung por equipo y de la flota
// @Tags         berichte
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UtilizationRequest  true  "Rango y equipo opcional"
// @Success      200   {object}  dto.UtilizationView
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/berichte/auslastung [post]
func (h *ReportHandler) APIUtilization(c *fiber.Ctx) error {
	var in dto.UtilizationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Ungültiger Anfragetext."})
	}
	draft := form.UtilizationDraft{From: in.From, To: in.To}
	if in.DeviceID != nil {
		draft.DeviceID = strconv.FormatInt(*in.DeviceID, 10)
	}
	out, err := h.uc.Utilization(c.UserContext(), draft)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
