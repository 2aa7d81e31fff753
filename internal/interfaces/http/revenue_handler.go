package http

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mietpark-admin/internal/application/dto"
	"github.com/jhoicas/mietpark-admin/internal/application/form"
	"github.com/jhoicas/mietpark-admin/internal/application/revenue"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// RevenueHandler vista de Einnahmen y sus exportaciones.
type RevenueHandler struct {
	uc    *revenue.UseCase
	views *Views
}

// NewRevenueHandler construye el handler.
func NewRevenueHandler(uc *revenue.UseCase, views *Views) *RevenueHandler {
	return &RevenueHandler{uc: uc, views: views}
}

type revenuePage struct {
	PageData
	Range   form.RangeDraft
	Report  *dto.RevenueReport
	PDFURL  string
	XLSXURL string
}

// Page GET /einnahmen?von=&bis=.
func (h *RevenueHandler) Page(c *fiber.Ctx) error {
	var in form.RangeDraft
	if err := c.QueryParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültige Parameter.")
	}
	view := revenuePage{PageData: newPageData(c, "Einnahmen", "einnahmen"), Range: in}

	report, err := h.uc.Report(c.UserContext(), in)
	if err != nil {
		status, _ := errorStatus(err)
		view.Error = formError(err, "Laden fehlgeschlagen.")
		return h.views.Render(c, status, "einnahmen.html", view)
	}

	view.Report = report
	view.Range = form.RangeDraft{From: report.From.String(), To: report.To.String()}
	query := url.Values{"von": {view.Range.From}, "bis": {view.Range.To}}.Encode()
	view.PDFURL, view.XLSXURL = "/einnahmen.pdf?"+query, "/einnahmen.xlsx?"+query
	return h.views.Render(c, fiber.StatusOK, "einnahmen.html", view)
}

// PDF GET /einnahmen.pdf.
func (h *RevenueHandler) PDF(c *fiber.Ctx) error {
	return h.export(c, "pdf", contentTypePDF, h.uc.ExportPDF)
}

// XLSX GET /einnahmen.xlsx.
func (h *RevenueHandler) XLSX(c *fiber.Ctx) error {
	return h.export(c, "xlsx", contentTypeXLSX, h.uc.ExportXLSX)
}

func (h *RevenueHandler) export(c *fiber.Ctx, ext, contentType string, render func(context.Context, form.RangeDraft) ([]byte, error)) error {
	var in form.RangeDraft
	if err := c.QueryParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Ungültige Parameter.")
	}
	data, err := render(c.UserContext(), in)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="einnahmen.%s"`, ext))
	return c.Send(data)
}

// APIReport godoc
// @Summary      Einnahmen en un rango (una fila por alquiler, ordenadas por id)
// @Tags         einnahmen
// @Produce      json
// @Param        von  query  string  false  "Inicio (YYYY-MM-DD)"  default(2025-01-01)
// @Param        bis  query  string  false  "Fin (YYYY-MM-DD), por defecto hoy"
// @Success      200  {object}  dto.RevenueReport
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/einnahmen [get]
func (h *RevenueHandler) APIReport(c *fiber.Ctx) error {
	var in form.RangeDraft
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "Ungültige Parameter."})
	}
	out, err := h.uc.Report(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
