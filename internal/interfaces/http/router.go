package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/jhoicas/mietpark-admin/internal/application/revenue"
	"github.com/jhoicas/mietpark-admin/internal/application/usecase"
	"github.com/jhoicas/mietpark-admin/pkg/logger"
	"github.com/jhoicas/mietpark-admin/web"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName    string
	DeviceUC   *usecase.DeviceUseCase
	RentalUC   *usecase.RentalUseCase
	CompanyUC  *usecase.CompanyUseCase
	ParkUC     *usecase.RentalParkUseCase
	CustomerUC *usecase.CustomerUseCase
	ReportUC   *usecase.ReportUseCase
	RevenueUC  *revenue.UseCase
	Lookups    *usecase.LookupService
	Backend    HealthChecker
	Views      *Views
	Log        *logger.Logger
}

// Router registra las páginas HTML, la API JSON y /health.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   nethttp.FS(web.StaticFS()),
		MaxAge: 3600,
	}))

	health := NewHealthHandler(deps.Backend, deps.AppName)
	app.Get("/health", health.Check)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/geraete", fiber.StatusFound)
	})

	// Geräte
	devices := NewDeviceHandler(deps.DeviceUC, deps.Lookups, deps.Views, deps.Log)
	app.Get("/geraete", devices.List)
	app.Post("/geraete", devices.Create)
	app.Get("/geraete/:id", devices.Detail)
	app.Post("/geraete/:id", devices.Update)
	app.Post("/geraete/:id/loeschen", devices.Delete)
	app.Post("/geraete/:id/wartungen", devices.AddMaintenance)
	app.Post("/geraete/:id/zaehlerstaende", devices.RecordMeterReading)

	// Vermietungen y Rechnungen
	rentals := NewRentalHandler(deps.RentalUC, deps.DeviceUC, deps.Lookups, deps.Views, deps.Log)
	app.Get("/vermietungen", rentals.List)
	app.Post("/vermietungen", rentals.Create)
	app.Post("/vermietungen/:id/starten", rentals.Start)
	app.Post("/vermietungen/:id/schliessen", rentals.Close)
	app.Post("/vermietungen/:id/positionen", rentals.AddPosition)
	app.Post("/vermietungen/:id/rechnungen", rentals.CreateInvoice)
	app.Post("/rechnungen/:id/bezahlt", rentals.SetInvoicePaid)

	// Einnahmen
	revenueHandler := NewRevenueHandler(deps.RevenueUC, deps.Views)
	app.Get("/einnahmen", revenueHandler.Page)
	app.Get("/einnahmen.pdf", revenueHandler.PDF)
	app.Get("/einnahmen.xlsx", revenueHandler.XLSX)

	// Berichte
	reports := NewReportHandler(deps.ReportUC, deps.Views)
	app.Get("/berichte", reports.Page)

	// Stammdaten
	master := NewMasterDataHandler(deps.CompanyUC, deps.ParkUC, deps.CustomerUC, deps.Views)
	app.Get("/stammdaten", master.Page)
	app.Post("/stammdaten/:tab", master.Create)
	app.Post("/stammdaten/:tab/:id", master.Update)
	app.Post("/stammdaten/:tab/:id/loeschen", master.Delete)

	// API JSON (solo lectura más el cálculo de Auslastung)
	api := app.Group("/api")
	api.Get("/geraete", devices.APIList)
	api.Get("/geraete/:id", devices.APIDetail)
	api.Get("/vermietungen", rentals.APIList)
	api.Get("/einnahmen", revenueHandler.APIReport)
	api.Post("/berichte/auslastung", reports.APIUtilization)
}
