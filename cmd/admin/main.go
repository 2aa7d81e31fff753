package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/mietpark-admin/internal/application/revenue"
	"github.com/jhoicas/mietpark-admin/internal/application/usecase"
	"github.com/jhoicas/mietpark-admin/internal/infrastructure/backend"
	"github.com/jhoicas/mietpark-admin/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/mietpark-admin/internal/infrastructure/pdf"
	"github.com/jhoicas/mietpark-admin/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/mietpark-admin/internal/interfaces/http"
	"github.com/jhoicas/mietpark-admin/internal/scheduler"
	"github.com/jhoicas/mietpark-admin/pkg/config"
	"github.com/jhoicas/mietpark-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.API.BaseURL).
		Msg("iniciando aplicación")

	client := backend.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), log)

	companyRepo := backend.NewCompanyRepository(client)
	parkRepo := backend.NewRentalParkRepository(client)
	customerRepo := backend.NewCustomerRepository(client)
	deviceRepo := backend.NewDeviceRepository(client)
	rentalRepo := backend.NewRentalRepository(client)
	invoiceRepo := backend.NewInvoiceRepository(client)
	reportRepo := backend.NewReportRepository(client)
	maintenanceRepo := backend.NewMaintenanceRepository(client)

	queryCache := cache.New(cfg.Cache.TTL())
	lookups := usecase.NewLookupService(queryCache, companyRepo, parkRepo, customerRepo, deviceRepo, rentalRepo, log)

	deviceUC := usecase.NewDeviceUseCase(deviceRepo, maintenanceRepo, reportRepo, lookups, queryCache, log)
	rentalUC := usecase.NewRentalUseCase(rentalRepo, invoiceRepo, reportRepo, lookups, queryCache, log)
	companyUC := usecase.NewCompanyUseCase(companyRepo, lookups, queryCache)
	parkUC := usecase.NewRentalParkUseCase(parkRepo, lookups, queryCache)
	customerUC := usecase.NewCustomerUseCase(customerRepo, lookups, queryCache)
	reportUC := usecase.NewReportUseCase(reportRepo, lookups)

	// Einnahmen: informe, PDF (maroto) y XLSX (excelize)
	revenueUC := revenue.NewUseCase(
		lookups, rentalRepo, reportRepo,
		infrapdf.NewMarotoPDFGenerator(), xlsx.NewRevenueExporter(),
		cfg.Revenue.Concurrency, log,
	)

	views, err := httpRouter.LoadViews()
	if err != nil {
		log.Fatal().Err(err).Msg("plantillas HTML")
	}

	// Reconciliación periódica de la caché con el backend
	jobs, err := scheduler.New(cfg.Scheduler.CacheRefresh, lookups, cfg.API.Timeout()*4, log)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler")
	}
	jobs.Start()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler(views, log),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mietpark Admin API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:    cfg.App.Name,
		DeviceUC:   deviceUC,
		RentalUC:   rentalUC,
		CompanyUC:  companyUC,
		ParkUC:     parkUC,
		CustomerUC: customerUC,
		ReportUC:   reportUC,
		RevenueUC:  revenueUC,
		Lookups:    lookups,
		Backend:    client,
		Views:      views,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	jobs.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
