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

	appanalytics "github.com/jhoicas/precios-api/internal/application/analytics"
	"github.com/jhoicas/precios-api/internal/application/usecase"
	"github.com/jhoicas/precios-api/internal/infrastructure/backend"
	"github.com/jhoicas/precios-api/internal/infrastructure/docstore"
	infrapdf "github.com/jhoicas/precios-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/precios-api/internal/interfaces/http"
	"github.com/jhoicas/precios-api/pkg/config"
	"github.com/jhoicas/precios-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Store.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, closeStore, err := backend.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacén de documentos")
	}
	defer closeStore()

	productRepo := docstore.NewProductRepository(store, log)
	categoryRepo := docstore.NewCategoryRepository(store)

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	catalogUC := usecase.NewCatalogUseCase(productRepo, categoryRepo)

	// PDF: reporte de gasto por categoría
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	spendUC := appanalytics.NewSpendUseCase(productRepo, categoryRepo, pdfGenerator)
	historyUC := appanalytics.NewHistoryUseCase(productRepo, cfg.Report.Locale, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Report.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Report.SwaggerFile,
			Path:     "docs",
			Title:    "Precios API",
		}))
	} else {
		log.Warn().Str("file", cfg.Report.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		CatalogUC:  catalogUC,
		SpendUC:    spendUC,
		HistoryUC:  historyUC,
		JWTSecret:  cfg.JWT.Secret,
		AppName:    cfg.App.Name,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
