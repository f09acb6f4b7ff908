package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/precios-api/internal/application/analytics"
	"github.com/jhoicas/precios-api/internal/application/usecase"
	"github.com/jhoicas/precios-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	CatalogUC  *usecase.CatalogUseCase
	SpendUC    *analytics.SpendUseCase
	HistoryUC  *analytics.HistoryUseCase
	JWTSecret  string
	AppName    string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log))
	}

	// Health check (público)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.HistoryUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/active", productHandler.SetActive)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/history", productHandler.History)

	// Catalog (refresco con filtro)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/catalog", catalogHandler.Refresh)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/grouped", categoryHandler.Grouped)
	categories.Get("/groups", categoryHandler.Groups)
	categories.Post("/", categoryHandler.Create)
	categories.Post("/seed", categoryHandler.Seed)
	categories.Delete("/:id", categoryHandler.Delete)

	// Analytics
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.SpendUC)
	analyticsGroup.Get("/spend", analyticsHandler.Spend)
	analyticsGroup.Get("/spend/pdf", analyticsHandler.SpendPDF)
}
