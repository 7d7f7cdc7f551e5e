package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/Catalogo-api/docs"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/realtime"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CartUC      *usecase.CartUseCase
	ExportUC    *usecase.CatalogExportUseCase
	Hub         *realtime.Hub
	Metrics     *metrics.Metrics
	Log         *logger.Logger
	AppName     string
	SwaggerFile string // vacío o inexistente = sin Swagger UI
}

// Router registra las rutas de la API, las vistas y el canal realtime.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	// Operación
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName, "subscribers": deps.Hub.Count()})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}
	app.Get("/docs/doc.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return respondError(c, log, err, "")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})
	if deps.SwaggerFile != "" {
		// El middleware entra en pánico si el archivo no existe.
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    deps.AppName,
			}))
		} else {
			log.Warn().Str("file", deps.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
		}
	}

	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, log)
	products.Get("/", productHandler.List)
	products.Get("/:pid", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/:pid", productHandler.Update)
	products.Delete("/:pid", productHandler.Delete)

	// Carts
	carts := api.Group("/carts")
	cartHandler := NewCartHandler(deps.CartUC, log)
	carts.Post("/", cartHandler.Create)
	carts.Get("/:cid", cartHandler.GetByID)
	carts.Post("/:cid/product/:pid", cartHandler.AddProduct)

	// Exportaciones
	if deps.ExportUC != nil {
		catalog := api.Group("/catalog")
		catalogHandler := NewCatalogHandler(deps.ExportUC, log)
		catalog.Get("/pdf", catalogHandler.PDF)
		catalog.Get("/feed.xml", catalogHandler.Feed)
	}

	// Vistas
	viewHandler := NewViewHandler(deps.ProductUC, log, deps.AppName)
	app.Get("/", viewHandler.Home)
	app.Get("/realtimeproducts", viewHandler.RealTime)

	// Realtime
	rt := NewRealtimeHandler(deps.Hub)
	app.Use("/ws", rt.RequireUpgrade)
	app.Get("/ws", websocket.New(rt.Serve))
}
