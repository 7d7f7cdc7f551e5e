package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/feed"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Catalogo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/realtime"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/recordstore"
	httpRouter "github.com/jhoicas/Catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// @title        Catalogo API
// @version      1.0
// @description  Catálogo de productos y carritos con actualización en tiempo real.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	m := metrics.New()

	store, closeStore, err := recordstore.Open(ctx, cfg, m)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir almacenamiento")
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error().Err(err).Msg("cerrar almacenamiento")
		}
	}()

	productRepo := recordstore.NewCollection[entity.Product](store, cfg.Storage.ProductsResource)
	cartRepo := recordstore.NewCollection[entity.Cart](store, cfg.Storage.CartsResource)

	// El servidor no crea los recursos: sin ellos las peticiones responden 500 hasta correr cmd/seed.
	if _, err := productRepo.LoadAll(ctx); errors.Is(err, domain.ErrResourceMissing) {
		log.Warn().Str("resource", productRepo.Name()).Msg("recurso inexistente, ejecute cmd/seed")
	}
	if _, err := cartRepo.LoadAll(ctx); errors.Is(err, domain.ErrResourceMissing) {
		log.Warn().Str("resource", cartRepo.Name()).Msg("recurso inexistente, ejecute cmd/seed")
	}

	hub := realtime.NewHub(cfg.Realtime.BufferSize, log, m)

	productUC := usecase.NewProductUseCase(productRepo, hub)
	cartUC := usecase.NewCartUseCase(cartRepo)
	exportUC := usecase.NewCatalogExportUseCase(productRepo, infrapdf.NewCatalogPDFGenerator(), feed.NewXMLFeedBuilder())

	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		Views:       httpRouter.NewViewEngine(),
		ReadTimeout: time.Second * 10,
		IdleTimeout: time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		CartUC:      cartUC,
		ExportUC:    exportUC,
		Hub:         hub,
		Metrics:     m,
		Log:         log,
		AppName:     cfg.App.Name,
		SwaggerFile: cfg.Docs.SwaggerFile,
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

	// Cerrar el hub primero libera los handlers websocket que bloquean el apagado.
	hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
