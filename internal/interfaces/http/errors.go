package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// Mensajes 404 en texto plano.
const (
	msgProductNotFound = "Producto no encontrado"
	msgCartNotFound    = "Carrito no encontrado"
)

// respondError traduce errores de los casos de uso: ErrNotFound -> 404 texto plano, resto -> 500 JSON.
func respondError(c *fiber.Ctx, log *logger.Logger, err error, notFound string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).SendString(notFound)
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Bool("resource_missing", errors.Is(err, domain.ErrResourceMissing)).
		Bool("resource_corrupt", errors.Is(err, domain.ErrResourceCorrupt)).
		Msg("error atendiendo la petición")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// parseBody decodifica el cuerpo si hay uno. Un cuerpo vacío o con un Content-Type que
// BodyParser no reconoce (ausente, text/plain, ...) deja in sin cambios, como un objeto vacío.
func parseBody(c *fiber.Ctx, in any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(in); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return err
	}
	return nil
}
