package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// CatalogHandler exportaciones del catálogo completo.
type CatalogHandler struct {
	uc  *usecase.CatalogExportUseCase
	log *logger.Logger
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogExportUseCase, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, log: log}
}

// PDF godoc
// @Summary      Catálogo en PDF
// @Tags         catalog
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/catalog/pdf [get]
func (h *CatalogHandler) PDF(c *fiber.Ctx) error {
	out, err := h.uc.PDF(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, msgProductNotFound)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="catalogo.pdf"`)
	return c.Send(out)
}

// Feed godoc
// @Summary      Feed XML del catálogo
// @Tags         catalog
// @Produce      xml
// @Success      200  {string}  string
// @Router       /api/catalog/feed.xml [get]
func (h *CatalogHandler) Feed(c *fiber.Ctx) error {
	out, err := h.uc.Feed(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, msgProductNotFound)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(out)
}
