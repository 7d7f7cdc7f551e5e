package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// ViewHandler páginas HTML del catálogo.
type ViewHandler struct {
	uc      *usecase.ProductUseCase
	log     *logger.Logger
	appName string
}

// NewViewHandler construye el handler.
func NewViewHandler(uc *usecase.ProductUseCase, log *logger.Logger, appName string) *ViewHandler {
	return &ViewHandler{uc: uc, log: log, appName: appName}
}

// Home lista estática de productos al momento de la petición.
func (h *ViewHandler) Home(c *fiber.Ctx) error {
	products, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, msgProductNotFound)
	}
	return c.Render("home", fiber.Map{"Title": h.appName, "Products": products})
}

// RealTime página que se mantiene sincronizada por el canal /ws.
func (h *ViewHandler) RealTime(c *fiber.Ctx) error {
	products, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, msgProductNotFound)
	}
	return c.Render("realTimeProducts", fiber.Map{"Title": h.appName, "Products": products})
}
