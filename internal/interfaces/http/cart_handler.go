package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// CartHandler maneja las peticiones HTTP para Cart.
type CartHandler struct {
	uc  *usecase.CartUseCase
	log *logger.Logger
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase, log *logger.Logger) *CartHandler {
	return &CartHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear carrito vacío
// @Tags         carts
// @Produce      json
// @Success      201  {object}  dto.CartResponse
// @Router       /api/carts [post]
func (h *CartHandler) Create(c *fiber.Ctx) error {
	out, err := h.uc.Create(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, msgCartNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener carrito por ID
// @Tags         carts
// @Produce      json
// @Param        cid  path      string  true  "ID del carrito"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {string}  string
// @Router       /api/carts/{cid} [get]
func (h *CartHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("cid"))
	if err != nil {
		return respondError(c, h.log, err, msgCartNotFound)
	}
	return c.JSON(out)
}

// AddProduct godoc
// @Summary      Agregar producto al carrito (incrementa si ya está)
// @Tags         carts
// @Produce      json
// @Param        cid  path      string  true  "ID del carrito"
// @Param        pid  path      string  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {string}  string
// @Router       /api/carts/{cid}/product/{pid} [post]
func (h *CartHandler) AddProduct(c *fiber.Ctx) error {
	out, err := h.uc.AddProduct(c.UserContext(), c.Params("cid"), c.Params("pid"))
	if err != nil {
		return respondError(c, h.log, err, msgCartNotFound)
	}
	return c.JSON(out)
}
