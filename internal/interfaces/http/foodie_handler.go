package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/foodiesbnb/foodiesbnb-api/internal/application/dto"
	"github.com/foodiesbnb/foodiesbnb-api/internal/application/foodie"
	"github.com/foodiesbnb/foodiesbnb-api/pkg/validation"
)

// FoodieHandler maneja las solicitudes al programa foodie.
type FoodieHandler struct {
	uc *foodie.UseCase
}

// NewFoodieHandler construye el handler de solicitudes foodie.
func NewFoodieHandler(uc *foodie.UseCase) *FoodieHandler {
	return &FoodieHandler{uc: uc}
}

// Apply godoc
// @Summary      Aplicar al programa foodie
// @Tags         foodie
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SolicitudFoodieRequest  true  "formulario de aplicación"
// @Success      201   {object}  dto.SolicitudFoodieResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/foodie/solicitudes [post]
func (h *FoodieHandler) Apply(c *fiber.Ctx) error {
	var in dto.SolicitudFoodieRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if errores := validation.Struct(in); len(errores) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrValidation(errores))
	}
	out, err := h.uc.Apply(GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "Error interno del servidor"))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar las solicitudes del usuario autenticado
// @Tags         foodie
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SolicitudListResponse
// @Router       /api/foodie/solicitudes [get]
func (h *FoodieHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "Error interno del servidor"))
	}
	return c.JSON(out)
}
