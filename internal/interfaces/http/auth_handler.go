package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/foodiesbnb/foodiesbnb-api/internal/application/auth"
	"github.com/foodiesbnb/foodiesbnb-api/internal/application/dto"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain"
	"github.com/foodiesbnb/foodiesbnb-api/pkg/validation"
)

// AuthHandler maneja registro, login, verificación de sesión y cambio de rol.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "nombreCompleto, email, password"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/registro [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if errores := validation.Struct(in); len(errores) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrValidation(errores))
	}
	out, err := h.uc.Register(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.Err("EMAIL_EXISTS", "Este email ya está registrado. Intenta iniciar sesión."))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "Error interno del servidor"))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if errores := validation.Struct(in); len(errores) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrValidation(errores))
	}
	out, err := h.uc.Login(in)
	if err != nil {
		// Mensajes distintos por caso, heredados del comportamiento original:
		// el login distingue email inexistente de contraseña incorrecta.
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNKNOWN_EMAIL", "Este email no está registrado. Por favor, regístrate primero."))
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("WRONG_PASSWORD", "Contraseña incorrecta"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "Error interno del servidor"))
	}
	return c.JSON(out)
}

// Verify godoc
// @Summary      Verificar sesión
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AuthResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/verificar [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	usuario, err := h.uc.GetUser(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("INVALID_TOKEN", "Token no válido"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "Error interno del servidor"))
	}
	return c.JSON(dto.AuthResponse{Success: true, Usuario: usuario})
}

// UpdateRol godoc
// @Summary      Actualizar rol del usuario autenticado
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateRolRequest  true  "rol"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/actualizar-rol [put]
func (h *AuthHandler) UpdateRol(c *fiber.Ctx) error {
	var in dto.UpdateRolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if errores := validation.Struct(in); len(errores) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrValidation(errores))
	}
	out, err := h.uc.UpdateRol(GetUserID(c), in.Rol)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRole) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_ROLE", "Rol inválido. Valores permitidos: usuario, foodie, restaurante"))
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("USER_NOT_FOUND", "Usuario no encontrado"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "Error interno del servidor"))
	}
	return c.JSON(out)
}
