package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/foodiesbnb/foodiesbnb-api/internal/application/dto"
	"github.com/foodiesbnb/foodiesbnb-api/internal/application/visita"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain"
	"github.com/foodiesbnb/foodiesbnb-api/pkg/validation"
)

// VisitaHandler maneja el ciclo de vida de visitas: agendar, listar, editar,
// cancelar, completar, registrar evidencia y descargar el comprobante.
type VisitaHandler struct {
	uc    *visita.UseCase
	pdfUC *visita.PDFUseCase
}

// NewVisitaHandler construye el handler de visitas.
func NewVisitaHandler(uc *visita.UseCase, pdfUC *visita.PDFUseCase) *VisitaHandler {
	return &VisitaHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Agendar una visita
// @Tags         visitas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateVisitaRequest  true  "restaurante, fecha, hora, numeroPersonas"
// @Success      201   {object}  dto.VisitaOpResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/visitas [post]
func (h *VisitaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVisitaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if errores := validation.Struct(in); len(errores) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrValidation(errores))
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return visitaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar visitas del usuario
// @Tags         visitas
// @Produce      json
// @Security     BearerAuth
// @Param        estado  query  string  false  "filtrar por estado"
// @Success      200  {object}  dto.VisitaListResponse
// @Router       /api/visitas [get]
func (h *VisitaHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)

	if estado := c.Query("estado"); estado != "" {
		out, err := h.uc.ListByEstado(userID, estado)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "Estado de visita inválido"))
			}
			return visitaError(c, err)
		}
		return c.JSON(out)
	}

	out, err := h.uc.List(userID)
	if err != nil {
		return visitaError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener una visita
// @Tags         visitas
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la visita"
// @Success      200  {object}  dto.VisitaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visitas/{id} [get]
func (h *VisitaHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c), c.Params("id"))
	if err != nil {
		return visitaError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar una visita programada
// @Tags         visitas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "id de la visita"
// @Param        body  body  dto.UpdateVisitaRequest  true  "campos a modificar"
// @Success      200   {object}  dto.VisitaOpResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/visitas/{id} [put]
func (h *VisitaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVisitaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if errores := validation.Struct(in); len(errores) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrValidation(errores))
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return visitaError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar una visita programada
// @Tags         visitas
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la visita"
// @Success      200  {object}  dto.VisitaOpResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/visitas/{id}/cancelar [put]
func (h *VisitaHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(GetUserID(c), c.Params("id"))
	if err != nil {
		return visitaError(c, err)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Marcar una visita como completada (rol restaurante)
// @Tags         visitas
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la visita"
// @Success      200  {object}  dto.VisitaOpResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visitas/{id}/completar [put]
func (h *VisitaHandler) Complete(c *fiber.Ctx) error {
	out, err := h.uc.Complete(c.Params("id"))
	if err != nil {
		return visitaError(c, err)
	}
	return c.JSON(out)
}

// SubmitEvidence godoc
// @Summary      Registrar evidencia de una visita completada (rol foodie)
// @Tags         visitas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string               true  "id de la visita"
// @Param        body  body  dto.EvidenciaRequest  true  "link, foto, montoGastado"
// @Success      201   {object}  dto.VisitaOpResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/visitas/{id}/evidencia [post]
func (h *VisitaHandler) SubmitEvidence(c *fiber.Ctx) error {
	var in dto.EvidenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.SubmitEvidence(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return visitaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar el comprobante PDF de la reserva
// @Tags         visitas
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la visita"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visitas/{id}/pdf [get]
func (h *VisitaHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadReservationPDF(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return visitaError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// visitaError mapea los errores de dominio del ciclo de visitas a HTTP.
func visitaError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrVisitNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("VISIT_NOT_FOUND", "Visita no encontrada"))
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.Err("INVALID_STATE", "Solo las visitas programadas admiten esta operación"))
	case errors.Is(err, domain.ErrWindowClosed):
		return c.Status(fiber.StatusConflict).JSON(dto.Err("WINDOW_CLOSED", "La evidencia solo puede registrarse dentro de las 48 horas de una visita completada"))
	case errors.Is(err, domain.ErrIncompleteEvidence):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INCOMPLETE_EVIDENCE", "Link, foto y monto gastado son obligatorios"))
	case errors.Is(err, domain.ErrInvalidLink):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_LINK", "El link debe ser una publicación de Instagram o TikTok"))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Err("DUPLICATE", "La visita ya tiene evidencia registrada"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "Error interno del servidor"))
	}
}
