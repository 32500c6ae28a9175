package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/corbanhub/gestao-api/internal/application/dto"
	"github.com/corbanhub/gestao-api/internal/application/usecase"
)

// EventoHandler agenda de eventos.
type EventoHandler struct {
	uc *usecase.EventoUseCase
}

func NewEventoHandler(uc *usecase.EventoUseCase) *EventoHandler {
	return &EventoHandler{uc: uc}
}

// List godoc
// @Summary      Eventos no escopo, com janela de datas opcional
// @Tags         events
// @Produce      json
// @Param        start  query  string  false  "RFC 3339"
// @Param        end    query  string  false  "RFC 3339"
// @Success      200  {array}  dto.EventoResponse
// @Router       /api/events [get]
func (h *EventoHandler) List(c *fiber.Ctx) error {
	inicio, err := dataOpcional(c.Query("start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start inválido (RFC 3339)"})
	}
	fim, err := dataOpcional(c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end inválido (RFC 3339)"})
	}

	eventos, err := h.uc.Listar(c.Context(), GetUserID(c), inicio, fim)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(eventos)
}

// GetByID godoc
// @Summary      Evento por ID
// @Tags         events
// @Produce      json
// @Param        id  path  string  true  "ID do evento"
// @Success      200  {object}  dto.EventoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id} [get]
func (h *EventoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obter(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Criar evento
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EventoRequest  true  "evento"
// @Success      201   {object}  dto.EventoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/events [post]
func (h *EventoHandler) Create(c *fiber.Ctx) error {
	var in dto.EventoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Criar(c.Context(), GetUserID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Atualizar evento
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID do evento"
// @Param        body  body  dto.EventoRequest  true  "evento"
// @Success      200   {object}  dto.EventoResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/events/{id} [put]
func (h *EventoHandler) Update(c *fiber.Ctx) error {
	var in dto.EventoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Feedback godoc
// @Summary      Registrar feedback de um evento realizado
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID do evento"
// @Param        body  body  dto.FeedbackRequest  true  "feedback"
// @Success      200   {object}  map[string]interface{}
// @Router       /api/events/{id}/feedback [patch]
func (h *EventoHandler) Feedback(c *fiber.Ctx) error {
	var in dto.FeedbackRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.RegistrarFeedback(c.Context(), GetUserID(c), c.Params("id"), in); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Delete godoc
// @Summary      Excluir evento
// @Tags         events
// @Produce      json
// @Param        id  path  string  true  "ID do evento"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/events/{id} [delete]
func (h *EventoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Excluir(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func dataOpcional(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
