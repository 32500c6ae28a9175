package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corbanhub/gestao-api/internal/application/dto"
	"github.com/corbanhub/gestao-api/internal/application/usecase"
)

// TratativaHandler tratativas de pontos ativos.
type TratativaHandler struct {
	uc *usecase.TratativaUseCase
}

func NewTratativaHandler(uc *usecase.TratativaUseCase) *TratativaHandler {
	return &TratativaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar tratativa de um ponto ativo
// @Tags         tratativas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TratativaPontoAtivoRequest  true  "tratativa"
// @Success      201   {object}  dto.TratativaPontoAtivoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tratativas-pontos-ativos [post]
func (h *TratativaHandler) Create(c *fiber.Ctx) error {
	var in dto.TratativaPontoAtivoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Registrar(c.Context(), GetUserID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Tratativas no escopo do usuário
// @Tags         tratativas
// @Produce      json
// @Success      200  {array}  dto.TratativaPontoAtivoResponse
// @Router       /api/tratativas-pontos-ativos [get]
func (h *TratativaHandler) List(c *fiber.Ctx) error {
	tratativas, err := h.uc.Listar(c.Context(), GetUserID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(tratativas)
}

// ListByLoja godoc
// @Summary      Histórico de tratativas de uma loja
// @Tags         tratativas
// @Produce      json
// @Param        chaveLoja  path  string  true  "chave da loja"
// @Success      200  {array}  dto.TratativaPontoAtivoResponse
// @Router       /api/tratativas-pontos-ativos/loja/{chaveLoja} [get]
func (h *TratativaHandler) ListByLoja(c *fiber.Ctx) error {
	tratativas, err := h.uc.ListarPorLoja(c.Context(), c.Params("chaveLoja"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(tratativas)
}
