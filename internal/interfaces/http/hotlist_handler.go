package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corbanhub/gestao-api/internal/application/dto"
	"github.com/corbanhub/gestao-api/internal/application/usecase"
)

// HotlistHandler leads de prospecção.
type HotlistHandler struct {
	uc *usecase.HotlistUseCase
}

func NewHotlistHandler(uc *usecase.HotlistUseCase) *HotlistHandler {
	return &HotlistHandler{uc: uc}
}

// List godoc
// @Summary      Listar leads no escopo do usuário
// @Tags         hotlist
// @Produce      json
// @Success      200  {array}  dto.ItemHotlistResponse
// @Router       /api/hotlist [get]
func (h *HotlistHandler) List(c *fiber.Ctx) error {
	itens, err := h.uc.Listar(c.Context(), GetUserID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(itens)
}

// UpdateSituacao godoc
// @Summary      Atualizar a situação de um lead
// @Tags         hotlist
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID do lead"
// @Param        body  body  dto.AtualizarSituacaoRequest  true  "situacao"
// @Success      200   {object}  map[string]interface{}
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/hotlist/{id}/situacao [patch]
func (h *HotlistHandler) UpdateSituacao(c *fiber.Ctx) error {
	var in dto.AtualizarSituacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.AtualizarSituacao(c.Context(), GetUserID(c), c.Params("id"), in); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// CreateTratativa godoc
// @Summary      Registrar tratativa de um lead
// @Tags         hotlist
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TratativaHotlistRequest  true  "hotlist_id, descricao, situacao"
// @Success      201   {object}  dto.TratativaHotlistResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/hotlist/tratativas [post]
func (h *HotlistHandler) CreateTratativa(c *fiber.Ctx) error {
	var in dto.TratativaHotlistRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.RegistrarTratativa(c.Context(), GetUserID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTratativas godoc
// @Summary      Histórico de tratativas de um lead
// @Tags         hotlist
// @Produce      json
// @Param        id  path  string  true  "ID do lead"
// @Success      200  {array}  dto.TratativaHotlistResponse
// @Router       /api/hotlist/{id}/tratativas [get]
func (h *HotlistHandler) ListTratativas(c *fiber.Ctx) error {
	tratativas, err := h.uc.ListarTratativas(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(tratativas)
}

// Summary godoc
// @Summary      Contadores de leads no escopo
// @Tags         hotlist
// @Produce      json
// @Success      200  {object}  dto.ResumoHotlistResponse
// @Router       /api/hotlist/summary [get]
func (h *HotlistHandler) Summary(c *fiber.Ctx) error {
	resumo, err := h.uc.Resumo(c.Context(), GetUserID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(resumo)
}
