package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corbanhub/gestao-api/internal/application/auth"
	"github.com/corbanhub/gestao-api/internal/application/dto"
	"github.com/corbanhub/gestao-api/internal/application/usecase"
)

// RegistroHandler auditoria de acesso disparada pelo cliente.
type RegistroHandler struct {
	uc *usecase.RegistroUseCase
}

func NewRegistroHandler(uc *usecase.RegistroUseCase) *RegistroHandler {
	return &RegistroHandler{uc: uc}
}

// Create godoc
// @Summary      Gravar um log de ação do cliente
// @Tags         user-logs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroAcessoRequest  true  "actionType, details, status"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/user-logs [post]
func (h *RegistroHandler) Create(c *fiber.Ctx) error {
	var in dto.RegistroAcessoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	origem := auth.Origem{IP: c.IP(), UserAgent: c.Get("User-Agent")}
	if err := h.uc.Registrar(c.Context(), GetUserID(c), in, origem); err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

// List godoc
// @Summary      Consultar a auditoria (coordenador, gerente, admin)
// @Tags         user-logs
// @Produce      json
// @Param        userId      query  string  false  "filtrar por usuário"
// @Param        actionType  query  string  false  "filtrar por tipo de ação"
// @Param        status      query  string  false  "filtrar por status"
// @Param        start       query  string  false  "RFC 3339"
// @Param        end         query  string  false  "RFC 3339"
// @Param        limit       query  int     false  "tamanho da página"
// @Param        offset      query  int     false  "deslocamento"
// @Success      200  {object}  dto.RegistrosAcessoPage
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/user-logs [get]
func (h *RegistroHandler) List(c *fiber.Ctx) error {
	inicio, err := dataOpcional(c.Query("start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start inválido (RFC 3339)"})
	}
	fim, err := dataOpcional(c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end inválido (RFC 3339)"})
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}

	out, err := h.uc.Listar(c.Context(), GetUserID(c), usecase.FiltroListagemRegistros{
		UsuarioID: c.Query("userId"),
		TipoAcao:  c.Query("actionType"),
		Status:    c.Query("status"),
		Inicio:    inicio,
		Fim:       fim,
		Page:      page,
	})
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
