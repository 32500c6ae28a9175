package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corbanhub/gestao-api/internal/application/usecase"
)

// UsuarioHandler consultas de usuários e hierarquia.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// List godoc
// @Summary      Listar todos os usuários (admin)
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UsuarioResponse
// @Router       /api/users [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	usuarios, err := h.uc.ListarTodos(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(usuarios)
}

// GetByID godoc
// @Summary      Buscar usuário por ID
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "ID do usuário"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	usuario, err := h.uc.ObterPorID(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(usuario)
}

// Subordinates godoc
// @Summary      Subordinados diretos de um usuário
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "ID do usuário"
// @Success      200  {array}  dto.UsuarioResponse
// @Router       /api/users/{id}/subordinates [get]
func (h *UsuarioHandler) Subordinates(c *fiber.Ctx) error {
	subordinados, err := h.uc.Subordinados(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(subordinados)
}

// Superior godoc
// @Summary      Superior imediato de um usuário
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "ID do usuário"
// @Success      200  {object}  dto.UsuarioResponse
// @Router       /api/users/{id}/superior [get]
func (h *UsuarioHandler) Superior(c *fiber.Ctx) error {
	superior, err := h.uc.Superior(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	if superior == nil {
		// raiz da árvore: sem superior
		return c.JSON(fiber.Map{"superior": nil})
	}
	return c.JSON(superior)
}

// Supervisors godoc
// @Summary      Supervisores alcançáveis pelo usuário autenticado
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UsuarioResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/supervisors [get]
func (h *UsuarioHandler) Supervisors(c *fiber.Ctx) error {
	supervisores, err := h.uc.Supervisores(c.Context(), GetUserID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(supervisores)
}
