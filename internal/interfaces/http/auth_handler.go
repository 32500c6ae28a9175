package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corbanhub/gestao-api/internal/application/auth"
	"github.com/corbanhub/gestao-api/internal/application/dto"
)

// AuthHandler login, logout e validação do token.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Autenticar por funcional e senha
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "funcional, senha"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Funcional == "" || in.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "funcional e senha são obrigatórios"})
	}
	out, err := h.uc.Login(c.Context(), in, origemDe(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Validate godoc
// @Summary      Validar o token corrente
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/validate [get]
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	// o middleware já validou o token; só refletir a identidade
	return c.JSON(fiber.Map{
		"valid":     true,
		"userId":    GetUserID(c),
		"funcional": GetFuncional(c),
		"role":      GetPapel(c),
	})
}

// Logout godoc
// @Summary      Encerrar a sessão (auditoria)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.Context(), GetUserID(c), origemDe(c)); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// origemDe extrai IP e user agent da requisição para a auditoria.
func origemDe(c *fiber.Ctx) auth.Origem {
	return auth.Origem{
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
	}
}
