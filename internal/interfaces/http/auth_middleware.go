package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/corbanhub/gestao-api/internal/application/dto"
	"github.com/corbanhub/gestao-api/pkg/jwt"
)

// Locals keys preenchidas pelo middleware de auth.
const (
	LocalUserID    = "user_id"
	LocalFuncional = "funcional"
	LocalPapel     = "papel"
)

// AuthMiddleware valida o Bearer Token JWT e carrega identidade em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		userID, funcional, papel, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalFuncional, funcional)
		c.Locals(LocalPapel, papel)
		return c.Next()
	}
}

// RequirePapel autoriza apenas os papéis listados. Papel desconhecido ou
// ausente nega o acesso: a regra é fechar, nunca abrir por omissão.
func RequirePapel(papeis ...string) fiber.Handler {
	permitidos := make(map[string]bool, len(papeis))
	for _, p := range papeis {
		permitidos[p] = true
	}
	return func(c *fiber.Ctx) error {
		papel := GetPapel(c)
		if papel == "" || !permitidos[papel] {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "papel sem permissão para este recurso"})
		}
		return c.Next()
	}
}

// GetUserID devolve o UserID do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetFuncional devolve o funcional do contexto.
func GetFuncional(c *fiber.Ctx) string {
	v := c.Locals(LocalFuncional)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetPapel devolve o papel do contexto.
func GetPapel(c *fiber.Ctx) string {
	v := c.Locals(LocalPapel)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
