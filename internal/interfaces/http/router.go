package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corbanhub/gestao-api/internal/application/auth"
	"github.com/corbanhub/gestao-api/internal/application/usecase"
	"github.com/corbanhub/gestao-api/internal/domain/hierarquia"
	"github.com/corbanhub/gestao-api/internal/infrastructure/pdf"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	HotlistUC    *usecase.HotlistUseCase
	EstrategiaUC *usecase.EstrategiaUseCase
	TratativaUC  *usecase.TratativaUseCase
	EventoUC     *usecase.EventoUseCase
	RegistroUC   *usecase.RegistroUseCase
	RelatorioPDF *pdf.RelatorioProducaoGenerator
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login é público; validate e logout exigem token
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/validate", AuthMiddleware(deps.JWTSecret), authHandler.Validate)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Rotas protegidas (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuários e hierarquia
	users := protected.Group("/users")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	users.Get("/", RequirePapel(hierarquia.PapelAdmin), usuarioHandler.List)
	users.Get("/supervisors", RequirePapel(hierarquia.PapelCoordenador, hierarquia.PapelGerente), usuarioHandler.Supervisors)
	users.Get("/:id", usuarioHandler.GetByID)
	users.Get("/:id/subordinates", usuarioHandler.Subordinates)
	users.Get("/:id/superior", usuarioHandler.Superior)

	// Hotlist
	hotlist := protected.Group("/hotlist")
	hotlistHandler := NewHotlistHandler(deps.HotlistUC)
	hotlist.Get("/", hotlistHandler.List)
	hotlist.Get("/summary", hotlistHandler.Summary)
	hotlist.Post("/tratativas", hotlistHandler.CreateTratativa)
	hotlist.Patch("/:id/situacao", hotlistHandler.UpdateSituacao)
	hotlist.Get("/:id/tratativas", hotlistHandler.ListTratativas)

	// Estratégia comercial
	estrategia := protected.Group("/estrategia")
	estrategiaHandler := NewEstrategiaHandler(deps.EstrategiaUC, deps.RelatorioPDF)
	estrategia.Get("/lojas", estrategiaHandler.Lojas)
	estrategia.Get("/:produto", estrategiaHandler.Produto)
	estrategia.Get("/:produto/metricas", estrategiaHandler.Metricas)
	estrategia.Get("/:produto/evolucao", estrategiaHandler.Evolucao)
	estrategia.Get("/:produto/evolucao/export", estrategiaHandler.ExportEvolucao)
	estrategia.Get("/:produto/relatorio", estrategiaHandler.Relatorio)

	// Tratativas de pontos ativos
	tratativas := protected.Group("/tratativas-pontos-ativos")
	tratativaHandler := NewTratativaHandler(deps.TratativaUC)
	tratativas.Post("/", tratativaHandler.Create)
	tratativas.Get("/", tratativaHandler.List)
	tratativas.Get("/loja/:chaveLoja", tratativaHandler.ListByLoja)

	// Agenda de eventos
	events := protected.Group("/events")
	eventoHandler := NewEventoHandler(deps.EventoUC)
	events.Get("/", eventoHandler.List)
	events.Get("/:id", eventoHandler.GetByID)
	events.Post("/", eventoHandler.Create)
	events.Put("/:id", eventoHandler.Update)
	events.Patch("/:id/feedback", eventoHandler.Feedback)
	events.Delete("/:id", eventoHandler.Delete)

	// Auditoria
	logs := protected.Group("/user-logs")
	registroHandler := NewRegistroHandler(deps.RegistroUC)
	logs.Post("/", registroHandler.Create)
	logs.Get("/", RequirePapel(hierarquia.PapelCoordenador, hierarquia.PapelGerente, hierarquia.PapelAdmin), registroHandler.List)
}
