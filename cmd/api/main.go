package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/corbanhub/gestao-api/internal/application/auth"
	"github.com/corbanhub/gestao-api/internal/application/usecase"
	infrapdf "github.com/corbanhub/gestao-api/internal/infrastructure/pdf"
	"github.com/corbanhub/gestao-api/internal/infrastructure/postgres"
	httpRouter "github.com/corbanhub/gestao-api/internal/interfaces/http"
	"github.com/corbanhub/gestao-api/pkg/config"
	"github.com/corbanhub/gestao-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	lojaRepo := postgres.NewLojaRepository(pool)
	hotlistRepo := postgres.NewHotlistRepository(pool)
	tratativaRepo := postgres.NewTratativaRepository(pool)
	eventoRepo := postgres.NewEventoRepository(pool)
	registroRepo := postgres.NewRegistroAcessoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, registroRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, usuarioRepo)
	hotlistUC := usecase.NewHotlistUseCase(hotlistRepo, usuarioUC, txRunner)
	estrategiaUC := usecase.NewEstrategiaUseCase(lojaRepo, usuarioRepo)
	tratativaUC := usecase.NewTratativaUseCase(tratativaRepo, usuarioUC)
	eventoUC := usecase.NewEventoUseCase(eventoRepo, usuarioUC)
	registroUC := usecase.NewRegistroUseCase(registroRepo, usuarioUC)
	relatorioPDF := infrapdf.NewRelatorioProducaoGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestão Corban API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UsuarioUC:    usuarioUC,
		HotlistUC:    hotlistUC,
		EstrategiaUC: estrategiaUC,
		TratativaUC:  tratativaUC,
		EventoUC:     eventoUC,
		RegistroUC:   registroUC,
		RelatorioPDF: relatorioPDF,
		JWTSecret:    cfg.JWT.Secret,
	})

	// Shutdown gracioso em SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("encerrando aplicação")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	addr := cfg.HTTP.Addr()
	log.Info().Str("addr", addr).Msg("servidor HTTP no ar")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("servidor HTTP")
	}
}
