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

	"github.com/gestorpro/orcamentos-api/internal/application/access"
	"github.com/gestorpro/orcamentos-api/internal/application/auth"
	"github.com/gestorpro/orcamentos-api/internal/application/usecase"
	infraai "github.com/gestorpro/orcamentos-api/internal/infrastructure/ai"
	infrapdf "github.com/gestorpro/orcamentos-api/internal/infrastructure/pdf"
	"github.com/gestorpro/orcamentos-api/internal/infrastructure/postgres"
	httpRouter "github.com/gestorpro/orcamentos-api/internal/interfaces/http"
	"github.com/gestorpro/orcamentos-api/pkg/config"
	"github.com/gestorpro/orcamentos-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	credentialRepo := postgres.NewCredentialRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	limiter := access.NewMemoryRateLimiter(time.Duration(cfg.AI.RateLimitSeconds) * time.Second)
	gate := access.NewGate(profileRepo, auditRepo, limiter, log, time.Now)

	authUC := auth.NewAuthUseCase(userRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	quoteUC := usecase.NewQuoteUseCase(quoteRepo, clientRepo, profileRepo, txRunner, gate, log, time.Now)
	clientUC := usecase.NewClientUseCase(clientRepo)
	profileUC := usecase.NewProfileUseCase(profileRepo)
	publicUC := usecase.NewPublicUseCase(quoteRepo, log, time.Now)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiModel)
	aiUC := usecase.NewAIUseCase(geminiSvc, quoteRepo, credentialRepo, gate, cfg.AI.GeminiAPIKey)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := usecase.NewPDFUseCase(quoteRepo, profileRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // PDFs podem demorar mais que JSON
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GestorPro Orçamentos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		QuoteUC:   quoteUC,
		PDFUC:     pdfUC,
		ClientUC:  clientUC,
		ProfileUC: profileUC,
		AIUC:      aiUC,
		PublicUC:  publicUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
