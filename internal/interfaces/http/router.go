package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/orcamentos-api/internal/application/auth"
	"github.com/gestorpro/orcamentos-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	QuoteUC   *usecase.QuoteUseCase
	PDFUC     *usecase.PDFUseCase
	ClientUC  *usecase.ClientUseCase
	ProfileUC *usecase.ProfileUseCase
	AIUC      *usecase.AIUseCase
	PublicUC  *usecase.PublicUseCase
	JWTSecret string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Acesso público por token de compartilhamento (sem auth)
	public := api.Group("/public/quotes")
	publicHandler := NewPublicHandler(deps.PublicUC)
	public.Get("/:token", publicHandler.Check)
	public.Post("/:token/resolve", publicHandler.Resolve)
	public.Post("/:token/approve", publicHandler.Approve)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Quotes (protegido)
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.PDFUC)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Put("/:id", quoteHandler.Update)
	quotes.Delete("/:id", quoteHandler.Delete)
	quotes.Post("/:id/approve", quoteHandler.Approve)
	quotes.Post("/:id/reject", quoteHandler.Reject)
	quotes.Post("/:id/complete", quoteHandler.Complete)
	quotes.Get("/:id/pdf", quoteHandler.PDF)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Profile (protegido)
	profile := protected.Group("/profile")
	profileHandler := NewProfileHandler(deps.ProfileUC)
	profile.Get("/", profileHandler.Get)
	profile.Put("/", profileHandler.Update)
	profile.Post("/templates", profileHandler.CreateTemplate)
	profile.Put("/templates/:id", profileHandler.UpdateTemplate)
	profile.Delete("/templates/:id", profileHandler.DeleteTemplate)

	// IA (protegido)
	ai := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	ai.Post("/clauses", aiHandler.GenerateClauses)
	ai.Post("/templates", aiHandler.GenerateTemplate)
	ai.Put("/key", aiHandler.SaveAPIKey)
}
