package http

import (
	"github.com/gofiber/fiber/v2"

	agentapp "github.com/mshagov/ecooffer-api/internal/application/agent"
	"github.com/mshagov/ecooffer-api/internal/application/auth"
	"github.com/mshagov/ecooffer-api/internal/application/document"
	"github.com/mshagov/ecooffer-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	UserUC     *usecase.UserUseCase
	CompanyUC  *usecase.CompanyUseCase
	WasteUC    *usecase.WasteUseCase
	WorkUC     *usecase.WorkUseCase
	TemplateUC *document.TemplateUseCase
	OfferUC    *document.OfferUseCase
	AgentUC    *agentapp.UseCase
}

// Router registers the API routes. Reads need any authenticated user;
// catalog, user and template writes additionally need an admin role.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/auth/token", authHandler.Token)

	protected := app.Group("/", AuthMiddleware(deps.AuthUC))
	admin := RequireAdmin()

	// Users. The /me routes bypass the role gate, so they register first.
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Put("/me", userHandler.UpdateMe)
	users.Get("/", admin, userHandler.List)
	users.Post("/", admin, userHandler.Create)
	users.Get("/:id", admin, userHandler.GetByID)
	users.Put("/:id", admin, userHandler.Update)
	users.Put("/:id/password", admin, userHandler.ResetPassword)
	users.Delete("/:id", admin, userHandler.Delete)

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Post("/", admin, companyHandler.Create)
	companies.Put("/:id", admin, companyHandler.Update)
	companies.Delete("/:id", admin, companyHandler.Delete)

	// Wastes
	wastes := protected.Group("/wastes")
	wasteHandler := NewWasteHandler(deps.WasteUC)
	wastes.Get("/", wasteHandler.List)
	wastes.Get("/:id", wasteHandler.GetByID)
	wastes.Post("/", admin, wasteHandler.Create)
	wastes.Put("/:id", admin, wasteHandler.Update)
	wastes.Delete("/:id", admin, wasteHandler.Delete)

	// Works
	works := protected.Group("/works")
	workHandler := NewWorkHandler(deps.WorkUC)
	works.Get("/", workHandler.List)
	works.Get("/:id", workHandler.GetByID)
	works.Post("/", admin, workHandler.Create)
	works.Put("/:id", admin, workHandler.Update)
	works.Delete("/:id", admin, workHandler.Delete)

	// Offer templates
	offerTpls := protected.Group("/offer_tpls")
	offerTplHandler := NewOfferTemplateHandler(deps.TemplateUC, deps.OfferUC)
	offerTpls.Get("/", offerTplHandler.List)
	offerTpls.Get("/:id", offerTplHandler.GetByID)
	offerTpls.Get("/:id/download", offerTplHandler.Download)
	offerTpls.Post("/:id/build", offerTplHandler.Build)
	offerTpls.Post("/", admin, offerTplHandler.Create)
	offerTpls.Put("/:id", admin, offerTplHandler.Update)
	offerTpls.Delete("/:id", admin, offerTplHandler.Delete)

	// Offers
	offers := protected.Group("/offers")
	offerHandler := NewOfferHandler(deps.OfferUC)
	offers.Get("/", offerHandler.List)
	offers.Get("/:id", offerHandler.GetByID)
	offers.Get("/:id/download", offerHandler.Download)
	offers.Post("/", offerHandler.Create)
	offers.Put("/:id", offerHandler.Update)
	offers.Delete("/:id", offerHandler.Delete)

	// Agents
	agentHandler := NewAgentHandler(deps.AgentUC)
	protected.Get("/agents/:inn", agentHandler.GetByINN)
}
