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

	agentapp "github.com/mshagov/ecooffer-api/internal/application/agent"
	"github.com/mshagov/ecooffer-api/internal/application/auth"
	"github.com/mshagov/ecooffer-api/internal/application/document"
	"github.com/mshagov/ecooffer-api/internal/application/usecase"
	"github.com/mshagov/ecooffer-api/internal/infrastructure/dadata"
	"github.com/mshagov/ecooffer-api/internal/infrastructure/docx"
	"github.com/mshagov/ecooffer-api/internal/infrastructure/gotenberg"
	"github.com/mshagov/ecooffer-api/internal/infrastructure/postgres"
	httpRouter "github.com/mshagov/ecooffer-api/internal/interfaces/http"
	"github.com/mshagov/ecooffer-api/pkg/config"
	"github.com/mshagov/ecooffer-api/pkg/logger"
)

// Blob buckets for document files.
const (
	bucketOfferTpls = "offer_tpls"
	bucketOffers    = "offers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	wasteRepo := postgres.NewWasteRepository(pool)
	workRepo := postgres.NewWorkRepository(pool)
	offerTplRepo := postgres.NewOfferTemplateRepository(pool)
	offerRepo := postgres.NewOfferRepository(pool)
	offerTplBlobs := postgres.NewBlobStore(pool, bucketOfferTpls)
	offerBlobs := postgres.NewBlobStore(pool, bucketOffers)

	renderer := docx.NewRenderer()
	converter := gotenberg.NewClient(cfg.Convert.URL)
	registry := dadata.NewClient(cfg.Agents.APIKey)

	authUC := auth.NewUseCase(userRepo, auth.Config{
		Secret:       cfg.JWT.Secret,
		ExpMinutes:   cfg.JWT.Expiration,
		Issuer:       cfg.JWT.Issuer,
		RootLogin:    cfg.Root.Login,
		RootPassword: cfg.Root.Password,
	})
	userUC := usecase.NewUserUseCase(userRepo, log)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	wasteUC := usecase.NewWasteUseCase(wasteRepo)
	workUC := usecase.NewWorkUseCase(workRepo)
	templateUC := document.NewTemplateUseCase(offerTplRepo, offerTplBlobs, renderer, converter, log)
	offerUC := document.NewOfferUseCase(offerRepo, offerTplRepo, offerBlobs, offerTplBlobs, renderer, converter, log)
	agentUC := agentapp.NewUseCase(registry)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    32 * 1024 * 1024, // base64 docx uploads
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "EcoOffer API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		CompanyUC:  companyUC,
		WasteUC:    wasteUC,
		WorkUC:     workUC,
		TemplateUC: templateUC,
		OfferUC:    offerUC,
		AgentUC:    agentUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("HTTP server")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
