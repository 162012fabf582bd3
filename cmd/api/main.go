package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/glass-strategies/stormcommand/internal/config"
	"github.com/glass-strategies/stormcommand/internal/infra/database"
	"github.com/glass-strategies/stormcommand/internal/infra/feed"
	"github.com/glass-strategies/stormcommand/internal/infra/http/handlers"
	"github.com/glass-strategies/stormcommand/internal/infra/http/middleware"
	"github.com/glass-strategies/stormcommand/internal/infra/mail"
	"github.com/glass-strategies/stormcommand/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := database.NewDBConnection(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("opening database", zap.String("path", cfg.DatabasePath), zap.Error(err))
	}
	defer db.Close()

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	submissionRepo := database.NewSubmissionRepository(db)

	// Outbound collaborators
	newsClient := feed.NewClient(cfg.NewsFeedURL)
	var mailSender usecase.MailSender
	if cfg.MailHost != "" {
		mailSender = mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
	}

	// Use cases
	dashboardUC := usecase.NewDashboardUseCase(leadRepo, newsClient, logger)
	generateEmailUC := usecase.NewGenerateEmailUseCase(leadRepo, mailSender, logger)
	submitIdeaUC := usecase.NewSubmitIdeaUseCase(submissionRepo)
	reportsUC := usecase.NewReportsUseCase(leadRepo)
	exportUC := usecase.NewExportLeadsUseCase(leadRepo)

	// Handlers
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC, logger)
	emailHandler := handlers.NewEmailHandler(generateEmailUC, logger)
	collabHandler := handlers.NewCollabHandler(submitIdeaUC, logger)
	reportsHandler := handlers.NewReportsHandler(reportsUC, logger)
	exportHandler := handlers.NewExportHandler(exportUC, logger)
	pagesHandler := handlers.NewPagesHandler()
	healthHandler := handlers.NewHealthHandler(db, cfg.MailHost)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Get("/", dashboardHandler.Handle)
	r.Get("/email-generator", emailHandler.HandleForm)
	r.Post("/email-generator", emailHandler.HandleGenerate)
	r.Get("/about", pagesHandler.HandleAbout)
	r.Get("/strategy", pagesHandler.HandleStrategy)
	r.Get("/prompts", pagesHandler.HandlePrompts)
	r.Get("/collab", collabHandler.HandleList)
	r.Post("/collab", collabHandler.HandleSubmit)
	r.Get("/reports", reportsHandler.Handle)
	r.Get("/export-csv", exportHandler.Handle)
	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	logger.Info("storm command listening", zap.String("addr", addr), zap.String("db", cfg.DatabasePath))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
