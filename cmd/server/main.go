package main

import (
	"database/sql"
	"net/http"
	"os"

	_ "github.com/lib/pq"

	"ravepayments/config"
	_ "ravepayments/docs"
	"ravepayments/internal/adapters/auth"
	"ravepayments/internal/adapters/email"
	"ravepayments/internal/adapters/sms"
	httpdelivery "ravepayments/internal/delivery/http"
	"ravepayments/internal/delivery/http/controllers"
	"ravepayments/internal/delivery/http/middleware"
	"ravepayments/internal/delivery/http/web"
	"ravepayments/internal/domain"
	"ravepayments/internal/repository/jsonfile"
	"ravepayments/internal/repository/postgres"
	"ravepayments/internal/services"
)

// @title Rave Payments API
// @version 1.0
// @description Event payment intake: submission validation, pricing, persistence, and staff sales dashboard.
// @BasePath /
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		if cfg.Environment == "production" {
			logger.Error("JWT_SECRET is required in production")
			os.Exit(1)
		}
		cfg.JWTSecret = "dev-secret"
		logger.Warn("JWT_SECRET not set, using development secret")
	}

	var recordRepo domain.RecordRepository
	switch cfg.StoreBackend {
	case "postgres":
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("open database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("ping database", "err", err)
			os.Exit(1)
		}
		recordRepo = postgres.NewRecordRepository(db)
	default:
		recordRepo = jsonfile.NewRecordRepository(cfg.StorePath)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:        cfg.EmailProvider,
		FromAddress:     cfg.EmailFromAddress,
		FromName:        cfg.EmailFromName,
		Region:          cfg.SESRegion,
		AccessKeyID:     cfg.SESAccessKeyID,
		SecretAccessKey: cfg.SESSecretKey,
	})
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}
	smsSender := sms.NewWebhookSender(nil, cfg.SMSWebhookURL)

	catalog := domain.NewCatalog(cfg.Site.TicketPrice, cfg.Site.TablePrices)
	validator := services.NewValidator(catalog)
	salesService := services.NewSalesService(recordRepo)
	notifier := services.NewNotificationService(
		logger, mailer, email.NewTemplateRenderer(), smsSender,
		cfg.Site.MemberEmails, cfg.Site.MemberPhones,
	)
	paymentService := services.NewPaymentService(logger, validator, recordRepo, salesService, notifier)

	pages, err := web.NewRenderer()
	if err != nil {
		logger.Error("parse page templates", "err", err)
		os.Exit(1)
	}

	hasher := auth.NewBcryptHasher(12)
	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	paymentController := controllers.NewPaymentController(logger, paymentService, pages, catalog, cfg.Site.Members)
	adminController := controllers.NewAdminController(
		logger, salesService, pages, hasher, issuer,
		cfg.Site.AdminUsers, cfg.Environment == "production",
	)

	mux := httpdelivery.NewRouter(paymentController, adminController, verifier, "static")
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	addr := ":" + cfg.Port
	logger.Info("listening", "addr", addr, "env", cfg.Environment, "store", cfg.StoreBackend)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
