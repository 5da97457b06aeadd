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
	appanalytics "github.com/jhoicas/Contable-api/internal/application/analytics"
	"github.com/jhoicas/Contable-api/internal/application/auth"
	"github.com/jhoicas/Contable-api/internal/application/session"
	"github.com/jhoicas/Contable-api/internal/application/usecase"
	"github.com/jhoicas/Contable-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Contable-api/internal/interfaces/http"
	"github.com/jhoicas/Contable-api/pkg/config"
	"github.com/jhoicas/Contable-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	prefRepo := postgres.NewPreferenceRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	accountRepo := postgres.NewBankAccountRepository(pool)
	purchaseRepo := postgres.NewPurchaseOrderRepository(pool)
	salesRepo := postgres.NewSalesOrderRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	receiptRepo := postgres.NewSaleReceiptRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)

	sessions := session.NewManager(companyRepo, prefRepo, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	accountUC := usecase.NewBankAccountUseCase(accountRepo)
	purchaseUC := usecase.NewPurchaseOrderUseCase(purchaseRepo)
	salesUC := usecase.NewSalesOrderUseCase(salesRepo)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo)
	receiptUC := usecase.NewSaleReceiptUseCase(receiptRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)

	dashboardUC := appanalytics.NewDashboardUseCase(
		salesRepo, expenseRepo, invoiceRepo, purchaseRepo, receiptRepo, log,
	)
	reportUC := appanalytics.NewReportUseCase(
		salesRepo, expenseRepo, receiptRepo, invoiceRepo, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Contable API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		BankAccountUC: accountUC,
		PurchaseUC:    purchaseUC,
		SalesUC:       salesUC,
		InvoiceUC:     invoiceUC,
		ReceiptUC:     receiptUC,
		ExpenseUC:     expenseUC,
		DashboardUC:   dashboardUC,
		ReportUC:      reportUC,
		Sessions:      sessions,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
