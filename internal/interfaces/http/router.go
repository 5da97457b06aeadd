package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Contable-api/internal/application/analytics"
	"github.com/jhoicas/Contable-api/internal/application/auth"
	"github.com/jhoicas/Contable-api/internal/application/session"
	"github.com/jhoicas/Contable-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CompanyUC     *usecase.CompanyUseCase
	BankAccountUC *usecase.BankAccountUseCase
	PurchaseUC    *usecase.PurchaseOrderUseCase
	SalesUC       *usecase.SalesOrderUseCase
	InvoiceUC     *usecase.InvoiceUseCase
	ReceiptUC     *usecase.SaleReceiptUseCase
	ExpenseUC     *usecase.ExpenseUseCase
	DashboardUC   *analytics.DashboardUseCase
	ReportUC      *analytics.ReportUseCase
	Sessions      *session.Manager
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Session (protegido)
	sessionHandler := NewSessionHandler(deps.Sessions)
	protected.Get("/session", sessionHandler.Get)
	protected.Post("/session/refresh", sessionHandler.Refresh)

	// Companies (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Sessions)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Post("/select/:id", sessionHandler.Select)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	// Bank accounts (protegido)
	accounts := protected.Group("/bank-accounts")
	accountHandler := NewBankAccountHandler(deps.BankAccountUC, deps.Sessions)
	accounts.Get("/", accountHandler.List)
	accounts.Post("/", accountHandler.Create)
	accounts.Put("/:id", accountHandler.Update)
	accounts.Delete("/:id", accountHandler.Delete)

	// Purchase orders (protegido)
	purchases := protected.Group("/purchase-orders")
	purchaseHandler := NewPurchaseOrderHandler(deps.PurchaseUC, deps.Sessions)
	purchases.Get("/", purchaseHandler.List)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/export/pdf", purchaseHandler.ExportPDF)
	purchases.Get("/export/xlsx", purchaseHandler.ExportXLSX)

	// Sales orders (protegido)
	sales := protected.Group("/sales-orders")
	salesHandler := NewSalesOrderHandler(deps.SalesUC, deps.Sessions)
	sales.Get("/", salesHandler.List)
	sales.Post("/", salesHandler.Create)
	sales.Get("/export/pdf", salesHandler.ExportPDF)
	sales.Get("/export/xlsx", salesHandler.ExportXLSX)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.Sessions)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/export/pdf", invoiceHandler.ExportPDF)
	invoices.Get("/export/xlsx", invoiceHandler.ExportXLSX)

	// Sale receipts (protegido)
	receipts := protected.Group("/sale-receipts")
	receiptHandler := NewSaleReceiptHandler(deps.ReceiptUC, deps.Sessions)
	receipts.Get("/", receiptHandler.List)
	receipts.Post("/", receiptHandler.Create)
	receipts.Get("/export/pdf", receiptHandler.ExportPDF)
	receipts.Get("/export/xlsx", receiptHandler.ExportXLSX)

	// Expenses (protegido)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC, deps.Sessions)
	expenses.Get("/", expenseHandler.List)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/export/pdf", expenseHandler.ExportPDF)
	expenses.Get("/export/xlsx", expenseHandler.ExportXLSX)

	// Dashboard y reportes (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Sessions)
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)

	reportHandler := NewReportHandler(deps.ReportUC, deps.Sessions)
	protected.Get("/reports/profit-loss", reportHandler.GetProfitLoss)
	protected.Get("/reports/profit-loss/export/pdf", reportHandler.ExportPDF)
	protected.Get("/reports/profit-loss/export/xlsx", reportHandler.ExportXLSX)
}
