package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
	"github.com/jhoicas/Contable-api/pkg/logger"
)

// ReportUseCase calcula el estado de pérdidas y ganancias de la empresa activa.
//
// Cuatro consultas en paralelo: órdenes de venta, gastos, recibos de venta y
// facturas. El ingreso de facturas suma PaidAmount, no Total: el monto aún no
// cobrado de una factura no es ingreso realizado y contarlo lo duplicaría
// cuando se cobre.
type ReportUseCase struct {
	salesRepo   repository.SalesOrderRepository
	expenseRepo repository.ExpenseRepository
	receiptRepo repository.SaleReceiptRepository
	invoiceRepo repository.InvoiceRepository
	log         *logger.Logger
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	salesRepo repository.SalesOrderRepository,
	expenseRepo repository.ExpenseRepository,
	receiptRepo repository.SaleReceiptRepository,
	invoiceRepo repository.InvoiceRepository,
	log *logger.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		salesRepo:   salesRepo,
		expenseRepo: expenseRepo,
		receiptRepo: receiptRepo,
		invoiceRepo: invoiceRepo,
		log:         log,
	}
}

// GetProfitLoss construye el ProfitLossDTO para la empresa indicada.
//
//	totalRevenue = Σ salesOrder.Total + Σ saleReceipt.Total + Σ invoice.PaidAmount
//	grossProfit  = totalRevenue - totalExpenses
//	netProfit    = grossProfit   (sin capa de ajustes fiscales)
//	profitMargin = netProfit / totalRevenue * 100, exactamente 0 si revenue = 0
//
// companyID vacío devuelve cifras en cero sin consultar.
func (uc *ReportUseCase) GetProfitLoss(ctx context.Context, companyID string) *dto.ProfitLossDTO {
	report := &dto.ProfitLossDTO{
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
		GrossProfit:   decimal.Zero,
		NetProfit:     decimal.Zero,
		ProfitMargin:  decimal.Zero,
	}
	if companyID == "" {
		return report
	}

	salesCh := make(chan fetched[*entity.SalesOrder], 1)
	expenseCh := make(chan fetched[*entity.Expense], 1)
	receiptCh := make(chan fetched[*entity.SaleReceipt], 1)
	invoiceCh := make(chan fetched[*entity.Invoice], 1)

	go func() {
		rows, err := uc.salesRepo.ListByCompany(ctx, companyID)
		salesCh <- fetched[*entity.SalesOrder]{rows, err}
	}()
	go func() {
		rows, err := uc.expenseRepo.ListByCompany(ctx, companyID)
		expenseCh <- fetched[*entity.Expense]{rows, err}
	}()
	go func() {
		rows, err := uc.receiptRepo.ListByCompany(ctx, companyID)
		receiptCh <- fetched[*entity.SaleReceipt]{rows, err}
	}()
	go func() {
		rows, err := uc.invoiceRepo.ListByCompany(ctx, companyID)
		invoiceCh <- fetched[*entity.Invoice]{rows, err}
	}()

	salesOrders := rowsOrEmpty(<-salesCh, uc.log, "sales_orders")
	expenses := rowsOrEmpty(<-expenseCh, uc.log, "expenses")
	receipts := rowsOrEmpty(<-receiptCh, uc.log, "sale_receipts")
	invoices := rowsOrEmpty(<-invoiceCh, uc.log, "invoices")

	revenue := decimal.Zero
	for _, o := range salesOrders {
		revenue = revenue.Add(o.Total)
	}
	for _, r := range receipts {
		revenue = revenue.Add(r.Total)
	}
	for _, inv := range invoices {
		revenue = revenue.Add(inv.PaidAmount)
	}

	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Total)
	}

	grossProfit := revenue.Sub(totalExpenses)
	netProfit := grossProfit

	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = netProfit.Div(revenue).Mul(decimal.NewFromInt(100)).Round(2)
	}

	report.TotalRevenue = revenue
	report.TotalExpenses = totalExpenses
	report.GrossProfit = grossProfit
	report.NetProfit = netProfit
	report.ProfitMargin = margin
	return report
}
