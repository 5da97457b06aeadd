// Package analytics deriva las cifras del dashboard y del reporte de pérdidas
// y ganancias. No existe almacenamiento de agregados: cada pasada recalcula
// desde cero sobre los registros recién leídos de la empresa activa, sin
// memoización entre pasadas.
package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
	"github.com/jhoicas/Contable-api/pkg/logger"
)

// DashboardUseCase calcula las estadísticas del dashboard de la empresa activa.
//
// Cinco consultas en paralelo:
//  1. órdenes de venta       → totales
//  2. gastos                 → totales
//  3. facturas               → totales + estado
//  4. órdenes de compra      → solo las pending (filtradas en servidor)
//  5. recibos de venta       → totales
//
// Un sub-fetch fallido degrada su término a cero; la pasada nunca falla
// completa. Empresa sin registros ⇒ todas las cifras en cero, no un error.
type DashboardUseCase struct {
	salesRepo   repository.SalesOrderRepository
	expenseRepo repository.ExpenseRepository
	invoiceRepo repository.InvoiceRepository
	poRepo      repository.PurchaseOrderRepository
	receiptRepo repository.SaleReceiptRepository
	log         *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	salesRepo repository.SalesOrderRepository,
	expenseRepo repository.ExpenseRepository,
	invoiceRepo repository.InvoiceRepository,
	poRepo repository.PurchaseOrderRepository,
	receiptRepo repository.SaleReceiptRepository,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		salesRepo:   salesRepo,
		expenseRepo: expenseRepo,
		invoiceRepo: invoiceRepo,
		poRepo:      poRepo,
		receiptRepo: receiptRepo,
		log:         log,
	}
}

// GetStats construye el DashboardStatsDTO para la empresa indicada.
// companyID vacío devuelve cifras en cero sin consultar.
func (uc *DashboardUseCase) GetStats(ctx context.Context, companyID string) *dto.DashboardStatsDTO {
	stats := &dto.DashboardStatsDTO{
		TotalSales:    decimal.Zero,
		TotalExpenses: decimal.Zero,
		Profit:        decimal.Zero,
	}
	if companyID == "" {
		return stats
	}

	salesCh := make(chan fetched[*entity.SalesOrder], 1)
	expenseCh := make(chan fetched[*entity.Expense], 1)
	invoiceCh := make(chan fetched[*entity.Invoice], 1)
	poCh := make(chan fetched[*entity.PurchaseOrder], 1)
	receiptCh := make(chan fetched[*entity.SaleReceipt], 1)

	go func() {
		rows, err := uc.salesRepo.ListByCompany(ctx, companyID)
		salesCh <- fetched[*entity.SalesOrder]{rows, err}
	}()
	go func() {
		rows, err := uc.expenseRepo.ListByCompany(ctx, companyID)
		expenseCh <- fetched[*entity.Expense]{rows, err}
	}()
	go func() {
		rows, err := uc.invoiceRepo.ListByCompany(ctx, companyID)
		invoiceCh <- fetched[*entity.Invoice]{rows, err}
	}()
	go func() {
		rows, err := uc.poRepo.ListByCompanyAndStatus(ctx, companyID, entity.OrderStatusPending)
		poCh <- fetched[*entity.PurchaseOrder]{rows, err}
	}()
	go func() {
		rows, err := uc.receiptRepo.ListByCompany(ctx, companyID)
		receiptCh <- fetched[*entity.SaleReceipt]{rows, err}
	}()

	salesOrders := rowsOrEmpty(<-salesCh, uc.log, "sales_orders")
	expenses := rowsOrEmpty(<-expenseCh, uc.log, "expenses")
	invoices := rowsOrEmpty(<-invoiceCh, uc.log, "invoices")
	pendingPOs := rowsOrEmpty(<-poCh, uc.log, "purchase_orders")
	receipts := rowsOrEmpty(<-receiptCh, uc.log, "sale_receipts")

	totalSales := decimal.Zero
	for _, o := range salesOrders {
		totalSales = totalSales.Add(o.Total)
	}
	for _, r := range receipts {
		totalSales = totalSales.Add(r.Total)
	}

	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Total)
	}

	unpaid := 0
	for _, inv := range invoices {
		// El conteo usa literalmente "unpaid" y "partial"; "pending" no cuenta.
		if inv.Status == "unpaid" || inv.Status == entity.InvoiceStatusPartial {
			unpaid++
		}
	}

	stats.TotalSales = totalSales
	stats.TotalExpenses = totalExpenses
	stats.TotalInvoices = len(invoices)
	stats.UnpaidInvoices = unpaid
	stats.PendingPurchaseOrders = len(pendingPOs)
	stats.Profit = totalSales.Sub(totalExpenses)
	return stats
}
