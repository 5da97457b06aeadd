package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Contable-api/internal/application/analytics"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeSalesRepo struct {
	rows []*entity.SalesOrder
	err  error
}

func (f *fakeSalesRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.SalesOrder, error) {
	return f.rows, f.err
}
func (f *fakeSalesRepo) Create(ctx context.Context, o *entity.SalesOrder) error { return nil }

type fakeExpenseRepo struct {
	rows []*entity.Expense
	err  error
}

func (f *fakeExpenseRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Expense, error) {
	return f.rows, f.err
}
func (f *fakeExpenseRepo) Create(ctx context.Context, e *entity.Expense) error { return nil }

type fakeInvoiceRepo struct {
	rows []*entity.Invoice
	err  error
}

func (f *fakeInvoiceRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Invoice, error) {
	return f.rows, f.err
}
func (f *fakeInvoiceRepo) Create(ctx context.Context, i *entity.Invoice) error { return nil }

type fakePORepo struct {
	pending []*entity.PurchaseOrder
	err     error
}

func (f *fakePORepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.PurchaseOrder, error) {
	return f.pending, f.err
}
func (f *fakePORepo) ListByCompanyAndStatus(ctx context.Context, companyID, status string) ([]*entity.PurchaseOrder, error) {
	return f.pending, f.err
}
func (f *fakePORepo) Create(ctx context.Context, o *entity.PurchaseOrder) error { return nil }

type fakeReceiptRepo struct {
	rows []*entity.SaleReceipt
	err  error
}

func (f *fakeReceiptRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.SaleReceipt, error) {
	return f.rows, f.err
}
func (f *fakeReceiptRepo) Create(ctx context.Context, r *entity.SaleReceipt) error { return nil }

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func salesOrder(total float64) *entity.SalesOrder   { return &entity.SalesOrder{Total: dec(total)} }
func receipt(total float64) *entity.SaleReceipt     { return &entity.SaleReceipt{Total: dec(total)} }
func expense(total float64) *entity.Expense         { return &entity.Expense{Total: dec(total)} }
func invoiceWith(status string, total, paid float64) *entity.Invoice {
	return &entity.Invoice{Status: status, Total: dec(total), PaidAmount: dec(paid)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_VentasGastosYUtilidad(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		&fakeSalesRepo{rows: []*entity.SalesOrder{salesOrder(1000)}},
		&fakeExpenseRepo{rows: []*entity.Expense{expense(500)}},
		&fakeInvoiceRepo{},
		&fakePORepo{},
		&fakeReceiptRepo{rows: []*entity.SaleReceipt{receipt(200)}},
		logger.Nop(),
	)

	stats := uc.GetStats(context.Background(), "c1")

	// Ventas = órdenes de venta + recibos; utilidad = ventas - gastos.
	assert.True(t, dec(1200).Equal(stats.TotalSales), "ventas: %s", stats.TotalSales)
	assert.True(t, dec(500).Equal(stats.TotalExpenses))
	assert.True(t, dec(700).Equal(stats.Profit))
}

func TestDashboard_ConteoDeFacturasImpagas(t *testing.T) {
	invoices := []*entity.Invoice{
		invoiceWith("unpaid", 100, 0),
		invoiceWith("partial", 100, 50),
		invoiceWith("paid", 100, 100),
		// "pending" NO cuenta como impaga: el filtro usa literalmente
		// "unpaid" y "partial".
		invoiceWith("pending", 100, 0),
	}
	uc := analytics.NewDashboardUseCase(
		&fakeSalesRepo{}, &fakeExpenseRepo{},
		&fakeInvoiceRepo{rows: invoices},
		&fakePORepo{}, &fakeReceiptRepo{},
		logger.Nop(),
	)

	stats := uc.GetStats(context.Background(), "c1")

	assert.Equal(t, 4, stats.TotalInvoices)
	assert.Equal(t, 2, stats.UnpaidInvoices)
}

func TestDashboard_OrdenesDeCompraPendientes(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		&fakeSalesRepo{}, &fakeExpenseRepo{}, &fakeInvoiceRepo{},
		&fakePORepo{pending: []*entity.PurchaseOrder{{}, {}, {}}},
		&fakeReceiptRepo{},
		logger.Nop(),
	)

	stats := uc.GetStats(context.Background(), "c1")
	assert.Equal(t, 3, stats.PendingPurchaseOrders)
}

func TestDashboard_SubConsultaFallidaDegradaACero(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		&fakeSalesRepo{err: errors.New("db caída")},
		&fakeExpenseRepo{rows: []*entity.Expense{expense(300)}},
		&fakeInvoiceRepo{},
		&fakePORepo{},
		&fakeReceiptRepo{rows: []*entity.SaleReceipt{receipt(100)}},
		logger.Nop(),
	)

	stats := uc.GetStats(context.Background(), "c1")

	// El fallo de órdenes de venta aporta cero, el resto sobrevive.
	assert.True(t, dec(100).Equal(stats.TotalSales))
	assert.True(t, dec(300).Equal(stats.TotalExpenses))
	assert.True(t, dec(-200).Equal(stats.Profit))
}

func TestDashboard_SinEmpresaActivaTodoEnCero(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		&fakeSalesRepo{rows: []*entity.SalesOrder{salesOrder(999)}},
		&fakeExpenseRepo{}, &fakeInvoiceRepo{}, &fakePORepo{}, &fakeReceiptRepo{},
		logger.Nop(),
	)

	stats := uc.GetStats(context.Background(), "")

	assert.True(t, stats.TotalSales.IsZero(), "sin empresa no se consulta nada")
	assert.True(t, stats.Profit.IsZero())
	assert.Zero(t, stats.TotalInvoices)
}

func TestDashboard_EmpresaSinRegistrosTodoEnCero(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		&fakeSalesRepo{}, &fakeExpenseRepo{}, &fakeInvoiceRepo{},
		&fakePORepo{}, &fakeReceiptRepo{},
		logger.Nop(),
	)

	stats := uc.GetStats(context.Background(), "c1")

	assert.True(t, stats.TotalSales.IsZero())
	assert.True(t, stats.TotalExpenses.IsZero())
	assert.True(t, stats.Profit.IsZero())
	assert.Zero(t, stats.UnpaidInvoices)
	assert.Zero(t, stats.PendingPurchaseOrders)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pérdidas y ganancias
// ──────────────────────────────────────────────────────────────────────────────

func TestProfitLoss_IngresoDeFacturasUsaMontoPagado(t *testing.T) {
	uc := analytics.NewReportUseCase(
		&fakeSalesRepo{},
		&fakeExpenseRepo{rows: []*entity.Expense{expense(200)}},
		&fakeReceiptRepo{rows: []*entity.SaleReceipt{receipt(300)}},
		&fakeInvoiceRepo{rows: []*entity.Invoice{invoiceWith("partial", 1000, 400)}},
		logger.Nop(),
	)

	report := uc.GetProfitLoss(context.Background(), "c1")

	// Ingresos = recibo 300 + pagado de factura 400 (no el total 1000).
	assert.True(t, dec(700).Equal(report.TotalRevenue), "ingresos: %s", report.TotalRevenue)
	assert.True(t, dec(200).Equal(report.TotalExpenses))
	assert.True(t, dec(500).Equal(report.GrossProfit))
	assert.True(t, report.GrossProfit.Equal(report.NetProfit), "sin capa de ajustes: neta = bruta")
	assert.Equal(t, "71.43", report.ProfitMargin.StringFixed(2))
}

func TestProfitLoss_MargenCeroConIngresoCero(t *testing.T) {
	uc := analytics.NewReportUseCase(
		&fakeSalesRepo{},
		&fakeExpenseRepo{rows: []*entity.Expense{expense(400)}},
		&fakeReceiptRepo{}, &fakeInvoiceRepo{},
		logger.Nop(),
	)

	report := uc.GetProfitLoss(context.Background(), "c1")

	assert.True(t, report.TotalRevenue.IsZero())
	assert.True(t, dec(-400).Equal(report.NetProfit))
	assert.True(t, report.ProfitMargin.IsZero(), "margen exactamente 0 sin ingresos, nunca división por cero")
}

func TestProfitLoss_SubConsultaFallidaDegradaACero(t *testing.T) {
	uc := analytics.NewReportUseCase(
		&fakeSalesRepo{rows: []*entity.SalesOrder{salesOrder(500)}},
		&fakeExpenseRepo{err: errors.New("timeout")},
		&fakeReceiptRepo{}, &fakeInvoiceRepo{},
		logger.Nop(),
	)

	report := uc.GetProfitLoss(context.Background(), "c1")

	assert.True(t, dec(500).Equal(report.TotalRevenue))
	assert.True(t, report.TotalExpenses.IsZero(), "gastos fallidos aportan cero, la pasada no aborta")
	assert.True(t, dec(500).Equal(report.NetProfit))
}

func TestProfitLoss_SinEmpresaActivaTodoEnCero(t *testing.T) {
	uc := analytics.NewReportUseCase(
		&fakeSalesRepo{rows: []*entity.SalesOrder{salesOrder(999)}},
		&fakeExpenseRepo{}, &fakeReceiptRepo{}, &fakeInvoiceRepo{},
		logger.Nop(),
	)

	report := uc.GetProfitLoss(context.Background(), "")

	assert.True(t, report.TotalRevenue.IsZero())
	assert.True(t, report.ProfitMargin.IsZero())
}
