package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/application/usecase"
	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type memPORepo struct{ created []*entity.PurchaseOrder }

func (m *memPORepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.PurchaseOrder, error) {
	return m.created, nil
}
func (m *memPORepo) ListByCompanyAndStatus(ctx context.Context, companyID, status string) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range m.created {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}
func (m *memPORepo) Create(ctx context.Context, o *entity.PurchaseOrder) error {
	m.created = append(m.created, o)
	return nil
}

type memSalesRepo struct{ created []*entity.SalesOrder }

func (m *memSalesRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.SalesOrder, error) {
	return m.created, nil
}
func (m *memSalesRepo) Create(ctx context.Context, o *entity.SalesOrder) error {
	m.created = append(m.created, o)
	return nil
}

type memInvoiceRepo struct{ created []*entity.Invoice }

func (m *memInvoiceRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Invoice, error) {
	return m.created, nil
}
func (m *memInvoiceRepo) Create(ctx context.Context, i *entity.Invoice) error {
	m.created = append(m.created, i)
	return nil
}

type memReceiptRepo struct{ created []*entity.SaleReceipt }

func (m *memReceiptRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.SaleReceipt, error) {
	return m.created, nil
}
func (m *memReceiptRepo) Create(ctx context.Context, r *entity.SaleReceipt) error {
	m.created = append(m.created, r)
	return nil
}

type memExpenseRepo struct{ created []*entity.Expense }

func (m *memExpenseRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Expense, error) {
	return m.created, nil
}
func (m *memExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	m.created = append(m.created, e)
	return nil
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// ──────────────────────────────────────────────────────────────────────────────
// Derivación del total: primario + impuesto, "no numérico → 0"
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseOrderCreate_TotalEsSubtotalMasImpuesto(t *testing.T) {
	repo := &memPORepo{}
	uc := usecase.NewPurchaseOrderUseCase(repo)

	out, err := uc.Create(context.Background(), "c1", "u1", dto.CreatePurchaseOrderRequest{
		PONumber:     "PO-001",
		SupplierName: "Proveedor SA",
		OrderDate:    "2026-03-01",
		Subtotal:     "1000",
		Tax:          "160",
	})
	require.NoError(t, err)

	assert.True(t, dec(1160).Equal(out.Total))
	assert.Equal(t, entity.OrderStatusPending, out.Status, "toda orden nace pending")
	require.Len(t, repo.created, 1)
	assert.Equal(t, "c1", repo.created[0].CompanyID, "company_id se estampa del contexto, no del formulario")
	assert.Equal(t, "u1", repo.created[0].UserID)
}

func TestPurchaseOrderCreate_ImpuestoOmitidoCuentaComoCero(t *testing.T) {
	uc := usecase.NewPurchaseOrderUseCase(&memPORepo{})

	out, err := uc.Create(context.Background(), "c1", "u1", dto.CreatePurchaseOrderRequest{
		PONumber:     "PO-002",
		SupplierName: "Proveedor SA",
		OrderDate:    "2026-03-01",
		Subtotal:     "500",
	})
	require.NoError(t, err)
	assert.True(t, dec(500).Equal(out.Total))
}

func TestSalesOrderCreate_MontoNoNumericoCuentaComoCero(t *testing.T) {
	uc := usecase.NewSalesOrderUseCase(&memSalesRepo{})

	out, err := uc.Create(context.Background(), "c1", "u1", dto.CreateSalesOrderRequest{
		SONumber:     "SO-001",
		CustomerName: "Cliente SA",
		OrderDate:    "2026-03-01",
		Subtotal:     "abc",
		Tax:          "50",
	})
	require.NoError(t, err)
	assert.True(t, dec(50).Equal(out.Total), "subtotal ilegible aporta cero, el envío no se bloquea")
}

func TestSalesOrderCreate_LasLineasNoAfectanElTotal(t *testing.T) {
	uc := usecase.NewSalesOrderUseCase(&memSalesRepo{})

	// Las líneas suman 9999 pero el total sale de los campos del formulario.
	out, err := uc.Create(context.Background(), "c1", "u1", dto.CreateSalesOrderRequest{
		SONumber:     "SO-002",
		CustomerName: "Cliente SA",
		OrderDate:    "2026-03-01",
		Items: []dto.OrderItemDTO{
			{Description: "Servicio", Quantity: dec(3), UnitPrice: dec(3333), Amount: dec(9999)},
		},
		Subtotal: "100",
		Tax:      "0",
	})
	require.NoError(t, err)
	assert.True(t, dec(100).Equal(out.Total))
	assert.Len(t, out.Items, 1, "las líneas se conservan tal cual")
}

func TestInvoiceCreate_PagadoArrancaEnCero(t *testing.T) {
	uc := usecase.NewInvoiceUseCase(&memInvoiceRepo{})

	out, err := uc.Create(context.Background(), "c1", "u1", dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-001",
		CustomerName:  "Cliente SA",
		InvoiceDate:   "2026-03-01",
		Subtotal:      "1000",
		Tax:           "0",
	})
	require.NoError(t, err)

	assert.True(t, out.PaidAmount.IsZero(), "paid_amount nunca viene del formulario")
	assert.Equal(t, entity.InvoiceStatusPending, out.Status)
	assert.True(t, dec(1000).Equal(out.Total))
}

func TestSaleReceiptCreate_SinEstado(t *testing.T) {
	uc := usecase.NewSaleReceiptUseCase(&memReceiptRepo{})

	out, err := uc.Create(context.Background(), "c1", "u1", dto.CreateSaleReceiptRequest{
		ReceiptNumber: "RCP-001",
		CustomerName:  "Cliente SA",
		SaleDate:      "2026-03-01",
		PaymentMethod: entity.PaymentMethodMpesa,
		Subtotal:      "250",
		Tax:           "40",
	})
	require.NoError(t, err)
	assert.True(t, dec(290).Equal(out.Total))
	assert.Equal(t, entity.PaymentMethodMpesa, out.PaymentMethod)
}

func TestExpenseCreate_TotalEsMontoMasImpuesto(t *testing.T) {
	uc := usecase.NewExpenseUseCase(&memExpenseRepo{})

	// Para gastos el monto primario es amount, no subtotal.
	out, err := uc.Create(context.Background(), "c1", "u1", dto.CreateExpenseRequest{
		ExpenseNumber: "EXP-001",
		Vendor:        "Papelería SA",
		Category:      entity.ExpenseCategoryOffice,
		ExpenseDate:   "2026-03-01",
		PaymentMethod: entity.PaymentMethodCash,
		Amount:        "300",
		Tax:           "48",
	})
	require.NoError(t, err)
	assert.True(t, dec(348).Equal(out.Total))
	assert.Equal(t, entity.ExpenseStatusPending, out.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fechas y guardas de empresa activa
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_FechaInvalidaCaeAHoy(t *testing.T) {
	uc := usecase.NewExpenseUseCase(&memExpenseRepo{})

	out, err := uc.Create(context.Background(), "c1", "u1", dto.CreateExpenseRequest{
		ExpenseNumber: "EXP-002",
		Vendor:        "Papelería SA",
		Category:      entity.ExpenseCategoryOther,
		ExpenseDate:   "no-es-fecha",
		PaymentMethod: entity.PaymentMethodCash,
		Amount:        "10",
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), out.ExpenseDate, time.Minute, "fecha ilegible cae a la fecha actual")
}

func TestCreate_FechaOpcionalInvalidaQuedaNil(t *testing.T) {
	uc := usecase.NewPurchaseOrderUseCase(&memPORepo{})

	out, err := uc.Create(context.Background(), "c1", "u1", dto.CreatePurchaseOrderRequest{
		PONumber:     "PO-003",
		SupplierName: "Proveedor SA",
		OrderDate:    "2026-03-01",
		DeliveryDate: "31/12/2026", // formato equivocado
		Subtotal:     "1",
	})
	require.NoError(t, err)
	assert.Nil(t, out.DeliveryDate)
}

func TestCreate_SinEmpresaActivaRechaza(t *testing.T) {
	uc := usecase.NewInvoiceUseCase(&memInvoiceRepo{})

	_, err := uc.Create(context.Background(), "", "u1", dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-002",
		CustomerName:  "Cliente SA",
		InvoiceDate:   "2026-03-01",
	})
	assert.ErrorIs(t, err, domain.ErrNoCompanySelected)
}

func TestList_SinEmpresaActivaListaVacia(t *testing.T) {
	repo := &memExpenseRepo{created: []*entity.Expense{{ID: "e1"}}}
	uc := usecase.NewExpenseUseCase(repo)

	out, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, out.Items, "sin empresa activa la lista es vacía, no error")
}
