package repository

import (
	"context"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
)

// Puertos de persistencia para los registros contables. Todos comparten el
// mismo contrato: ListByCompany devuelve las filas de la empresa ordenadas por
// creación descendente, Create inserta una fila ya armada por el caso de uso
// (totales derivados, company_id y user_id estampados desde el contexto del
// llamador, nunca desde el formulario).

// BankAccountRepository añade edición y borrado: las cuentas bancarias son el
// único registro totalmente mutable. Update y Delete operan solo por clave
// primaria, sin revalidar la empresa — el llamador obtuvo el id de un listado
// ya alcanzado.
type BankAccountRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]*entity.BankAccount, error)
	Create(ctx context.Context, account *entity.BankAccount) error
	Update(ctx context.Context, account *entity.BankAccount) error
	Delete(ctx context.Context, id string) error
}

// PurchaseOrderRepository añade el filtro por estado en servidor, usado por el
// dashboard para contar órdenes pendientes sin traer todas las filas.
type PurchaseOrderRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]*entity.PurchaseOrder, error)
	ListByCompanyAndStatus(ctx context.Context, companyID, status string) ([]*entity.PurchaseOrder, error)
	Create(ctx context.Context, order *entity.PurchaseOrder) error
}

type SalesOrderRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]*entity.SalesOrder, error)
	Create(ctx context.Context, order *entity.SalesOrder) error
}

type InvoiceRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Invoice, error)
	Create(ctx context.Context, invoice *entity.Invoice) error
}

type SaleReceiptRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]*entity.SaleReceipt, error)
	Create(ctx context.Context, receipt *entity.SaleReceipt) error
}

type ExpenseRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Expense, error)
	Create(ctx context.Context, expense *entity.Expense) error
}
