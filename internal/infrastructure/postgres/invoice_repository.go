package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

// ListByCompany devuelve las facturas de la empresa, más reciente primero.
func (r *InvoiceRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Invoice, error) {
	query := `
		SELECT id, company_id, user_id, invoice_number, customer_name, COALESCE(customer_contact, ''),
		       invoice_date, due_date, items, subtotal, tax, total, paid_amount, status,
		       COALESCE(notes, ''), created_at
		FROM invoices WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var (
			inv      entity.Invoice
			rawItems []byte
		)
		if err := rows.Scan(
			&inv.ID, &inv.CompanyID, &inv.UserID, &inv.InvoiceNumber, &inv.CustomerName,
			&inv.CustomerContact, &inv.InvoiceDate, &inv.DueDate, &rawItems,
			&inv.Subtotal, &inv.Tax, &inv.Total, &inv.PaidAmount, &inv.Status,
			&inv.Notes, &inv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		items, err := decodeItems(rawItems)
		if err != nil {
			return nil, fmt.Errorf("decode invoice items: %w", err)
		}
		inv.Items = items
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Create persiste una nueva factura.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	rawItems, err := encodeItems(invoice.Items)
	if err != nil {
		return fmt.Errorf("encode invoice items: %w", err)
	}
	query := `
		INSERT INTO invoices (id, company_id, user_id, invoice_number, customer_name, customer_contact,
			invoice_date, due_date, items, subtotal, tax, total, paid_amount, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = r.pool.Exec(ctx, query,
		invoice.ID, invoice.CompanyID, invoice.UserID, invoice.InvoiceNumber,
		invoice.CustomerName, invoice.CustomerContact, invoice.InvoiceDate, invoice.DueDate,
		rawItems, invoice.Subtotal, invoice.Tax, invoice.Total, invoice.PaidAmount,
		invoice.Status, invoice.Notes, invoice.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}
