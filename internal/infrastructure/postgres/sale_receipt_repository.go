package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.SaleReceiptRepository = (*SaleReceiptRepo)(nil)

// SaleReceiptRepo implementación del puerto SaleReceiptRepository sobre PostgreSQL.
type SaleReceiptRepo struct {
	pool *pgxpool.Pool
}

func NewSaleReceiptRepository(pool *pgxpool.Pool) *SaleReceiptRepo {
	return &SaleReceiptRepo{pool: pool}
}

// ListByCompany devuelve los recibos de venta de la empresa, más reciente primero.
func (r *SaleReceiptRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.SaleReceipt, error) {
	query := `
		SELECT id, company_id, user_id, receipt_number, COALESCE(customer_name, ''),
		       sale_date, payment_method, subtotal, tax, total, COALESCE(notes, ''), created_at
		FROM sale_receipts WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list sale receipts: %w", err)
	}
	defer rows.Close()

	var list []*entity.SaleReceipt
	for rows.Next() {
		var rec entity.SaleReceipt
		if err := rows.Scan(
			&rec.ID, &rec.CompanyID, &rec.UserID, &rec.ReceiptNumber, &rec.CustomerName,
			&rec.SaleDate, &rec.PaymentMethod, &rec.Subtotal, &rec.Tax, &rec.Total,
			&rec.Notes, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale receipt: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Create persiste un nuevo recibo de venta.
func (r *SaleReceiptRepo) Create(ctx context.Context, receipt *entity.SaleReceipt) error {
	query := `
		INSERT INTO sale_receipts (id, company_id, user_id, receipt_number, customer_name,
			sale_date, payment_method, subtotal, tax, total, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		receipt.ID, receipt.CompanyID, receipt.UserID, receipt.ReceiptNumber,
		receipt.CustomerName, receipt.SaleDate, receipt.PaymentMethod,
		receipt.Subtotal, receipt.Tax, receipt.Total, receipt.Notes, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale receipt: %w", err)
	}
	return nil
}
