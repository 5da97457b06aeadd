package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	pool *pgxpool.Pool
}

func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepo {
	return &ExpenseRepo{pool: pool}
}

// ListByCompany devuelve los gastos de la empresa, más reciente primero.
func (r *ExpenseRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Expense, error) {
	query := `
		SELECT id, company_id, user_id, expense_number, COALESCE(vendor, ''), category,
		       expense_date, payment_method, amount, tax, total, status,
		       COALESCE(description, ''), COALESCE(receipt_url, ''), created_at
		FROM expenses WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(
			&e.ID, &e.CompanyID, &e.UserID, &e.ExpenseNumber, &e.Vendor, &e.Category,
			&e.ExpenseDate, &e.PaymentMethod, &e.Amount, &e.Tax, &e.Total, &e.Status,
			&e.Description, &e.ReceiptURL, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, company_id, user_id, expense_number, vendor, category,
			expense_date, payment_method, amount, tax, total, status, description, receipt_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.pool.Exec(ctx, query,
		expense.ID, expense.CompanyID, expense.UserID, expense.ExpenseNumber,
		expense.Vendor, expense.Category, expense.ExpenseDate, expense.PaymentMethod,
		expense.Amount, expense.Tax, expense.Total, expense.Status,
		expense.Description, expense.ReceiptURL, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}
