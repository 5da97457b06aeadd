package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.BankAccountRepository = (*BankAccountRepo)(nil)

// BankAccountRepo implementación del puerto BankAccountRepository sobre PostgreSQL.
type BankAccountRepo struct {
	pool *pgxpool.Pool
}

func NewBankAccountRepository(pool *pgxpool.Pool) *BankAccountRepo {
	return &BankAccountRepo{pool: pool}
}

// ListByCompany devuelve las cuentas bancarias de la empresa, más reciente primero.
func (r *BankAccountRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.BankAccount, error) {
	query := `
		SELECT id, company_id, account_name, account_number, bank_name,
		       COALESCE(branch, ''), balance, created_at, updated_at
		FROM bank_accounts WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()

	var list []*entity.BankAccount
	for rows.Next() {
		var a entity.BankAccount
		if err := rows.Scan(
			&a.ID, &a.CompanyID, &a.AccountName, &a.AccountNumber, &a.BankName,
			&a.Branch, &a.Balance, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bank account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Create persiste una nueva cuenta bancaria.
func (r *BankAccountRepo) Create(ctx context.Context, account *entity.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (id, company_id, account_name, account_number, bank_name, branch, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		account.ID, account.CompanyID, account.AccountName, account.AccountNumber,
		account.BankName, account.Branch, account.Balance,
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bank account: %w", err)
	}
	return nil
}

// Update actualiza una cuenta bancaria por clave primaria.
func (r *BankAccountRepo) Update(ctx context.Context, account *entity.BankAccount) error {
	query := `
		UPDATE bank_accounts
		SET account_name = $2, account_number = $3, bank_name = $4, branch = $5,
		    balance = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		account.ID, account.AccountName, account.AccountNumber, account.BankName,
		account.Branch, account.Balance, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bank account: %w", err)
	}
	return nil
}

// Delete elimina una cuenta bancaria por ID.
func (r *BankAccountRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM bank_accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bank account: %w", err)
	}
	return nil
}
