package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
	"github.com/jhoicas/Contable-api/pkg/money"
)

// BankAccountUseCase casos de uso para cuentas bancarias: el único registro
// con edición y borrado además de creación y listado.
type BankAccountUseCase struct {
	repo repository.BankAccountRepository
}

// NewBankAccountUseCase construye el caso de uso.
func NewBankAccountUseCase(repo repository.BankAccountRepository) *BankAccountUseCase {
	return &BankAccountUseCase{repo: repo}
}

// List devuelve las cuentas de la empresa, más reciente primero.
// companyID vacío devuelve lista vacía sin error.
func (uc *BankAccountUseCase) List(ctx context.Context, companyID string) (*dto.BankAccountListResponse, error) {
	out := &dto.BankAccountListResponse{Items: []dto.BankAccountResponse{}}
	if companyID == "" {
		return out, nil
	}
	rows, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, a := range rows {
		out.Items = append(out.Items, *bankAccountToResponse(a))
	}
	return out, nil
}

// Create crea una cuenta bancaria. Balance parseado con "no numérico → 0".
func (uc *BankAccountUseCase) Create(ctx context.Context, companyID string, in dto.BankAccountRequest) (*dto.BankAccountResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompanySelected
	}
	now := time.Now()
	account := &entity.BankAccount{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		AccountName:   in.AccountName,
		AccountNumber: in.AccountNumber,
		BankName:      in.BankName,
		Branch:        in.Branch,
		Balance:       money.Parse(in.Balance),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return bankAccountToResponse(account), nil
}

// Update edita la cuenta por clave primaria, sin revalidar la empresa: el
// llamador obtuvo el id de un listado ya alcanzado a su empresa activa.
func (uc *BankAccountUseCase) Update(ctx context.Context, id string, in dto.BankAccountRequest) (*dto.BankAccountResponse, error) {
	account := &entity.BankAccount{
		ID:            id,
		AccountName:   in.AccountName,
		AccountNumber: in.AccountNumber,
		BankName:      in.BankName,
		Branch:        in.Branch,
		Balance:       money.Parse(in.Balance),
		UpdatedAt:     time.Now(),
	}
	if err := uc.repo.Update(ctx, account); err != nil {
		return nil, err
	}
	return bankAccountToResponse(account), nil
}

// Delete borra la cuenta por clave primaria. Borrado de una sola fila.
func (uc *BankAccountUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func bankAccountToResponse(a *entity.BankAccount) *dto.BankAccountResponse {
	return &dto.BankAccountResponse{
		ID:            a.ID,
		AccountName:   a.AccountName,
		AccountNumber: a.AccountNumber,
		BankName:      a.BankName,
		Branch:        a.Branch,
		Balance:       a.Balance,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
