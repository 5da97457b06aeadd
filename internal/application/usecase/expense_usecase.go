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

// ExpenseUseCase casos de uso para gastos (crear y listar).
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// List devuelve los gastos de la empresa, más reciente primero.
// companyID vacío devuelve lista vacía sin error.
func (uc *ExpenseUseCase) List(ctx context.Context, companyID string) (*dto.ExpenseListResponse, error) {
	out := &dto.ExpenseListResponse{Items: []dto.ExpenseResponse{}}
	if companyID == "" {
		return out, nil
	}
	rows, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, e := range rows {
		out.Items = append(out.Items, *expenseToResponse(e))
	}
	return out, nil
}

// Create crea un gasto. Para gastos el monto primario es Amount, no Subtotal:
// Total = Amount + Tax ("no numérico → 0"). Estado inicial pending.
func (uc *ExpenseUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompanySelected
	}
	amount := money.Parse(in.Amount)
	tax := money.Parse(in.Tax)

	expense := &entity.Expense{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		UserID:        userID,
		ExpenseNumber: in.ExpenseNumber,
		Vendor:        in.Vendor,
		Category:      in.Category,
		ExpenseDate:   parseDate(in.ExpenseDate),
		PaymentMethod: in.PaymentMethod,
		Amount:        amount,
		Tax:           tax,
		Total:         amount.Add(tax),
		Status:        entity.ExpenseStatusPending,
		Description:   in.Description,
		ReceiptURL:    in.ReceiptURL,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expenseToResponse(expense), nil
}

func expenseToResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:            e.ID,
		ExpenseNumber: e.ExpenseNumber,
		Vendor:        e.Vendor,
		Category:      e.Category,
		ExpenseDate:   e.ExpenseDate,
		PaymentMethod: e.PaymentMethod,
		Amount:        e.Amount,
		Tax:           e.Tax,
		Total:         e.Total,
		Status:        e.Status,
		Description:   e.Description,
		ReceiptURL:    e.ReceiptURL,
		CreatedAt:     e.CreatedAt,
	}
}
