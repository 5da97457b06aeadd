package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
	"github.com/jhoicas/Contable-api/pkg/money"
)

// InvoiceUseCase casos de uso para facturas (crear y listar).
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

// List devuelve las facturas de la empresa, más reciente primero.
// companyID vacío devuelve lista vacía sin error.
func (uc *InvoiceUseCase) List(ctx context.Context, companyID string) (*dto.InvoiceListResponse, error) {
	out := &dto.InvoiceListResponse{Items: []dto.InvoiceResponse{}}
	if companyID == "" {
		return out, nil
	}
	rows, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, inv := range rows {
		out.Items = append(out.Items, *invoiceToResponse(inv))
	}
	return out, nil
}

// Create crea una factura. Total = Subtotal + Tax ("no numérico → 0");
// PaidAmount arranca en cero y el estado inicial es pending.
func (uc *InvoiceUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompanySelected
	}
	subtotal := money.Parse(in.Subtotal)
	tax := money.Parse(in.Tax)

	invoice := &entity.Invoice{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		UserID:          userID,
		InvoiceNumber:   in.InvoiceNumber,
		CustomerName:    in.CustomerName,
		CustomerContact: in.CustomerContact,
		InvoiceDate:     parseDate(in.InvoiceDate),
		DueDate:         parseDateOpt(in.DueDate),
		Items:           itemsFromDTO(in.Items),
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           subtotal.Add(tax),
		PaidAmount:      decimal.Zero,
		Status:          entity.InvoiceStatusPending,
		Notes:           in.Notes,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoiceToResponse(invoice), nil
}

func invoiceToResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:              inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		CustomerName:    inv.CustomerName,
		CustomerContact: inv.CustomerContact,
		InvoiceDate:     inv.InvoiceDate,
		DueDate:         inv.DueDate,
		Items:           itemsToDTO(inv.Items),
		Subtotal:        inv.Subtotal,
		Tax:             inv.Tax,
		Total:           inv.Total,
		PaidAmount:      inv.PaidAmount,
		Status:          inv.Status,
		Notes:           inv.Notes,
		CreatedAt:       inv.CreatedAt,
	}
}
