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

// SaleReceiptUseCase casos de uso para recibos de venta (crear y listar).
type SaleReceiptUseCase struct {
	repo repository.SaleReceiptRepository
}

// NewSaleReceiptUseCase construye el caso de uso.
func NewSaleReceiptUseCase(repo repository.SaleReceiptRepository) *SaleReceiptUseCase {
	return &SaleReceiptUseCase{repo: repo}
}

// List devuelve los recibos de la empresa, más reciente primero.
// companyID vacío devuelve lista vacía sin error.
func (uc *SaleReceiptUseCase) List(ctx context.Context, companyID string) (*dto.SaleReceiptListResponse, error) {
	out := &dto.SaleReceiptListResponse{Items: []dto.SaleReceiptResponse{}}
	if companyID == "" {
		return out, nil
	}
	rows, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out.Items = append(out.Items, *saleReceiptToResponse(r))
	}
	return out, nil
}

// Create crea un recibo de venta. Total = Subtotal + Tax ("no numérico → 0").
// Sin campo de estado: el recibo nace liquidado.
func (uc *SaleReceiptUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateSaleReceiptRequest) (*dto.SaleReceiptResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompanySelected
	}
	subtotal := money.Parse(in.Subtotal)
	tax := money.Parse(in.Tax)

	receipt := &entity.SaleReceipt{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		UserID:        userID,
		ReceiptNumber: in.ReceiptNumber,
		CustomerName:  in.CustomerName,
		SaleDate:      parseDate(in.SaleDate),
		PaymentMethod: in.PaymentMethod,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal.Add(tax),
		Notes:         in.Notes,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(ctx, receipt); err != nil {
		return nil, err
	}
	return saleReceiptToResponse(receipt), nil
}

func saleReceiptToResponse(r *entity.SaleReceipt) *dto.SaleReceiptResponse {
	return &dto.SaleReceiptResponse{
		ID:            r.ID,
		ReceiptNumber: r.ReceiptNumber,
		CustomerName:  r.CustomerName,
		SaleDate:      r.SaleDate,
		PaymentMethod: r.PaymentMethod,
		Subtotal:      r.Subtotal,
		Tax:           r.Tax,
		Total:         r.Total,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
	}
}
