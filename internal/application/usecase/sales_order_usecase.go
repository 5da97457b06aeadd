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

// SalesOrderUseCase casos de uso para órdenes de venta (crear y listar).
type SalesOrderUseCase struct {
	repo repository.SalesOrderRepository
}

// NewSalesOrderUseCase construye el caso de uso.
func NewSalesOrderUseCase(repo repository.SalesOrderRepository) *SalesOrderUseCase {
	return &SalesOrderUseCase{repo: repo}
}

// List devuelve las órdenes de venta de la empresa, más reciente primero.
// companyID vacío devuelve lista vacía sin error.
func (uc *SalesOrderUseCase) List(ctx context.Context, companyID string) (*dto.SalesOrderListResponse, error) {
	out := &dto.SalesOrderListResponse{Items: []dto.SalesOrderResponse{}}
	if companyID == "" {
		return out, nil
	}
	rows, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, o := range rows {
		out.Items = append(out.Items, *salesOrderToResponse(o))
	}
	return out, nil
}

// Create crea una orden de venta. Total = Subtotal + Tax ("no numérico → 0").
func (uc *SalesOrderUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateSalesOrderRequest) (*dto.SalesOrderResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompanySelected
	}
	subtotal := money.Parse(in.Subtotal)
	tax := money.Parse(in.Tax)

	order := &entity.SalesOrder{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		UserID:          userID,
		SONumber:        in.SONumber,
		CustomerName:    in.CustomerName,
		CustomerContact: in.CustomerContact,
		OrderDate:       parseDate(in.OrderDate),
		DeliveryDate:    parseDateOpt(in.DeliveryDate),
		Items:           itemsFromDTO(in.Items),
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           subtotal.Add(tax),
		Status:          entity.OrderStatusPending,
		Notes:           in.Notes,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return salesOrderToResponse(order), nil
}

func salesOrderToResponse(o *entity.SalesOrder) *dto.SalesOrderResponse {
	return &dto.SalesOrderResponse{
		ID:              o.ID,
		SONumber:        o.SONumber,
		CustomerName:    o.CustomerName,
		CustomerContact: o.CustomerContact,
		OrderDate:       o.OrderDate,
		DeliveryDate:    o.DeliveryDate,
		Items:           itemsToDTO(o.Items),
		Subtotal:        o.Subtotal,
		Tax:             o.Tax,
		Total:           o.Total,
		Status:          o.Status,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
	}
}
