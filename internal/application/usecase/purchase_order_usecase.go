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

// PurchaseOrderUseCase casos de uso para órdenes de compra (crear y listar).
type PurchaseOrderUseCase struct {
	repo repository.PurchaseOrderRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(repo repository.PurchaseOrderRepository) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo}
}

// List devuelve las órdenes de la empresa, más reciente primero.
// companyID vacío devuelve lista vacía sin error: "sin empresa activa" es un
// estado válido que el llamador ya validó como presentable.
func (uc *PurchaseOrderUseCase) List(ctx context.Context, companyID string) (*dto.PurchaseOrderListResponse, error) {
	out := &dto.PurchaseOrderListResponse{Items: []dto.PurchaseOrderResponse{}}
	if companyID == "" {
		return out, nil
	}
	rows, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, o := range rows {
		out.Items = append(out.Items, *purchaseOrderToResponse(o))
	}
	return out, nil
}

// Create crea una orden de compra. Total = Subtotal + Tax, parseados con la
// semántica "no numérico → 0"; las líneas se persisten pero no intervienen en
// el total. CompanyID y UserID se estampan del contexto del llamador.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompanySelected
	}
	subtotal := money.Parse(in.Subtotal)
	tax := money.Parse(in.Tax)

	order := &entity.PurchaseOrder{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		UserID:          userID,
		PONumber:        in.PONumber,
		SupplierName:    in.SupplierName,
		SupplierContact: in.SupplierContact,
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
	return purchaseOrderToResponse(order), nil
}

func purchaseOrderToResponse(o *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	return &dto.PurchaseOrderResponse{
		ID:              o.ID,
		PONumber:        o.PONumber,
		SupplierName:    o.SupplierName,
		SupplierContact: o.SupplierContact,
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

func itemsFromDTO(items []dto.OrderItemDTO) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, entity.OrderItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		})
	}
	return out
}

func itemsToDTO(items []entity.OrderItem) []dto.OrderItemDTO {
	out := make([]dto.OrderItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.OrderItemDTO{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		})
	}
	return out
}
