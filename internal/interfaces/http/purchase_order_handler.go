package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/application/session"
	"github.com/jhoicas/Contable-api/internal/application/usecase"
	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/infrastructure/export/excel"
	"github.com/jhoicas/Contable-api/internal/infrastructure/export/pdf"
	"github.com/jhoicas/Contable-api/pkg/money"
)

// PurchaseOrderHandler maneja órdenes de compra: listar, crear y exportar.
type PurchaseOrderHandler struct {
	uc       *usecase.PurchaseOrderUseCase
	sessions *session.Manager
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(uc *usecase.PurchaseOrderUseCase, sessions *session.Manager) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc, sessions: sessions}
}

// List godoc
// @Summary      Listar órdenes de compra
// @Description  Sin empresa activa responde lista vacía, no error.
// @Tags         purchase-orders
// @Produce      json
// @Success      200  {object}  dto.PurchaseOrderListResponse
// @Router       /api/purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), activeCompanyID(c, h.sessions))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear orden de compra
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PONumber == "" || in.SupplierName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "po_number y supplier_name son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), activeCompanyID(c, h.sessions), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNoCompanySelected) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_COMPANY", Message: "sin empresa activa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ExportPDF godoc
// @Summary      Exportar órdenes de compra a PDF
// @Tags         purchase-orders
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/purchase-orders/export/pdf [get]
func (h *PurchaseOrderHandler) ExportPDF(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), activeCompanyID(c, h.sessions))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	name, currency := exportCompany(activeCompany(c, h.sessions))
	rows := make([][]string, 0, len(list.Items))
	for _, o := range list.Items {
		rows = append(rows, []string{
			o.PONumber, o.SupplierName, formatDate(o.OrderDate),
			money.Format(currency, o.Total), o.Status,
		})
	}
	data, err := pdf.RecordListPDF("Órdenes de compra", name, time.Now().Format("2006-01-02"),
		[]string{"N° Orden", "Proveedor", "Fecha", "Total", "Estado"}, rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendPDF(c, "Purchase_Orders", data)
}

// ExportXLSX godoc
// @Summary      Exportar órdenes de compra a Excel
// @Tags         purchase-orders
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/purchase-orders/export/xlsx [get]
func (h *PurchaseOrderHandler) ExportXLSX(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), activeCompanyID(c, h.sessions))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	rows := make([][]any, 0, len(list.Items))
	for _, o := range list.Items {
		rows = append(rows, []any{
			o.PONumber, o.SupplierName, formatDate(o.OrderDate),
			o.Subtotal, o.Tax, o.Total, o.Status,
		})
	}
	data, err := excel.RecordListXLSX("Órdenes de compra",
		[]string{"N° Orden", "Proveedor", "Fecha", "Subtotal", "Impuesto", "Total", "Estado"}, rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendXLSX(c, "Purchase_Orders", data)
}
