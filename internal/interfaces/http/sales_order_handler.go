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

// SalesOrderHandler maneja órdenes de venta: listar, crear y exportar.
type SalesOrderHandler struct {
	uc       *usecase.SalesOrderUseCase
	sessions *session.Manager
}

// NewSalesOrderHandler construye el handler.
func NewSalesOrderHandler(uc *usecase.SalesOrderUseCase, sessions *session.Manager) *SalesOrderHandler {
	return &SalesOrderHandler{uc: uc, sessions: sessions}
}

// List godoc
// @Summary      Listar órdenes de venta
// @Description  Sin empresa activa responde lista vacía, no error.
// @Tags         sales-orders
// @Produce      json
// @Success      200  {object}  dto.SalesOrderListResponse
// @Router       /api/sales-orders [get]
func (h *SalesOrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), activeCompanyID(c, h.sessions))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear orden de venta
// @Tags         sales-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalesOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.SalesOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales-orders [post]
func (h *SalesOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SONumber == "" || in.CustomerName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "so_number y customer_name son requeridos"})
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
// @Summary      Exportar órdenes de venta a PDF
// @Tags         sales-orders
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/sales-orders/export/pdf [get]
func (h *SalesOrderHandler) ExportPDF(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), activeCompanyID(c, h.sessions))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	name, currency := exportCompany(activeCompany(c, h.sessions))
	rows := make([][]string, 0, len(list.Items))
	for _, o := range list.Items {
		rows = append(rows, []string{
			o.SONumber, o.CustomerName, formatDate(o.OrderDate),
			money.Format(currency, o.Total), o.Status,
		})
	}
	data, err := pdf.RecordListPDF("Órdenes de venta", name, time.Now().Format("2006-01-02"),
		[]string{"N° Orden", "Cliente", "Fecha", "Total", "Estado"}, rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendPDF(c, "Sales_Orders", data)
}

// ExportXLSX godoc
// @Summary      Exportar órdenes de venta a Excel
// @Tags         sales-orders
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/sales-orders/export/xlsx [get]
func (h *SalesOrderHandler) ExportXLSX(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), activeCompanyID(c, h.sessions))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	rows := make([][]any, 0, len(list.Items))
	for _, o := range list.Items {
		rows = append(rows, []any{
			o.SONumber, o.CustomerName, formatDate(o.OrderDate),
			o.Subtotal, o.Tax, o.Total, o.Status,
		})
	}
	data, err := excel.RecordListXLSX("Órdenes de venta",
		[]string{"N° Orden", "Cliente", "Fecha", "Subtotal", "Impuesto", "Total", "Estado"}, rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendXLSX(c, "Sales_Orders", data)
}
