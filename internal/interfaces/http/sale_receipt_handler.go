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

// SaleReceiptHandler maneja recibos de venta: listar, crear y exportar.
type SaleReceiptHandler struct {
	uc       *usecase.SaleReceiptUseCase
	sessions *session.Manager
}

// NewSaleReceiptHandler construye el handler.
func NewSaleReceiptHandler(uc *usecase.SaleReceiptUseCase, sessions *session.Manager) *SaleReceiptHandler {
	return &SaleReceiptHandler{uc: uc, sessions: sessions}
}

// List godoc
// @Summary      Listar recibos de venta
// @Description  Sin empresa activa responde lista vacía, no error.
// @Tags         sale-receipts
// @Produce      json
// @Success      200  {object}  dto.SaleReceiptListResponse
// @Router       /api/sale-receipts [get]
func (h *SaleReceiptHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), activeCompanyID(c, h.sessions))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear recibo de venta
// @Description  Sin campo de estado: el recibo nace liquidado.
// @Tags         sale-receipts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleReceiptRequest  true  "Datos del recibo"
// @Success      201   {object}  dto.SaleReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sale-receipts [post]
func (h *SaleReceiptHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ReceiptNumber == "" || in.CustomerName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "receipt_number y customer_name son requeridos"})
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
// @Summary      Exportar recibos de venta a PDF
// @Tags         sale-receipts
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/sale-receipts/export/pdf [get]
func (h *SaleReceiptHandler) ExportPDF(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), activeCompanyID(c, h.sessions))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	name, currency := exportCompany(activeCompany(c, h.sessions))
	rows := make([][]string, 0, len(list.Items))
	for _, rec := range list.Items {
		rows = append(rows, []string{
			rec.ReceiptNumber, rec.CustomerName, formatDate(rec.SaleDate),
			rec.PaymentMethod, money.Format(currency, rec.Total),
		})
	}
	data, err := pdf.RecordListPDF("Recibos de venta", name, time.Now().Format("2006-01-02"),
		[]string{"N° Recibo", "Cliente", "Fecha", "Método de pago", "Total"}, rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendPDF(c, "Sale_Receipts", data)
}

// ExportXLSX godoc
// @Summary      Exportar recibos de venta a Excel
// @Tags         sale-receipts
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/sale-receipts/export/xlsx [get]
func (h *SaleReceiptHandler) ExportXLSX(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), activeCompanyID(c, h.sessions))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	rows := make([][]any, 0, len(list.Items))
	for _, rec := range list.Items {
		rows = append(rows, []any{
			rec.ReceiptNumber, rec.CustomerName, formatDate(rec.SaleDate),
			rec.PaymentMethod, rec.Subtotal, rec.Tax, rec.Total,
		})
	}
	data, err := excel.RecordListXLSX("Recibos de venta",
		[]string{"N° Recibo", "Cliente", "Fecha", "Método de pago", "Subtotal", "Impuesto", "Total"}, rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendXLSX(c, "Sale_Receipts", data)
}
