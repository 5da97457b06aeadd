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

// InvoiceHandler maneja facturas: listar, crear y exportar.
type InvoiceHandler struct {
	uc       *usecase.InvoiceUseCase
	sessions *session.Manager
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase, sessions *session.Manager) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, sessions: sessions}
}

// List godoc
// @Summary      Listar facturas
// @Description  Sin empresa activa responde lista vacía, no error.
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  dto.InvoiceListResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), activeCompanyID(c, h.sessions))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear factura
// @Description  PaidAmount arranca siempre en cero; no es parte del formulario.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Datos de la factura"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.InvoiceNumber == "" || in.CustomerName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invoice_number y customer_name son requeridos"})
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
// @Summary      Exportar facturas a PDF
// @Tags         invoices
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/invoices/export/pdf [get]
func (h *InvoiceHandler) ExportPDF(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), activeCompanyID(c, h.sessions))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	name, currency := exportCompany(activeCompany(c, h.sessions))
	rows := make([][]string, 0, len(list.Items))
	for _, inv := range list.Items {
		rows = append(rows, []string{
			inv.InvoiceNumber, inv.CustomerName, formatDate(inv.InvoiceDate),
			money.Format(currency, inv.Total), money.Format(currency, inv.PaidAmount), inv.Status,
		})
	}
	data, err := pdf.RecordListPDF("Facturas", name, time.Now().Format("2006-01-02"),
		[]string{"N° Factura", "Cliente", "Fecha", "Total", "Pagado", "Estado"}, rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendPDF(c, "Invoices", data)
}

// ExportXLSX godoc
// @Summary      Exportar facturas a Excel
// @Tags         invoices
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/invoices/export/xlsx [get]
func (h *InvoiceHandler) ExportXLSX(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), activeCompanyID(c, h.sessions))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	rows := make([][]any, 0, len(list.Items))
	for _, inv := range list.Items {
		rows = append(rows, []any{
			inv.InvoiceNumber, inv.CustomerName, formatDate(inv.InvoiceDate),
			inv.Subtotal, inv.Tax, inv.Total, inv.PaidAmount, inv.Status,
		})
	}
	data, err := excel.RecordListXLSX("Facturas",
		[]string{"N° Factura", "Cliente", "Fecha", "Subtotal", "Impuesto", "Total", "Pagado", "Estado"}, rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendXLSX(c, "Invoices", data)
}
