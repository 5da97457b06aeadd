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

// ExpenseHandler maneja gastos: listar, crear y exportar.
type ExpenseHandler struct {
	uc       *usecase.ExpenseUseCase
	sessions *session.Manager
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase, sessions *session.Manager) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, sessions: sessions}
}

// List godoc
// @Summary      Listar gastos
// @Description  Sin empresa activa responde lista vacía, no error.
// @Tags         expenses
// @Produce      json
// @Success      200  {object}  dto.ExpenseListResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), activeCompanyID(c, h.sessions))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear gasto
// @Description  Total = amount + tax; montos no numéricos cuentan como cero.
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ExpenseNumber == "" || in.Vendor == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "expense_number y vendor son requeridos"})
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
// @Summary      Exportar gastos a PDF
// @Tags         expenses
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/expenses/export/pdf [get]
func (h *ExpenseHandler) ExportPDF(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), activeCompanyID(c, h.sessions))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	name, currency := exportCompany(activeCompany(c, h.sessions))
	rows := make([][]string, 0, len(list.Items))
	for _, e := range list.Items {
		rows = append(rows, []string{
			e.ExpenseNumber, e.Vendor, e.Category, formatDate(e.ExpenseDate),
			money.Format(currency, e.Total), e.Status,
		})
	}
	data, err := pdf.RecordListPDF("Gastos", name, time.Now().Format("2006-01-02"),
		[]string{"N° Gasto", "Proveedor", "Categoría", "Fecha", "Total", "Estado"}, rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendPDF(c, "Expenses", data)
}

// ExportXLSX godoc
// @Summary      Exportar gastos a Excel
// @Tags         expenses
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/expenses/export/xlsx [get]
func (h *ExpenseHandler) ExportXLSX(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), activeCompanyID(c, h.sessions))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	rows := make([][]any, 0, len(list.Items))
	for _, e := range list.Items {
		rows = append(rows, []any{
			e.ExpenseNumber, e.Vendor, e.Category, formatDate(e.ExpenseDate),
			e.PaymentMethod, e.Amount, e.Tax, e.Total, e.Status,
		})
	}
	data, err := excel.RecordListXLSX("Gastos",
		[]string{"N° Gasto", "Proveedor", "Categoría", "Fecha", "Método de pago", "Monto", "Impuesto", "Total", "Estado"}, rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendXLSX(c, "Expenses", data)
}
