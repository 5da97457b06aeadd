package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/Contable-api/internal/application/analytics"
	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/application/session"
	"github.com/jhoicas/Contable-api/internal/infrastructure/export/excel"
	"github.com/jhoicas/Contable-api/internal/infrastructure/export/pdf"
)

// ReportHandler maneja el reporte de pérdidas y ganancias y sus exportes.
type ReportHandler struct {
	uc       *appanalytics.ReportUseCase
	sessions *session.Manager
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ReportUseCase, sessions *session.Manager) *ReportHandler {
	return &ReportHandler{uc: uc, sessions: sessions}
}

// GetProfitLoss godoc
// @Summary      Estado de pérdidas y ganancias
// @Description  Ingresos de facturas usan el monto pagado, no el total. Sin
// @Description  empresa activa responde todas las cifras en cero.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ProfitLossDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/reports/profit-loss [get]
func (h *ReportHandler) GetProfitLoss(c *fiber.Ctx) error {
	report, stale := h.compute(c)
	if stale {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "STALE_SELECTION", Message: "la empresa activa cambió durante el cálculo; reintente",
		})
	}
	return c.JSON(report)
}

// ExportPDF godoc
// @Summary      Exportar estado de resultados a PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/profit-loss/export/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	report, stale := h.compute(c)
	if stale {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "STALE_SELECTION", Message: "la empresa activa cambió durante el cálculo; reintente",
		})
	}
	name, currency := exportCompany(activeCompany(c, h.sessions))
	data, err := pdf.ProfitLossPDF(report, name, currency, time.Now().Format("2006-01-02"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendPDF(c, "Profit_Loss_Report", data)
}

// ExportXLSX godoc
// @Summary      Exportar estado de resultados a Excel
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/profit-loss/export/xlsx [get]
func (h *ReportHandler) ExportXLSX(c *fiber.Ctx) error {
	report, stale := h.compute(c)
	if stale {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "STALE_SELECTION", Message: "la empresa activa cambió durante el cálculo; reintente",
		})
	}
	name, _ := exportCompany(activeCompany(c, h.sessions))
	data, err := excel.ProfitLossXLSX(report, name, time.Now().Format("2006-01-02"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendXLSX(c, "Profit_Loss_Report", data)
}

// compute calcula el reporte bajo la generación vigente; si la selección
// cambió durante el cálculo reintenta una vez y después se rinde (stale=true).
func (h *ReportHandler) compute(c *fiber.Ctx) (*dto.ProfitLossDTO, bool) {
	sctx, _ := h.sessions.ForUser(c.Context(), GetUserID(c))
	for attempt := 0; attempt < 2; attempt++ {
		companyID, generation := sctx.Snapshot()
		report := h.uc.GetProfitLoss(c.Context(), companyID)
		if sctx.StillCurrent(generation) {
			return report, false
		}
	}
	return nil, true
}
