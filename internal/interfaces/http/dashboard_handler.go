package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/Contable-api/internal/application/analytics"
	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/application/session"
)

// DashboardHandler maneja el endpoint de estadísticas del dashboard.
type DashboardHandler struct {
	uc       *appanalytics.DashboardUseCase
	sessions *session.Manager
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, sessions *session.Manager) *DashboardHandler {
	return &DashboardHandler{uc: uc, sessions: sessions}
}

// GetStats godoc
// @Summary      Estadísticas del dashboard
// @Description  Cifras recalculadas desde cero para la empresa activa. Sin
// @Description  empresa activa responde todas las cifras en cero. Si la
// @Description  selección cambia mientras se calcula, la pasada se descarta y
// @Description  se recalcula una vez contra la selección nueva.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	sctx, _ := h.sessions.ForUser(c.Context(), GetUserID(c))

	// Una pasada captura la selección y su generación al arrancar; un
	// resultado calculado bajo una generación vieja corresponde a otra
	// empresa y no debe presentarse como la actual.
	for attempt := 0; attempt < 2; attempt++ {
		companyID, generation := sctx.Snapshot()
		stats := h.uc.GetStats(c.Context(), companyID)
		if sctx.StillCurrent(generation) {
			return c.JSON(stats)
		}
	}
	return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
		Code: "STALE_SELECTION", Message: "la empresa activa cambió durante el cálculo; reintente",
	})
}
