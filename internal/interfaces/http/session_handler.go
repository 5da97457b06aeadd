package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/application/session"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
)

// SessionHandler expone el estado de la sesión: las empresas del usuario y la
// selección activa.
type SessionHandler struct {
	sessions *session.Manager
}

// NewSessionHandler construye el handler de sesión.
func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Get godoc
// @Summary      Estado de la sesión
// @Description  Empresas del usuario y empresa activa. selected_company null
// @Description  significa "sin empresa activa": estado válido, no error.
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	sctx, _ := h.sessions.ForUser(c.Context(), GetUserID(c))
	return c.JSON(sessionToResponse(sctx))
}

// Select godoc
// @Summary      Cambiar de empresa activa
// @Description  No-op si el id no pertenece a las empresas del usuario: la
// @Description  selección vigente se conserva y se responde el estado actual.
// @Tags         session
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/companies/select/{id} [post]
func (h *SessionHandler) Select(c *fiber.Ctx) error {
	sctx, _ := h.sessions.ForUser(c.Context(), GetUserID(c))
	sctx.Select(c.Params("id"))
	return c.JSON(sessionToResponse(sctx))
}

// Refresh godoc
// @Summary      Recargar la sesión
// @Description  Re-ejecuta la carga de empresas y la resolución de la activa.
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session/refresh [post]
func (h *SessionHandler) Refresh(c *fiber.Ctx) error {
	sctx, _ := h.sessions.ForUser(c.Context(), GetUserID(c))
	if err := sctx.Refresh(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(sessionToResponse(sctx))
}

func sessionToResponse(sctx *session.Context) *dto.SessionResponse {
	companies := sctx.Companies()
	out := &dto.SessionResponse{Companies: make([]dto.CompanyResponse, 0, len(companies))}
	for _, comp := range companies {
		out.Companies = append(out.Companies, *companyToResponse(comp))
	}
	if sel := sctx.Selected(); sel != nil {
		out.SelectedCompany = companyToResponse(sel)
	}
	return out
}

func companyToResponse(comp *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:                 comp.ID,
		Name:               comp.Name,
		RegistrationNumber: comp.RegistrationNumber,
		Address:            comp.Address,
		Phone:              comp.Phone,
		Email:              comp.Email,
		Currency:           comp.Currency,
		CreatedAt:          comp.CreatedAt,
		UpdatedAt:          comp.UpdatedAt,
	}
}
