package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Contable-api/internal/application/session"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
)

// activeCompanyID devuelve el id de la empresa activa del usuario autenticado,
// o vacío si no hay ninguna. Un fallo de inicialización de sesión degrada a
// "sin empresa activa": estado presentable, no error HTTP.
func activeCompanyID(c *fiber.Ctx, sessions *session.Manager) string {
	sctx, _ := sessions.ForUser(c.Context(), GetUserID(c))
	id, _ := sctx.Snapshot()
	return id
}

// activeCompany devuelve la empresa activa completa (para exportes que
// necesitan nombre y moneda), o nil si no hay ninguna.
func activeCompany(c *fiber.Ctx, sessions *session.Manager) *entity.Company {
	sctx, _ := sessions.ForUser(c.Context(), GetUserID(c))
	return sctx.Selected()
}
