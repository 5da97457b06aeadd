package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/application/session"
	"github.com/jhoicas/Contable-api/internal/application/usecase"
	"github.com/jhoicas/Contable-api/internal/domain"
)

// BankAccountHandler maneja las cuentas bancarias de la empresa activa.
type BankAccountHandler struct {
	uc       *usecase.BankAccountUseCase
	sessions *session.Manager
}

// NewBankAccountHandler construye el handler.
func NewBankAccountHandler(uc *usecase.BankAccountUseCase, sessions *session.Manager) *BankAccountHandler {
	return &BankAccountHandler{uc: uc, sessions: sessions}
}

// List godoc
// @Summary      Listar cuentas bancarias
// @Description  Sin empresa activa responde lista vacía, no error.
// @Tags         bank-accounts
// @Produce      json
// @Success      200  {object}  dto.BankAccountListResponse
// @Router       /api/bank-accounts [get]
func (h *BankAccountHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), activeCompanyID(c, h.sessions))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cuenta bancaria
// @Tags         bank-accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BankAccountRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.BankAccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bank-accounts [post]
func (h *BankAccountHandler) Create(c *fiber.Ctx) error {
	var in dto.BankAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.AccountName == "" || in.AccountNumber == "" || in.BankName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "account_name, account_number y bank_name son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), activeCompanyID(c, h.sessions), in)
	if err != nil {
		if errors.Is(err, domain.ErrNoCompanySelected) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_COMPANY", Message: "sin empresa activa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar cuenta bancaria
// @Tags         bank-accounts
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la cuenta"
// @Param        body  body  dto.BankAccountRequest  true  "Datos de la cuenta"
// @Success      200   {object}  dto.BankAccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bank-accounts/{id} [put]
func (h *BankAccountHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.BankAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cuenta bancaria
// @Tags         bank-accounts
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      204
// @Router       /api/bank-accounts/{id} [delete]
func (h *BankAccountHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
