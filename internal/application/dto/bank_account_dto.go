package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccountRequest entrada para crear o editar una cuenta bancaria.
// Balance llega como texto libre del formulario; no numérico → 0.
type BankAccountRequest struct {
	AccountName   string `json:"account_name" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
	BankName      string `json:"bank_name" validate:"required"`
	Branch        string `json:"branch"`
	Balance       string `json:"balance"`
}

// BankAccountResponse salida de una cuenta bancaria.
type BankAccountResponse struct {
	ID            string          `json:"id"`
	AccountName   string          `json:"account_name"`
	AccountNumber string          `json:"account_number"`
	BankName      string          `json:"bank_name"`
	Branch        string          `json:"branch"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BankAccountListResponse cuentas de la empresa activa, más reciente primero.
type BankAccountListResponse struct {
	Items []BankAccountResponse `json:"items"`
}
