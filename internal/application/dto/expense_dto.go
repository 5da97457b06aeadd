package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest entrada para crear un gasto.
// Amount y Tax llegan como texto libre; no numérico → 0.
type CreateExpenseRequest struct {
	ExpenseNumber string `json:"expense_number" validate:"required"`
	Vendor        string `json:"vendor" validate:"required"`
	Category      string `json:"category" validate:"required"`
	ExpenseDate   string `json:"expense_date" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
	Amount        string `json:"amount"`
	Tax           string `json:"tax"`
	Description   string `json:"description"`
	ReceiptURL    string `json:"receipt_url"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID            string          `json:"id"`
	ExpenseNumber string          `json:"expense_number"`
	Vendor        string          `json:"vendor"`
	Category      string          `json:"category"`
	ExpenseDate   time.Time       `json:"expense_date"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	Description   string          `json:"description"`
	ReceiptURL    string          `json:"receipt_url"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ExpenseListResponse gastos de la empresa activa, más reciente primero.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
}
