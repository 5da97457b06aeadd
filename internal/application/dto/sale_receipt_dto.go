package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleReceiptRequest entrada para crear un recibo de venta.
// Sin campo de estado: el recibo nace liquidado.
type CreateSaleReceiptRequest struct {
	ReceiptNumber string `json:"receipt_number" validate:"required"`
	CustomerName  string `json:"customer_name" validate:"required"`
	SaleDate      string `json:"sale_date" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
	Subtotal      string `json:"subtotal"`
	Tax           string `json:"tax"`
	Notes         string `json:"notes"`
}

// SaleReceiptResponse salida de un recibo de venta.
type SaleReceiptResponse struct {
	ID            string          `json:"id"`
	ReceiptNumber string          `json:"receipt_number"`
	CustomerName  string          `json:"customer_name"`
	SaleDate      time.Time       `json:"sale_date"`
	PaymentMethod string          `json:"payment_method"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleReceiptListResponse recibos de la empresa activa, más reciente primero.
type SaleReceiptListResponse struct {
	Items []SaleReceiptResponse `json:"items"`
}
