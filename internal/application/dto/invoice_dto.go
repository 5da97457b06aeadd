package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest entrada para crear una factura.
// Subtotal y Tax llegan como texto libre; no numérico → 0.
// PaidAmount siempre arranca en cero, no es parte del formulario.
type CreateInvoiceRequest struct {
	InvoiceNumber   string         `json:"invoice_number" validate:"required"`
	CustomerName    string         `json:"customer_name" validate:"required"`
	CustomerContact string         `json:"customer_contact"`
	InvoiceDate     string         `json:"invoice_date" validate:"required"`
	DueDate         string         `json:"due_date"`
	Items           []OrderItemDTO `json:"items"`
	Subtotal        string         `json:"subtotal"`
	Tax             string         `json:"tax"`
	Notes           string         `json:"notes"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID              string          `json:"id"`
	InvoiceNumber   string          `json:"invoice_number"`
	CustomerName    string          `json:"customer_name"`
	CustomerContact string          `json:"customer_contact"`
	InvoiceDate     time.Time       `json:"invoice_date"`
	DueDate         *time.Time      `json:"due_date"`
	Items           []OrderItemDTO  `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
}

// InvoiceListResponse facturas de la empresa activa, más reciente primero.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
}
