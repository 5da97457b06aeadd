package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados conocidos de una factura. Texto libre, sin transiciones impuestas.
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPartial   = "partial"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// Invoice factura emitida a un cliente. PaidAmount arranca en cero y es
// mutable de forma independiente para registrar pagos parciales; Total nunca
// se recalcula después de la creación.
type Invoice struct {
	ID              string
	CompanyID       string
	UserID          string
	InvoiceNumber   string
	CustomerName    string
	CustomerContact string
	InvoiceDate     time.Time
	DueDate         *time.Time
	Items           []OrderItem
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	Total           decimal.Decimal
	PaidAmount      decimal.Decimal
	Status          string
	Notes           string
	CreatedAt       time.Time
}
