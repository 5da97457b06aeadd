package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago conocidos para recibos y gastos.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodMpesa    = "mpesa"
	PaymentMethodBank     = "bank_transfer"
	PaymentMethodCheque   = "cheque"
	PaymentMethodCard     = "card"
)

// SaleReceipt venta finalizada y cobrada en el acto. No tiene campo de estado:
// un recibo se considera liquidado desde su creación.
type SaleReceipt struct {
	ID            string
	CompanyID     string
	UserID        string
	ReceiptNumber string
	CustomerName  string
	SaleDate      time.Time
	PaymentMethod string
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Notes         string
	CreatedAt     time.Time
}
