package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount cuenta bancaria de una empresa. A diferencia de los registros
// transaccionales, es totalmente editable y borrable.
type BankAccount struct {
	ID            string
	CompanyID     string
	AccountName   string
	AccountNumber string
	BankName      string
	Branch        string
	Balance       decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
