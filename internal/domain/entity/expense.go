package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías conocidas de gasto.
const (
	ExpenseCategoryOffice    = "office"
	ExpenseCategoryTravel    = "travel"
	ExpenseCategoryUtilities = "utilities"
	ExpenseCategorySalaries  = "salaries"
	ExpenseCategoryRent      = "rent"
	ExpenseCategoryOther     = "other"
)

// Estados conocidos de un gasto. Texto libre, sin transiciones impuestas.
const (
	ExpenseStatusPending  = "pending"
	ExpenseStatusApproved = "approved"
	ExpenseStatusPaid     = "paid"
	ExpenseStatusRejected = "rejected"
)

// Expense gasto de la empresa. Total = Amount + Tax, calculado al crear.
type Expense struct {
	ID            string
	CompanyID     string
	UserID        string
	ExpenseNumber string
	Vendor        string
	Category      string
	ExpenseDate   time.Time
	PaymentMethod string
	Amount        decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Status        string
	Description   string
	ReceiptURL    string
	CreatedAt     time.Time
}
