// Package money agrupa utilidades de formato y parseo de montos monetarios.
//
// El parseo sigue el contrato de los formularios de la aplicación: un texto
// vacío o no numérico se convierte en cero, nunca en error. Un monto mal
// escrito produce un total de cero en lugar de bloquear el envío.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency moneda usada cuando la empresa no define una (Kenia).
const DefaultCurrency = "KES"

var printer = message.NewPrinter(language.English)

// Parse convierte texto libre a un monto decimal. Entrada vacía o no numérica → 0.
func Parse(s string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Format devuelve el monto con símbolo de moneda y dos decimales, ej: "KES 1,234.50".
// Si el código ISO no es válido se usa DefaultCurrency.
func Format(code string, amount decimal.Decimal) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.MustParseISO(DefaultCurrency)
	}
	return printer.Sprintf("%v %v", currency.Symbol(unit), decimalValue(amount))
}

// FormatNumber devuelve el monto con separador de miles y dos decimales, sin símbolo.
func FormatNumber(amount decimal.Decimal) string {
	return printer.Sprintf("%v", decimalValue(amount))
}

func decimalValue(amount decimal.Decimal) number.Formatter {
	f, _ := amount.Float64()
	return number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	)
}
