package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Contable-api/pkg/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Parse — contrato "no numérico → 0"
// ──────────────────────────────────────────────────────────────────────────────

func TestParse_MontoValido(t *testing.T) {
	assert.True(t, decimal.NewFromFloat(1234.50).Equal(money.Parse("1234.50")))
	assert.True(t, decimal.NewFromInt(700).Equal(money.Parse("700")))
}

func TestParse_ConSeparadoresDeMiles(t *testing.T) {
	// El formulario puede traer comas de miles; se descartan al limpiar.
	assert.True(t, decimal.NewFromInt(1200).Equal(money.Parse("1,200")))
	assert.True(t, decimal.NewFromFloat(1234567.89).Equal(money.Parse("1,234,567.89")))
}

func TestParse_VacioRetornaCero(t *testing.T) {
	assert.True(t, money.Parse("").IsZero(), "entrada vacía debe parsear a cero")
}

func TestParse_NoNumericoRetornaCero(t *testing.T) {
	// Cualquier texto sin dígitos cae a cero, nunca a error.
	assert.True(t, money.Parse("abc").IsZero())
	assert.True(t, money.Parse("N/A").IsZero())
	assert.True(t, money.Parse("--").IsZero())
	assert.True(t, money.Parse("1.2.3").IsZero())
}

func TestParse_Negativo(t *testing.T) {
	assert.True(t, decimal.NewFromFloat(-50.25).Equal(money.Parse("-50.25")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Format / FormatNumber
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatNumber_MilesYDosDecimales(t *testing.T) {
	assert.Equal(t, "1,234.50", money.FormatNumber(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "0.00", money.FormatNumber(decimal.Zero))
	assert.Equal(t, "1,000,000.00", money.FormatNumber(decimal.NewFromInt(1000000)))
}

func TestFormat_IncluyeMonto(t *testing.T) {
	// El símbolo exacto depende de los datos CLDR de la moneda; el contrato
	// estable es que el monto formateado aparezca en la salida.
	out := money.Format("KES", decimal.NewFromFloat(1234.5))
	assert.Contains(t, out, "1,234.50")
	assert.NotEqual(t, "1,234.50", out, "debe anteponer el símbolo de la moneda")
}

func TestFormat_CodigoInvalidoCaeAlDefault(t *testing.T) {
	// Un código no ISO no debe romper el formato.
	out := money.Format("???", decimal.NewFromInt(100))
	assert.Contains(t, out, "100.00")
}
