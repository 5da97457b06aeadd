package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/pkg/money"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// sendPDF responde el binario como descarga. El nombre de archivo lleva la
// fecha del día: Profit_Loss_Report_2026-08-30.pdf.
func sendPDF(c *fiber.Ctx, baseName string, data []byte) error {
	filename := fmt.Sprintf("%s_%s.pdf", baseName, time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// sendXLSX responde la hoja como descarga, mismo esquema de nombres que el PDF.
func sendXLSX(c *fiber.Ctx, baseName string, data []byte) error {
	filename := fmt.Sprintf("%s_%s.xlsx", baseName, time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// exportCompany resuelve nombre y moneda para las cabeceras del exporte.
// Sin empresa activa el exporte sale igual, con listado vacío y moneda por
// defecto.
func exportCompany(comp *entity.Company) (name, currency string) {
	if comp == nil {
		return "", money.DefaultCurrency
	}
	currency = comp.Currency
	if currency == "" {
		currency = money.DefaultCurrency
	}
	return comp.Name, currency
}
