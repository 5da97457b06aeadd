// Package excel genera los reportes descargables en formato XLSX usando
// excelize. A diferencia del PDF, los montos se escriben como celdas
// numéricas crudas para que la hoja sea operable en la planilla.
package excel

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Contable-api/internal/application/dto"
)

const sheetName = "Sheet1"

// ProfitLossXLSX genera la hoja del estado de resultados y devuelve sus bytes.
func ProfitLossXLSX(report *dto.ProfitLossDTO, companyName, date string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	rows := []struct {
		label string
		value any
	}{
		{companyName, nil},
		{"Estado de resultados", nil},
		{"Fecha", date},
		{"", nil},
		{"Ingresos totales", cellNumber(report.TotalRevenue)},
		{"Gastos totales", cellNumber(report.TotalExpenses)},
		{"Utilidad bruta", cellNumber(report.GrossProfit)},
		{"Utilidad neta", cellNumber(report.NetProfit)},
		{"Margen de utilidad (%)", cellNumber(report.ProfitMargin)},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetCellValue(sheetName, cell, r.label); err != nil {
			return nil, fmt.Errorf("xlsx: escribir celda: %w", err)
		}
		if r.value != nil {
			cell, _ = excelize.CoordinatesToCellName(2, i+1)
			if err := f.SetCellValue(sheetName, cell, r.value); err != nil {
				return nil, fmt.Errorf("xlsx: escribir celda: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: generar estado de resultados: %w", err)
	}
	return buf.Bytes(), nil
}

// RecordListXLSX genera un listado tabular genérico: fila de cabeceras más una
// fila por registro. Los valores decimal.Decimal se escriben como celdas
// numéricas; el resto tal cual.
func RecordListXLSX(title string, headers []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	cell, _ := excelize.CoordinatesToCellName(1, 1)
	if err := f.SetCellValue(sheetName, cell, title); err != nil {
		return nil, fmt.Errorf("xlsx: escribir título: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: escribir cabecera: %w", err)
		}
	}
	for r, record := range rows {
		for c, value := range record {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+3)
			if d, ok := value.(decimal.Decimal); ok {
				value = cellNumber(d)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("xlsx: escribir fila: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: generar listado %q: %w", title, err)
	}
	return buf.Bytes(), nil
}

// cellNumber convierte el decimal a float64 para que excelize escriba una
// celda numérica y no un string. Pérdida de precisión aceptable: dos decimales.
func cellNumber(d decimal.Decimal) float64 {
	v, _ := d.Round(2).Float64()
	return v
}
