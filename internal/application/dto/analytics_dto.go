package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// Cifras recalculadas desde cero en cada pasada: no hay caché ni acumulados.
type DashboardStatsDTO struct {
	TotalSales            decimal.Decimal `json:"total_sales"`             // Σ órdenes de venta + Σ recibos
	TotalExpenses         decimal.Decimal `json:"total_expenses"`          // Σ gastos
	TotalInvoices         int             `json:"total_invoices"`          // conteo de facturas
	UnpaidInvoices        int             `json:"unpaid_invoices"`         // estado unpaid o partial
	PendingPurchaseOrders int             `json:"pending_purchase_orders"` // filtrado en servidor
	Profit                decimal.Decimal `json:"profit"`                  // ventas - gastos
}

// ProfitLossDTO respuesta de GET /api/reports/profit-loss.
// El ingreso de facturas usa el monto PAGADO, no el total, para no contar
// ingresos aún no realizados. NetProfit = GrossProfit: no existe capa de
// ajustes fiscales ni no operativos.
type ProfitLossDTO struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	GrossProfit   decimal.Decimal `json:"gross_profit"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	ProfitMargin  decimal.Decimal `json:"profit_margin"` // %, exactamente 0 con ingreso cero
}
