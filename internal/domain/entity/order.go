package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados conocidos para órdenes de compra y de venta. El campo Status es texto
// libre: no se impone máquina de estados, cualquier valor puede escribirse.
const (
	OrderStatusPending   = "pending"
	OrderStatusApproved  = "approved"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderItem línea de detalle de una orden o factura. Se persiste como jsonb
// pero los totales NO se derivan de las líneas: Total = Subtotal + Tax,
// calculado al crear.
type OrderItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// PurchaseOrder orden de compra a un proveedor. Solo creación y lectura
// (sin edición ni borrado en esta versión).
type PurchaseOrder struct {
	ID              string
	CompanyID       string
	UserID          string
	PONumber        string
	SupplierName    string
	SupplierContact string
	OrderDate       time.Time
	DeliveryDate    *time.Time
	Items           []OrderItem
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	Total           decimal.Decimal
	Status          string
	Notes           string
	CreatedAt       time.Time
}

// SalesOrder orden de venta a un cliente. Estructura gemela de PurchaseOrder
// con campos de cliente en lugar de proveedor.
type SalesOrder struct {
	ID              string
	CompanyID       string
	UserID          string
	SONumber        string
	CustomerName    string
	CustomerContact string
	OrderDate       time.Time
	DeliveryDate    *time.Time
	Items           []OrderItem
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	Total           decimal.Decimal
	Status          string
	Notes           string
	CreatedAt       time.Time
}
