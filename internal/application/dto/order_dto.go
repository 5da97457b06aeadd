package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemDTO línea de detalle. Se persiste tal cual; los totales de la orden
// no se derivan de las líneas.
type OrderItemDTO struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// CreatePurchaseOrderRequest entrada para crear una orden de compra.
// Subtotal y Tax llegan como texto libre; no numérico → 0.
type CreatePurchaseOrderRequest struct {
	PONumber        string         `json:"po_number" validate:"required"`
	SupplierName    string         `json:"supplier_name" validate:"required"`
	SupplierContact string         `json:"supplier_contact"`
	OrderDate       string         `json:"order_date" validate:"required"`
	DeliveryDate    string         `json:"delivery_date"`
	Items           []OrderItemDTO `json:"items"`
	Subtotal        string         `json:"subtotal"`
	Tax             string         `json:"tax"`
	Notes           string         `json:"notes"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ID              string          `json:"id"`
	PONumber        string          `json:"po_number"`
	SupplierName    string          `json:"supplier_name"`
	SupplierContact string          `json:"supplier_contact"`
	OrderDate       time.Time       `json:"order_date"`
	DeliveryDate    *time.Time      `json:"delivery_date"`
	Items           []OrderItemDTO  `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
}

// PurchaseOrderListResponse órdenes de la empresa activa, más reciente primero.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
}

// CreateSalesOrderRequest entrada para crear una orden de venta.
type CreateSalesOrderRequest struct {
	SONumber        string         `json:"so_number" validate:"required"`
	CustomerName    string         `json:"customer_name" validate:"required"`
	CustomerContact string         `json:"customer_contact"`
	OrderDate       string         `json:"order_date" validate:"required"`
	DeliveryDate    string         `json:"delivery_date"`
	Items           []OrderItemDTO `json:"items"`
	Subtotal        string         `json:"subtotal"`
	Tax             string         `json:"tax"`
	Notes           string         `json:"notes"`
}

// SalesOrderResponse salida de una orden de venta.
type SalesOrderResponse struct {
	ID              string          `json:"id"`
	SONumber        string          `json:"so_number"`
	CustomerName    string          `json:"customer_name"`
	CustomerContact string          `json:"customer_contact"`
	OrderDate       time.Time       `json:"order_date"`
	DeliveryDate    *time.Time      `json:"delivery_date"`
	Items           []OrderItemDTO  `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
}

// SalesOrderListResponse órdenes de venta de la empresa activa.
type SalesOrderListResponse struct {
	Items []SalesOrderResponse `json:"items"`
}
