package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	pool *pgxpool.Pool
}

func NewPurchaseOrderRepository(pool *pgxpool.Pool) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{pool: pool}
}

const purchaseOrderColumns = `
	id, company_id, user_id, po_number, supplier_name, COALESCE(supplier_contact, ''),
	order_date, delivery_date, items, subtotal, tax, total, status,
	COALESCE(notes, ''), created_at`

// ListByCompany devuelve las órdenes de compra de la empresa, más reciente primero.
func (r *PurchaseOrderRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + `
		FROM purchase_orders WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	return scanPurchaseOrders(rows)
}

// ListByCompanyAndStatus filtra por estado en servidor; lo usa el dashboard
// para contar pendientes sin traer todas las filas.
func (r *PurchaseOrderRepo) ListByCompanyAndStatus(ctx context.Context, companyID, status string) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + `
		FROM purchase_orders WHERE company_id = $1 AND status = $2 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, companyID, status)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders by status: %w", err)
	}
	return scanPurchaseOrders(rows)
}

func scanPurchaseOrders(rows pgx.Rows) ([]*entity.PurchaseOrder, error) {
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var (
			o        entity.PurchaseOrder
			rawItems []byte
		)
		if err := rows.Scan(
			&o.ID, &o.CompanyID, &o.UserID, &o.PONumber, &o.SupplierName, &o.SupplierContact,
			&o.OrderDate, &o.DeliveryDate, &rawItems, &o.Subtotal, &o.Tax, &o.Total,
			&o.Status, &o.Notes, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		items, err := decodeItems(rawItems)
		if err != nil {
			return nil, fmt.Errorf("decode purchase order items: %w", err)
		}
		o.Items = items
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Create persiste una nueva orden de compra.
func (r *PurchaseOrderRepo) Create(ctx context.Context, order *entity.PurchaseOrder) error {
	rawItems, err := encodeItems(order.Items)
	if err != nil {
		return fmt.Errorf("encode purchase order items: %w", err)
	}
	query := `
		INSERT INTO purchase_orders (id, company_id, user_id, po_number, supplier_name, supplier_contact,
			order_date, delivery_date, items, subtotal, tax, total, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = r.pool.Exec(ctx, query,
		order.ID, order.CompanyID, order.UserID, order.PONumber, order.SupplierName,
		order.SupplierContact, order.OrderDate, order.DeliveryDate, rawItems,
		order.Subtotal, order.Tax, order.Total, order.Status, order.Notes, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}
