package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo implementación del puerto SalesOrderRepository sobre PostgreSQL.
type SalesOrderRepo struct {
	pool *pgxpool.Pool
}

func NewSalesOrderRepository(pool *pgxpool.Pool) *SalesOrderRepo {
	return &SalesOrderRepo{pool: pool}
}

// ListByCompany devuelve las órdenes de venta de la empresa, más reciente primero.
func (r *SalesOrderRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.SalesOrder, error) {
	query := `
		SELECT id, company_id, user_id, so_number, customer_name, COALESCE(customer_contact, ''),
		       order_date, delivery_date, items, subtotal, tax, total, status,
		       COALESCE(notes, ''), created_at
		FROM sales_orders WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.SalesOrder
	for rows.Next() {
		var (
			o        entity.SalesOrder
			rawItems []byte
		)
		if err := rows.Scan(
			&o.ID, &o.CompanyID, &o.UserID, &o.SONumber, &o.CustomerName, &o.CustomerContact,
			&o.OrderDate, &o.DeliveryDate, &rawItems, &o.Subtotal, &o.Tax, &o.Total,
			&o.Status, &o.Notes, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		items, err := decodeItems(rawItems)
		if err != nil {
			return nil, fmt.Errorf("decode sales order items: %w", err)
		}
		o.Items = items
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Create persiste una nueva orden de venta.
func (r *SalesOrderRepo) Create(ctx context.Context, order *entity.SalesOrder) error {
	rawItems, err := encodeItems(order.Items)
	if err != nil {
		return fmt.Errorf("encode sales order items: %w", err)
	}
	query := `
		INSERT INTO sales_orders (id, company_id, user_id, so_number, customer_name, customer_contact,
			order_date, delivery_date, items, subtotal, tax, total, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = r.pool.Exec(ctx, query,
		order.ID, order.CompanyID, order.UserID, order.SONumber, order.CustomerName,
		order.CustomerContact, order.OrderDate, order.DeliveryDate, rawItems,
		order.Subtotal, order.Tax, order.Total, order.Status, order.Notes, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sales order: %w", err)
	}
	return nil
}
