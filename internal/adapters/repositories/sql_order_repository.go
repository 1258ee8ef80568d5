package repositories

import (
	"context"
	"database/sql"
	"delivery-sim-service/internal/domain"
	"delivery-sim-service/internal/platform/obs"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the OrderRepository port.
type SQLOrderRepository struct{ DB *sql.DB }

func NewSQLOrderRepository(db *sql.DB) *SQLOrderRepository {
	return &SQLOrderRepository{DB: db}
}

const selectOrdersQuery = `
	SELECT
		order_id,
		value_rs,
		route_id,
		delivery_deadline,
		delivered
	FROM orders
`

// Return all orders stored in the database.
func (s *SQLOrderRepository) ListOrders(ctx context.Context) (_ []domain.Order, err error) {
	defer obs.Time(ctx, "orders.ListOrders")(&err)
	return s.list(ctx, selectOrdersQuery+" ORDER BY order_id;")
}

// Return orders that have not been delivered yet.
func (s *SQLOrderRepository) ListPendingOrders(ctx context.Context) (_ []domain.Order, err error) {
	defer obs.Time(ctx, "orders.ListPendingOrders")(&err)
	return s.list(ctx, selectOrdersQuery+" WHERE NOT delivered ORDER BY order_id;")
}

func (s *SQLOrderRepository) list(ctx context.Context, query string) ([]domain.Order, error) {
	if s.DB == nil {
		return nil, errors.New("sql order repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0, 64)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.OrderID, &o.ValueRs, &o.RouteID, &o.DeliveryDeadline, &o.Delivered); err != nil {
			return nil, fmt.Errorf("list orders: scan row: %w", err)
		}
		o.DeliveryDeadline = o.DeliveryDeadline.UTC()
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}

	return orders, nil
}
