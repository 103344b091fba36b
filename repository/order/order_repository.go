package order

import (
	"context"
	"database/sql"

	"github.com/heolazz/aerotech/constant"
	"github.com/heolazz/aerotech/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	Insert(ctx context.Context, order *model.OrderEntity) (uint64, error)
	GetByOrderID(ctx context.Context, orderID string) (*model.OrderEntity, error)
	ListAll(ctx context.Context) ([]model.OrderEntity, error)
	UpdateStatus(ctx context.Context, orderID string, status constant.OrderStatus) error
	Delete(ctx context.Context, orderID string) error
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrderQuery = `INSERT INTO orders
(order_id, customer_name, customer_phone, customer_address, items_summary, notes, total_price, status, type, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	getOrderQuery = `SELECT id, order_id, customer_name, customer_phone, customer_address,
items_summary, notes, total_price, status, type, created_at
FROM orders WHERE order_id = ?`

	listOrdersQuery = `SELECT id, order_id, customer_name, customer_phone, customer_address,
items_summary, notes, total_price, status, type, created_at
FROM orders ORDER BY created_at DESC`

	updateStatusQuery = "UPDATE orders SET status = ? WHERE order_id = ?"

	deleteOrderQuery = "DELETE FROM orders WHERE order_id = ?"
)

func (s *SQL) Insert(ctx context.Context, order *model.OrderEntity) (uint64, error) {
	res, err := s.conn.ExecContext(ctx, insertOrderQuery,
		order.OrderID, order.CustomerName, order.CustomerPhone, order.CustomerAddress,
		order.ItemsSummary, order.Notes, order.TotalPrice, order.Status, order.Type)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) GetByOrderID(ctx context.Context, orderID string) (*model.OrderEntity, error) {
	var entity model.OrderEntity
	if err := s.conn.QueryRowxContext(ctx, getOrderQuery, orderID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListAll(ctx context.Context) ([]model.OrderEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listOrdersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.OrderEntity, 0)
	for rows.Next() {
		var entity model.OrderEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		orders = append(orders, entity)
	}
	return orders, rows.Err()
}

func (s *SQL) UpdateStatus(ctx context.Context, orderID string, status constant.OrderStatus) error {
	_, err := s.conn.ExecContext(ctx, updateStatusQuery, status, orderID)
	return err
}

func (s *SQL) Delete(ctx context.Context, orderID string) error {
	_, err := s.conn.ExecContext(ctx, deleteOrderQuery, orderID)
	return err
}
