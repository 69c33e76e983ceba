package store

import (
	"context"
	"errors"
	"fmt"

	"storefront/models"

	"github.com/jackc/pgx/v5"
)

// ListOrders returns the most recent orders, capped at limit
func (s *Store) ListOrders(ctx context.Context, limit int) ([]models.OrderSummary, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT o.id, o.customer_id, c.full_name, o.created_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		ORDER BY o.id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.OrderSummary, 0)
	for rows.Next() {
		var o models.OrderSummary
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.CustomerName, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// GetOrder returns one order with its lines enriched with product fields
func (s *Store) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	var o models.Order
	err := s.pool.QueryRow(ctx,
		`SELECT id, created_at, customer_id FROM orders WHERE id = $1`, id).Scan(
		&o.ID, &o.CreatedAt, &o.CustomerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT p.id, p.sku, p.name, p.description, p.type_id,
		       p.stock, p.cost, p.selling_price, l.amount
		FROM order_lines l
		JOIN products p ON p.id = l.product_id
		WHERE l.order_id = $1
		ORDER BY l.id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	defer rows.Close()

	o.Lines = make([]models.OrderLine, 0)
	for rows.Next() {
		var l models.OrderLine
		if err := rows.Scan(&l.ID, &l.SKU, &l.Name, &l.Description, &l.TypeID,
			&l.Stock, &l.Cost, &l.SellingPrice, &l.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		o.Lines = append(o.Lines, l)
	}
	return &o, rows.Err()
}

// CreateOrderResult reports the created order and its APM-relevant totals
type CreateOrderResult struct {
	OrderID     int
	LinesCount  int
	TotalAmount int64
	Customer    *models.Customer
}

// CreateOrder inserts an order and its lines in a single transaction.
// Returns ErrNotFound when the customer or any referenced product does
// not exist; the transaction is rolled back in that case.
func (s *Store) CreateOrder(ctx context.Context, req *models.OrderRequest) (*CreateOrderResult, error) {
	customer, err := s.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var orderID int
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (customer_id) VALUES ($1) RETURNING id`,
		req.CustomerID).Scan(&orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	var totalAmount int64
	for _, line := range req.Lines {
		var sellingPrice int64
		err = tx.QueryRow(ctx,
			`SELECT selling_price FROM products WHERE id = $1`, line.ID).Scan(&sellingPrice)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to look up product %d: %w", line.ID, err)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO order_lines (order_id, product_id, amount) VALUES ($1, $2, $3)`,
			orderID, line.ID, line.Amount)
		if err != nil {
			return nil, fmt.Errorf("failed to insert order line: %w", err)
		}
		totalAmount += int64(line.Amount) * sellingPrice
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	return &CreateOrderResult{
		OrderID:     orderID,
		LinesCount:  len(req.Lines),
		TotalAmount: totalAmount,
		Customer:    customer,
	}, nil
}
