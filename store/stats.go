package store

import (
	"context"
	"fmt"

	"storefront/models"
)

// Stats aggregates product, customer, and order counts plus total revenue
func (s *Store) Stats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	err := s.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM orders),
			(SELECT COALESCE(SUM(l.amount * p.selling_price), 0)
			 FROM order_lines l JOIN products p ON p.id = l.product_id)`).Scan(
		&stats.Products, &stats.Customers, &stats.Orders, &stats.Revenue)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	return &stats, nil
}
