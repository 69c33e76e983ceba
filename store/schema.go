package store

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS product_types (
		id   SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id            SERIAL PRIMARY KEY,
		sku           TEXT NOT NULL UNIQUE,
		name          TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		type_id       INTEGER NOT NULL REFERENCES product_types(id),
		stock         INTEGER NOT NULL DEFAULT 0,
		cost          INTEGER NOT NULL DEFAULT 0,
		selling_price INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id           SERIAL PRIMARY KEY,
		full_name    TEXT NOT NULL,
		company_name TEXT NOT NULL DEFAULT '',
		email        TEXT NOT NULL,
		address      TEXT NOT NULL DEFAULT '',
		postal_code  TEXT NOT NULL DEFAULT '',
		city         TEXT NOT NULL DEFAULT '',
		country      TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id          SERIAL PRIMARY KEY,
		customer_id INTEGER NOT NULL REFERENCES customers(id),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_lines (
		id         SERIAL PRIMARY KEY,
		order_id   INTEGER NOT NULL REFERENCES orders(id),
		product_id INTEGER NOT NULL REFERENCES products(id),
		amount     INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS order_lines_order_id_idx ON order_lines(order_id)`,
	`CREATE INDEX IF NOT EXISTS order_lines_product_id_idx ON order_lines(product_id)`,
}

// EnsureSchema creates the shop tables if they do not exist
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
