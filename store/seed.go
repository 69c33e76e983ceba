package store

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"
)

var (
	typeNames = []string{"Electronics", "Clothing", "Books", "Home & Garden", "Sports", "Toys"}

	productNames = []string{
		"Laptop", "Smartphone", "Tablet", "Headphones", "Monitor",
		"T-Shirt", "Jeans", "Sneakers", "Jacket", "Hat",
		"Novel", "Textbook", "Magazine", "Comic", "Dictionary",
		"Chair", "Table", "Lamp", "Plant", "Curtains",
		"Basketball", "Tennis Racket", "Yoga Mat", "Dumbbell", "Soccer Ball",
		"Board Game", "Puzzle", "Doll", "Action Figure", "Building Set",
	}

	adjectives = []string{
		"Premium", "Professional", "Deluxe", "Standard", "Basic",
		"Wireless", "Portable", "Compact", "Ergonomic", "Modern",
		"Classic", "Vintage", "Heavy-Duty", "Lightweight",
	}

	firstNames = []string{
		"Alice", "Bruno", "Carla", "Derek", "Elena", "Felix", "Greta",
		"Hugo", "Ivana", "Jonas", "Klara", "Liam", "Mona", "Nils", "Olga",
	}

	lastNames = []string{
		"Anderson", "Becker", "Carlsen", "Dubois", "Eriksen", "Fischer",
		"Garcia", "Hansen", "Ivanov", "Jensen", "Keller", "Larsen",
	}

	cities = []string{
		"Berlin", "Amsterdam", "Copenhagen", "Lisbon", "Madrid",
		"Oslo", "Paris", "Prague", "Vienna", "Warsaw",
	}

	countries = []string{
		"Germany", "Netherlands", "Denmark", "Portugal", "Spain",
		"Norway", "France", "Czechia", "Austria", "Poland",
	}
)

func pick(r *rand.Rand, arr []string) string {
	return arr[r.Intn(len(arr))]
}

// Seed populates the database with demo data: all product types, n products,
// n customers, and roughly 2n orders with one to four lines each. Not
// idempotent; intended for a fresh database.
func (s *Store) Seed(ctx context.Context, n int) error {
	r := rand.New(rand.NewSource(42))

	typeIDs := make([]int, 0, len(typeNames))
	for _, name := range typeNames {
		var id int
		err := s.pool.QueryRow(ctx, `
			INSERT INTO product_types (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`, name).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to seed product type %q: %w", name, err)
		}
		typeIDs = append(typeIDs, id)
	}

	productIDs := make([]int, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("%s %s", pick(r, adjectives), pick(r, productNames))
		cost := 100 + r.Intn(5000)
		var id int
		err := s.pool.QueryRow(ctx, `
			INSERT INTO products (sku, name, description, type_id, stock, cost, selling_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			fmt.Sprintf("SF-%05d", i+1),
			name,
			fmt.Sprintf("A %s for the discerning shopper.", name),
			typeIDs[r.Intn(len(typeIDs))],
			r.Intn(500),
			cost,
			cost+r.Intn(3000),
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to seed product: %w", err)
		}
		productIDs = append(productIDs, id)
	}

	customerIDs := make([]int, 0, n)
	for i := 0; i < n; i++ {
		fullName := fmt.Sprintf("%s %s", pick(r, firstNames), pick(r, lastNames))
		var id int
		err := s.pool.QueryRow(ctx, `
			INSERT INTO customers (full_name, company_name, email, address, postal_code, city, country)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			fullName,
			fmt.Sprintf("%s GmbH", pick(r, lastNames)),
			fmt.Sprintf("customer%d@example.com", i+1),
			fmt.Sprintf("%d Main Street", r.Intn(900)+1),
			fmt.Sprintf("%05d", r.Intn(100000)),
			pick(r, cities),
			pick(r, countries),
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to seed customer: %w", err)
		}
		customerIDs = append(customerIDs, id)
	}

	orders := 0
	for i := 0; i < 2*n; i++ {
		var orderID int
		err := s.pool.QueryRow(ctx,
			`INSERT INTO orders (customer_id) VALUES ($1) RETURNING id`,
			customerIDs[r.Intn(len(customerIDs))]).Scan(&orderID)
		if err != nil {
			return fmt.Errorf("failed to seed order: %w", err)
		}
		for j := 0; j < 1+r.Intn(4); j++ {
			_, err = s.pool.Exec(ctx,
				`INSERT INTO order_lines (order_id, product_id, amount) VALUES ($1, $2, $3)`,
				orderID, productIDs[r.Intn(len(productIDs))], 1+r.Intn(5))
			if err != nil {
				return fmt.Errorf("failed to seed order line: %w", err)
			}
		}
		orders++
	}

	s.logger.Info("Seeded demo data",
		zap.Int("product_types", len(typeIDs)),
		zap.Int("products", len(productIDs)),
		zap.Int("customers", len(customerIDs)),
		zap.Int("orders", orders),
	)
	return nil
}
