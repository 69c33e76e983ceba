package store

import (
	"context"
	"errors"
	"fmt"

	"storefront/models"

	"github.com/jackc/pgx/v5"
)

// ListCustomers returns all customers
func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, full_name, company_name, email, address, postal_code, city, country
		FROM customers
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// GetCustomer returns one customer
func (s *Store) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	var c models.Customer
	err := s.pool.QueryRow(ctx, `
		SELECT id, full_name, company_name, email, address, postal_code, city, country
		FROM customers
		WHERE id = $1`, id).Scan(
		&c.ID, &c.FullName, &c.CompanyName, &c.Email,
		&c.Address, &c.PostalCode, &c.City, &c.Country)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %d: %w", id, err)
	}
	return &c, nil
}

func scanCustomers(rows pgx.Rows) ([]models.Customer, error) {
	customers := make([]models.Customer, 0)
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.FullName, &c.CompanyName, &c.Email,
			&c.Address, &c.PostalCode, &c.City, &c.Country); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
