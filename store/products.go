package store

import (
	"context"
	"errors"
	"fmt"

	"storefront/models"

	"github.com/jackc/pgx/v5"
)

// ListProducts returns all products with their type name
func (s *Store) ListProducts(ctx context.Context) ([]models.ProductSummary, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT p.id, p.sku, p.name, p.stock, t.name
		FROM products p
		JOIN product_types t ON t.id = p.type_id
		ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]models.ProductSummary, 0)
	for rows.Next() {
		var p models.ProductSummary
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Stock, &p.TypeName); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// TopProducts returns the three best-selling products by units sold
func (s *Store) TopProducts(ctx context.Context) ([]models.TopProduct, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT p.id, p.sku, p.name, p.stock, COALESCE(SUM(l.amount), 0) AS sold
		FROM products p
		LEFT JOIN order_lines l ON l.product_id = p.id
		GROUP BY p.id, p.sku, p.name, p.stock
		ORDER BY sold DESC
		LIMIT 3`)
	if err != nil {
		return nil, fmt.Errorf("failed to query top products: %w", err)
	}
	defer rows.Close()

	products := make([]models.TopProduct, 0, 3)
	for rows.Next() {
		var p models.TopProduct
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Stock, &p.Sold); err != nil {
			return nil, fmt.Errorf("failed to scan top product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetProduct returns the full representation of one product
func (s *Store) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	err := s.pool.QueryRow(ctx, `
		SELECT p.id, p.sku, p.name, p.description, p.type_id, t.name,
		       p.stock, p.cost, p.selling_price
		FROM products p
		JOIN product_types t ON t.id = p.type_id
		WHERE p.id = $1`, id).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.TypeID, &p.TypeName,
		&p.Stock, &p.Cost, &p.SellingPrice)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &p, nil
}

// ProductCustomers returns the distinct customers who bought a product
func (s *Store) ProductCustomers(ctx context.Context, productID, limit int) ([]models.Customer, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT DISTINCT c.id, c.full_name, c.company_name, c.email,
		       c.address, c.postal_code, c.city, c.country
		FROM customers c
		JOIN orders o ON o.customer_id = c.id
		JOIN order_lines l ON l.order_id = o.id
		WHERE l.product_id = $1
		ORDER BY c.id
		LIMIT $2`, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query product customers: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// ProductDescriptions returns product descriptions keyed by id, for the
// search index
func (s *Store) ProductDescriptions(ctx context.Context) (map[int]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, description FROM products`)
	if err != nil {
		return nil, fmt.Errorf("failed to query product descriptions: %w", err)
	}
	defer rows.Close()

	descriptions := make(map[int]string)
	for rows.Next() {
		var id int
		var d string
		if err := rows.Scan(&id, &d); err != nil {
			return nil, fmt.Errorf("failed to scan description: %w", err)
		}
		descriptions[id] = d
	}
	return descriptions, rows.Err()
}

// ListProductTypes returns all product types
func (s *Store) ListProductTypes(ctx context.Context) ([]models.ProductType, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM product_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list product types: %w", err)
	}
	defer rows.Close()

	types := make([]models.ProductType, 0)
	for rows.Next() {
		var t models.ProductType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan product type: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// GetProductType returns one product type with its products
func (s *Store) GetProductType(ctx context.Context, id int) (*models.ProductTypeDetail, error) {
	var detail models.ProductTypeDetail
	err := s.pool.QueryRow(ctx,
		`SELECT id, name FROM product_types WHERE id = $1`, id).Scan(&detail.ID, &detail.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product type %d: %w", id, err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, name FROM products WHERE type_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query type products: %w", err)
	}
	defer rows.Close()

	detail.Products = make([]models.ProductRef, 0)
	for rows.Next() {
		var ref models.ProductRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("failed to scan product ref: %w", err)
		}
		detail.Products = append(detail.Products, ref)
	}
	return &detail, rows.Err()
}
