package models

import "time"

// ProductSummary is the list representation of a product
type ProductSummary struct {
	ID       int    `json:"id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	TypeName string `json:"type_name"`
}

// TopProduct is a product ranked by units sold
type TopProduct struct {
	ID    int    `json:"id"`
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
	Sold  int64  `json:"sold"`
}

// Product is the full product representation
type Product struct {
	ID           int    `json:"id"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	TypeID       int    `json:"type_id"`
	TypeName     string `json:"type_name"`
	Stock        int    `json:"stock"`
	Cost         int    `json:"cost"`
	SellingPrice int    `json:"selling_price"`
}

// ProductType represents a product category
type ProductType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductRef is the minimal product representation nested in a type
type ProductRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductTypeDetail is a product type with its products
type ProductTypeDetail struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	Products []ProductRef `json:"products"`
}

// Customer represents a shop customer
type Customer struct {
	ID          int    `json:"id"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// OrderSummary is the list representation of an order
type OrderSummary struct {
	ID           int       `json:"id"`
	CustomerID   int       `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrderLine is a single line of an order, enriched with product fields
type OrderLine struct {
	ID           int    `json:"id"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	TypeID       int    `json:"type_id"`
	Stock        int    `json:"stock"`
	Cost         int    `json:"cost"`
	SellingPrice int    `json:"selling_price"`
	Amount       int    `json:"amount"`
}

// Order is the full order representation
type Order struct {
	ID         int         `json:"id"`
	CreatedAt  time.Time   `json:"created_at"`
	CustomerID int         `json:"customer_id"`
	Lines      []OrderLine `json:"lines"`
}

// OrderRequest is the body of POST /api/orders
type OrderRequest struct {
	CustomerID int                `json:"customer_id"`
	Lines      []OrderLineRequest `json:"lines"`
}

// OrderLineRequest is a requested order line (product id + amount)
type OrderLineRequest struct {
	ID     int `json:"id"`
	Amount int `json:"amount"`
}

// Stats aggregates shop-wide counters for GET /api/stats
type Stats struct {
	Products  int64 `json:"products"`
	Customers int64 `json:"customers"`
	Orders    int64 `json:"orders"`
	Revenue   int64 `json:"revenue"`
}
