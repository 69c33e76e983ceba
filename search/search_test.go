package search

import (
	"testing"

	"storefront/models"

	"go.uber.org/zap"
)

func testProducts() ([]models.ProductSummary, map[int]string) {
	products := []models.ProductSummary{
		{ID: 1, SKU: "SF-00001", Name: "Wireless Headphones", Stock: 5, TypeName: "Electronics"},
		{ID: 2, SKU: "SF-00002", Name: "Ergonomic Chair", Stock: 12, TypeName: "Home & Garden"},
		{ID: 3, SKU: "SF-00003", Name: "Portable Lamp", Stock: 3, TypeName: "Home & Garden"},
	}
	descriptions := map[int]string{
		1: "Noise cancelling headphones with wireless charging.",
		2: "A chair that is kind to your back.",
		3: "A lamp you can take anywhere.",
	}
	return products, descriptions
}

func TestSearchByName(t *testing.T) {
	index, err := NewProductIndex(zap.NewNop())
	if err != nil {
		t.Fatalf("NewProductIndex failed: %v", err)
	}
	defer index.Close()

	products, descriptions := testProducts()
	if err := index.Reindex(products, descriptions); err != nil {
		t.Fatalf("Reindex failed: %v", err)
	}

	hits, err := index.Search("headphones", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != 1 {
		t.Fatalf("Search(headphones) = %+v, want product 1", hits)
	}
}

func TestSearchByDescription(t *testing.T) {
	index, err := NewProductIndex(zap.NewNop())
	if err != nil {
		t.Fatalf("NewProductIndex failed: %v", err)
	}
	defer index.Close()

	products, descriptions := testProducts()
	if err := index.Reindex(products, descriptions); err != nil {
		t.Fatalf("Reindex failed: %v", err)
	}

	hits, err := index.Search("cancelling", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != 1 {
		t.Fatalf("Search(cancelling) = %+v, want product 1", hits)
	}
}

func TestSearchNoResults(t *testing.T) {
	index, err := NewProductIndex(zap.NewNop())
	if err != nil {
		t.Fatalf("NewProductIndex failed: %v", err)
	}
	defer index.Close()

	products, descriptions := testProducts()
	if err := index.Reindex(products, descriptions); err != nil {
		t.Fatalf("Reindex failed: %v", err)
	}

	hits, err := index.Search("submarine", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("Search(submarine) = %+v, want no hits", hits)
	}
}
