package search

import (
	"fmt"
	"strconv"
	"sync"

	"storefront/models"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

// ProductIndex is an in-memory full-text index over the product catalog.
// It is rebuilt from the store at startup; queries may run concurrently
// with reindexing.
type ProductIndex struct {
	index    bleve.Index
	products map[int]models.ProductSummary
	mu       sync.RWMutex
	logger   *zap.Logger
}

type indexedProduct struct {
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TypeName    string `json:"type_name"`
}

// NewProductIndex creates an empty in-memory index
func NewProductIndex(logger *zap.Logger) (*ProductIndex, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create search index: %w", err)
	}
	return &ProductIndex{
		index:    index,
		products: make(map[int]models.ProductSummary),
		logger:   logger,
	}, nil
}

// Reindex replaces the index contents with the given products
func (pi *ProductIndex) Reindex(products []models.ProductSummary, descriptions map[int]string) error {
	pi.mu.Lock()
	defer pi.mu.Unlock()

	batch := pi.index.NewBatch()
	byID := make(map[int]models.ProductSummary, len(products))
	for _, p := range products {
		byID[p.ID] = p
		doc := indexedProduct{
			SKU:         p.SKU,
			Name:        p.Name,
			Description: descriptions[p.ID],
			TypeName:    p.TypeName,
		}
		if err := batch.Index(strconv.Itoa(p.ID), doc); err != nil {
			return fmt.Errorf("failed to index product %d: %w", p.ID, err)
		}
	}
	if err := pi.index.Batch(batch); err != nil {
		return fmt.Errorf("failed to apply index batch: %w", err)
	}

	pi.products = byID
	pi.logger.Info("Product index rebuilt", zap.Int("products", len(products)))
	return nil
}

// Search runs a match query over the indexed products and returns the
// matching product summaries in relevance order
func (pi *ProductIndex) Search(q string, limit int) ([]models.ProductSummary, error) {
	pi.mu.RLock()
	defer pi.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	query := bleve.NewMatchQuery(q)
	request := bleve.NewSearchRequest(query)
	request.Size = limit

	result, err := pi.index.Search(request)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]models.ProductSummary, 0, len(result.Hits))
	for _, hit := range result.Hits {
		id, err := strconv.Atoi(hit.ID)
		if err != nil {
			continue
		}
		if p, ok := pi.products[id]; ok {
			hits = append(hits, p)
		}
	}
	return hits, nil
}

// Close releases the index
func (pi *ProductIndex) Close() error {
	return pi.index.Close()
}
