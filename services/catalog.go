package services

import (
	"context"
	"strings"

	"iot-site-backend/content"
	"iot-site-backend/errors"
	"iot-site-backend/models"

	log "github.com/sirupsen/logrus"
)

// FilterDocuments returns the ordered subsequence of records matching both
// the free-text query and the category selector. The text predicate is a
// case-insensitive substring match on title or description; the empty query
// matches everything. The query is deliberately not trimmed: a leading or
// trailing space is treated as part of the search text. The category
// predicate is exact and case-sensitive, with models.AllCategories matching
// every record; records without a category only match the All selector.
// The filter is stable (original relative order) and total (never fails).
func FilterDocuments(records []models.DocumentRecord, query, category string) []models.DocumentRecord {
	needle := strings.ToLower(query)
	matched := make([]models.DocumentRecord, 0, len(records))

	for _, rec := range records {
		if !matchesCategory(rec.Category, category) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(rec.Title), needle) &&
			!strings.Contains(strings.ToLower(rec.Description), needle) {
			continue
		}
		matched = append(matched, rec)
	}

	return matched
}

// FilterProducts applies the same predicate shape to the product listing,
// with name and tagline standing in for title and the marketing copy for
// the description.
func FilterProducts(products []models.Product, query string) []models.Product {
	needle := strings.ToLower(query)
	matched := make([]models.Product, 0, len(products))

	for _, p := range products {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Tagline), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		matched = append(matched, p)
	}

	return matched
}

// DeriveCategories builds the category selector list: the All sentinel
// first, then distinct non-empty categories in first-occurrence order.
func DeriveCategories(records []models.DocumentRecord) []string {
	categories := []string{models.AllCategories}
	seen := make(map[string]bool)

	for _, rec := range records {
		if rec.Category == "" || seen[rec.Category] {
			continue
		}
		seen[rec.Category] = true
		categories = append(categories, rec.Category)
	}

	return categories
}

func matchesCategory(recordCategory, selected string) bool {
	if selected == models.AllCategories || selected == "" {
		return true
	}
	return recordCategory == selected
}

// catalogService implements CatalogService over a content store
type catalogService struct {
	store   *content.Store
	metrics *MetricsService
	logger  *log.Entry
}

// NewCatalogService creates a catalog service backed by loaded site content
func NewCatalogService(store *content.Store, metrics *MetricsService) CatalogService {
	return &catalogService{
		store:   store,
		metrics: metrics,
		logger:  log.WithField("service", "catalog"),
	}
}

// Documents returns the filtered downloads-center records
func (s *catalogService) Documents(ctx context.Context, query, category string) []models.DocumentRecord {
	if category == "" {
		category = models.AllCategories
	}

	results := FilterDocuments(s.store.Documents(), query, category)

	if s.metrics != nil {
		s.metrics.RecordFilterQuery("documents")
	}
	s.logger.WithFields(log.Fields{
		"query":    query,
		"category": category,
		"results":  len(results),
	}).Debug("Filtered documents")

	return results
}

// Categories returns the derived category selector list
func (s *catalogService) Categories(ctx context.Context) []string {
	return DeriveCategories(s.store.Documents())
}

// Products returns the filtered product listing
func (s *catalogService) Products(ctx context.Context, query string) []models.Product {
	results := FilterProducts(s.store.Products(), query)

	if s.metrics != nil {
		s.metrics.RecordFilterQuery("products")
	}

	return results
}

// ProductByID looks up a single product by its identifier. A miss is a
// not-found AppError wrapping models.ErrNotFound.
func (s *catalogService) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	for _, p := range s.store.Products() {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}

	appErr := errors.NewNotFoundError(errors.ErrCodeResourceNotFound, "product not found", models.ErrNotFound)
	appErr.Details = id
	return nil, appErr
}

// Openings returns the careers-page positions
func (s *catalogService) Openings(ctx context.Context) []models.JobOpening {
	return s.store.Openings()
}
