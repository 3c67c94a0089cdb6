package services

import (
	"context"
	"strings"
	"testing"

	"iot-site-backend/content"
	"iot-site-backend/errors"
	"iot-site-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStore(t *testing.T) *content.Store {
	t.Helper()
	store, err := content.Load("")
	require.NoError(t, err)
	return store
}

func testRecords() []models.DocumentRecord {
	return []models.DocumentRecord{
		{Title: "X9000 Datasheet", Description: "Specs for the X9000 router", Category: "4G/5G Products"},
		{Title: "E5212 Manual", Description: "Wiring for the remote IO controller", Category: "Remote IO Controllers"},
		{Title: "Edge8000 Datasheet", Description: "Edge gateway specs", Category: "Edge Computing"},
		{Title: "Connectivity Whitepaper", Description: "Industry overview"}, // no category
	}
}

func TestFilterDocuments(t *testing.T) {
	records := testRecords()

	tests := []struct {
		name           string
		query          string
		category       string
		expectedTitles []string
	}{
		{
			name:           "identity filter returns everything in order",
			query:          "",
			category:       models.AllCategories,
			expectedTitles: []string{"X9000 Datasheet", "E5212 Manual", "Edge8000 Datasheet", "Connectivity Whitepaper"},
		},
		{
			name:           "query matches title case-insensitively",
			query:          "x9000",
			category:       models.AllCategories,
			expectedTitles: []string{"X9000 Datasheet"},
		},
		{
			name:           "query matches description",
			query:          "remote io",
			category:       models.AllCategories,
			expectedTitles: []string{"E5212 Manual"},
		},
		{
			name:           "category is exact and case-sensitive",
			query:          "",
			category:       "Remote IO Controllers",
			expectedTitles: []string{"E5212 Manual"},
		},
		{
			name:           "wrong category case matches nothing",
			query:          "",
			category:       "remote io controllers",
			expectedTitles: []string{},
		},
		{
			name:           "uncategorized records never match a specific category",
			query:          "whitepaper",
			category:       "Edge Computing",
			expectedTitles: []string{},
		},
		{
			name:           "query and category combine with AND",
			query:          "datasheet",
			category:       "Edge Computing",
			expectedTitles: []string{"Edge8000 Datasheet"},
		},
		{
			name:           "no match yields empty result, not an error",
			query:          "zzz",
			category:       models.AllCategories,
			expectedTitles: []string{},
		},
		{
			name:           "query is not trimmed",
			query:          " x9000",
			category:       models.AllCategories,
			expectedTitles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := FilterDocuments(records, tt.query, tt.category)

			titles := make([]string, 0, len(results))
			for _, r := range results {
				titles = append(titles, r.Title)
			}
			assert.Equal(t, tt.expectedTitles, titles)
		})
	}
}

func TestFilterDocuments_CaseInsensitivity(t *testing.T) {
	records := testRecords()

	for _, query := range []string{"datasheet", "DATASHEET", "DataSheet"} {
		results := FilterDocuments(records, query, models.AllCategories)
		assert.Len(t, results, 2, "query %q should match both datasheets", query)
	}
}

func TestFilterDocuments_SubsequenceProperty(t *testing.T) {
	records := mustStore(t).Documents()

	// Adding a text query never adds results: every filtered result must
	// appear, in order, within the category-only result.
	base := FilterDocuments(records, "", "4G/5G Products")
	narrowed := FilterDocuments(records, "firmware", "4G/5G Products")

	i := 0
	for _, rec := range base {
		if i < len(narrowed) && narrowed[i].Title == rec.Title {
			i++
		}
	}
	assert.Equal(t, len(narrowed), i, "narrowed result must be an ordered subsequence")
}

func TestFilterDocuments_Idempotence(t *testing.T) {
	records := testRecords()

	once := FilterDocuments(records, "datasheet", models.AllCategories)
	twice := FilterDocuments(once, "datasheet", models.AllCategories)
	assert.Equal(t, once, twice)
}

func TestFilterDocuments_CategoryExactness(t *testing.T) {
	records := mustStore(t).Documents()

	for _, category := range DeriveCategories(records) {
		if category == models.AllCategories {
			continue
		}
		for _, rec := range FilterDocuments(records, "", category) {
			assert.Equal(t, category, rec.Category)
		}
	}
}

func TestDeriveCategories(t *testing.T) {
	categories := DeriveCategories(testRecords())

	// All first, then first-occurrence order, uncategorized skipped
	assert.Equal(t, []string{
		models.AllCategories,
		"4G/5G Products",
		"Remote IO Controllers",
		"Edge Computing",
	}, categories)
}

func TestFilterProducts(t *testing.T) {
	products := []models.Product{
		{ID: "x9000", Name: "X9000", Tagline: "Industrial 5G router", Description: "Dual-SIM 5G"},
		{ID: "e5212", Name: "E5212", Tagline: "Remote IO controller", Description: "Modbus and DNP3"},
	}

	assert.Len(t, FilterProducts(products, ""), 2)
	assert.Len(t, FilterProducts(products, "modbus"), 1)
	assert.Len(t, FilterProducts(products, "5g ROUTER"), 1)
	assert.Empty(t, FilterProducts(products, "zzz"))
}

func TestCatalogService(t *testing.T) {
	store := mustStore(t)
	svc := NewCatalogService(store, nil)
	ctx := context.Background()

	t.Run("documents defaults to the All selector", func(t *testing.T) {
		all := svc.Documents(ctx, "", "")
		assert.Equal(t, len(store.Documents()), len(all))
	})

	t.Run("categories start with All", func(t *testing.T) {
		categories := svc.Categories(ctx)
		require.NotEmpty(t, categories)
		assert.Equal(t, models.AllCategories, categories[0])
	})

	t.Run("product lookup by id", func(t *testing.T) {
		product, err := svc.ProductByID(ctx, "e5212")
		require.NoError(t, err)
		assert.Equal(t, "E5212", product.Name)

		_, err = svc.ProductByID(ctx, "nope")
		assert.ErrorIs(t, err, models.ErrNotFound)

		appErr, ok := errors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeResourceNotFound, appErr.Code)
		assert.Equal(t, 404, appErr.GetHTTPStatusCode())
	})

	t.Run("openings are served", func(t *testing.T) {
		assert.NotEmpty(t, svc.Openings(ctx))
	})

	t.Run("every document query is lowercase-stable", func(t *testing.T) {
		for _, rec := range store.Documents() {
			needle := strings.ToUpper(rec.Title)
			results := svc.Documents(ctx, needle, models.AllCategories)
			assert.NotEmpty(t, results, "uppercased title %q should still match", rec.Title)
		}
	})
}
