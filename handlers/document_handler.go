package handlers

import (
	"net/http"

	"iot-site-backend/models"
	"iot-site-backend/services"
)

// DocumentHandler serves the downloads-center catalog
type DocumentHandler struct {
	catalog services.CatalogService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(catalog services.CatalogService) *DocumentHandler {
	return &DocumentHandler{catalog: catalog}
}

// GetDocuments handles GET /api/v1/documents?query=&category=
//
// The empty query and the "All" category (or an absent category parameter)
// are the identity filter: every record in original order. An empty result
// is a valid answer, never an error.
func (h *DocumentHandler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	category := r.URL.Query().Get("category")
	if category == "" {
		category = models.AllCategories
	}

	documents := h.catalog.Documents(r.Context(), query, category)

	writeJSONResponse(w, http.StatusOK, models.DocumentListResponse{
		Documents:  documents,
		TotalCount: len(documents),
		Query:      query,
		Category:   category,
	})
}

// GetCategories handles GET /api/v1/documents/categories
func (h *DocumentHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, models.CategoryListResponse{
		Categories: h.catalog.Categories(r.Context()),
	})
}
