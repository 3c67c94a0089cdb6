package handlers

import (
	"net/http"

	"iot-site-backend/models"
	"iot-site-backend/services"

	"github.com/gorilla/mux"
)

// ProductHandler serves the product listing and detail pages
type ProductHandler struct {
	catalog services.CatalogService
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalog services.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// GetProducts handles GET /api/v1/products?query=
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	products := h.catalog.Products(r.Context(), query)

	writeJSONResponse(w, http.StatusOK, models.ProductListResponse{
		Products:   products,
		TotalCount: len(products),
		Query:      query,
	})
}

// GetProductByID handles GET /api/v1/products/{id}
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID := vars["id"]

	if productID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "product ID is required", "")
		return
	}

	product, err := h.catalog.ProductByID(r.Context(), productID)
	if err != nil {
		writeAppErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, product)
}
