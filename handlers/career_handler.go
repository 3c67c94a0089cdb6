package handlers

import (
	"net/http"

	"iot-site-backend/models"
	"iot-site-backend/services"
)

// CareerHandler serves the careers-page openings
type CareerHandler struct {
	catalog services.CatalogService
}

// NewCareerHandler creates a new career handler
func NewCareerHandler(catalog services.CatalogService) *CareerHandler {
	return &CareerHandler{catalog: catalog}
}

// GetOpenings handles GET /api/v1/careers
func (h *CareerHandler) GetOpenings(w http.ResponseWriter, r *http.Request) {
	openings := h.catalog.Openings(r.Context())

	writeJSONResponse(w, http.StatusOK, models.JobOpeningListResponse{
		Openings:   openings,
		TotalCount: len(openings),
	})
}
