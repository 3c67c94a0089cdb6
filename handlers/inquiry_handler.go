package handlers

import (
	"encoding/json"
	"net/http"

	"iot-site-backend/models"
	"iot-site-backend/services"
)

// InquiryHandler handles contact-form submissions
type InquiryHandler struct {
	inquiries services.InquiryService
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiries services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

// CreateInquiry handles POST /api/v1/inquiries
func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	inquiry, err := h.inquiries.Create(r.Context(), &req)
	if err != nil {
		writeAppErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, inquiry)
}
