package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"iot-site-backend/errors"
	"iot-site-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockInquiryService for testing
type MockInquiryService struct {
	mock.Mock
}

func (m *MockInquiryService) Create(ctx context.Context, req *models.CreateInquiryRequest) (*models.Inquiry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inquiry), args.Error(1)
}

func (m *MockInquiryService) List(ctx context.Context) []models.Inquiry {
	args := m.Called(ctx)
	return args.Get(0).([]models.Inquiry)
}

func TestInquiryHandler_CreateInquiry(t *testing.T) {
	valid := models.CreateInquiryRequest{
		Name:    "Dana Ortiz",
		Email:   "dana@utilityco.example",
		Message: "We'd like a quote for 20 routers.",
	}

	tests := []struct {
		name           string
		requestBody    models.CreateInquiryRequest
		mockInquiry    *models.Inquiry
		mockError      error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "valid inquiry",
			requestBody:    valid,
			mockInquiry:    &models.Inquiry{ID: "inq-1", Email: valid.Email},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "validation failure",
			requestBody:    models.CreateInquiryRequest{Email: "dana@utilityco.example"},
			mockError:      errors.NewValidationError(errors.ErrCodeInvalidInput, "name, a valid email and a message are required", models.ErrInvalidInput),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockInquiryService)
			handler := NewInquiryHandler(mockService)

			mockService.On("Create", mock.Anything, &tt.requestBody).Return(tt.mockInquiry, tt.mockError)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/api/v1/inquiries", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.CreateInquiry(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.Inquiry
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.mockInquiry.ID, resp.ID)
			}

			if tt.expectedCode != "" {
				var apiErr models.APIError
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&apiErr))
				assert.Equal(t, tt.expectedCode, apiErr.Code)
			}

			mockService.AssertExpectations(t)
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		mockService := new(MockInquiryService)
		handler := NewInquiryHandler(mockService)

		req := httptest.NewRequest("POST", "/api/v1/inquiries", bytes.NewBufferString("{nope"))
		w := httptest.NewRecorder()

		handler.CreateInquiry(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
