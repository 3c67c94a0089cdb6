package services

import (
	"context"
	"testing"

	"iot-site-backend/errors"
	"iot-site-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInquiryService_Create(t *testing.T) {
	tests := []struct {
		name        string
		request     *models.CreateInquiryRequest
		expectError bool
	}{
		{
			name: "valid inquiry",
			request: &models.CreateInquiryRequest{
				Name:    "Dana Ortiz",
				Email:   "dana@utilityco.example",
				Company: "UtilityCo",
				Subject: "X9000 evaluation units",
				Message: "We'd like to evaluate three units for a substation pilot.",
			},
			expectError: false,
		},
		{
			name: "company and subject are optional",
			request: &models.CreateInquiryRequest{
				Name:    "Kim Lee",
				Email:   "kim@example.com",
				Message: "Please send pricing.",
			},
			expectError: false,
		},
		{
			name: "missing name",
			request: &models.CreateInquiryRequest{
				Email:   "kim@example.com",
				Message: "Please send pricing.",
			},
			expectError: true,
		},
		{
			name: "missing message",
			request: &models.CreateInquiryRequest{
				Name:  "Kim Lee",
				Email: "kim@example.com",
			},
			expectError: true,
		},
		{
			name: "email without at sign",
			request: &models.CreateInquiryRequest{
				Name:    "Kim Lee",
				Email:   "kim.example.com",
				Message: "Please send pricing.",
			},
			expectError: true,
		},
		{
			name: "email starting with at sign",
			request: &models.CreateInquiryRequest{
				Name:    "Kim Lee",
				Email:   "@example.com",
				Message: "Please send pricing.",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewInquiryService(nil)
			inquiry, err := svc.Create(context.Background(), tt.request)

			if tt.expectError {
				assert.ErrorIs(t, err, models.ErrInvalidInput)
				assert.Nil(t, inquiry)

				appErr, ok := errors.AsAppError(err)
				require.True(t, ok)
				assert.Equal(t, errors.ErrCodeInvalidInput, appErr.Code)
				assert.Equal(t, 400, appErr.GetHTTPStatusCode())
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, inquiry.ID)
			assert.Equal(t, tt.request.Email, inquiry.Email)
			assert.False(t, inquiry.CreatedAt.IsZero())
		})
	}
}

func TestInquiryService_List(t *testing.T) {
	svc := NewInquiryService(nil)
	ctx := context.Background()

	assert.Empty(t, svc.List(ctx))

	for _, subject := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, &models.CreateInquiryRequest{
			Name:    "Kim Lee",
			Email:   "kim@example.com",
			Subject: subject,
			Message: "Hello.",
		})
		require.NoError(t, err)
	}

	listed := svc.List(ctx)
	require.Len(t, listed, 3)
	assert.Equal(t, "first", listed[0].Subject)
	assert.Equal(t, "third", listed[2].Subject)

	// The returned slice is a copy.
	listed[0].Subject = "mutated"
	assert.Equal(t, "first", svc.List(ctx)[0].Subject)
}
