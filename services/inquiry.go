package services

import (
	"context"
	"sync"
	"time"

	"iot-site-backend/errors"
	"iot-site-backend/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// inquiryService implements InquiryService with an in-memory store. The
// site has no persistence layer; submissions are logged structured so the
// ops pipeline can pick them up, and held in memory for the process
// lifetime.
type inquiryService struct {
	mu        sync.RWMutex
	inquiries []models.Inquiry
	metrics   *MetricsService
	logger    *log.Entry
	now       func() time.Time
}

// NewInquiryService creates the contact-form intake service
func NewInquiryService(metrics *MetricsService) InquiryService {
	return &inquiryService{
		metrics: metrics,
		logger:  log.WithField("service", "inquiry"),
		now:     time.Now,
	}
}

// Create validates and stores one inquiry. Invalid input yields a
// validation AppError wrapping models.ErrInvalidInput.
func (s *inquiryService) Create(ctx context.Context, req *models.CreateInquiryRequest) (*models.Inquiry, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidInput, "name, a valid email and a message are required", err)
	}

	inquiry := models.Inquiry{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Company:   req.Company,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.inquiries = append(s.inquiries, inquiry)
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.RecordInquiry()
	}
	s.logger.WithFields(log.Fields{
		"inquiry_id": inquiry.ID,
		"email":      inquiry.Email,
		"company":    inquiry.Company,
		"subject":    inquiry.Subject,
	}).Info("Inquiry submitted")

	return &inquiry, nil
}

// List returns submitted inquiries in submission order
func (s *inquiryService) List(ctx context.Context) []models.Inquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Inquiry, len(s.inquiries))
	copy(out, s.inquiries)
	return out
}
