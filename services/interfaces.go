package services

import (
	"context"

	"iot-site-backend/models"
)

// CatalogService serves the static product and document catalog. Reads are
// pure functions over content loaded once at startup, so none of them can
// fail except by lookup miss.
type CatalogService interface {
	Documents(ctx context.Context, query, category string) []models.DocumentRecord
	Categories(ctx context.Context) []string
	Products(ctx context.Context, query string) []models.Product
	ProductByID(ctx context.Context, id string) (*models.Product, error)
	Openings(ctx context.Context) []models.JobOpening
}

// ChatService manages chat widget sessions and drives the scripted
// responder. One bot reply is in flight per session at most; SendMessage
// fails with an error matching models.ErrReplyPending while the previous
// reply is being typed.
type ChatService interface {
	// OpenSession creates a session when sessionID is empty or unknown,
	// and reopens the existing one (no welcome replay) otherwise.
	OpenSession(ctx context.Context, sessionID, pagePath string) (*models.ChatSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.ChatSession, error)
	SendMessage(ctx context.Context, sessionID, text string, quickReply bool) (*models.ChatMessage, error)
	CloseSession(ctx context.Context, sessionID string) error
}

// InquiryService handles contact-form submissions
type InquiryService interface {
	Create(ctx context.Context, req *models.CreateInquiryRequest) (*models.Inquiry, error)
	List(ctx context.Context) []models.Inquiry
}
