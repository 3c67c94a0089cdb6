package models

import "strings"

// OpenChatRequest is the payload for opening a chat session
type OpenChatRequest struct {
	// SessionID reopens an existing session when set; the welcome message
	// is not replayed. Empty or unknown IDs start a fresh session.
	SessionID string `json:"session_id,omitempty"`

	// PagePath is the route the widget is mounted on, for example "/downloads".
	// Used by the responder's page-section rules.
	PagePath string `json:"page_path"`
}

// SendMessageRequest is the payload for sending a user chat turn
type SendMessageRequest struct {
	Text string `json:"text"`

	// QuickReply marks the text as a clicked quick-reply label rather than
	// free-typed input. Labels are matched exactly against the canned table.
	QuickReply bool `json:"quick_reply"`
}

// CreateInquiryRequest is the payload for the contact/inquiry form
type CreateInquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate checks required inquiry fields
func (r *CreateInquiryRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidInput
	}
	email := strings.TrimSpace(r.Email)
	if email == "" || !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return ErrInvalidInput
	}
	if strings.TrimSpace(r.Message) == "" {
		return ErrInvalidInput
	}
	return nil
}
