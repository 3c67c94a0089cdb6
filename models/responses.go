package models

// APIError is the JSON error envelope returned by handlers
type APIError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// DocumentListResponse wraps a filtered downloads-center result set
type DocumentListResponse struct {
	Documents  []DocumentRecord `json:"documents"`
	TotalCount int              `json:"total_count"`
	Query      string           `json:"query"`
	Category   string           `json:"category"`
}

// CategoryListResponse lists the derived category selectors
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

// ProductListResponse wraps a product listing result set
type ProductListResponse struct {
	Products   []Product `json:"products"`
	TotalCount int       `json:"total_count"`
	Query      string    `json:"query"`
}

// JobOpeningListResponse lists careers-page positions
type JobOpeningListResponse struct {
	Openings   []JobOpening `json:"openings"`
	TotalCount int          `json:"total_count"`
}

// SendMessageResponse acknowledges a user chat turn. The bot reply is
// appended to the session log after the typing delay; clients poll the
// session until IsTyping flips back to false.
type SendMessageResponse struct {
	Message  ChatMessage `json:"message"`
	IsTyping bool        `json:"is_typing"`
}
