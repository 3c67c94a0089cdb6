package models

import (
	"errors"
	"time"
)

// DocumentType enumerates the kinds of downloadable artifacts in the catalog
type DocumentType string

const (
	DocumentTypeDatasheet  DocumentType = "datasheet"
	DocumentTypeManual     DocumentType = "manual"
	DocumentTypeFirmware   DocumentType = "firmware"
	DocumentTypeSoftware   DocumentType = "software"
	DocumentTypeWhitepaper DocumentType = "whitepaper"
	DocumentTypeImage      DocumentType = "image"
)

// AllCategories is the synthetic category selector that matches every record
const AllCategories = "All"

// DocumentRecord represents a downloads-center catalog entry
type DocumentRecord struct {
	Title           string       `json:"title" yaml:"title"`
	Description     string       `json:"description" yaml:"description"`
	Type            DocumentType `json:"type" yaml:"type"`
	Version         string       `json:"version,omitempty" yaml:"version"`
	Date            string       `json:"date" yaml:"date"` // display-formatted, not sortable
	FileSize        string       `json:"file_size,omitempty" yaml:"file_size"`
	DownloadURL     string       `json:"download_url" yaml:"download_url"`
	Category        string       `json:"category,omitempty" yaml:"category"`
	RelatedProducts []string     `json:"related_products,omitempty" yaml:"related_products"`
}

// Product represents a hardware product in the marketing catalog
type Product struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Tagline     string   `json:"tagline" yaml:"tagline"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	Features    []string `json:"features,omitempty" yaml:"features"`
	PageURL     string   `json:"page_url" yaml:"page_url"`
}

// JobOpening represents a careers-page position
type JobOpening struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	Department string `json:"department" yaml:"department"`
	Location   string `json:"location" yaml:"location"`
	Type       string `json:"type" yaml:"type"` // full-time, contract
	Summary    string `json:"summary" yaml:"summary"`
}

// Inquiry represents a submitted contact-form inquiry
type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageSender identifies who authored a chat message
type MessageSender string

const (
	MessageSenderUser MessageSender = "user"
	MessageSenderBot  MessageSender = "bot"
)

// LinkKind classifies a link attached to a chat message
type LinkKind string

const (
	LinkKindPage     LinkKind = "page"
	LinkKindDocument LinkKind = "document"
	LinkKindExternal LinkKind = "external"
)

// MessageLink is a link attached to a bot chat message
type MessageLink struct {
	Text string   `json:"text"`
	URL  string   `json:"url"`
	Kind LinkKind `json:"kind"`
}

// ChatMessage is one entry in a session's append-only message log.
// IDs are ULIDs, so lexicographic ID order equals generation order.
type ChatMessage struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Sender    MessageSender `json:"sender"`
	Timestamp time.Time     `json:"timestamp"`
	Options   []string      `json:"options,omitempty"`
	Links     []MessageLink `json:"links,omitempty"`
}

// ChatState is the per-session widget state
type ChatState string

const (
	ChatStateClosed     ChatState = "closed"
	ChatStateOpenEmpty  ChatState = "open_empty"
	ChatStateOpenIdle   ChatState = "open_idle"
	ChatStateOpenTyping ChatState = "open_typing"
)

// ConversationContext is the rolling per-session context the responder
// consults when selecting a reply
type ConversationContext struct {
	LastTopic         string   `json:"last_topic,omitempty"`
	UserInterests     []string `json:"user_interests,omitempty"` // insertion-ordered set
	QuestionsAsked    int      `json:"questions_asked"`
	NeedsHumanSupport bool     `json:"needs_human_support"`
}

// RecordInterest adds a topic to UserInterests if not already present
func (c *ConversationContext) RecordInterest(topic string) {
	for _, t := range c.UserInterests {
		if t == topic {
			return
		}
	}
	c.UserInterests = append(c.UserInterests, topic)
}

// BotReply is the canned response a responder rule produces
type BotReply struct {
	Text    string        `json:"text"`
	Options []string      `json:"options,omitempty"`
	Links   []MessageLink `json:"links,omitempty"`

	// Topic is the conversation topic this reply establishes, empty if none
	Topic string `json:"-"`

	// Escalate marks the reply as a human-support handoff
	Escalate bool `json:"-"`
}

// ChatSession is a snapshot of one chat widget session
type ChatSession struct {
	ID        string              `json:"id"`
	PagePath  string              `json:"page_path"`
	State     ChatState           `json:"state"`
	IsTyping  bool                `json:"is_typing"`
	Messages  []ChatMessage       `json:"messages"`
	Context   ConversationContext `json:"context"`
	CreatedAt time.Time           `json:"created_at"`
}

// Common errors
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrSessionNotFound = errors.New("chat session not found")
	ErrReplyPending    = errors.New("a reply is already being composed for this session")
)
