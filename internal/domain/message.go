package domain

import "time"

// MessageRole identifies who authored a conversation message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleDraft     MessageRole = "draft"
	// RoleSystem is reserved for future prompt plumbing and never persisted.
	RoleSystem MessageRole = "system"
)

// MessageStatus enumerates the delivery states of a message.
type MessageStatus string

const (
	StatusReceived MessageStatus = "received"
	StatusDraft    MessageStatus = "draft"
	StatusSent     MessageStatus = "sent"
)

// Message is one entry in a contact's conversation log. A draft moves
// received -> draft -> sent (approve) or is deleted outright (reject).
type Message struct {
	ID        string        `json:"id" db:"id"`
	ContactID string        `json:"contactId" db:"contact_id"`
	Content   string        `json:"content" db:"content"`
	Role      MessageRole   `json:"role" db:"role"`
	Status    MessageStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
}

// DraftWithContact is a draft message joined with its owning contact's
// identity fields, as listed in the inbox review queue.
type DraftWithContact struct {
	Message
	CompanyName   string  `json:"companyName" db:"company_name"`
	Email         string  `json:"email" db:"email"`
	ContactPerson *string `json:"contactPerson" db:"contact_person"`
}
