package inbox

import (
	"context"

	"github.com/ignite/outreach-hub/internal/domain"
)

// Repository defines the data access contract for the inbox workflow.
// Implementations must be safe for concurrent use.
type Repository interface {
	// GetContact returns the owning contact for a conversation.
	// Returns ErrContactNotFound if it doesn't exist.
	GetContact(ctx context.Context, id string) (*domain.Contact, error)

	// InsertMessage appends a message to a contact's conversation and
	// returns the stored row with id and created_at populated.
	InsertMessage(ctx context.Context, m *domain.Message) (*domain.Message, error)

	// History returns all messages for a contact ordered by created_at ASC,
	// the canonical transcript.
	History(ctx context.Context, contactID string) ([]domain.Message, error)

	// Drafts returns all status=draft messages joined with their owning
	// contact, newest first.
	Drafts(ctx context.Context) ([]domain.DraftWithContact, error)

	// ApproveDraft conditionally transitions a draft to role=assistant,
	// status=sent; when content is non-nil it overwrites the stored body in
	// the same statement. The update matches only rows still in draft
	// status, so a lost approval race surfaces as ErrMessageNotFound.
	ApproveDraft(ctx context.Context, id string, content *string) (*domain.Message, error)

	// DeleteMessage removes a message row permanently. Returns
	// ErrMessageNotFound when no row matched.
	DeleteMessage(ctx context.Context, id string) error
}

// Drafter produces a reply draft from a conversation history. It must
// never fail: implementations degrade to canned or error text internally.
type Drafter interface {
	GenerateDraft(ctx context.Context, displayName string, history []domain.Message) string
}
