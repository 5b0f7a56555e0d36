package campaign

import (
	"context"

	"github.com/ignite/outreach-hub/internal/domain"
)

// Repository defines the data access contract for campaign dispatch.
// Implementations must be safe for concurrent use.
type Repository interface {
	// GetTemplate returns the campaign template. Returns ErrTemplateNotFound
	// if it doesn't exist.
	GetTemplate(ctx context.Context, id string) (*domain.EmailTemplate, error)

	// GetContact returns a single contact. Returns ErrContactNotFound if it
	// doesn't exist.
	GetContact(ctx context.Context, id string) (*domain.Contact, error)

	// ContactsByIDs returns the contacts matching the given ids. Unknown ids
	// are silently skipped; order is not significant.
	ContactsByIDs(ctx context.Context, ids []string) ([]domain.Contact, error)

	// AppendSent logs an outbound message (role=assistant, status=sent) with
	// the rendered body on the contact's conversation.
	AppendSent(ctx context.Context, contactID, content string) error

	// MarkContactSent sets the contact's status to sent and stamps
	// last_contacted with the current time.
	MarkContactSent(ctx context.Context, contactID string) error

	// MarkContactBounced sets the contact's status to bounced.
	MarkContactBounced(ctx context.Context, contactID string) error
}

// Renderer substitutes contact fields into template text.
type Renderer interface {
	Render(text string, c domain.Contact) string
}

// Mailer delivers one rendered email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Limiter gates outbound sends. Wait blocks until a slot is free or the
// context is done.
type Limiter interface {
	Wait(ctx context.Context, provider string) error
}
