package contacts

import (
	"context"

	"github.com/ignite/outreach-hub/internal/domain"
)

// Repository defines the data access contract for contacts.
// Implementations must be safe for concurrent use.
type Repository interface {
	// List returns all contacts ordered by created_at DESC.
	List(ctx context.Context) ([]domain.Contact, error)

	// Get returns a single contact. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*domain.Contact, error)

	// Create inserts a new contact and returns the stored row.
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)

	// Upsert inserts a contact or, on an email conflict, merges into the
	// existing row: company_name is always overwritten, contact_person and
	// phone only when the new value is non-null (COALESCE semantics).
	// Returns the stored row either way.
	Upsert(ctx context.Context, c *domain.Contact) (*domain.Contact, error)

	// Delete removes a contact and, via the schema's cascade, its messages.
	// Returns ErrNotFound when no row matched.
	Delete(ctx context.Context, id string) error
}
