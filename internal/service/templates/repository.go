package templates

import (
	"context"

	"github.com/ignite/outreach-hub/internal/domain"
)

// Repository defines the data access contract for email templates.
// Implementations must be safe for concurrent use.
type Repository interface {
	// List returns all templates ordered by created_at DESC.
	List(ctx context.Context) ([]domain.EmailTemplate, error)

	// Get returns a single template. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*domain.EmailTemplate, error)

	// Create inserts a new template and returns the stored row.
	Create(ctx context.Context, t *domain.EmailTemplate) (*domain.EmailTemplate, error)

	// Update replaces name/subject/body. Returns ErrNotFound when absent.
	Update(ctx context.Context, t *domain.EmailTemplate) (*domain.EmailTemplate, error)

	// Delete removes a template. Returns ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
}
