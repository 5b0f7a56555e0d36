package contacts

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/ignite/outreach-hub/internal/domain"
)

// Service implements contact business logic.
type Service struct {
	repo Repository
}

// NewService creates a contacts service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput holds the fields for creating or importing a contact.
type CreateInput struct {
	CompanyName   string  `json:"companyName"`
	Email         string  `json:"email"`
	ContactPerson *string `json:"contactPerson"`
	Phone         *string `json:"phone"`
	Notes         *string `json:"notes"`
}

func (in CreateInput) validate() error {
	if strings.TrimSpace(in.CompanyName) == "" {
		return fmt.Errorf("%w: company name is required", ErrInvalid)
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalid)
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("%w: invalid email address %q", ErrInvalid, in.Email)
	}
	return nil
}

func (in CreateInput) toContact() *domain.Contact {
	return &domain.Contact{
		ID:            uuid.New().String(),
		CompanyName:   strings.TrimSpace(in.CompanyName),
		Email:         strings.TrimSpace(in.Email),
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Notes:         in.Notes,
		Status:        domain.ContactNew,
	}
}

// List returns all contacts, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Contact, error) {
	return s.repo.List(ctx)
}

// Get returns a single contact.
func (s *Service) Get(ctx context.Context, id string) (*domain.Contact, error) {
	return s.repo.Get(ctx, id)
}

// Create validates and persists a new contact in "new" status.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Contact, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, input.toContact())
}

// BulkUpsert imports contacts, resolving email conflicts by merge: the
// newest company name always wins, person/phone only when provided.
// Rows are processed independently; one bad row fails the call before
// any write (validation), database errors mid-loop leave earlier rows
// committed, matching the best-effort import policy.
func (s *Service) BulkUpsert(ctx context.Context, inputs []CreateInput) ([]domain.Contact, error) {
	for i, in := range inputs {
		if err := in.validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	out := make([]domain.Contact, 0, len(inputs))
	for _, in := range inputs {
		stored, err := s.repo.Upsert(ctx, in.toContact())
		if err != nil {
			return out, fmt.Errorf("upsert %s: %w", in.Email, err)
		}
		out = append(out, *stored)
	}

	log.Printf("[contacts.Service] imported %d contacts", len(out))
	return out, nil
}

// Delete removes a contact by id. Messages cascade at the schema level.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
