package templates

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ignite/outreach-hub/internal/domain"
)

// Service implements template business logic.
type Service struct {
	repo Repository
}

// NewService creates a templates service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Input holds the fields for creating or updating a template.
type Input struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if strings.TrimSpace(in.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalid)
	}
	if strings.TrimSpace(in.Body) == "" {
		return fmt.Errorf("%w: body is required", ErrInvalid)
	}
	return nil
}

// List returns all templates, newest first.
func (s *Service) List(ctx context.Context) ([]domain.EmailTemplate, error) {
	return s.repo.List(ctx)
}

// Get returns a single template.
func (s *Service) Get(ctx context.Context, id string) (*domain.EmailTemplate, error) {
	return s.repo.Get(ctx, id)
}

// Create validates and persists a new template.
func (s *Service) Create(ctx context.Context, input Input) (*domain.EmailTemplate, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &domain.EmailTemplate{
		ID:      uuid.New().String(),
		Name:    input.Name,
		Subject: input.Subject,
		Body:    input.Body,
	})
}

// Update replaces a template's mutable fields.
func (s *Service) Update(ctx context.Context, id string, input Input) (*domain.EmailTemplate, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, &domain.EmailTemplate{
		ID:      id,
		Name:    input.Name,
		Subject: input.Subject,
		Body:    input.Body,
	})
}

// Delete removes a template by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
