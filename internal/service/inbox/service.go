package inbox

import (
	"context"
	"log"

	"github.com/ignite/outreach-hub/internal/domain"
)

// Service orchestrates the draft-approval workflow.
type Service struct {
	repo    Repository
	drafter Drafter
}

// NewService creates an inbox service.
func NewService(repo Repository, drafter Drafter) *Service {
	return &Service{repo: repo, drafter: drafter}
}

// SimulateIncoming records an inbound message from a contact, generates an
// AI draft reply from the full conversation, and parks the draft for
// review. The contact is resolved first: a missing contact fails with
// ErrContactNotFound before anything is written. Draft generation cannot
// fail the call; model errors become visible error text in the draft.
func (s *Service) SimulateIncoming(ctx context.Context, contactID, content string) (*domain.Message, error) {
	contact, err := s.repo.GetContact(ctx, contactID)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.InsertMessage(ctx, &domain.Message{
		ContactID: contactID,
		Content:   content,
		Role:      domain.RoleUser,
		Status:    domain.StatusReceived,
	}); err != nil {
		return nil, err
	}

	history, err := s.repo.History(ctx, contactID)
	if err != nil {
		return nil, err
	}

	draftContent := s.drafter.GenerateDraft(ctx, contact.DisplayName(), history)

	draft, err := s.repo.InsertMessage(ctx, &domain.Message{
		ContactID: contactID,
		Content:   draftContent,
		Role:      domain.RoleDraft,
		Status:    domain.StatusDraft,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[inbox.Service] draft %s created for contact %s", draft.ID, contactID)
	return draft, nil
}

// Drafts returns the review queue: all pending drafts with their owning
// contact's identity, newest first.
func (s *Service) Drafts(ctx context.Context) ([]domain.DraftWithContact, error) {
	return s.repo.Drafts(ctx)
}

// History returns a contact's full transcript, oldest first.
func (s *Service) History(ctx context.Context, contactID string) ([]domain.Message, error) {
	return s.repo.History(ctx, contactID)
}

// ApproveDraft finalizes a draft: the optional content overwrites the
// stored body (operator edited the suggestion), then role flips to
// assistant and status to sent. The transition is conditional on the row
// still being a draft, so a double approval loses with ErrMessageNotFound
// instead of silently re-approving.
func (s *Service) ApproveDraft(ctx context.Context, id string, content *string) (*domain.Message, error) {
	msg, err := s.repo.ApproveDraft(ctx, id, content)
	if err != nil {
		return nil, err
	}
	log.Printf("[inbox.Service] draft %s approved", id)
	return msg, nil
}

// RejectDraft permanently deletes a draft. No tombstone, no audit trail.
func (s *Service) RejectDraft(ctx context.Context, id string) error {
	if err := s.repo.DeleteMessage(ctx, id); err != nil {
		return err
	}
	log.Printf("[inbox.Service] draft %s rejected", id)
	return nil
}
