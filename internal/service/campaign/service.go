package campaign

import (
	"context"
	"log"
)

const mailProvider = "ses"

// Service implements campaign dispatch. Sends are sequential and
// best-effort: each contact is rendered, sent, and recorded on its own,
// so partial failure across the batch is expected and tolerated.
type Service struct {
	repo     Repository
	renderer Renderer
	mailer   Mailer
	limiter  Limiter
}

// NewService creates a campaign service.
func NewService(repo Repository, renderer Renderer, mailer Mailer, limiter Limiter) *Service {
	return &Service{repo: repo, renderer: renderer, mailer: mailer, limiter: limiter}
}

// SendResult reports the outcome of a campaign dispatch. SentCount counts
// only contacts whose send succeeded.
type SendResult struct {
	Success   bool `json:"success"`
	SentCount int  `json:"sentCount"`
}

// Preview holds a template rendered for one contact, without sending.
type Preview struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Send dispatches the template to the selected contacts. The template is
// resolved first: an unknown template id fails the whole call with
// ErrTemplateNotFound before any contact is touched. Per-contact
// failures mark that contact bounced and move on.
func (s *Service) Send(ctx context.Context, contactIDs []string, templateID string) (*SendResult, error) {
	if len(contactIDs) == 0 {
		return nil, ErrNoContacts
	}

	tpl, err := s.repo.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	targets, err := s.repo.ContactsByIDs(ctx, contactIDs)
	if err != nil {
		return nil, err
	}

	sent := 0
	for _, contact := range targets {
		subject := s.renderer.Render(tpl.Subject, contact)
		body := s.renderer.Render(tpl.Body, contact)

		if err := s.limiter.Wait(ctx, mailProvider); err != nil {
			// Context cancelled mid-campaign: remaining contacts are
			// simply not attempted, already-sent ones stay recorded.
			log.Printf("[campaign.Service] dispatch interrupted: %v", err)
			break
		}

		if err := s.mailer.Send(ctx, contact.Email, subject, body); err != nil {
			log.Printf("[campaign.Service] send to %s failed: %v", contact.Email, err)
			if mbErr := s.repo.MarkContactBounced(ctx, contact.ID); mbErr != nil {
				log.Printf("[campaign.Service] mark bounced %s: %v", contact.ID, mbErr)
			}
			continue
		}

		if err := s.repo.AppendSent(ctx, contact.ID, body); err != nil {
			log.Printf("[campaign.Service] log message for %s: %v", contact.ID, err)
		}
		if err := s.repo.MarkContactSent(ctx, contact.ID); err != nil {
			log.Printf("[campaign.Service] mark sent %s: %v", contact.ID, err)
		}
		sent++
	}

	log.Printf("[campaign.Service] campaign with template %s: %d/%d sent", templateID, sent, len(targets))
	return &SendResult{Success: true, SentCount: sent}, nil
}

// RenderPreview renders the template for one contact without sending or
// persisting anything.
func (s *Service) RenderPreview(ctx context.Context, contactID, templateID string) (*Preview, error) {
	tpl, err := s.repo.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	contact, err := s.repo.GetContact(ctx, contactID)
	if err != nil {
		return nil, err
	}
	return &Preview{
		Subject: s.renderer.Render(tpl.Subject, *contact),
		Body:    s.renderer.Render(tpl.Body, *contact),
	}, nil
}
