package inbox_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ignite/outreach-hub/internal/domain"
	"github.com/ignite/outreach-hub/internal/service/inbox"
)

// memRepo is an in-memory inbox repository for unit testing.
type memRepo struct {
	mu       sync.Mutex
	contacts map[string]*domain.Contact
	messages []*domain.Message
	seq      int
}

func newMemRepo() *memRepo {
	return &memRepo{contacts: make(map[string]*domain.Contact)}
}

func (m *memRepo) addContact(c domain.Contact) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contacts[c.ID] = &c
}

func (m *memRepo) GetContact(_ context.Context, id string) (*domain.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.contacts[id]
	if !ok {
		return nil, inbox.ErrContactNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memRepo) InsertMessage(_ context.Context, msg *domain.Message) (*domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	cp := *msg
	cp.ID = fmt.Sprintf("msg-%d", m.seq)
	cp.CreatedAt = time.Now().Add(time.Duration(m.seq) * time.Millisecond)
	m.messages = append(m.messages, &cp)
	out := cp
	return &out, nil
}

func (m *memRepo) History(_ context.Context, contactID string) ([]domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Message
	for _, msg := range m.messages {
		if msg.ContactID == contactID {
			out = append(out, *msg)
		}
	}
	return out, nil
}

func (m *memRepo) Drafts(_ context.Context) ([]domain.DraftWithContact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.DraftWithContact
	for i := len(m.messages) - 1; i >= 0; i-- {
		msg := m.messages[i]
		if msg.Status != domain.StatusDraft {
			continue
		}
		c := m.contacts[msg.ContactID]
		out = append(out, domain.DraftWithContact{
			Message:       *msg,
			CompanyName:   c.CompanyName,
			Email:         c.Email,
			ContactPerson: c.ContactPerson,
		})
	}
	return out, nil
}

func (m *memRepo) ApproveDraft(_ context.Context, id string, content *string) (*domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range m.messages {
		if msg.ID == id && msg.Status == domain.StatusDraft {
			if content != nil {
				msg.Content = *content
			}
			msg.Role = domain.RoleAssistant
			msg.Status = domain.StatusSent
			cp := *msg
			return &cp, nil
		}
	}
	return nil, inbox.ErrMessageNotFound
}

func (m *memRepo) DeleteMessage(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, msg := range m.messages {
		if msg.ID == id {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			return nil
		}
	}
	return inbox.ErrMessageNotFound
}

// stubDrafter captures what it was asked and returns fixed text.
type stubDrafter struct {
	mu          sync.Mutex
	displayName string
	history     []domain.Message
	reply       string
}

func (d *stubDrafter) GenerateDraft(_ context.Context, displayName string, history []domain.Message) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.displayName = displayName
	d.history = history
	if d.reply == "" {
		return "draft reply"
	}
	return d.reply
}

func strPtr(s string) *string { return &s }

func setup() (*memRepo, *stubDrafter, *inbox.Service) {
	repo := newMemRepo()
	drafter := &stubDrafter{}
	return repo, drafter, inbox.NewService(repo, drafter)
}

func TestSimulateIncoming(t *testing.T) {
	repo, drafter, svc := setup()
	repo.addContact(domain.Contact{ID: "c1", CompanyName: "Acme", ContactPerson: strPtr("Bob")})

	draft, err := svc.SimulateIncoming(context.Background(), "c1", "Интересно, расскажите подробнее")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if draft.Role != domain.RoleDraft || draft.Status != domain.StatusDraft {
		t.Fatalf("expected draft/draft, got %s/%s", draft.Role, draft.Status)
	}
	if draft.Content != "draft reply" {
		t.Fatalf("expected drafter content, got %q", draft.Content)
	}

	// Drafter is addressed to the contact person and sees the inbound
	// message in the history it receives.
	if drafter.displayName != "Bob" {
		t.Errorf("drafter should get the contact person, got %q", drafter.displayName)
	}
	if len(drafter.history) != 1 || drafter.history[0].Role != domain.RoleUser {
		t.Errorf("drafter should see the logged user message, got %+v", drafter.history)
	}

	history, _ := svc.History(context.Background(), "c1")
	if len(history) != 2 {
		t.Fatalf("expected user message + draft, got %d messages", len(history))
	}
	if history[0].Status != domain.StatusReceived {
		t.Errorf("first message should be received, got %s", history[0].Status)
	}
}

func TestSimulateIncomingFallsBackToCompanyName(t *testing.T) {
	repo, drafter, svc := setup()
	repo.addContact(domain.Contact{ID: "c1", CompanyName: "Acme"})

	if _, err := svc.SimulateIncoming(context.Background(), "c1", "hi"); err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if drafter.displayName != "Acme" {
		t.Errorf("expected company name fallback, got %q", drafter.displayName)
	}
}

func TestSimulateIncomingContactNotFound(t *testing.T) {
	repo, _, svc := setup()

	_, err := svc.SimulateIncoming(context.Background(), "missing-id", "hi")
	if err != inbox.ErrContactNotFound {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
	if len(repo.messages) != 0 {
		t.Fatalf("no message may be created for a missing contact, got %d", len(repo.messages))
	}
}

func TestDraftsNewestFirstWithContact(t *testing.T) {
	repo, _, svc := setup()
	repo.addContact(domain.Contact{ID: "c1", CompanyName: "Acme", Email: "info@acme.test"})
	repo.addContact(domain.Contact{ID: "c2", CompanyName: "Globex", Email: "info@globex.test"})

	svc.SimulateIncoming(context.Background(), "c1", "first")
	svc.SimulateIncoming(context.Background(), "c2", "second")

	drafts, err := svc.Drafts(context.Background())
	if err != nil {
		t.Fatalf("drafts: %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}
	if drafts[0].CompanyName != "Globex" {
		t.Errorf("newest draft should come first, got %q", drafts[0].CompanyName)
	}
	if drafts[1].Email != "info@acme.test" {
		t.Errorf("drafts should carry the owning contact's email, got %q", drafts[1].Email)
	}
}

func TestApproveDraft(t *testing.T) {
	repo, _, svc := setup()
	repo.addContact(domain.Contact{ID: "c1", CompanyName: "Acme"})
	draft, _ := svc.SimulateIncoming(context.Background(), "c1", "hi")

	msg, err := svc.ApproveDraft(context.Background(), draft.ID, nil)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if msg.Role != domain.RoleAssistant || msg.Status != domain.StatusSent {
		t.Fatalf("expected assistant/sent, got %s/%s", msg.Role, msg.Status)
	}
}

func TestApproveDraftWithEditedContent(t *testing.T) {
	repo, _, svc := setup()
	repo.addContact(domain.Contact{ID: "c1", CompanyName: "Acme"})
	draft, _ := svc.SimulateIncoming(context.Background(), "c1", "hi")

	edited := "operator rewrote this"
	msg, err := svc.ApproveDraft(context.Background(), draft.ID, &edited)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if msg.Content != edited {
		t.Errorf("edited content should overwrite the draft, got %q", msg.Content)
	}
}

func TestApproveDraftNotFound(t *testing.T) {
	_, _, svc := setup()
	if _, err := svc.ApproveDraft(context.Background(), "nonexistent", nil); err != inbox.ErrMessageNotFound {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestApproveDraftTwiceLosesSecond(t *testing.T) {
	repo, _, svc := setup()
	repo.addContact(domain.Contact{ID: "c1", CompanyName: "Acme"})
	draft, _ := svc.SimulateIncoming(context.Background(), "c1", "hi")

	if _, err := svc.ApproveDraft(context.Background(), draft.ID, nil); err != nil {
		t.Fatalf("first approve: %v", err)
	}
	if _, err := svc.ApproveDraft(context.Background(), draft.ID, nil); err != inbox.ErrMessageNotFound {
		t.Fatalf("second approve must lose with ErrMessageNotFound, got %v", err)
	}
}

func TestRejectDraftRemovesFromHistory(t *testing.T) {
	repo, _, svc := setup()
	repo.addContact(domain.Contact{ID: "c1", CompanyName: "Acme"})
	draft, _ := svc.SimulateIncoming(context.Background(), "c1", "hi")

	if err := svc.RejectDraft(context.Background(), draft.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}

	history, _ := svc.History(context.Background(), "c1")
	for _, m := range history {
		if m.ID == draft.ID {
			t.Fatal("rejected draft must not appear in history")
		}
	}

	if err := svc.RejectDraft(context.Background(), draft.ID); err != inbox.ErrMessageNotFound {
		t.Fatalf("rejecting twice should be ErrMessageNotFound, got %v", err)
	}
}

func TestErrorDraftIsStillADraft(t *testing.T) {
	repo, drafter, svc := setup()
	repo.addContact(domain.Contact{ID: "c1", CompanyName: "Acme"})
	drafter.reply = "Error generating draft. Please check server logs."

	draft, err := svc.SimulateIncoming(context.Background(), "c1", "hi")
	if err != nil {
		t.Fatalf("a failing drafter must not fail the workflow: %v", err)
	}
	if !strings.Contains(draft.Content, "Error generating draft") {
		t.Errorf("error text should be visible in the draft, got %q", draft.Content)
	}
	if draft.Status != domain.StatusDraft {
		t.Errorf("error draft still awaits review, got %s", draft.Status)
	}
}
