package client

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/ignite/outreach-hub/internal/domain"
	"github.com/ignite/outreach-hub/internal/service/contacts"
	"github.com/ignite/outreach-hub/internal/service/templates"
)

// DefaultPollInterval is how often the draft poller refreshes the inbox.
const DefaultPollInterval = 30 * time.Second

// Store caches server state and selection for a campaign workflow. All
// methods are safe for concurrent use; mutations on the same entity id
// are serialized so a delete cannot interleave with another mutation on
// the same row.
type Store struct {
	api *Client

	mu               sync.Mutex
	contacts         []domain.Contact
	templates        []domain.EmailTemplate
	drafts           []domain.DraftWithContact
	selectedContacts map[string]struct{}
	selectedTemplate string

	inflight map[string]*sync.Mutex

	pollBusy sync.Mutex
	polling  bool
}

// NewStore creates a store bound to an API client.
func NewStore(api *Client) *Store {
	return &Store{
		api:              api,
		selectedContacts: map[string]struct{}{},
		inflight:         map[string]*sync.Mutex{},
	}
}

// lockEntity serializes mutations per entity id. The returned func
// releases the lock.
func (s *Store) lockEntity(id string) func() {
	s.mu.Lock()
	m, ok := s.inflight[id]
	if !ok {
		m = &sync.Mutex{}
		s.inflight[id] = m
	}
	s.mu.Unlock()
	m.Lock()
	return m.Unlock
}

// Load fetches contacts and templates from the server, replacing the
// cached lists.
func (s *Store) Load(ctx context.Context) error {
	contactList, err := s.api.ListContacts(ctx)
	if err != nil {
		return err
	}
	templateList, err := s.api.ListTemplates(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = contactList
	s.templates = templateList
	return nil
}

// Contacts returns a copy of the cached contact list.
func (s *Store) Contacts() []domain.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Contact(nil), s.contacts...)
}

// Templates returns a copy of the cached template list.
func (s *Store) Templates() []domain.EmailTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.EmailTemplate(nil), s.templates...)
}

// Drafts returns a copy of the cached draft list.
func (s *Store) Drafts() []domain.DraftWithContact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.DraftWithContact(nil), s.drafts...)
}

// AddContact creates the contact on the server first, then prepends the
// stored row to the cache.
func (s *Store) AddContact(ctx context.Context, input contacts.CreateInput) (*domain.Contact, error) {
	created, err := s.api.CreateContact(ctx, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.contacts = append([]domain.Contact{*created}, s.contacts...)
	s.mu.Unlock()
	return created, nil
}

// DeleteContact removes the contact from the cache immediately and calls
// the server. On failure the cached list and selection are restored and
// the error is returned to the caller.
func (s *Store) DeleteContact(ctx context.Context, id string) error {
	defer s.lockEntity(id)()

	s.mu.Lock()
	snapshot := append([]domain.Contact(nil), s.contacts...)
	_, wasSelected := s.selectedContacts[id]
	filtered := s.contacts[:0:0]
	for _, c := range s.contacts {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	s.contacts = filtered
	delete(s.selectedContacts, id)
	s.mu.Unlock()

	if err := s.api.DeleteContact(ctx, id); err != nil {
		s.mu.Lock()
		s.contacts = snapshot
		if wasSelected {
			s.selectedContacts[id] = struct{}{}
		}
		s.mu.Unlock()
		return err
	}
	return nil
}

// AddTemplate creates the template on the server first, then prepends it.
func (s *Store) AddTemplate(ctx context.Context, input templates.Input) (*domain.EmailTemplate, error) {
	created, err := s.api.CreateTemplate(ctx, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.templates = append([]domain.EmailTemplate{*created}, s.templates...)
	s.mu.Unlock()
	return created, nil
}

// DeleteTemplate removes the template optimistically, restoring the list
// and clearing no selection on rollback.
func (s *Store) DeleteTemplate(ctx context.Context, id string) error {
	defer s.lockEntity(id)()

	s.mu.Lock()
	snapshot := append([]domain.EmailTemplate(nil), s.templates...)
	selectedBefore := s.selectedTemplate
	filtered := s.templates[:0:0]
	for _, t := range s.templates {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	s.templates = filtered
	if s.selectedTemplate == id {
		s.selectedTemplate = ""
	}
	s.mu.Unlock()

	if err := s.api.DeleteTemplate(ctx, id); err != nil {
		s.mu.Lock()
		s.templates = snapshot
		s.selectedTemplate = selectedBefore
		s.mu.Unlock()
		return err
	}
	return nil
}

// ToggleContact flips one contact's selection.
func (s *Store) ToggleContact(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.selectedContacts[id]; ok {
		delete(s.selectedContacts, id)
	} else {
		s.selectedContacts[id] = struct{}{}
	}
}

// ToggleSelectAll selects every contact unless all are already selected,
// in which case it clears the selection.
func (s *Store) ToggleSelectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.selectedContacts) == len(s.contacts) {
		s.selectedContacts = map[string]struct{}{}
		return
	}
	for _, c := range s.contacts {
		s.selectedContacts[c.ID] = struct{}{}
	}
}

// SelectedContacts returns the selected contact ids.
func (s *Store) SelectedContacts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.selectedContacts))
	for id := range s.selectedContacts {
		out = append(out, id)
	}
	return out
}

// SelectTemplate sets the template used for the next send.
func (s *Store) SelectTemplate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedTemplate = id
}

// SelectedTemplate returns the selected template id, empty if none.
func (s *Store) SelectedTemplate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedTemplate
}

// RefreshDrafts fetches the draft list and replaces the cache.
func (s *Store) RefreshDrafts(ctx context.Context) error {
	drafts, err := s.api.Drafts(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.drafts = drafts
	s.mu.Unlock()
	return nil
}

// StartDraftPoller refreshes drafts on a fixed interval until ctx is
// cancelled. A tick that arrives while a refresh is still in flight is
// skipped rather than queued.
func (s *Store) StartDraftPoller(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !s.tryStartPoll() {
					continue
				}
				go func() {
					defer s.endPoll()
					if err := s.RefreshDrafts(ctx); err != nil && ctx.Err() == nil {
						log.Printf("[client.Store] draft poll failed: %v", err)
					}
				}()
			}
		}
	}()
}

func (s *Store) tryStartPoll() bool {
	s.pollBusy.Lock()
	defer s.pollBusy.Unlock()
	if s.polling {
		return false
	}
	s.polling = true
	return true
}

func (s *Store) endPoll() {
	s.pollBusy.Lock()
	s.polling = false
	s.pollBusy.Unlock()
}
