package domain

import "time"

// ContactStatus enumerates the outreach states of a contact.
type ContactStatus string

const (
	ContactNew     ContactStatus = "new"
	ContactSent    ContactStatus = "sent"
	ContactOpened  ContactStatus = "opened"
	ContactReplied ContactStatus = "replied"
	ContactBounced ContactStatus = "bounced"
)

// Contact represents a business contact targeted by outreach campaigns.
// Email is unique across contacts; conflicts on import are resolved by
// upsert (company name always wins, person/phone merge via COALESCE).
type Contact struct {
	ID            string        `json:"id" db:"id"`
	CompanyName   string        `json:"companyName" db:"company_name"`
	Email         string        `json:"email" db:"email"`
	ContactPerson *string       `json:"contactPerson" db:"contact_person"`
	Phone         *string       `json:"phone" db:"phone"`
	Notes         *string       `json:"notes" db:"notes"`
	Status        ContactStatus `json:"status" db:"status"`
	LastContacted *time.Time    `json:"lastContacted" db:"last_contacted"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
}

// DisplayName returns the name used to address the contact in drafts:
// the contact person when known, otherwise the company name.
func (c *Contact) DisplayName() string {
	if c.ContactPerson != nil && *c.ContactPerson != "" {
		return *c.ContactPerson
	}
	return c.CompanyName
}
