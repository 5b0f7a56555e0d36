// Package postgres implements the service repository interfaces against
// PostgreSQL via database/sql and lib/pq.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ignite/outreach-hub/internal/domain"
	"github.com/ignite/outreach-hub/internal/service/contacts"
)

const contactColumns = `id, company_name, email, contact_person, phone, notes, status, last_contacted, created_at`

// ContactRepo implements contacts.Repository against PostgreSQL.
type ContactRepo struct{ db *sql.DB }

// NewContactRepo creates a Postgres-backed contact repository.
func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{db: db} }

func scanContact(row interface{ Scan(...interface{}) error }) (*domain.Contact, error) {
	c := &domain.Contact{}
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.Email, &c.ContactPerson, &c.Phone,
		&c.Notes, &c.Status, &c.LastContacted, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ContactRepo) List(ctx context.Context) ([]domain.Contact, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+contactColumns+`
		FROM contacts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var out []domain.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *ContactRepo) Get(ctx context.Context, id string) (*domain.Contact, error) {
	c, err := scanContact(r.db.QueryRowContext(ctx, `
		SELECT `+contactColumns+`
		FROM contacts
		WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, contacts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

func (r *ContactRepo) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	stored, err := scanContact(r.db.QueryRowContext(ctx, `
		INSERT INTO contacts (id, company_name, email, contact_person, phone, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+contactColumns+`
	`, c.ID, c.CompanyName, c.Email, c.ContactPerson, c.Phone, c.Notes, c.Status))
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return stored, nil
}

// Upsert merges by unique email: the incoming company name always wins,
// contact_person and phone keep the stored value when the import omits
// them (COALESCE on the excluded row).
func (r *ContactRepo) Upsert(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	stored, err := scanContact(r.db.QueryRowContext(ctx, `
		INSERT INTO contacts (id, company_name, email, contact_person, phone, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (email) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			contact_person = COALESCE(EXCLUDED.contact_person, contacts.contact_person),
			phone = COALESCE(EXCLUDED.phone, contacts.phone)
		RETURNING `+contactColumns+`
	`, c.ID, c.CompanyName, c.Email, c.ContactPerson, c.Phone, c.Notes, c.Status))
	if err != nil {
		return nil, fmt.Errorf("upsert contact: %w", err)
	}
	return stored, nil
}

func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return contacts.ErrNotFound
	}
	return nil
}
