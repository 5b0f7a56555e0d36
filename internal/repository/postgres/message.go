package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ignite/outreach-hub/internal/domain"
	"github.com/ignite/outreach-hub/internal/service/inbox"
)

const messageColumns = `id, contact_id, content, role, status, created_at`

// MessageRepo implements inbox.Repository against PostgreSQL.
type MessageRepo struct{ db *sql.DB }

// NewMessageRepo creates a Postgres-backed message repository.
func NewMessageRepo(db *sql.DB) *MessageRepo { return &MessageRepo{db: db} }

func scanMessage(row interface{ Scan(...interface{}) error }) (*domain.Message, error) {
	m := &domain.Message{}
	err := row.Scan(&m.ID, &m.ContactID, &m.Content, &m.Role, &m.Status, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MessageRepo) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	c, err := scanContact(r.db.QueryRowContext(ctx, `
		SELECT `+contactColumns+` FROM contacts WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, inbox.ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

func (r *MessageRepo) InsertMessage(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	stored, err := scanMessage(r.db.QueryRowContext(ctx, `
		INSERT INTO messages (id, contact_id, content, role, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+messageColumns+`
	`, m.ID, m.ContactID, m.Content, m.Role, m.Status))
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return stored, nil
}

func (r *MessageRepo) History(ctx context.Context, contactID string) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE contact_id = $1
		ORDER BY created_at ASC
	`, contactID)
	if err != nil {
		return nil, fmt.Errorf("message history: %w", err)
	}
	defer rows.Close()

	var out []domain.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (r *MessageRepo) Drafts(ctx context.Context) ([]domain.DraftWithContact, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.id, m.contact_id, m.content, m.role, m.status, m.created_at,
		       c.company_name, c.email, c.contact_person
		FROM messages m
		JOIN contacts c ON m.contact_id = c.id
		WHERE m.status = 'draft'
		ORDER BY m.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var out []domain.DraftWithContact
	for rows.Next() {
		var d domain.DraftWithContact
		if err := rows.Scan(
			&d.ID, &d.ContactID, &d.Content, &d.Role, &d.Status, &d.CreatedAt,
			&d.CompanyName, &d.Email, &d.ContactPerson,
		); err != nil {
			return nil, fmt.Errorf("scan draft: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ApproveDraft is a conditional transition: only a row still in draft
// status matches, so concurrent approvals cannot both succeed.
func (r *MessageRepo) ApproveDraft(ctx context.Context, id string, content *string) (*domain.Message, error) {
	stored, err := scanMessage(r.db.QueryRowContext(ctx, `
		UPDATE messages
		SET role = 'assistant', status = 'sent', content = COALESCE($2, content)
		WHERE id = $1 AND status = 'draft'
		RETURNING `+messageColumns+`
	`, id, content))
	if err == sql.ErrNoRows {
		return nil, inbox.ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("approve draft: %w", err)
	}
	return stored, nil
}

func (r *MessageRepo) DeleteMessage(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return inbox.ErrMessageNotFound
	}
	return nil
}
