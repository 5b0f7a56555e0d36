package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ignite/outreach-hub/internal/domain"
	"github.com/ignite/outreach-hub/internal/service/campaign"
)

// CampaignRepo implements campaign.Repository against PostgreSQL.
// Each method issues a single statement; the dispatcher deliberately
// runs without a transaction across contacts.
type CampaignRepo struct{ db *sql.DB }

// NewCampaignRepo creates a Postgres-backed campaign repository.
func NewCampaignRepo(db *sql.DB) *CampaignRepo { return &CampaignRepo{db: db} }

func (r *CampaignRepo) GetTemplate(ctx context.Context, id string) (*domain.EmailTemplate, error) {
	t, err := scanTemplate(r.db.QueryRowContext(ctx, `
		SELECT `+templateColumns+` FROM templates WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, campaign.ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}
	return t, nil
}

func (r *CampaignRepo) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	c, err := scanContact(r.db.QueryRowContext(ctx, `
		SELECT `+contactColumns+` FROM contacts WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, campaign.ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

func (r *CampaignRepo) ContactsByIDs(ctx context.Context, ids []string) ([]domain.Contact, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+contactColumns+`
		FROM contacts
		WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("contacts by ids: %w", err)
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

func (r *CampaignRepo) AppendSent(ctx context.Context, contactID, content string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (id, contact_id, content, role, status)
		VALUES ($1, $2, $3, 'assistant', 'sent')
	`, uuid.New().String(), contactID, content)
	if err != nil {
		return fmt.Errorf("log outbound message: %w", err)
	}
	return nil
}

func (r *CampaignRepo) MarkContactSent(ctx context.Context, contactID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE contacts SET status = 'sent', last_contacted = NOW()
		WHERE id = $1
	`, contactID)
	if err != nil {
		return fmt.Errorf("mark contact sent: %w", err)
	}
	return nil
}

func (r *CampaignRepo) MarkContactBounced(ctx context.Context, contactID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE contacts SET status = 'bounced' WHERE id = $1
	`, contactID)
	if err != nil {
		return fmt.Errorf("mark contact bounced: %w", err)
	}
	return nil
}
