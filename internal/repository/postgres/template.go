package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ignite/outreach-hub/internal/domain"
	"github.com/ignite/outreach-hub/internal/service/templates"
)

const templateColumns = `id, name, subject, body, created_at`

// TemplateRepo implements templates.Repository against PostgreSQL.
type TemplateRepo struct{ db *sql.DB }

// NewTemplateRepo creates a Postgres-backed template repository.
func NewTemplateRepo(db *sql.DB) *TemplateRepo { return &TemplateRepo{db: db} }

func scanTemplate(row interface{ Scan(...interface{}) error }) (*domain.EmailTemplate, error) {
	t := &domain.EmailTemplate{}
	if err := row.Scan(&t.ID, &t.Name, &t.Subject, &t.Body, &t.CreatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TemplateRepo) List(ctx context.Context) ([]domain.EmailTemplate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+templateColumns+`
		FROM templates
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var out []domain.EmailTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *TemplateRepo) Get(ctx context.Context, id string) (*domain.EmailTemplate, error) {
	t, err := scanTemplate(r.db.QueryRowContext(ctx, `
		SELECT `+templateColumns+` FROM templates WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, templates.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}
	return t, nil
}

func (r *TemplateRepo) Create(ctx context.Context, t *domain.EmailTemplate) (*domain.EmailTemplate, error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	stored, err := scanTemplate(r.db.QueryRowContext(ctx, `
		INSERT INTO templates (id, name, subject, body)
		VALUES ($1, $2, $3, $4)
		RETURNING `+templateColumns+`
	`, t.ID, t.Name, t.Subject, t.Body))
	if err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	return stored, nil
}

func (r *TemplateRepo) Update(ctx context.Context, t *domain.EmailTemplate) (*domain.EmailTemplate, error) {
	stored, err := scanTemplate(r.db.QueryRowContext(ctx, `
		UPDATE templates SET name = $2, subject = $3, body = $4
		WHERE id = $1
		RETURNING `+templateColumns+`
	`, t.ID, t.Name, t.Subject, t.Body))
	if err == sql.ErrNoRows {
		return nil, templates.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update template: %w", err)
	}
	return stored, nil
}

func (r *TemplateRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return templates.ErrNotFound
	}
	return nil
}
