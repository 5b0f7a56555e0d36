package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ignite/outreach-hub/internal/domain"
	"github.com/ignite/outreach-hub/internal/service/contacts"
)

func setupMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func contactRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "company_name", "email", "contact_person", "phone",
		"notes", "status", "last_contacted", "created_at",
	})
}

func TestContactGetNotFound(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewContactRepo(db)

	mock.ExpectQuery(`SELECT .+ FROM contacts\s+WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.Get(context.Background(), "ghost"); err != contacts.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContactGetScansNullableFields(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewContactRepo(db)

	mock.ExpectQuery(`SELECT .+ FROM contacts\s+WHERE id = \$1`).
		WithArgs("c1").
		WillReturnRows(contactRows().AddRow(
			"c1", "Acme", "info@acme.test", nil, nil, nil, "new", nil, time.Now(),
		))

	c, err := repo.Get(context.Background(), "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c.ContactPerson != nil || c.Phone != nil || c.LastContacted != nil {
		t.Errorf("NULL columns must scan to nil pointers, got %+v", c)
	}
}

func TestContactUpsertUsesCoalesceMerge(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewContactRepo(db)

	mock.ExpectQuery(`INSERT INTO contacts .+ ON CONFLICT \(email\) DO UPDATE SET\s+company_name = EXCLUDED\.company_name,\s+contact_person = COALESCE\(EXCLUDED\.contact_person, contacts\.contact_person\),\s+phone = COALESCE\(EXCLUDED\.phone, contacts\.phone\)`).
		WillReturnRows(contactRows().AddRow(
			"c1", "Acme Corp", "info@acme.test", "Bob", nil, nil, "new", nil, time.Now(),
		))

	person := "Bob"
	stored, err := repo.Upsert(context.Background(), &domain.Contact{
		ID:            "c1",
		CompanyName:   "Acme Corp",
		Email:         "info@acme.test",
		ContactPerson: &person,
		Status:        domain.ContactNew,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if stored.CompanyName != "Acme Corp" {
		t.Errorf("expected merged row back, got %+v", stored)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestContactDeleteNotFound(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewContactRepo(db)

	mock.ExpectExec(`DELETE FROM contacts WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "ghost"); err != contacts.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContactList(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewContactRepo(db)

	mock.ExpectQuery(`SELECT .+ FROM contacts\s+ORDER BY created_at DESC`).
		WillReturnRows(contactRows().
			AddRow("c2", "Globex", "g@globex.test", nil, nil, nil, "sent", time.Now(), time.Now()).
			AddRow("c1", "Acme", "a@acme.test", "Bob", nil, nil, "new", nil, time.Now()))

	out, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 || out[0].CompanyName != "Globex" {
		t.Fatalf("unexpected list result: %+v", out)
	}
}
